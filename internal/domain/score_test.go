package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestExtractScore uses a table-driven approach to pin the marker
// convention: "h:" followed by exactly one captured character, anywhere
// in the message, with every parse failure treated as "no score".
func TestExtractScore(t *testing.T) {
	testCases := []struct {
		name          string
		message       string
		expectedScore int
		expectScore   bool
	}{
		{
			name:          "marker in the middle of a message",
			message:       "fix bug h:7 done",
			expectedScore: 7,
			expectScore:   true,
		},
		{
			name:          "marker at the start of a message",
			message:       "h:9 rewrote the pagination loop",
			expectedScore: 9,
			expectScore:   true,
		},
		{
			name:          "zero is a valid score",
			message:       "rollback friday deploy h:0",
			expectedScore: 0,
			expectScore:   true,
		},
		{
			name:        "non-digit capture",
			message:     "h:x nonsense",
			expectScore: false,
		},
		{
			name:        "no marker at all",
			message:     "update dependencies",
			expectScore: false,
		},
		{
			name:        "empty message",
			message:     "",
			expectScore: false,
		},
		{
			name:        "marker ends the message",
			message:     "ship it h:",
			expectScore: false,
		},
		{
			name:          "multi-digit score is truncated to its first digit",
			message:       "great sprint h:12",
			expectedScore: 1,
			expectScore:   true,
		},
		{
			name:        "space after marker",
			message:     "h: 8 felt good",
			expectScore: false,
		},
		{
			name:          "marker embedded in a longer word still matches",
			message:       "squash:3 commits",
			expectedScore: 3,
			expectScore:   true,
		},
		{
			name:          "marker after a newline in a multi-line message",
			message:       "refactor gateway\n\nh:8 much cleaner now",
			expectedScore: 8,
			expectScore:   true,
		},
		{
			name:        "lone minus sign is not a score",
			message:     "h:- unclear day",
			expectScore: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			commit := Commit{SHA: "abc123", Detail: CommitDetail{Message: tc.message}}

			score, ok := ExtractScore(commit)

			assert.Equal(t, tc.expectScore, ok)
			if tc.expectScore {
				assert.Equal(t, tc.expectedScore, score)
			} else {
				assert.Zero(t, score)
			}
		})
	}
}
