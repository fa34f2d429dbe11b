package domain

import (
	"regexp"
	"strconv"
)

// scorePattern captures the single character immediately following the
// literal "h:" marker, wherever the marker appears in the message.
// The capture is one character wide, so "h:12" reads as score 1.
var scorePattern = regexp.MustCompile(`h:(.)`)

// ExtractScore pulls the happiness score out of a commit message.
// The second return value is false when the message has no marker, the
// marker ends the message, or the captured character is not a decimal
// digit. Malformed scores never surface as errors; they are simply
// absent.
func ExtractScore(c Commit) (int, bool) {
	match := scorePattern.FindStringSubmatch(c.Detail.Message)
	if match == nil {
		return 0, false
	}

	score, err := strconv.Atoi(match[1])
	if err != nil {
		return 0, false
	}

	return score, true
}
