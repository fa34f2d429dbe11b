// Package domain contains the core data structures and domain logic for the application.
package domain

// Commit is a single commit record as returned by the GitHub commits API.
// The upstream payload is much larger; only the fields this tool consumes
// are decoded and everything else is ignored.
type Commit struct {
	SHA    string       `json:"sha"`
	Detail CommitDetail `json:"commit"`
}

// CommitDetail is the nested "commit" object carrying the message text.
type CommitDetail struct {
	Message string `json:"message"`
}

// RepoHappiness holds the happiness aggregate for a single repository:
// the arithmetic mean of the scores found in the window, how many commits
// carried a score, and the window's inclusive lower bound.
// Average is nil when no commit in the window carried a score and
// marshals as JSON null.
type RepoHappiness struct {
	Average *float64 `json:"average"`
	Count   int      `json:"count"`
	Since   string   `json:"since"`
}
