package gateway

import "fmt"

// APIError describes a failed exchange with the GitHub API.
// StatusCode is 0 when no response was received at all.
type APIError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *APIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("GitHub API error (status %d): %s: %v", e.StatusCode, e.Message, e.Err)
	}
	return fmt.Sprintf("GitHub API error (status %d): %s", e.StatusCode, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// NewAPIError creates an APIError with the given status code and message.
func NewAPIError(statusCode int, message string, err error) error {
	return &APIError{
		StatusCode: statusCode,
		Message:    message,
		Err:        err,
	}
}
