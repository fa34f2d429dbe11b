// Package dates computes the ISO-8601 date strings that bound
// commit-window queries.
package dates

import (
	"fmt"
	"time"
)

// ISODate is the wire format for since-dates (an ISO-8601 calendar date).
const ISODate = "2006-01-02"

// Boundary names a calendar boundary the current date can be adjusted to.
type Boundary int

// The closed set of supported calendar boundaries. Anything else is
// rejected by AtBoundary.
const (
	FirstDayOfYear Boundary = iota
	FirstDayOfMonth
)

// DaysAgo returns the date n calendar days before now, formatted as
// YYYY-MM-DD. DaysAgo(now, 0) is now's own date; month and year
// boundaries are crossed the way calendars do.
func DaysAgo(now time.Time, n int) string {
	return now.AddDate(0, 0, -n).Format(ISODate)
}

// AtBoundary returns now's date adjusted to the given calendar boundary,
// formatted as YYYY-MM-DD.
func AtBoundary(now time.Time, b Boundary) (string, error) {
	switch b {
	case FirstDayOfYear:
		return time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location()).Format(ISODate), nil
	case FirstDayOfMonth:
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).Format(ISODate), nil
	default:
		return "", fmt.Errorf("unknown calendar boundary %d", b)
	}
}
