package daylog

import (
	"errors"
	"fmt"
	"time"

	"github.com/dayline/dayline/pkg/interval"
)

const DateLayout = time.DateOnly

var (
	ErrInvalidDate      = errors.New("invalid date")
	ErrDayNotFound      = errors.New("day not found")
	ErrIntervalNotFound = errors.New("interval not found")
)

// DayLog holds the intervals logged for one date, in insertion order.
type DayLog struct {
	Date      string
	Intervals []interval.Interval
}

// ParseDate checks that date is an ISO calendar date (YYYY-MM-DD) and returns it normalized.
func ParseDate(date string) (string, error) {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return "", fmt.Errorf("%w: %q must be formatted as YYYY-MM-DD", ErrInvalidDate, date)
	}
	return t.Format(DateLayout), nil
}
