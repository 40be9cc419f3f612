package interval

import (
	"fmt"

	"github.com/dayline/dayline/pkg/category"
)

const (
	DayStart = 0.0
	DayEnd   = 24.0
)

// Interval is a single logged activity. Start and End are hour offsets within the day.
type Interval struct {
	Category category.Label
	Start    float64
	End      float64
	Note     string
}

func (i Interval) Duration() float64 {
	return i.End - i.Start
}

// ValidationError is returned when an interval cannot be stored.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid interval %s: %s", e.Field, e.Reason)
}

// New validates the fields and returns the interval.
func New(registry *category.Registry, label category.Label, start, end float64, note string) (Interval, error) {
	i := Interval{
		Category: label,
		Start:    start,
		End:      end,
		Note:     note,
	}
	if err := Validate(registry, i); err != nil {
		return Interval{}, err
	}
	return i, nil
}

// Validate checks that the category is selectable, both bounds lie within the day and End > Start.
func Validate(registry *category.Registry, i Interval) error {
	if !registry.IsValid(i.Category) {
		return &ValidationError{Field: "category", Reason: fmt.Sprintf("unknown category %q", i.Category)}
	}
	if !(i.Start >= DayStart && i.Start <= DayEnd) {
		return &ValidationError{Field: "start", Reason: fmt.Sprintf("%v is outside of [0, 24]", i.Start)}
	}
	if !(i.End >= DayStart && i.End <= DayEnd) {
		return &ValidationError{Field: "end", Reason: fmt.Sprintf("%v is outside of [0, 24]", i.End)}
	}
	if !(i.End > i.Start) {
		return &ValidationError{Field: "end", Reason: "end must be after start"}
	}
	return nil
}
