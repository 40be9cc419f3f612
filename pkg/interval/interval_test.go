package interval

import (
	"errors"
	"math"
	"testing"

	"github.com/dayline/dayline/pkg/category"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	registry := category.Default()

	testCases := []struct {
		name      string
		label     category.Label
		start     float64
		end       float64
		wantField string
	}{
		{name: "valid", label: category.Study, start: 9, end: 11},
		{name: "whole day", label: category.Sleep, start: 0, end: 24},
		{name: "half hours", label: category.Meal, start: 12.5, end: 13},
		{name: "end equals start", label: category.Study, start: 9, end: 9, wantField: "end"},
		{name: "end before start", label: category.Study, start: 11, end: 9, wantField: "end"},
		{name: "start below zero", label: category.Study, start: -1, end: 2, wantField: "start"},
		{name: "end after midnight", label: category.Study, start: 23, end: 25, wantField: "end"},
		{name: "NaN start", label: category.Study, start: math.NaN(), end: 2, wantField: "start"},
		{name: "unknown category", label: "gaming", start: 1, end: 2, wantField: "category"},
		{name: "uncovered is not selectable", label: category.Uncovered, start: 1, end: 2, wantField: "category"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := New(registry, tc.label, tc.start, tc.end, "note")

			if tc.wantField == "" {
				require.NoError(t, err)
				assert.Equal(t, tc.label, got.Category)
				assert.Equal(t, tc.end-tc.start, got.Duration())
				assert.Equal(t, "note", got.Note)
				return
			}
			var validationErr *ValidationError
			require.True(t, errors.As(err, &validationErr), "expected ValidationError, got %v", err)
			assert.Equal(t, tc.wantField, validationErr.Field)
			assert.Equal(t, Interval{}, got)
		})
	}
}
