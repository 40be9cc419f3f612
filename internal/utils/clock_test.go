package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMockClock(t *testing.T) {
	start := time.Date(2024, 6, 10, 23, 30, 0, 0, time.UTC)
	clock := NewMockClock(start)

	assert.Equal(t, start, clock.Now())

	clock.Advance(time.Hour)
	assert.Equal(t, "2024-06-11", clock.Now().Format(time.DateOnly))

	clock.SetNow(start)
	assert.Equal(t, start, clock.Now())
}
