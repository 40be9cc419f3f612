package timeline

import (
	"slices"

	"github.com/dayline/dayline/pkg/category"
	"github.com/dayline/dayline/pkg/interval"
	log "github.com/sirupsen/logrus"
)

// Segment is a piece of a day's timeline, either a logged category or uncovered time.
type Segment struct {
	Category category.Label
	Start    float64
	End      float64
}

func (s Segment) Duration() float64 {
	return s.End - s.Start
}

// DayTimeline is the timeline computed for one date.
type DayTimeline struct {
	Date     string
	Segments []Segment
}

// Builder turns a day's intervals into a timeline covering [0, 24).
// It holds no mutable state and may be shared between goroutines.
type Builder struct {
	uncovered category.Label
}

func NewBuilder(uncovered category.Label) *Builder {
	return &Builder{uncovered: uncovered}
}

// Build sorts the intervals by start (stable, so equal starts keep insertion order) and
// fills every gap with an uncovered segment. Overlapping intervals are not trimmed: each
// is emitted as logged and the result then contains overlapping segments.
// Intervals with End <= Start are skipped.
func (b *Builder) Build(intervals []interval.Interval) []Segment {
	sorted := make([]interval.Interval, 0, len(intervals))
	for _, i := range intervals {
		if !(i.End > i.Start) {
			log.Debugf("skipping interval %s with non-positive duration [%v, %v)", i.Category, i.Start, i.End)
			continue
		}
		sorted = append(sorted, i)
	}
	slices.SortStableFunc(sorted, func(a, b interval.Interval) int {
		switch {
		case a.Start < b.Start:
			return -1
		case a.Start > b.Start:
			return 1
		}
		return 0
	})

	segments := make([]Segment, 0, 2*len(sorted)+1)
	current := interval.DayStart
	for _, i := range sorted {
		if i.Start > current {
			segments = append(segments, Segment{Category: b.uncovered, Start: current, End: i.Start})
		}
		segments = append(segments, Segment{Category: i.Category, Start: i.Start, End: i.End})
		current = max(current, i.End)
	}
	if current < interval.DayEnd {
		segments = append(segments, Segment{Category: b.uncovered, Start: current, End: interval.DayEnd})
	}
	return segments
}
