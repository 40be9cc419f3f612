package history

import (
	"errors"
	"fmt"
	"sort"

	"github.com/dayline/dayline/pkg/category"
	"github.com/dayline/dayline/pkg/interval"
)

// ErrEmptyHistory is returned instead of a summary when no day has been logged yet.
var ErrEmptyHistory = errors.New("no days logged yet")

// Groups maps a group name to the set of categories whose durations are summed under it.
type Groups map[string]map[category.Label]struct{}

// NewGroups builds Groups from plain label lists, rejecting labels the registry cannot assign.
func NewGroups(registry *category.Registry, definitions map[string][]string) (Groups, error) {
	groups := make(Groups, len(definitions))
	for name, labels := range definitions {
		if name == "" {
			return nil, fmt.Errorf("summary group with empty name")
		}
		members := make(map[category.Label]struct{}, len(labels))
		for _, l := range labels {
			label := category.Label(l)
			if !registry.IsValid(label) {
				return nil, fmt.Errorf("summary group %q: unknown category %q", name, l)
			}
			members[label] = struct{}{}
		}
		groups[name] = members
	}
	return groups, nil
}

func (g Groups) Names() []string {
	names := make([]string, 0, len(g))
	for name := range g {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

type GroupSummary struct {
	Name string
	// Total is the number of hours logged in the group over all days.
	Total float64
	// Average is Total divided by the number of logged days.
	Average float64
}

// DayTotals holds the hours logged per group on one date.
type DayTotals struct {
	Date  string
	Hours map[string]float64
}

type Summary struct {
	DaysLogged int
	// Groups are ordered by name.
	Groups []GroupSummary
	// Days are ordered by date.
	Days []DayTotals
}

// Average returns the daily average of the named group.
func (s Summary) Average(name string) (float64, bool) {
	for _, g := range s.Groups {
		if g.Name == name {
			return g.Average, true
		}
	}
	return 0, false
}

// Summarize sums, for every group, the durations of all intervals in history whose category
// belongs to it, and divides by the number of dates in history. Dates with no intervals still
// count as logged days. An empty history yields ErrEmptyHistory.
func Summarize(history map[string][]interval.Interval, groups Groups) (Summary, error) {
	days := len(history)
	if days == 0 {
		return Summary{}, ErrEmptyHistory
	}

	dates := make([]string, 0, days)
	for date := range history {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	totals := make(map[string]float64, len(groups))
	daily := make([]DayTotals, 0, days)
	for _, date := range dates {
		hours := make(map[string]float64, len(groups))
		for _, i := range history[date] {
			for name, members := range groups {
				if _, ok := members[i.Category]; ok {
					hours[name] += i.Duration()
				}
			}
		}
		for name, h := range hours {
			totals[name] += h
		}
		daily = append(daily, DayTotals{Date: date, Hours: hours})
	}

	summaries := make([]GroupSummary, 0, len(groups))
	for _, name := range groups.Names() {
		summaries = append(summaries, GroupSummary{
			Name:    name,
			Total:   totals[name],
			Average: totals[name] / float64(days),
		})
	}
	return Summary{DaysLogged: days, Groups: summaries, Days: daily}, nil
}
