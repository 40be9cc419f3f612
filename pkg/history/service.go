package history

import (
	"context"
	"fmt"

	"github.com/dayline/dayline/pkg/interval"
)

// HistoryProvider returns every logged date with its intervals.
type HistoryProvider func(ctx context.Context) (map[string][]interval.Interval, error)

type Service interface {
	// Summary returns the per-group totals and averages over all logged days,
	// or ErrEmptyHistory when nothing was logged yet.
	Summary(ctx context.Context) (Summary, error)
	Groups() Groups
}

type ServiceImpl struct {
	history HistoryProvider
	groups  Groups
}

func NewService(history HistoryProvider, groups Groups) *ServiceImpl {
	return &ServiceImpl{history: history, groups: groups}
}

func (s *ServiceImpl) Summary(ctx context.Context) (Summary, error) {
	history, err := s.history(ctx)
	if err != nil {
		return Summary{}, fmt.Errorf("failed to load history: %w", err)
	}
	return Summarize(history, s.groups)
}

func (s *ServiceImpl) Groups() Groups {
	return s.groups
}
