package daylog

import (
	"context"
	"fmt"
	"sync"

	"github.com/dayline/dayline/pkg/interval"
)

type RepositoryStub struct {
	txMu sync.Mutex // held for the whole of WithTransaction, one writer at a time
	mu   sync.RWMutex
	days map[string][]interval.Interval
}

func NewRepositoryStub() *RepositoryStub {
	return &RepositoryStub{
		days: make(map[string][]interval.Interval),
	}
}

func (r *RepositoryStub) WithTransaction(ctx context.Context, fn func(repo Repository) error) error {
	r.txMu.Lock()
	defer r.txMu.Unlock()

	// Create a copy of the current state for rollback
	r.mu.RLock()
	original := copyDays(r.days)
	r.mu.RUnlock()

	if err := fn(r); err != nil {
		r.mu.Lock()
		r.days = original
		r.mu.Unlock()
		return err
	}
	return nil
}

func (r *RepositoryStub) TouchDay(ctx context.Context, date string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.days[date]; !ok {
		r.days[date] = []interval.Interval{}
	}
	return nil
}

func (r *RepositoryStub) GetDay(ctx context.Context, date string) (DayLog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	intervals, ok := r.days[date]
	if !ok {
		return DayLog{}, ErrDayNotFound
	}
	return DayLog{Date: date, Intervals: append([]interval.Interval{}, intervals...)}, nil
}

func (r *RepositoryStub) AppendInterval(ctx context.Context, date string, i interval.Interval) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.days[date] = append(r.days[date], i)
	return nil
}

func (r *RepositoryStub) ReplaceInterval(ctx context.Context, date string, index int, i interval.Interval) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	intervals := r.days[date]
	if index < 0 || index >= len(intervals) {
		return fmt.Errorf("%w: %s #%d", ErrIntervalNotFound, date, index)
	}
	intervals[index] = i
	return nil
}

func (r *RepositoryStub) DeleteInterval(ctx context.Context, date string, index int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	intervals := r.days[date]
	if index < 0 || index >= len(intervals) {
		return fmt.Errorf("%w: %s #%d", ErrIntervalNotFound, date, index)
	}
	r.days[date] = append(intervals[:index:index], intervals[index+1:]...)
	return nil
}

func (r *RepositoryStub) GetHistory(ctx context.Context) (map[string][]interval.Interval, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return copyDays(r.days), nil
}

// Reset removes all stored days (useful between tests)
func (r *RepositoryStub) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.days = make(map[string][]interval.Interval)
}

func copyDays(days map[string][]interval.Interval) map[string][]interval.Interval {
	out := make(map[string][]interval.Interval, len(days))
	for date, intervals := range days {
		out[date] = append([]interval.Interval{}, intervals...)
	}
	return out
}
