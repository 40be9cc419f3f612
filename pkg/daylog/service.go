package daylog

import (
	"context"
	"errors"
	"fmt"

	"github.com/dayline/dayline/pkg/category"
	"github.com/dayline/dayline/pkg/interval"
	log "github.com/sirupsen/logrus"
)

type Service interface {
	// GetDay returns the day's log, creating an empty one on first access.
	GetDay(ctx context.Context, date string) (DayLog, error)
	// FindDay returns the day's log or ErrDayNotFound, without creating it.
	FindDay(ctx context.Context, date string) (DayLog, error)
	AddInterval(ctx context.Context, date string, i interval.Interval) (DayLog, error)
	UpdateInterval(ctx context.Context, date string, index int, i interval.Interval) (DayLog, error)
	DeleteInterval(ctx context.Context, date string, index int) (DayLog, error)
	// GetHistory returns every logged date with its intervals in insertion order.
	GetHistory(ctx context.Context) (map[string][]interval.Interval, error)
}

type ServiceImpl struct {
	repo     Repository
	registry *category.Registry
}

func NewService(repo Repository, registry *category.Registry) *ServiceImpl {
	return &ServiceImpl{
		repo:     repo,
		registry: registry,
	}
}

func (s *ServiceImpl) GetDay(ctx context.Context, date string) (DayLog, error) {
	date, err := ParseDate(date)
	if err != nil {
		return DayLog{}, err
	}
	day, err := s.repo.GetDay(ctx, date)
	if err == nil {
		return day, nil
	}
	if !errors.Is(err, ErrDayNotFound) {
		return DayLog{}, fmt.Errorf("failed to get day: %w", err)
	}

	log.Debugf("creating day log for %s", date)
	if err := s.repo.TouchDay(ctx, date); err != nil {
		return DayLog{}, fmt.Errorf("failed to create day: %w", err)
	}
	return DayLog{Date: date, Intervals: []interval.Interval{}}, nil
}

func (s *ServiceImpl) FindDay(ctx context.Context, date string) (DayLog, error) {
	date, err := ParseDate(date)
	if err != nil {
		return DayLog{}, err
	}
	return s.repo.GetDay(ctx, date)
}

func (s *ServiceImpl) AddInterval(ctx context.Context, date string, i interval.Interval) (DayLog, error) {
	if err := interval.Validate(s.registry, i); err != nil {
		return DayLog{}, err
	}
	return s.modifyDay(ctx, date, func(repo Repository, date string) error {
		return repo.AppendInterval(ctx, date, i)
	})
}

func (s *ServiceImpl) UpdateInterval(ctx context.Context, date string, index int, i interval.Interval) (DayLog, error) {
	if err := interval.Validate(s.registry, i); err != nil {
		return DayLog{}, err
	}
	return s.modifyDay(ctx, date, func(repo Repository, date string) error {
		return repo.ReplaceInterval(ctx, date, index, i)
	})
}

func (s *ServiceImpl) DeleteInterval(ctx context.Context, date string, index int) (DayLog, error) {
	return s.modifyDay(ctx, date, func(repo Repository, date string) error {
		return repo.DeleteInterval(ctx, date, index)
	})
}

func (s *ServiceImpl) GetHistory(ctx context.Context) (map[string][]interval.Interval, error) {
	history, err := s.repo.GetHistory(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get history: %w", err)
	}
	return history, nil
}

// modifyDay runs change in a transaction that first touches the day, so concurrent
// changes to the same date are applied one after another.
func (s *ServiceImpl) modifyDay(ctx context.Context, date string, change func(repo Repository, date string) error) (DayLog, error) {
	date, err := ParseDate(date)
	if err != nil {
		return DayLog{}, err
	}

	var day DayLog
	err = s.repo.WithTransaction(ctx, func(repo Repository) error {
		if err := repo.TouchDay(ctx, date); err != nil {
			return err
		}
		if err := change(repo, date); err != nil {
			return err
		}
		var getErr error
		day, getErr = repo.GetDay(ctx, date)
		return getErr
	})
	if err != nil {
		return DayLog{}, fmt.Errorf("failed to modify day %s: %w", date, err)
	}
	return day, nil
}
