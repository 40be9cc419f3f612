package timeline

import (
	"context"
	"errors"
	"fmt"

	"github.com/dayline/dayline/internal/utils"
	"github.com/dayline/dayline/pkg/daylog"
)

// WeekDays is the number of days shown by Week, today included.
const WeekDays = 7

type Service interface {
	// Day returns the timeline of date. It only reads: a date never logged yields a single
	// uncovered segment and is not created.
	Day(ctx context.Context, date string) (DayTimeline, error)
	// Week returns the timelines of the last WeekDays days ending today, oldest first.
	// Days without any interval are left out.
	Week(ctx context.Context) ([]DayTimeline, error)
}

type ServiceImpl struct {
	days    daylog.Service
	builder *Builder
	clock   utils.Clock
}

func NewService(days daylog.Service, builder *Builder, clock utils.Clock) *ServiceImpl {
	return &ServiceImpl{
		days:    days,
		builder: builder,
		clock:   clock,
	}
}

func (s *ServiceImpl) Day(ctx context.Context, date string) (DayTimeline, error) {
	day, err := s.days.FindDay(ctx, date)
	if errors.Is(err, daylog.ErrDayNotFound) {
		normalized, parseErr := daylog.ParseDate(date)
		if parseErr != nil {
			return DayTimeline{}, parseErr
		}
		day = daylog.DayLog{Date: normalized}
	} else if err != nil {
		return DayTimeline{}, err
	}
	return DayTimeline{Date: day.Date, Segments: s.builder.Build(day.Intervals)}, nil
}

func (s *ServiceImpl) Week(ctx context.Context) ([]DayTimeline, error) {
	today := s.clock.Now()
	timelines := make([]DayTimeline, 0, WeekDays)
	for offset := WeekDays - 1; offset >= 0; offset-- {
		date := today.AddDate(0, 0, -offset).Format(daylog.DateLayout)
		day, err := s.days.FindDay(ctx, date)
		if errors.Is(err, daylog.ErrDayNotFound) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to get day %s: %w", date, err)
		}
		if len(day.Intervals) == 0 {
			continue
		}
		timelines = append(timelines, DayTimeline{Date: day.Date, Segments: s.builder.Build(day.Intervals)})
	}
	return timelines, nil
}
