package advice

import (
	"context"
	"fmt"

	"github.com/dayline/dayline/pkg/history"
	"github.com/dayline/dayline/pkg/profile"
)

type Service interface {
	// Advise summarizes the history and asks the generator for feedback on it.
	// It returns history.ErrEmptyHistory when nothing was logged yet, even when advice is disabled.
	Advise(ctx context.Context) (Advice, error)
	Enabled() bool
}

type ServiceImpl struct {
	generator Generator
	summaries history.Service
	profiles  profile.Service
}

// NewService creates the advice service. A nil generator disables advice.
func NewService(generator Generator, summaries history.Service, profiles profile.Service) *ServiceImpl {
	return &ServiceImpl{
		generator: generator,
		summaries: summaries,
		profiles:  profiles,
	}
}

func (s *ServiceImpl) Enabled() bool {
	return s.generator != nil
}

func (s *ServiceImpl) Advise(ctx context.Context) (Advice, error) {
	summary, err := s.summaries.Summary(ctx)
	if err != nil {
		return Advice{}, err
	}
	if !s.Enabled() {
		return Advice{}, ErrAdviceDisabled
	}
	p, err := s.profiles.Get(ctx)
	if err != nil {
		return Advice{}, err
	}

	averages := AveragesOf(summary)
	text, err := s.generator.Generate(ctx, BuildPrompt(p, averages))
	if err != nil {
		return Advice{}, fmt.Errorf("failed to generate advice: %w", err)
	}
	return Advice{
		Text:        text,
		DaysLogged:  summary.DaysLogged,
		Averages:    averages,
		TargetSleep: p.TargetSleep,
		TargetStudy: p.TargetStudy,
	}, nil
}
