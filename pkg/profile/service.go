package profile

import (
	"context"
	"errors"
	"fmt"
)

type Service interface {
	// Get returns the stored profile, or the configured defaults when none was stored yet.
	Get(ctx context.Context) (Profile, error)
	Update(ctx context.Context, p Profile) (Profile, error)
}

type ServiceImpl struct {
	repo     Repository
	defaults Profile
}

func NewService(repo Repository, defaults Profile) *ServiceImpl {
	return &ServiceImpl{repo: repo, defaults: defaults}
}

func (s *ServiceImpl) Get(ctx context.Context) (Profile, error) {
	p, err := s.repo.Get(ctx)
	if errors.Is(err, ErrProfileNotFound) {
		return s.defaults, nil
	}
	if err != nil {
		return Profile{}, fmt.Errorf("failed to get profile: %w", err)
	}
	return p, nil
}

func (s *ServiceImpl) Update(ctx context.Context, p Profile) (Profile, error) {
	p, err := Validate(p)
	if err != nil {
		return Profile{}, err
	}
	if err := s.repo.Store(ctx, p); err != nil {
		return Profile{}, fmt.Errorf("failed to update profile: %w", err)
	}
	return p, nil
}
