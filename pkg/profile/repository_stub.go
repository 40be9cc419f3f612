package profile

import (
	"context"
	"sync"
)

type RepositoryStub struct {
	mu      sync.RWMutex
	profile *Profile
}

func NewRepositoryStub() *RepositoryStub {
	return &RepositoryStub{}
}

func (r *RepositoryStub) Get(ctx context.Context) (Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.profile == nil {
		return Profile{}, ErrProfileNotFound
	}
	return *r.profile, nil
}

func (r *RepositoryStub) Store(ctx context.Context, p Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.profile = &p
	return nil
}
