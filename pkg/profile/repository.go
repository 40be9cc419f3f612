package profile

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
)

// profileId is the id of the single stored profile.
const profileId = 1

type Repository interface {
	Get(ctx context.Context) (Profile, error)
	Store(ctx context.Context, p Profile) error
}

type RepositoryImpl struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *RepositoryImpl {
	return &RepositoryImpl{db: db}
}

func (r *RepositoryImpl) Get(ctx context.Context) (Profile, error) {
	query := `SELECT name, target_sleep, target_study FROM user_profile WHERE id = $1`
	var p Profile
	err := r.db.QueryRowContext(ctx, query, profileId).Scan(&p.Name, &p.TargetSleep, &p.TargetStudy)
	if errors.Is(err, sql.ErrNoRows) {
		return Profile{}, ErrProfileNotFound
	}
	if err != nil {
		err := fmt.Errorf("could not query profile: %w", err)
		log.Error(err)
		return Profile{}, err
	}
	return p, nil
}

func (r *RepositoryImpl) Store(ctx context.Context, p Profile) error {
	query := `INSERT INTO user_profile (id, name, target_sleep, target_study) VALUES ($1, $2, $3, $4)
              ON CONFLICT (id) DO UPDATE SET name = excluded.name,
                                             target_sleep = excluded.target_sleep,
                                             target_study = excluded.target_study`
	_, err := r.db.ExecContext(ctx, query, profileId, p.Name, p.TargetSleep, p.TargetStudy)
	if err != nil {
		err := fmt.Errorf("could not store profile: %w", err)
		log.Error(err)
		return err
	}
	return nil
}
