package daylog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dayline/dayline/internal/utils"
	"github.com/dayline/dayline/pkg/category"
	"github.com/dayline/dayline/pkg/interval"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

type Repository interface {
	WithTransaction(ctx context.Context, fn func(repo Repository) error) error
	// TouchDay creates the day if it does not exist yet and marks it as modified.
	// Inside a transaction it also serializes writers of the same date.
	TouchDay(ctx context.Context, date string) error
	GetDay(ctx context.Context, date string) (DayLog, error)
	AppendInterval(ctx context.Context, date string, i interval.Interval) error
	ReplaceInterval(ctx context.Context, date string, index int, i interval.Interval) error
	DeleteInterval(ctx context.Context, date string, index int) error
	GetHistory(ctx context.Context) (map[string][]interval.Interval, error)
}

type RepositoryImpl struct {
	db    *sql.DB
	tx    *sql.Tx
	clock utils.Clock
}

func NewRepository(db *sql.DB, clock utils.Clock) *RepositoryImpl {
	return &RepositoryImpl{db: db, tx: nil, clock: clock}
}

// getQueryer returns the appropriate database interface for queries (either tx or db)
func (r *RepositoryImpl) getQueryer() interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
} {
	if r.tx != nil {
		return r.tx
	}
	return r.db
}

func (r *RepositoryImpl) WithTransaction(ctx context.Context, fn func(repo Repository) error) error {
	if r.tx != nil {
		return fn(r)
	}
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		// The Rollback will be a no-op if the transaction was already committed
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			log.Errorf("rollback error: %v", rbErr)
		}
	}()

	txRepo := &RepositoryImpl{db: r.db, tx: tx, clock: r.clock}

	if err := fn(txRepo); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}

func (r *RepositoryImpl) TouchDay(ctx context.Context, date string) error {
	query := `INSERT INTO day_log (log_date, updated_at) VALUES ($1, $2)
              ON CONFLICT (log_date) DO UPDATE SET updated_at = excluded.updated_at`

	_, err := r.getQueryer().ExecContext(ctx, query, date, r.clock.Now().UnixMilli())
	if err != nil {
		err := fmt.Errorf("could not touch day %s: %w", date, err)
		log.Error(err)
		return err
	}
	return nil
}

func (r *RepositoryImpl) GetDay(ctx context.Context, date string) (DayLog, error) {
	var exists int
	err := r.getQueryer().QueryRowContext(ctx, `SELECT 1 FROM day_log WHERE log_date = $1`, date).Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		return DayLog{}, ErrDayNotFound
	}
	if err != nil {
		err := fmt.Errorf("could not query day %s: %w", date, err)
		log.Error(err)
		return DayLog{}, err
	}

	query := `SELECT category, start_hour, end_hour, note
              FROM interval_entry
              WHERE log_date = $1
              ORDER BY position`
	rows, err := r.getQueryer().QueryContext(ctx, query, date)
	if err != nil {
		err := fmt.Errorf("could not query intervals: %w", err)
		log.Error(err)
		return DayLog{}, err
	}
	defer rows.Close()

	intervals := make([]interval.Interval, 0, 10)
	for rows.Next() {
		i, err := scanInterval(rows)
		if err != nil {
			return DayLog{}, err
		}
		intervals = append(intervals, i)
	}
	if err := rows.Err(); err != nil {
		return DayLog{}, fmt.Errorf("could not read intervals: %w", err)
	}
	return DayLog{Date: date, Intervals: intervals}, nil
}

func (r *RepositoryImpl) AppendInterval(ctx context.Context, date string, i interval.Interval) error {
	var count int
	err := r.getQueryer().QueryRowContext(ctx, `SELECT COUNT(*) FROM interval_entry WHERE log_date = $1`, date).Scan(&count)
	if err != nil {
		err := fmt.Errorf("could not count intervals: %w", err)
		log.Error(err)
		return err
	}

	query := `INSERT INTO interval_entry (
                            uid,
                            log_date,
                            position,
                            category,
                            start_hour,
                            end_hour,
                            note
						) VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err = r.getQueryer().ExecContext(ctx, query, uuid.NewString(), date, count, string(i.Category), i.Start, i.End, i.Note)
	if err != nil {
		err := fmt.Errorf("could not execute query: %w", err)
		log.Error(err)
		return err
	}
	return nil
}

func (r *RepositoryImpl) ReplaceInterval(ctx context.Context, date string, index int, i interval.Interval) error {
	query := `UPDATE interval_entry SET category = $1, start_hour = $2, end_hour = $3, note = $4
              WHERE log_date = $5 AND position = $6`
	result, err := r.getQueryer().ExecContext(ctx, query, string(i.Category), i.Start, i.End, i.Note, date, index)
	if err != nil {
		err := fmt.Errorf("could not execute query: %w", err)
		log.Error(err)
		return err
	}
	return requireOneRow(result, date, index)
}

func (r *RepositoryImpl) DeleteInterval(ctx context.Context, date string, index int) error {
	result, err := r.getQueryer().ExecContext(ctx, `DELETE FROM interval_entry WHERE log_date = $1 AND position = $2`, date, index)
	if err != nil {
		err := fmt.Errorf("could not execute query: %w", err)
		log.Error(err)
		return err
	}
	if err := requireOneRow(result, date, index); err != nil {
		return err
	}

	_, err = r.getQueryer().ExecContext(ctx, `UPDATE interval_entry SET position = position - 1 WHERE log_date = $1 AND position > $2`, date, index)
	if err != nil {
		err := fmt.Errorf("could not shift interval positions: %w", err)
		log.Error(err)
		return err
	}
	return nil
}

func (r *RepositoryImpl) GetHistory(ctx context.Context) (map[string][]interval.Interval, error) {
	query := `SELECT d.log_date, e.category, e.start_hour, e.end_hour, e.note
              FROM day_log d
              LEFT JOIN interval_entry e ON e.log_date = d.log_date
              ORDER BY d.log_date, e.position`
	rows, err := r.getQueryer().QueryContext(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not query history: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	history := make(map[string][]interval.Interval)
	for rows.Next() {
		var (
			date      string
			label     sql.NullString
			startHour sql.NullFloat64
			endHour   sql.NullFloat64
			note      sql.NullString
		)
		if err := rows.Scan(&date, &label, &startHour, &endHour, &note); err != nil {
			err := fmt.Errorf("could not scan row: %w", err)
			log.Error(err)
			return nil, err
		}
		if !label.Valid {
			// day without intervals
			history[date] = []interval.Interval{}
			continue
		}
		history[date] = append(history[date], interval.Interval{
			Category: category.Label(label.String),
			Start:    startHour.Float64,
			End:      endHour.Float64,
			Note:     note.String,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("could not read history: %w", err)
	}
	return history, nil
}

func scanInterval(rows *sql.Rows) (interval.Interval, error) {
	var (
		label     string
		startHour float64
		endHour   float64
		note      string
	)
	if err := rows.Scan(&label, &startHour, &endHour, &note); err != nil {
		err := fmt.Errorf("could not scan row: %w", err)
		log.Error(err)
		return interval.Interval{}, err
	}
	return interval.Interval{
		Category: category.Label(label),
		Start:    startHour,
		End:      endHour,
		Note:     note,
	}, nil
}

func requireOneRow(result sql.Result, date string, index int) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("could not read affected rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s #%d", ErrIntervalNotFound, date, index)
	}
	return nil
}
