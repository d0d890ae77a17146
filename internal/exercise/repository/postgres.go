package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"

	"github.com/AlibekovAA/exercise-tracker/backend/internal/common/db"
	"github.com/AlibekovAA/exercise-tracker/backend/internal/common/logger"
	"github.com/AlibekovAA/exercise-tracker/backend/internal/exercise/domain"
)

type PgRepository struct {
	pool  *pgxpool.Pool
	log   *logger.Logger
	retry db.RetryConfig
}

func NewPgRepository(pool *pgxpool.Pool, log *logger.Logger) *PgRepository {
	return &PgRepository{pool: pool, log: log, retry: db.DefaultRetryConfig}
}

func (r *PgRepository) Create(ctx context.Context, exercise domain.Exercise) error {
	start := time.Now()
	err := db.RetryInsertWithBackoff(ctx, r.log, r.retry, "create exercise", func() error {
		_, err := r.pool.Exec(
			ctx,
			`INSERT INTO exercises (id, user_id, description, duration, date) VALUES ($1, $2, $3, $4, $5)`,
			string(exercise.ID),
			string(exercise.UserID),
			exercise.Description,
			exercise.Duration,
			exercise.Date.UTC(),
		)
		return err
	})
	if db.IsForeignKeyViolation(err) {
		db.MeasureQueryDuration(db.DriverPostgres, "create exercise", start)
		return ErrOwnerNotFound
	}
	return db.HandleExecError(db.DriverPostgres, err, "create exercise", start)
}

func (r *PgRepository) FindByUser(ctx context.Context, filter domain.Filter) ([]domain.Exercise, error) {
	start := time.Now()
	query, args := buildLogQuery(filter, dollarPlaceholder, func(t time.Time) any { return t.UTC() })

	exercises := make([]domain.Exercise, 0)
	err := db.RetryWithBackoff(ctx, r.log, r.retry, "find exercises by user", func() error {
		exercises = exercises[:0]
		rows, err := r.pool.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var e domain.Exercise
			if err := rows.Scan(&e.ID, &e.UserID, &e.Description, &e.Duration, &e.Date); err != nil {
				return fmt.Errorf("scan exercise: %w", err)
			}
			e.Date = e.Date.UTC()
			exercises = append(exercises, e)
		}
		return rows.Err()
	})
	if err := db.HandleExecError(db.DriverPostgres, err, "find exercises by user", start); err != nil {
		return nil, err
	}
	return exercises, nil
}
