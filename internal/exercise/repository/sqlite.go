package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/AlibekovAA/exercise-tracker/backend/internal/common/db"
	"github.com/AlibekovAA/exercise-tracker/backend/internal/common/storage"
	"github.com/AlibekovAA/exercise-tracker/backend/internal/exercise/domain"
)

type SQLiteRepository struct {
	sqlDB *sql.DB
}

func NewSQLiteRepository(sqlDB *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{sqlDB: sqlDB}
}

func (r *SQLiteRepository) Create(ctx context.Context, exercise domain.Exercise) error {
	start := time.Now()
	_, err := r.sqlDB.ExecContext(
		ctx,
		`INSERT INTO exercises (id, user_id, description, duration, date) VALUES (?, ?, ?, ?, ?)`,
		string(exercise.ID),
		string(exercise.UserID),
		exercise.Description,
		exercise.Duration,
		toMillis(exercise.Date),
	)
	if storage.IsForeignKeyViolation(err) {
		db.MeasureQueryDuration(db.DriverSQLite, "create exercise", start)
		return ErrOwnerNotFound
	}
	return db.HandleExecError(db.DriverSQLite, err, "create exercise", start)
}

func (r *SQLiteRepository) FindByUser(ctx context.Context, filter domain.Filter) ([]domain.Exercise, error) {
	start := time.Now()
	query, args := buildLogQuery(filter, questionPlaceholder, func(t time.Time) any { return toMillis(t) })

	rows, err := r.sqlDB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, db.HandleExecError(db.DriverSQLite, err, "find exercises by user", start)
	}
	defer rows.Close()

	exercises := make([]domain.Exercise, 0)
	for rows.Next() {
		var (
			e    domain.Exercise
			date int64
		)
		if err := rows.Scan(&e.ID, &e.UserID, &e.Description, &e.Duration, &date); err != nil {
			return nil, db.HandleExecError(db.DriverSQLite, err, "find exercises by user", start)
		}
		e.Date = fromMillis(date)
		exercises = append(exercises, e)
	}
	if err := db.HandleExecError(db.DriverSQLite, rows.Err(), "find exercises by user", start); err != nil {
		return nil, err
	}
	return exercises, nil
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}
