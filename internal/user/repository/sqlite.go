package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/AlibekovAA/exercise-tracker/backend/internal/common/db"
	"github.com/AlibekovAA/exercise-tracker/backend/internal/user/domain"
)

type SQLiteRepository struct {
	sqlDB *sql.DB
}

func NewSQLiteRepository(sqlDB *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{sqlDB: sqlDB}
}

func (r *SQLiteRepository) Create(ctx context.Context, user domain.User) error {
	start := time.Now()
	_, err := r.sqlDB.ExecContext(
		ctx,
		`INSERT INTO users (id, username, created_at) VALUES (?, ?, ?)`,
		string(user.ID),
		user.Username,
		toMillis(user.CreatedAt),
	)
	return db.HandleExecError(db.DriverSQLite, err, "create user", start)
}

func (r *SQLiteRepository) FindByID(ctx context.Context, id domain.ID) (domain.User, error) {
	start := time.Now()
	var (
		user      domain.User
		createdAt int64
	)
	err := r.sqlDB.QueryRowContext(
		ctx,
		`SELECT id, username, created_at FROM users WHERE id = ?`,
		string(id),
	).Scan(&user.ID, &user.Username, &createdAt)
	if err := db.HandleQueryError(db.DriverSQLite, err, ErrUserNotFound, "find user by id", start); err != nil {
		return domain.User{}, err
	}
	user.CreatedAt = fromMillis(createdAt)
	return user, nil
}

func (r *SQLiteRepository) List(ctx context.Context) ([]domain.User, error) {
	start := time.Now()
	rows, err := r.sqlDB.QueryContext(ctx, `SELECT id, username, created_at FROM users ORDER BY seq ASC`)
	if err != nil {
		return nil, db.HandleQueryError(db.DriverSQLite, err, ErrUserNotFound, "list users", start)
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var (
			u         domain.User
			createdAt int64
		)
		if err := rows.Scan(&u.ID, &u.Username, &createdAt); err != nil {
			return nil, db.HandleQueryError(db.DriverSQLite, err, ErrUserNotFound, "list users", start)
		}
		u.CreatedAt = fromMillis(createdAt)
		users = append(users, u)
	}
	if err := db.HandleQueryError(db.DriverSQLite, rows.Err(), ErrUserNotFound, "list users", start); err != nil {
		return nil, err
	}
	return users, nil
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}
