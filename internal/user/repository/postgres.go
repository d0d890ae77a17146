package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"

	"github.com/AlibekovAA/exercise-tracker/backend/internal/common/db"
	"github.com/AlibekovAA/exercise-tracker/backend/internal/common/logger"
	"github.com/AlibekovAA/exercise-tracker/backend/internal/user/domain"
)

type PgRepository struct {
	pool  *pgxpool.Pool
	log   *logger.Logger
	retry db.RetryConfig
}

func NewPgRepository(pool *pgxpool.Pool, log *logger.Logger) *PgRepository {
	return &PgRepository{pool: pool, log: log, retry: db.DefaultRetryConfig}
}

func (r *PgRepository) Create(ctx context.Context, user domain.User) error {
	start := time.Now()
	err := db.RetryInsertWithBackoff(ctx, r.log, r.retry, "create user", func() error {
		_, err := r.pool.Exec(
			ctx,
			`INSERT INTO users (id, username, created_at) VALUES ($1, $2, $3)`,
			string(user.ID),
			user.Username,
			user.CreatedAt,
		)
		return err
	})
	return db.HandleExecError(db.DriverPostgres, err, "create user", start)
}

func (r *PgRepository) FindByID(ctx context.Context, id domain.ID) (domain.User, error) {
	start := time.Now()
	var user domain.User
	err := db.RetryWithBackoff(ctx, r.log, r.retry, "find user by id", func() error {
		return r.pool.QueryRow(
			ctx,
			`SELECT id, username, created_at FROM users WHERE id = $1`,
			string(id),
		).Scan(&user.ID, &user.Username, &user.CreatedAt)
	})
	if err := db.HandleQueryError(db.DriverPostgres, err, ErrUserNotFound, "find user by id", start); err != nil {
		return domain.User{}, err
	}
	return user, nil
}

func (r *PgRepository) List(ctx context.Context) ([]domain.User, error) {
	start := time.Now()
	var users []domain.User
	err := db.RetryWithBackoff(ctx, r.log, r.retry, "list users", func() error {
		users = users[:0]
		rows, err := r.pool.Query(ctx, `SELECT id, username, created_at FROM users ORDER BY seq ASC`)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var u domain.User
			if err := rows.Scan(&u.ID, &u.Username, &u.CreatedAt); err != nil {
				return fmt.Errorf("scan user: %w", err)
			}
			users = append(users, u)
		}
		return rows.Err()
	})
	if err := db.HandleQueryError(db.DriverPostgres, err, ErrUserNotFound, "list users", start); err != nil {
		return nil, err
	}
	return users, nil
}
