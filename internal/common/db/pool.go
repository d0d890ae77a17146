package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"

	"github.com/AlibekovAA/exercise-tracker/backend/internal/common/constants"
	"github.com/AlibekovAA/exercise-tracker/backend/internal/common/logger"
)

// NewPool connects to Postgres, retrying until the database accepts
// connections or DBPoolMaxAttempts is reached.
func NewPool(ctx context.Context, log *logger.Logger, databaseURL string) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database url: %w", err)
	}

	cfg.MaxConns = constants.DBPoolMaxOpenConns
	cfg.MinConns = constants.DBPoolMinOpenConns
	cfg.MaxConnLifetime = constants.DBPoolConnMaxLifetime
	cfg.MaxConnIdleTime = constants.DBPoolConnMaxIdleTime
	cfg.HealthCheckPeriod = constants.DBPoolHealthCheck
	cfg.ConnConfig.ConnectTimeout = constants.DBPoolConnectTimeout
	cfg.ConnConfig.RuntimeParams = map[string]string{
		"application_name": "exercise-tracker",
	}

	var lastErr error
	for attempt := 1; attempt <= constants.DBPoolMaxAttempts; attempt++ {
		pool, err := pgxpool.ConnectConfig(ctx, cfg)
		if err == nil {
			log.Infof("database connection pool initialized: max=%d, min=%d", cfg.MaxConns, cfg.MinConns)
			return pool, nil
		}
		lastErr = err

		log.Warnf("failed to connect to database (attempt %d/%d): %v", attempt, constants.DBPoolMaxAttempts, err)

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("connect to database: %w", ctx.Err())
		case <-time.After(constants.DBPoolRetryDelay):
		}
	}

	return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", constants.DBPoolMaxAttempts, lastErr)
}
