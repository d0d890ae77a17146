package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgconn"

	"github.com/AlibekovAA/exercise-tracker/backend/internal/common/logger"
	"github.com/AlibekovAA/exercise-tracker/backend/internal/observability/metrics"
)

type RetryConfig struct {
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64
}

var DefaultRetryConfig = RetryConfig{
	MaxAttempts:  3,
	InitialDelay: 100 * time.Millisecond,
	MaxDelay:     2 * time.Second,
	Multiplier:   2.0,
}

// IsRetryableError reports connection failures, serialization failures and
// lock timeouts from Postgres.
func IsRetryableError(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return false
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "08000", "08003", "08006", "08001", "08004", "08007", "08P01":
			return true
		case "40001", "40P01":
			return true
		case "55P03":
			return true
		}
		return false
	}

	return pgconn.Timeout(err)
}

func RetryWithBackoff(ctx context.Context, log *logger.Logger, config RetryConfig, operationName string, operation func() error) error {
	if config.MaxAttempts <= 0 {
		config = DefaultRetryConfig
	}

	var lastErr error
	delay := config.InitialDelay

	for attempt := 1; attempt <= config.MaxAttempts; attempt++ {
		err := operation()
		if err == nil {
			if attempt > 1 && log != nil {
				log.Infof("%s succeeded after %d attempts", operationName, attempt)
			}
			return nil
		}

		lastErr = err

		if !IsRetryableError(err) {
			return err
		}

		if attempt == config.MaxAttempts {
			break
		}

		metrics.DBRetriesTotal.WithLabelValues(operationName).Inc()
		if log != nil {
			log.Warnf("%s failed (attempt %d/%d): %v, retrying in %v", operationName, attempt, config.MaxAttempts, err, delay)
		}

		select {
		case <-ctx.Done():
			return fmt.Errorf("context cancelled during retry: %w", ctx.Err())
		case <-time.After(delay):
		}

		delay = time.Duration(float64(delay) * config.Multiplier)
		if delay > config.MaxDelay {
			delay = config.MaxDelay
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, config.MaxAttempts, lastErr)
}

// RetryInsertWithBackoff retries an insert keyed by a unique id. A connection
// error can arrive after the server has committed, so a unique violation on a
// later attempt means the row is already there.
func RetryInsertWithBackoff(ctx context.Context, log *logger.Logger, config RetryConfig, operationName string, insert func() error) error {
	attempted := false
	return RetryWithBackoff(ctx, log, config, operationName, func() error {
		err := insert()
		if attempted && IsUniqueViolation(err) {
			if log != nil {
				log.Infof("%s: row already committed by an earlier attempt", operationName)
			}
			return nil
		}
		attempted = true
		return err
	})
}
