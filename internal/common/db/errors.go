package db

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgconn"
	pgx "github.com/jackc/pgx/v4"

	"github.com/AlibekovAA/exercise-tracker/backend/internal/observability/metrics"
)

const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

func tableFromOperation(operation string) string {
	operation = strings.ToLower(operation)
	if strings.Contains(operation, "exercise") {
		return "exercises"
	}
	if strings.Contains(operation, "user") {
		return "users"
	}
	return "unknown"
}

// IsNoRows reports whether err is the "no rows" error of either SQL driver.
func IsNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows) || errors.Is(err, sql.ErrNoRows)
}

// IsForeignKeyViolation reports a Postgres foreign_key_violation (23503).
func IsForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23503"
}

// IsUniqueViolation reports a Postgres unique_violation (23505).
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func HandleQueryError(driver string, err error, notFoundErr error, operation string, startTime time.Time) error {
	table := tableFromOperation(operation)
	metrics.DBQueryDurationSeconds.WithLabelValues(driver, operation, table).Observe(time.Since(startTime).Seconds())

	if err == nil {
		return nil
	}
	if IsNoRows(err) {
		return notFoundErr
	}
	metrics.DBQueryErrors.WithLabelValues(driver, operation, table, fmt.Sprintf("%T", err)).Inc()
	return fmt.Errorf("failed to %s: %w", operation, err)
}

func HandleExecError(driver string, err error, operation string, startTime time.Time) error {
	table := tableFromOperation(operation)
	metrics.DBQueryDurationSeconds.WithLabelValues(driver, operation, table).Observe(time.Since(startTime).Seconds())

	if err == nil {
		return nil
	}
	metrics.DBQueryErrors.WithLabelValues(driver, operation, table, fmt.Sprintf("%T", err)).Inc()
	return fmt.Errorf("failed to %s: %w", operation, err)
}

func MeasureQueryDuration(driver, operation string, startTime time.Time) {
	table := tableFromOperation(operation)
	metrics.DBQueryDurationSeconds.WithLabelValues(driver, operation, table).Observe(time.Since(startTime).Seconds())
}
