package config

import (
	"errors"
	"os"
	"testing"
	"time"

	commonerrors "github.com/AlibekovAA/exercise-tracker/backend/internal/common/errors"
)

func clearTrackerEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"TRACKER_HTTP_PORT", "PORT", "STORAGE_DRIVER", "DATABASE_URL", "SQLITE_PATH",
		"TRACKER_REQUEST_TIMEOUT", "TRACKER_RATE_LIMIT_RPS", "TRACKER_RATE_LIMIT_BURST",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoadTrackerConfig_Defaults(t *testing.T) {
	clearTrackerEnv(t)

	cfg, err := LoadTrackerConfig()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.HTTPPort != "3000" {
		t.Errorf("expected port 3000, got %s", cfg.HTTPPort)
	}
	if cfg.StorageDriver != StorageMemory {
		t.Errorf("expected memory driver, got %s", cfg.StorageDriver)
	}
	if cfg.RequestTimeout != 5*time.Second {
		t.Errorf("expected 5s timeout, got %v", cfg.RequestTimeout)
	}
	if cfg.CORSAllowedOrigin != "*" {
		t.Errorf("expected wildcard origin, got %s", cfg.CORSAllowedOrigin)
	}
}

func TestLoadTrackerConfig_PortFallback(t *testing.T) {
	clearTrackerEnv(t)
	t.Setenv("PORT", "8080")

	cfg, err := LoadTrackerConfig()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.HTTPPort != "8080" {
		t.Errorf("expected port 8080, got %s", cfg.HTTPPort)
	}

	t.Setenv("TRACKER_HTTP_PORT", "9090")
	cfg, err = LoadTrackerConfig()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.HTTPPort != "9090" {
		t.Errorf("expected TRACKER_HTTP_PORT to win, got %s", cfg.HTTPPort)
	}
}

func TestLoadTrackerConfig_PostgresRequiresURL(t *testing.T) {
	clearTrackerEnv(t)
	t.Setenv("STORAGE_DRIVER", "Postgres")

	_, err := LoadTrackerConfig()
	if !errors.Is(err, commonerrors.ErrMissingRequiredEnv) {
		t.Fatalf("expected ErrMissingRequiredEnv, got %v", err)
	}

	t.Setenv("DATABASE_URL", "postgres://localhost/tracker")
	cfg, err := LoadTrackerConfig()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.StorageDriver != StoragePostgres {
		t.Errorf("expected postgres driver, got %s", cfg.StorageDriver)
	}
}

func TestLoadTrackerConfig_InvalidDriver(t *testing.T) {
	clearTrackerEnv(t)
	t.Setenv("STORAGE_DRIVER", "mongo")

	_, err := LoadTrackerConfig()
	if !errors.Is(err, commonerrors.ErrInvalidStorageDriver) {
		t.Fatalf("expected ErrInvalidStorageDriver, got %v", err)
	}
}

func TestLoadTrackerConfig_InvalidDuration(t *testing.T) {
	clearTrackerEnv(t)
	t.Setenv("TRACKER_REQUEST_TIMEOUT", "soon")

	if _, err := LoadTrackerConfig(); err == nil {
		t.Fatal("expected parse error")
	}
}
