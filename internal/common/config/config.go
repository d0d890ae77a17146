package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/AlibekovAA/exercise-tracker/backend/internal/common/constants"
	commonerrors "github.com/AlibekovAA/exercise-tracker/backend/internal/common/errors"
)

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
	StorageSQLite   = "sqlite"
)

type TrackerConfig struct {
	HTTPPort       string        `env:"TRACKER_HTTP_PORT"`
	StorageDriver  string        `env:"STORAGE_DRIVER" envDefault:"memory"`
	DatabaseURL    string        `env:"DATABASE_URL"`
	SQLitePath     string        `env:"SQLITE_PATH" envDefault:"tracker.db"`
	RequestTimeout time.Duration `env:"TRACKER_REQUEST_TIMEOUT" envDefault:"5s"`

	RateLimitRequestsPerSecond float64 `env:"TRACKER_RATE_LIMIT_RPS" envDefault:"20"`
	RateLimitBurst             int     `env:"TRACKER_RATE_LIMIT_BURST" envDefault:"40"`

	CircuitBreakerThreshold int32         `env:"TRACKER_CB_THRESHOLD" envDefault:"50"`
	CircuitBreakerTimeout   time.Duration `env:"TRACKER_CB_TIMEOUT" envDefault:"10s"`
	CircuitBreakerReset     time.Duration `env:"TRACKER_CB_RESET" envDefault:"10s"`

	CORSAllowedOrigin string `env:"CORS_ALLOWED_ORIGIN" envDefault:"*"`

	LogDir   string `env:"LOG_DIR"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

func LoadTrackerConfig() (TrackerConfig, error) {
	var cfg TrackerConfig
	if err := env.Parse(&cfg); err != nil {
		return TrackerConfig{}, fmt.Errorf("parse env: %w", err)
	}

	if cfg.HTTPPort == "" {
		cfg.HTTPPort = getEnv("PORT", constants.DefaultTrackerHTTPPort)
	}

	cfg.StorageDriver = strings.ToLower(strings.TrimSpace(cfg.StorageDriver))
	if err := cfg.Validate(); err != nil {
		return TrackerConfig{}, err
	}

	return cfg, nil
}

func (c TrackerConfig) Validate() error {
	switch c.StorageDriver {
	case StorageMemory:
	case StoragePostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("%w: DATABASE_URL", commonerrors.ErrMissingRequiredEnv)
		}
	case StorageSQLite:
		if strings.TrimSpace(c.SQLitePath) == "" {
			return fmt.Errorf("%w: SQLITE_PATH", commonerrors.ErrMissingRequiredEnv)
		}
	default:
		return fmt.Errorf("%w: %q", commonerrors.ErrInvalidStorageDriver, c.StorageDriver)
	}

	if c.RequestTimeout <= 0 {
		return fmt.Errorf("TRACKER_REQUEST_TIMEOUT must be positive, got %v", c.RequestTimeout)
	}

	return nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
