package bootstrap

import (
	"context"
	"fmt"

	"github.com/AlibekovAA/exercise-tracker/backend/internal/common/config"
	"github.com/AlibekovAA/exercise-tracker/backend/internal/common/constants"
	"github.com/AlibekovAA/exercise-tracker/backend/internal/common/db"
	"github.com/AlibekovAA/exercise-tracker/backend/internal/common/logger"
	"github.com/AlibekovAA/exercise-tracker/backend/internal/common/storage"
	exerciserepo "github.com/AlibekovAA/exercise-tracker/backend/internal/exercise/repository"
	userrepo "github.com/AlibekovAA/exercise-tracker/backend/internal/user/repository"
)

type Stores struct {
	Users     userrepo.Repository
	Exercises exerciserepo.Repository
	// Close releases the backing store. It is never nil.
	Close func() error
}

type TrackerApp struct {
	Log    *logger.Logger
	Config config.TrackerConfig
	Stores Stores
}

func NewTrackerApp(ctx context.Context) (*TrackerApp, error) {
	cfg, err := config.LoadTrackerConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	log, err := initializeLogger(cfg, "tracker")
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	stores, err := OpenStores(ctx, cfg, log)
	if err != nil {
		_ = log.Close()
		return nil, err
	}

	return &TrackerApp{
		Log:    log,
		Config: cfg,
		Stores: stores,
	}, nil
}

// OpenStores builds the user and exercise repositories for the configured
// storage driver.
func OpenStores(ctx context.Context, cfg config.TrackerConfig, log *logger.Logger) (Stores, error) {
	switch cfg.StorageDriver {
	case config.StoragePostgres:
		pool, err := db.NewPool(ctx, log, cfg.DatabaseURL)
		if err != nil {
			return Stores{}, err
		}
		if err := db.EnsureSchema(ctx, pool); err != nil {
			pool.Close()
			return Stores{}, err
		}
		db.StartPoolMetrics(ctx, pool, constants.DBPoolMetricsInterval)

		log.Infof("storage: postgres")
		return Stores{
			Users:     userrepo.NewPgRepository(pool, log),
			Exercises: exerciserepo.NewPgRepository(pool, log),
			Close: func() error {
				pool.Close()
				return nil
			},
		}, nil

	case config.StorageSQLite:
		sqlDB, err := storage.OpenSQLite(ctx, cfg.SQLitePath)
		if err != nil {
			return Stores{}, err
		}

		log.Infof("storage: sqlite at %s", cfg.SQLitePath)
		return Stores{
			Users:     userrepo.NewSQLiteRepository(sqlDB),
			Exercises: exerciserepo.NewSQLiteRepository(sqlDB),
			Close:     sqlDB.Close,
		}, nil

	case config.StorageMemory, "":
		log.Infof("storage: in-memory")
		return Stores{
			Users:     userrepo.NewMemoryRepository(),
			Exercises: exerciserepo.NewMemoryRepository(),
			Close:     func() error { return nil },
		}, nil

	default:
		return Stores{}, fmt.Errorf("unsupported storage driver %q", cfg.StorageDriver)
	}
}

func initializeLogger(cfg config.TrackerConfig, serviceName string) (*logger.Logger, error) {
	return logger.New(cfg.LogDir, serviceName, cfg.LogLevel)
}
