package bootstrap

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/AlibekovAA/exercise-tracker/backend/internal/common/config"
	"github.com/AlibekovAA/exercise-tracker/backend/internal/common/logger"
	userdomain "github.com/AlibekovAA/exercise-tracker/backend/internal/user/domain"
	userrepo "github.com/AlibekovAA/exercise-tracker/backend/internal/user/repository"
)

func TestOpenStores_Memory(t *testing.T) {
	log := logger.NewWithWriter(io.Discard, "test", "error")

	stores, err := OpenStores(context.Background(), config.TrackerConfig{StorageDriver: config.StorageMemory}, log)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	defer stores.Close()

	if _, ok := stores.Users.(*userrepo.MemoryRepository); !ok {
		t.Errorf("expected memory user repository, got %T", stores.Users)
	}
}

func TestOpenStores_SQLite(t *testing.T) {
	log := logger.NewWithWriter(io.Discard, "test", "error")
	cfg := config.TrackerConfig{
		StorageDriver: config.StorageSQLite,
		SQLitePath:    filepath.Join(t.TempDir(), "tracker.db"),
	}

	stores, err := OpenStores(context.Background(), cfg, log)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	defer stores.Close()

	ctx := context.Background()
	if err := stores.Users.Create(ctx, userdomain.User{ID: "u1", Username: "sqlite"}); err != nil {
		t.Fatalf("create user: %v", err)
	}
	users, err := stores.Users.List(ctx)
	if err != nil || len(users) != 1 {
		t.Fatalf("expected one user, got %v (err %v)", users, err)
	}
}

func TestOpenStores_UnknownDriver(t *testing.T) {
	log := logger.NewWithWriter(io.Discard, "test", "error")

	if _, err := OpenStores(context.Background(), config.TrackerConfig{StorageDriver: "mongo"}, log); err == nil {
		t.Fatal("expected error for unknown driver")
	}
}

func TestNewTrackerApp_LogDirFromConfig(t *testing.T) {
	logDir := filepath.Join(t.TempDir(), "logs")
	t.Setenv("STORAGE_DRIVER", "memory")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("LOG_DIR", logDir)
	t.Setenv("LOG_LEVEL", "info")

	app, err := NewTrackerApp(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if app.Config.LogDir != logDir {
		t.Errorf("expected log dir %s, got %s", logDir, app.Config.LogDir)
	}

	app.Log.Infof("tracker app started")
	_ = app.Stores.Close()
	if err := app.Log.Close(); err != nil {
		t.Fatalf("close logger: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(logDir, "app.log"))
	if err != nil {
		t.Fatalf("expected log file in configured dir: %v", err)
	}
	if len(data) == 0 {
		t.Error("expected log file to contain the startup entry")
	}
}

func TestNewTrackerApp_InvalidConfig(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "mongo")

	if _, err := NewTrackerApp(context.Background()); err == nil {
		t.Fatal("expected config error")
	}
}
