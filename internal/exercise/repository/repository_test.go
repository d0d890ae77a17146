package repository

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/AlibekovAA/exercise-tracker/backend/internal/common/storage"
	"github.com/AlibekovAA/exercise-tracker/backend/internal/exercise/domain"
	userdomain "github.com/AlibekovAA/exercise-tracker/backend/internal/user/domain"
	userrepository "github.com/AlibekovAA/exercise-tracker/backend/internal/user/repository"
)

func day(d int) time.Time {
	return time.Date(2023, 1, d, 0, 0, 0, 0, time.UTC)
}

func seed() []domain.Exercise {
	return []domain.Exercise{
		{ID: "e1", UserID: "u1", Description: "run", Duration: 30, Date: day(3)},
		{ID: "e2", UserID: "u2", Description: "swim", Duration: 45, Date: day(4)},
		{ID: "e3", UserID: "u1", Description: "bike", Duration: 60, Date: day(1)},
		{ID: "e4", UserID: "u1", Description: "row", Duration: 20, Date: day(5)},
	}
}

func assertIDs(t *testing.T, got []domain.Exercise, want ...domain.ID) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("expected %d exercises, got %d: %+v", len(want), len(got), got)
	}
	for i := range want {
		if got[i].ID != want[i] {
			t.Fatalf("position %d: expected %s, got %s", i, want[i], got[i].ID)
		}
	}
}

// exerciseRepositoryContract runs the same behavioural checks against any store.
func exerciseRepositoryContract(t *testing.T, repo Repository) {
	t.Helper()
	ctx := context.Background()

	for _, e := range seed() {
		if err := repo.Create(ctx, e); err != nil {
			t.Fatalf("create %s: %v", e.ID, err)
		}
	}

	all, err := repo.FindByUser(ctx, domain.Filter{UserID: "u1"})
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	assertIDs(t, all, "e1", "e3", "e4")
	if all[0].Description != "run" || all[0].Duration != 30 || !all[0].Date.Equal(day(3)) {
		t.Errorf("unexpected first exercise: %+v", all[0])
	}

	from, to := day(2), day(4)
	ranged, err := repo.FindByUser(ctx, domain.Filter{UserID: "u1", From: &from, To: &to})
	if err != nil {
		t.Fatalf("find ranged: %v", err)
	}
	assertIDs(t, ranged, "e1")

	limited, err := repo.FindByUser(ctx, domain.Filter{UserID: "u1", Limit: 2})
	if err != nil {
		t.Fatalf("find limited: %v", err)
	}
	assertIDs(t, limited, "e1", "e3")

	none, err := repo.FindByUser(ctx, domain.Filter{UserID: "u3"})
	if err != nil {
		t.Fatalf("find unknown: %v", err)
	}
	if none == nil || len(none) != 0 {
		t.Errorf("expected empty non-nil slice, got %#v", none)
	}
}

func TestMemoryRepository(t *testing.T) {
	exerciseRepositoryContract(t, NewMemoryRepository())
}

func TestMemoryRepository_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	repo := NewMemoryRepository()
	if err := repo.Create(ctx, seed()[0]); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestSQLiteRepository(t *testing.T) {
	ctx := context.Background()
	sqlDB, err := storage.OpenSQLite(ctx, filepath.Join(t.TempDir(), "tracker.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = sqlDB.Close() })

	users := userrepository.NewSQLiteRepository(sqlDB)
	for _, id := range []userdomain.ID{"u1", "u2"} {
		if err := users.Create(ctx, userdomain.User{ID: id, Username: string(id), CreatedAt: day(1)}); err != nil {
			t.Fatalf("create user %s: %v", id, err)
		}
	}

	repo := NewSQLiteRepository(sqlDB)
	exerciseRepositoryContract(t, repo)

	err = repo.Create(ctx, domain.Exercise{ID: "e9", UserID: "ghost", Description: "x", Duration: 1, Date: day(1)})
	if !errors.Is(err, ErrOwnerNotFound) {
		t.Fatalf("expected ErrOwnerNotFound, got %v", err)
	}
}
