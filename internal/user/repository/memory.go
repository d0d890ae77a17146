package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/AlibekovAA/exercise-tracker/backend/internal/common/db"
	"github.com/AlibekovAA/exercise-tracker/backend/internal/user/domain"
)

type MemoryRepository struct {
	mu    sync.RWMutex
	users []domain.User
	byID  map[domain.ID]int
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{byID: make(map[domain.ID]int)}
}

func (r *MemoryRepository) Create(ctx context.Context, user domain.User) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	start := time.Now()

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[user.ID]; exists {
		return db.HandleExecError(db.DriverMemory, fmt.Errorf("duplicate user id %q", user.ID), "create user", start)
	}
	r.byID[user.ID] = len(r.users)
	r.users = append(r.users, user)

	db.MeasureQueryDuration(db.DriverMemory, "create user", start)
	return nil
}

func (r *MemoryRepository) FindByID(ctx context.Context, id domain.ID) (domain.User, error) {
	if err := ctx.Err(); err != nil {
		return domain.User{}, err
	}
	start := time.Now()

	r.mu.RLock()
	defer r.mu.RUnlock()

	idx, ok := r.byID[id]
	db.MeasureQueryDuration(db.DriverMemory, "find user by id", start)
	if !ok {
		return domain.User{}, ErrUserNotFound
	}
	return r.users[idx], nil
}

func (r *MemoryRepository) List(ctx context.Context) ([]domain.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	start := time.Now()

	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]domain.User, len(r.users))
	copy(users, r.users)

	db.MeasureQueryDuration(db.DriverMemory, "list users", start)
	return users, nil
}
