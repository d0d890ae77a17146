package repository

import (
	"context"
	"sync"
	"time"

	"github.com/AlibekovAA/exercise-tracker/backend/internal/common/db"
	"github.com/AlibekovAA/exercise-tracker/backend/internal/exercise/domain"
)

type MemoryRepository struct {
	mu        sync.RWMutex
	exercises []domain.Exercise
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

func (r *MemoryRepository) Create(ctx context.Context, exercise domain.Exercise) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	start := time.Now()

	r.mu.Lock()
	r.exercises = append(r.exercises, exercise)
	r.mu.Unlock()

	db.MeasureQueryDuration(db.DriverMemory, "create exercise", start)
	return nil
}

func (r *MemoryRepository) FindByUser(ctx context.Context, filter domain.Filter) ([]domain.Exercise, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	start := time.Now()

	r.mu.RLock()
	result := filter.Apply(r.exercises)
	r.mu.RUnlock()

	db.MeasureQueryDuration(db.DriverMemory, "find exercises by user", start)
	return result, nil
}
