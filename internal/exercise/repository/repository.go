package repository

import (
	"context"
	"errors"

	"github.com/AlibekovAA/exercise-tracker/backend/internal/exercise/domain"
)

// Repository stores exercises. FindByUser applies the filter over the user's
// exercises in insertion order.
type Repository interface {
	Create(ctx context.Context, exercise domain.Exercise) error
	FindByUser(ctx context.Context, filter domain.Filter) ([]domain.Exercise, error)
}

// ErrOwnerNotFound is returned by Create when the referenced user does not exist
// in a store that enforces the reference.
var ErrOwnerNotFound = errors.New("exercise owner not found")
