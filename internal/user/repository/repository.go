package repository

import (
	"context"
	"errors"

	"github.com/AlibekovAA/exercise-tracker/backend/internal/user/domain"
)

// Repository stores users. List returns users in creation order.
type Repository interface {
	Create(ctx context.Context, user domain.User) error
	FindByID(ctx context.Context, id domain.ID) (domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
}

var ErrUserNotFound = errors.New("user not found")
