package service_test

import (
	"context"
	"fmt"
	"sync"

	exercisedomain "github.com/AlibekovAA/exercise-tracker/backend/internal/exercise/domain"
	userdomain "github.com/AlibekovAA/exercise-tracker/backend/internal/user/domain"
	userrepo "github.com/AlibekovAA/exercise-tracker/backend/internal/user/repository"
)

type mockUserRepo struct {
	createFunc   func(ctx context.Context, user userdomain.User) error
	findByIDFunc func(ctx context.Context, id userdomain.ID) (userdomain.User, error)
	listFunc     func(ctx context.Context) ([]userdomain.User, error)
}

func (m *mockUserRepo) Create(ctx context.Context, user userdomain.User) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, user)
	}
	return nil
}

func (m *mockUserRepo) FindByID(ctx context.Context, id userdomain.ID) (userdomain.User, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return userdomain.User{}, userrepo.ErrUserNotFound
}

func (m *mockUserRepo) List(ctx context.Context) ([]userdomain.User, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, nil
}

type mockExerciseRepo struct {
	createFunc     func(ctx context.Context, exercise exercisedomain.Exercise) error
	findByUserFunc func(ctx context.Context, filter exercisedomain.Filter) ([]exercisedomain.Exercise, error)
}

func (m *mockExerciseRepo) Create(ctx context.Context, exercise exercisedomain.Exercise) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, exercise)
	}
	return nil
}

func (m *mockExerciseRepo) FindByUser(ctx context.Context, filter exercisedomain.Filter) ([]exercisedomain.Exercise, error) {
	if m.findByUserFunc != nil {
		return m.findByUserFunc(ctx, filter)
	}
	return nil, nil
}

type sequenceIDGenerator struct {
	mu   sync.Mutex
	next int
}

func (g *sequenceIDGenerator) NewID() (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.next++
	return fmt.Sprintf("id-%d", g.next), nil
}

type mockIDGenerator struct {
	newIDFunc func() (string, error)
}

func (m *mockIDGenerator) NewID() (string, error) {
	if m.newIDFunc != nil {
		return m.newIDFunc()
	}
	return "generated-id", nil
}
