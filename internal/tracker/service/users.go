package service

import (
	"context"

	"github.com/AlibekovAA/exercise-tracker/backend/internal/common/logger"
	userdomain "github.com/AlibekovAA/exercise-tracker/backend/internal/user/domain"
)

type CreateUserInput struct {
	Username string `validate:"required"`
}

func (s *TrackerService) CreateUser(ctx context.Context, input CreateUserInput) (userdomain.User, error) {
	if err := s.validateInput(input); err != nil {
		s.log.WithFields(ctx, logger.Fields{
			"action": "create_user_validation_failed",
		}).Debugf("create user rejected: %v", err)
		return userdomain.User{}, err
	}

	id, err := s.idGenerator.NewID()
	if err != nil {
		s.log.WithFields(ctx, logger.Fields{
			"username": input.Username,
			"action":   "create_user_id_generation_failed",
		}).Errorf("create user failed: id generation error: %v", err)
		return userdomain.User{}, err
	}

	user := userdomain.User{
		ID:        userdomain.ID(id),
		Username:  input.Username,
		CreatedAt: s.clock.Now(),
	}

	err = s.breaker.Call(ctx, func(ctx context.Context) error {
		return s.users.Create(ctx, user)
	})
	if err != nil {
		s.log.WithFields(ctx, logger.Fields{
			"username": input.Username,
			"action":   "create_user_store_failed",
		}).Errorf("create user failed: %v", err)
		return userdomain.User{}, handleStoreError(err)
	}

	incrementUsersCreated()
	s.log.WithFields(ctx, logger.Fields{
		"user_id":  string(user.ID),
		"username": user.Username,
		"action":   "create_user_success",
	}).Info("user created")

	return user, nil
}

func (s *TrackerService) ListUsers(ctx context.Context) ([]userdomain.User, error) {
	var users []userdomain.User
	err := s.breaker.Call(ctx, func(ctx context.Context) error {
		var err error
		users, err = s.users.List(ctx)
		return err
	})
	if err != nil {
		s.log.WithFields(ctx, logger.Fields{
			"action": "list_users_store_failed",
		}).Errorf("list users failed: %v", err)
		return nil, handleStoreError(err)
	}

	if users == nil {
		users = []userdomain.User{}
	}
	return users, nil
}

func (s *TrackerService) findUser(ctx context.Context, id userdomain.ID) (userdomain.User, error) {
	var user userdomain.User
	err := s.breaker.Call(ctx, func(ctx context.Context) error {
		var err error
		user, err = s.users.FindByID(ctx, id)
		return err
	})
	if err != nil {
		return userdomain.User{}, handleStoreError(err)
	}
	return user, nil
}
