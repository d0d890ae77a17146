package service

import (
	"context"
	"errors"
	"strconv"
	"strings"

	commonerrors "github.com/AlibekovAA/exercise-tracker/backend/internal/common/errors"
	"github.com/AlibekovAA/exercise-tracker/backend/internal/common/logger"
	exercisedomain "github.com/AlibekovAA/exercise-tracker/backend/internal/exercise/domain"
	userdomain "github.com/AlibekovAA/exercise-tracker/backend/internal/user/domain"
)

// AddExerciseInput carries raw request values. Duration and Date stay text so
// that coercion rules live in one place.
type AddExerciseInput struct {
	UserID      string
	Description string `validate:"required"`
	Duration    string `validate:"required"`
	Date        string
}

type ExerciseResult struct {
	User     userdomain.User
	Exercise exercisedomain.Exercise
}

// LogQuery holds the optional from, to and limit query values as received.
type LogQuery struct {
	UserID string
	From   string
	To     string
	Limit  string
}

type LogResult struct {
	User      userdomain.User
	Exercises []exercisedomain.Exercise
}

func (r LogResult) Count() int {
	return len(r.Exercises)
}

func (s *TrackerService) AddExercise(ctx context.Context, input AddExerciseInput) (ExerciseResult, error) {
	if err := s.validateInput(input); err != nil {
		s.log.WithFields(ctx, logger.Fields{
			"user_id": input.UserID,
			"action":  "add_exercise_validation_failed",
		}).Debugf("add exercise rejected: %v", err)
		return ExerciseResult{}, err
	}

	user, err := s.findUser(ctx, userdomain.ID(input.UserID))
	if err != nil {
		s.logLookupFailure(ctx, input.UserID, "add_exercise", err)
		return ExerciseResult{}, err
	}

	date := s.clock.Now()
	if strings.TrimSpace(input.Date) != "" {
		parsed, ok := exercisedomain.ParseDate(input.Date)
		if !ok {
			return ExerciseResult{}, ErrInvalidDate
		}
		date = parsed
	}

	duration, ok := exercisedomain.ParseDuration(input.Duration)
	if !ok {
		return ExerciseResult{}, ErrInvalidDuration
	}

	id, err := s.idGenerator.NewID()
	if err != nil {
		s.log.WithFields(ctx, logger.Fields{
			"user_id": input.UserID,
			"action":  "add_exercise_id_generation_failed",
		}).Errorf("add exercise failed: id generation error: %v", err)
		return ExerciseResult{}, err
	}

	exercise := exercisedomain.Exercise{
		ID:          exercisedomain.ID(id),
		UserID:      user.ID,
		Description: input.Description,
		Duration:    duration,
		Date:        date,
	}

	err = s.breaker.Call(ctx, func(ctx context.Context) error {
		return s.exercises.Create(ctx, exercise)
	})
	if err != nil {
		s.log.WithFields(ctx, logger.Fields{
			"user_id": input.UserID,
			"action":  "add_exercise_store_failed",
		}).Errorf("add exercise failed: %v", err)
		return ExerciseResult{}, handleStoreError(err)
	}

	incrementExercisesAdded()
	s.log.WithFields(ctx, logger.Fields{
		"user_id":     string(user.ID),
		"exercise_id": string(exercise.ID),
		"action":      "add_exercise_success",
	}).Info("exercise added")

	return ExerciseResult{User: user, Exercise: exercise}, nil
}

func (s *TrackerService) GetLog(ctx context.Context, query LogQuery) (LogResult, error) {
	user, err := s.findUser(ctx, userdomain.ID(query.UserID))
	if err != nil {
		s.logLookupFailure(ctx, query.UserID, "get_log", err)
		return LogResult{}, err
	}

	filter, err := buildFilter(user.ID, query)
	if err != nil {
		s.log.WithFields(ctx, logger.Fields{
			"user_id": query.UserID,
			"action":  "get_log_validation_failed",
		}).Debugf("log query rejected: %v", err)
		return LogResult{}, err
	}

	var exercises []exercisedomain.Exercise
	err = s.breaker.Call(ctx, func(ctx context.Context) error {
		var err error
		exercises, err = s.exercises.FindByUser(ctx, filter)
		return err
	})
	if err != nil {
		s.log.WithFields(ctx, logger.Fields{
			"user_id": query.UserID,
			"action":  "get_log_store_failed",
		}).Errorf("get log failed: %v", err)
		return LogResult{}, handleStoreError(err)
	}
	if exercises == nil {
		exercises = []exercisedomain.Exercise{}
	}

	observeLogQuery(filter.HasDateRange() || filter.Limit > 0, len(exercises))
	return LogResult{User: user, Exercises: exercises}, nil
}

// buildFilter parses the optional query values. Blank values are treated as
// absent and limit 0 means no limit.
func buildFilter(userID userdomain.ID, query LogQuery) (exercisedomain.Filter, error) {
	filter := exercisedomain.Filter{UserID: userID}

	if from := strings.TrimSpace(query.From); from != "" {
		parsed, ok := exercisedomain.ParseDate(from)
		if !ok {
			return exercisedomain.Filter{}, ErrInvalidFrom
		}
		filter.From = &parsed
	}

	if to := strings.TrimSpace(query.To); to != "" {
		parsed, ok := exercisedomain.ParseDate(to)
		if !ok {
			return exercisedomain.Filter{}, ErrInvalidTo
		}
		filter.To = &parsed
	}

	if limit := strings.TrimSpace(query.Limit); limit != "" {
		n, err := strconv.Atoi(limit)
		if err != nil || n < 0 {
			return exercisedomain.Filter{}, ErrInvalidLimit
		}
		filter.Limit = n
	}

	return filter, nil
}

func (s *TrackerService) logLookupFailure(ctx context.Context, userID, action string, err error) {
	entry := s.log.WithFields(ctx, logger.Fields{
		"user_id": userID,
		"action":  action + "_user_lookup_failed",
	})
	if errors.Is(err, commonerrors.ErrUserNotFound) {
		entry.Debug("user not found")
		return
	}
	entry.Errorf("user lookup failed: %v", err)
}
