package service

import (
	"context"
	"errors"

	commonerrors "github.com/AlibekovAA/exercise-tracker/backend/internal/common/errors"
	exerciserepo "github.com/AlibekovAA/exercise-tracker/backend/internal/exercise/repository"
	userrepo "github.com/AlibekovAA/exercise-tracker/backend/internal/user/repository"
)

var (
	ErrUsernameRequired = commonerrors.NewValidationError(
		"USERNAME_REQUIRED",
		"username is required",
	)

	ErrDescriptionRequired = commonerrors.NewValidationError(
		"DESCRIPTION_REQUIRED",
		"description is required",
	)

	ErrDurationRequired = commonerrors.NewValidationError(
		"DURATION_REQUIRED",
		"duration is required",
	)

	ErrInvalidDuration = commonerrors.NewValidationError(
		"INVALID_DURATION",
		"duration must be an integer number of minutes",
	)

	ErrInvalidDate = commonerrors.NewValidationError(
		"INVALID_DATE",
		"date is not a valid calendar date",
	)

	ErrInvalidFrom = commonerrors.NewValidationError(
		"INVALID_FROM",
		"from is not a valid calendar date",
	)

	ErrInvalidTo = commonerrors.NewValidationError(
		"INVALID_TO",
		"to is not a valid calendar date",
	)

	ErrInvalidLimit = commonerrors.NewValidationError(
		"INVALID_LIMIT",
		"limit must be a non-negative integer",
	)
)

// isExpectedStoreError reports errors that describe the request rather than
// the health of the store, so they do not trip the circuit breaker.
func isExpectedStoreError(err error) bool {
	return errors.Is(err, userrepo.ErrUserNotFound) ||
		errors.Is(err, exerciserepo.ErrOwnerNotFound) ||
		errors.Is(err, context.Canceled)
}

func handleStoreError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, commonerrors.ErrCircuitOpen):
		return commonerrors.ErrServiceUnavailable.WithCause(err)
	case errors.Is(err, userrepo.ErrUserNotFound), errors.Is(err, exerciserepo.ErrOwnerNotFound):
		return commonerrors.ErrUserNotFound
	case commonerrors.IsDomainError(err):
		return err
	default:
		return commonerrors.ErrStoreError.WithCause(err)
	}
}
