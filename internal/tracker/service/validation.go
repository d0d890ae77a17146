package service

import (
	"errors"

	"github.com/go-playground/validator/v10"

	commonerrors "github.com/AlibekovAA/exercise-tracker/backend/internal/common/errors"
)

// requiredFieldErrors maps struct fields tagged `validate:"required"` to the
// error returned when they are empty.
var requiredFieldErrors = map[string]commonerrors.DomainError{
	"Username":    ErrUsernameRequired,
	"Description": ErrDescriptionRequired,
	"Duration":    ErrDurationRequired,
}

// validateInput runs struct validation and returns the domain error of the
// first failing field in declaration order.
func (s *TrackerService) validateInput(input any) error {
	err := s.validate.Struct(input)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return commonerrors.ErrInvalidPayload.WithCause(err)
	}
	for _, fieldErr := range validationErrs {
		if domainErr, ok := requiredFieldErrors[fieldErr.StructField()]; ok {
			return domainErr
		}
	}
	return commonerrors.ErrInvalidPayload.WithCause(err)
}
