package commonerrors

import "errors"

var (
	ErrMissingRequiredEnv   = errors.New("missing required environment variable")
	ErrInvalidStorageDriver = errors.New("invalid storage driver")
)
