package services

import "errors"

// Error taxonomy shared by all services. Controllers map these to HTTP
// statuses at the boundary; nothing is retried internally.
var (
	ErrValidation     = errors.New("validation failed")
	ErrNotFound       = errors.New("not found")
	ErrPermission     = errors.New("permission denied")
	ErrAuthentication = errors.New("authentication failed")
	ErrAlreadyExists  = errors.New("already exists")
)
