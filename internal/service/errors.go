package service

import "errors"

var (
	ErrMissingAuthHeader    = errors.New("authorization header is missing")
	ErrInvalidAPIKey        = errors.New("invalid authorization key")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrNotOwner             = errors.New("resource belongs to another user")
	ErrForbidden            = errors.New("operation requires admin role")
	ErrRegistrationDisabled = errors.New("registration is disabled")

	ErrValidation = errors.New("validation failed")

	ErrUserExists      = errors.New("user already exists")
	ErrUserNotFound    = errors.New("user not found")
	ErrProjectNotFound = errors.New("project not found")
	ErrAppNotFound     = errors.New("app not found")

	ErrCannotCreateHttpLog = errors.New("cannot create http log")
	ErrCannotCreateLog     = errors.New("cannot create log")
	ErrCannotParseResponse = errors.New("cannot parse response")
)
