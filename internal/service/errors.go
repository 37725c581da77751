package service

import (
	"errors"

	"github.com/ZaidAmirMahdi10/goal-tracker/internal/validators"
)

// Validation failures. They are the validators' sentinels so callers only
// need to match service errors.
var (
	ErrValidation  = validators.ErrValidation
	ErrInvalidDate = validators.ErrInvalidDate
)

var (
	// ErrDuplicateCredential is returned by registration when the username
	// or the email is already taken. Which one collided is not disclosed.
	ErrDuplicateCredential = errors.New("email or username already taken")

	// ErrInvalidCredentials is returned by login both for an unknown email
	// and for a wrong password.
	ErrInvalidCredentials = errors.New("invalid email or password")

	ErrTokenCreationFailed = errors.New("token creation failed")
	ErrTokenIsInvalid      = errors.New("token is expired or invalid")

	// ErrMissingUserID is returned by listings called without an owner.
	ErrMissingUserID = errors.New("user ID is required")

	// ErrNotFound is returned when no goal has the requested id.
	ErrNotFound = errors.New("goal not found")

	// ErrForbidden is returned when the caller does not own the goal.
	ErrForbidden = errors.New("goal belongs to another user")

	// ErrInternal wraps store and other unexpected failures. Its details
	// are logged and never returned to clients.
	ErrInternal = errors.New("internal error")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
