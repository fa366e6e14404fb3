// Package common defines shared constants and sentinel errors used across
// client and server layers of the registry. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound       = errors.New("user not found")
	ErrDuplicateEmail = errors.New("email already registered")

	// Service-level errors.
	ErrValidation  = errors.New("all fields are required")
	ErrUnavailable = errors.New("server unavailable")
)
