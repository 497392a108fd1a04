package services

import "errors"

// ErrNotFound covers both "does not exist" and "not owned by the caller";
// handlers must not let the two be told apart.
var (
	ErrNotFound          = errors.New("record not found")
	ErrEmailTaken        = errors.New("email already in use")
	ErrInvalidCredential = errors.New("invalid email or password")
	ErrBadTransition     = errors.New("invalid status transition")
)
