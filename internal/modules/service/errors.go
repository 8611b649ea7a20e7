package service

import "errors"

// Service layer errors for better error handling
var (
	// ErrNotFound covers both missing and soft-deleted rows.
	ErrNotFound = errors.New("not found")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInactiveUser       = errors.New("user inactive or deleted")
)
