package service

import "errors"

var (
	// ErrInvalidInput indicates a rejected write (blank or oversized
	// field, duplicate username, unknown posted_by).
	ErrInvalidInput = errors.New("invalid input")
	// ErrNotFound indicates a lookup matched no row.
	ErrNotFound = errors.New("not found")
	// ErrInvalidCredentials indicates a failed login.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
