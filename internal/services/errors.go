package services

import "errors"

var (
	// ErrNotFound means the id did not resolve to a stored item. Reported
	// by the calling layer as 404; the engine itself never looks items up.
	ErrNotFound = errors.New("not found")

	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
