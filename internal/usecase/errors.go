package usecase

import (
	"errors"
	"strings"
)

// Closed error taxonomy for the service layer. Handlers map these to HTTP
// statuses with errors.Is/errors.As; anything else is an internal error.
var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidID          = errors.New("invalid id")
	ErrNoFields           = errors.New("no fields to update")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUsernameTaken      = errors.New("username already taken")
)

// ValidationError aggregates every field message for a rejected payload.
// Validation is all-or-nothing: when this error is returned, no store write
// has been attempted.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Messages, "; ")
}

func NewValidationError(messages ...string) *ValidationError {
	return &ValidationError{Messages: messages}
}
