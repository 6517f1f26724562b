package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Not found errors
	ErrNotFound          = errors.New("resource not found")
	ErrCaseNotFound      = fmt.Errorf("%w: case", ErrNotFound)
	ErrRequestNotFound   = fmt.Errorf("%w: document request", ErrNotFound)
	ErrEventNotFound     = fmt.Errorf("%w: timetable event", ErrNotFound)
	ErrExtensionNotFound = fmt.Errorf("%w: extension request", ErrNotFound)

	// Validation errors
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrAlreadyResolved   = errors.New("already resolved")
	ErrNegativeAmount    = errors.New("amount must be non-negative")

	// Data malformation errors - recovered locally by skipping the record
	ErrMalformedDate   = errors.New("malformed date")
	ErrMalformedAmount = errors.New("malformed amount")
)

// Error constructors with context
func NewNotFoundError(resource string, id string) error {
	return fmt.Errorf("%w: %s with id %s", ErrNotFound, resource, id)
}

func NewTransitionError(from, to string) error {
	return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
}

// Error checking helpers
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsMalformedError(err error) bool {
	return errors.Is(err, ErrMalformedDate) || errors.Is(err, ErrMalformedAmount)
}
