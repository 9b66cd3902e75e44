package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Not found errors
	ErrNotFound            = errors.New("resource not found")
	ErrParticipantNotFound = fmt.Errorf("%w: participant", ErrNotFound)
	ErrColumnNotFound      = fmt.Errorf("%w: column", ErrNotFound)

	// Validation errors
	ErrAmbiguousColumn  = errors.New("ambiguous column mapping")
	ErrMissingColumns   = errors.New("required columns missing")
	ErrInsufficientData = errors.New("insufficient data for analysis")
	ErrEmptyTable       = errors.New("table has no data rows")
)

// Error constructors with context
func NewNotFoundError(resource string, id string) error {
	return fmt.Errorf("%w: %s with id %s", ErrNotFound, resource, id)
}

func NewMissingColumnsError(dataName string, columns []string) error {
	return fmt.Errorf("%w in %s: %v", ErrMissingColumns, dataName, columns)
}

func NewAmbiguousColumnError(canonical string, sources []string) error {
	return fmt.Errorf("%w: columns %v all map to %q", ErrAmbiguousColumn, sources, canonical)
}

// Error checking helpers
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsValidationError(err error) bool {
	return errors.Is(err, ErrAmbiguousColumn) ||
		errors.Is(err, ErrMissingColumns) ||
		errors.Is(err, ErrEmptyTable)
}
