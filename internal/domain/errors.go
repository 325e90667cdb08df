package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound              = errors.New("record not found")
	ErrInsufficientInventory = errors.New("no available units left for this vehicle")
)

// InvalidTransitionError rejects a lifecycle operation whose guard did
// not match. State is left unchanged; the reason is safe to show to the
// caller.
type InvalidTransitionError struct {
	From   RentalStatus
	Op     string
	Reason string
}

func (e *InvalidTransitionError) Error() string {
	return e.Reason
}

func NewInvalidTransition(from RentalStatus, op, reason string) error {
	return &InvalidTransitionError{From: from, Op: op, Reason: reason}
}

// InvalidExtensionError rejects an extend request whose new end date is
// not strictly later than the current one, or is malformed.
type InvalidExtensionError struct {
	Reason string
}

func (e *InvalidExtensionError) Error() string {
	return e.Reason
}

// ValidationError carries field-level detail for a rejected payload.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func NewValidationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}
