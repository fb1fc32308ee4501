package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownSpecies indicates a species with no gestation entry. Callers
	// must abort the calculation rather than fall back to a default length.
	ErrUnknownSpecies = errors.New("unknown species")

	// ErrAlreadyBorn indicates a birth was already recorded on the pregnancy.
	ErrAlreadyBorn = errors.New("birth already recorded")

	// ErrInvalidDateOrder indicates a supplied date falls on the wrong side of
	// its reference date (for example a conception date after today).
	ErrInvalidDateOrder = errors.New("invalid date order")

	// ErrMissingRequiredField indicates a form payload lacks a value or holds
	// one outside its accepted range.
	ErrMissingRequiredField = errors.New("missing required field")

	// ErrInvalidTransition indicates a status change the lifecycle does not allow.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrOpenPregnancyExists indicates the dam already carries an open pregnancy.
	ErrOpenPregnancyExists = errors.New("dam already has an open pregnancy")
)

// FieldError ties a validation failure to the form field that caused it.
type FieldError struct {
	Field  string
	Reason string
	Err    error
}

func (e *FieldError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("%s: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *FieldError) Unwrap() error { return e.Err }

func missingField(field, reason string) error {
	return &FieldError{Field: field, Reason: reason, Err: ErrMissingRequiredField}
}

func dateOrder(field, reason string) error {
	return &FieldError{Field: field, Reason: reason, Err: ErrInvalidDateOrder}
}
