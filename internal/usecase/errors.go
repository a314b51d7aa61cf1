package usecase

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrValidation  = errors.New("validation failed")
	ErrNotFound    = errors.New("not found")
	ErrStore       = errors.New("store error")
	ErrEmptyResult = errors.New("store returned no row")
	ErrInvalidID   = errors.New("invalid id")
)

// ValidationError reports missing or malformed input. It is raised before
// any store call is made.
type ValidationError struct {
	Entity string
	Fields []string
	Reason string
}

func newValidationError(entity, reason string, fields ...string) *ValidationError {
	return &ValidationError{Entity: entity, Fields: fields, Reason: reason}
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return fmt.Sprintf("%s: %s", e.Entity, e.Reason)
	}
	return fmt.Sprintf("%s: %s (%s)", e.Entity, e.Reason, strings.Join(e.Fields, ", "))
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// NotFoundError reports a referenced id absent in the store.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with id %s not found", e.Entity, e.ID)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// StoreError wraps a failure reported by the store, keeping its message.
type StoreError struct {
	Op  string
	Err error
}

func wrapStore(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StoreError{Op: op, Err: err}
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

func (e *StoreError) Is(target error) bool { return target == ErrStore }

// EmptyResultError reports a store call that succeeded without returning
// the row it was expected to return.
type EmptyResultError struct {
	Op string
}

func (e *EmptyResultError) Error() string {
	return fmt.Sprintf("%s: no row returned", e.Op)
}

func (e *EmptyResultError) Is(target error) bool { return target == ErrEmptyResult }
