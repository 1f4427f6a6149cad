// Package domain holds the chemistry tutoring types (molecule records, quiz
// templates, glossary concepts) and the business-level errors. Domain errors
// are transport-agnostic; adapters map them to HTTP responses.
package domain

import (
	"errors"
	"fmt"
)

// Sentinels matched with errors.Is. The typed errors below unwrap to them.
var (
	ErrNotFound    = errors.New("not found")
	ErrValidation  = errors.New("validation failed")
	ErrUnavailable = errors.New("unavailable")
)

// NotFoundError reports a missing catalog entry, such as an unknown topic.
type NotFoundError struct {
	Entity string
	Key    string
}

func (e *NotFoundError) Error() string {
	if e.Key == "" {
		return e.Entity + " not found"
	}

	return fmt.Sprintf("%s %q not found", e.Entity, e.Key)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// NewNotFoundError returns a *NotFoundError for entity and key.
func NewNotFoundError(entity, key string) error {
	return &NotFoundError{Entity: entity, Key: key}
}

// ValidationError reports bad caller input. Field names the request field
// at fault and may be empty.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return "validation failed: " + e.Message
	}

	return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError returns a *ValidationError.
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// UnavailableError reports that a component, such as the catalog, cannot
// serve requests.
type UnavailableError struct {
	Component string
	Reason    string
}

func (e *UnavailableError) Error() string {
	if e.Reason == "" {
		return e.Component + " unavailable"
	}

	return fmt.Sprintf("%s unavailable: %s", e.Component, e.Reason)
}

func (e *UnavailableError) Unwrap() error { return ErrUnavailable }

// NewUnavailableError returns an *UnavailableError.
func NewUnavailableError(component, reason string) error {
	return &UnavailableError{Component: component, Reason: reason}
}

// IsNotFound reports whether err wraps ErrNotFound.
func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }

// IsValidation reports whether err wraps ErrValidation.
func IsValidation(err error) bool { return errors.Is(err, ErrValidation) }

// IsUnavailable reports whether err wraps ErrUnavailable.
func IsUnavailable(err error) bool { return errors.Is(err, ErrUnavailable) }
