// Package domain contains domain entities, value objects, and domain-specific errors.
// This package should have no external dependencies except the standard library.
package domain

import (
	"errors"
	"fmt"
)

// Messages surfaced to API clients by the repository adapters.
const (
	MessageThreadNotFound  = "thread tidak ditemukan"
	MessageCommentNotFound = "komentar tidak ditemukan"
	MessageNotCommentOwner = "Anda tidak berhak mengakses resource"
)

// Error categories. Every DomainError wraps exactly one of these as its Base.
var (
	// ErrNotFound is returned when a referenced thread or comment does not exist.
	ErrNotFound = errors.New("resource not found")

	// ErrInvalidInput is returned when a payload fails entity validation.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnauthorized is returned when authentication is required but not provided.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden is returned when the caller does not own the resource.
	ErrForbidden = errors.New("forbidden")

	// ErrNotImplemented is returned by a repository capability that has no adapter.
	ErrNotImplemented = errors.New("not implemented")
)

// Validation reasons, carried next to ErrInvalidInput.
var (
	ErrMissingProperty = errors.New("missing required property")
	ErrTypeMismatch    = errors.New("data type mismatch")
	ErrTitleTooLong    = errors.New("title exceeds character limit")
	ErrEmptyContent    = errors.New("content must not be empty")
)

// DomainError wraps a base error with additional context.
type DomainError struct {
	// Base is the error category (e.g., ErrNotFound)
	Base error

	// Reason narrows the category, e.g. ErrMissingProperty. Optional.
	Reason error

	// Code is a stable machine-readable identifier such as
	// "NEW_THREAD.TITLE_LIMIT_CHAR". Optional.
	Code string

	// Message provides human-readable context
	Message string

	// Field indicates which field caused the error (for validation errors)
	Field string
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	base := e.Base.Error()
	if e.Reason != nil {
		base = fmt.Sprintf("%s: %s", base, e.Reason.Error())
	}
	if e.Field != "" {
		return fmt.Sprintf("%s: %s (field: %s)", base, e.Message, e.Field)
	}
	if e.Message != "" {
		return fmt.Sprintf("%s: %s", base, e.Message)
	}
	return base
}

// Unwrap exposes both the category and the reason to errors.Is/As.
func (e *DomainError) Unwrap() []error {
	if e.Reason == nil {
		return []error{e.Base}
	}
	return []error{e.Base, e.Reason}
}

// NewNotFoundError creates a not found error with context.
func NewNotFoundError(message string) *DomainError {
	return &DomainError{
		Base:    ErrNotFound,
		Message: message,
	}
}

// NewValidationError creates a validation error for a specific field.
func NewValidationError(code string, reason error, field, message string) *DomainError {
	return &DomainError{
		Base:    ErrInvalidInput,
		Reason:  reason,
		Code:    code,
		Message: message,
		Field:   field,
	}
}

// NewForbiddenError creates a forbidden error with context.
func NewForbiddenError(message string) *DomainError {
	return &DomainError{
		Base:    ErrForbidden,
		Message: message,
	}
}

// NewUnauthorizedError creates an unauthorized error with context.
func NewUnauthorizedError(message string) *DomainError {
	return &DomainError{
		Base:    ErrUnauthorized,
		Message: message,
	}
}

// NewNotImplementedError reports a repository method invoked without an adapter.
func NewNotImplementedError(method string) *DomainError {
	return &DomainError{
		Base:    ErrNotImplemented,
		Code:    method,
		Message: method + " is not implemented",
	}
}

// IsNotFound checks if an error is a not found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsValidationError checks if an error is a validation error.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsForbidden checks if an error is a forbidden error.
func IsForbidden(err error) bool {
	return errors.Is(err, ErrForbidden)
}

// IsUnauthorized checks if an error is unauthorized.
func IsUnauthorized(err error) bool {
	return errors.Is(err, ErrUnauthorized)
}

// IsNotImplemented checks if an error comes from an unimplemented repository method.
func IsNotImplemented(err error) bool {
	return errors.Is(err, ErrNotImplemented)
}
