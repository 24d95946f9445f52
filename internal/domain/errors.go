package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the categories the HTTP boundary distinguishes.
var (
	// ErrNotFound indicates an unknown resource, tool, or prompt id.
	ErrNotFound = errors.New("resource not found")
	// ErrInvalidInput indicates malformed arguments or missing inputs.
	ErrInvalidInput = errors.New("invalid input")
	// ErrUpstream indicates a provider failure (network, non-2xx, bad shape).
	ErrUpstream = errors.New("upstream error")
	// ErrInternal indicates an unexpected internal failure.
	ErrInternal = errors.New("internal error")
)

// DomainError carries a stable code, a user-safe message, and the wrapped
// cause. Error() is for logs; UserMessage() is what callers may see.
type DomainError struct {
	Code    string
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// UserMessage returns the message safe to expose to API callers.
func (e *DomainError) UserMessage() string {
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewNotFoundError builds a not-found error for a named item of a given kind.
func NewNotFoundError(kind, name string) error {
	return &DomainError{
		Code:    "NOT_FOUND",
		Message: fmt.Sprintf("%s '%s' not found", kind, name),
		Err:     ErrNotFound,
	}
}

// NewInvalidInputError builds a validation error with a caller-facing message.
func NewInvalidInputError(message string) error {
	return &DomainError{
		Code:    "INVALID_INPUT",
		Message: message,
		Err:     ErrInvalidInput,
	}
}

// NewUpstreamError wraps a provider failure. The user-facing message carries
// only the summary; raw provider bodies stay inside the wrapped cause.
func NewUpstreamError(message string, err error) error {
	return &DomainError{
		Code:    "UPSTREAM_ERROR",
		Message: message,
		Err:     fmt.Errorf("%w: %v", ErrUpstream, err),
	}
}

// NewInternalError wraps an unexpected failure without exposing details.
func NewInternalError(err error) error {
	return &DomainError{
		Code:    "INTERNAL_ERROR",
		Message: "an internal error occurred",
		Err:     fmt.Errorf("%w: %v", ErrInternal, err),
	}
}

// IsNotFound reports whether err is a not-found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsInvalidInput reports whether err is a validation error.
func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsUpstream reports whether err is a provider failure.
func IsUpstream(err error) bool {
	return errors.Is(err, ErrUpstream)
}

// IsInternal reports whether err is an internal error.
func IsInternal(err error) bool {
	return errors.Is(err, ErrInternal)
}
