package chain

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when the explorer does not know the requested id.
	ErrNotFound = errors.New("not found")
	// ErrNetwork is returned when the explorer could not be reached or answered with a failure.
	ErrNetwork = errors.New("network error")
	// ErrTimeout is returned when a lookup exceeded its deadline.
	ErrTimeout = errors.New("lookup timeout")
	// ErrMalformedResponse is returned when a lookup succeeded but the payload has an unexpected shape.
	ErrMalformedResponse = errors.New("malformed response")
)

// LookupKind classifies a failed lookup.
type LookupKind string

var (
	LookupNotFound LookupKind = "not_found"
	LookupNetwork  LookupKind = "network"
	LookupTimeout  LookupKind = "timeout"
)

// LookupError describes a failed remote lookup.
type LookupError struct {
	Operation string
	ID        string
	Kind      LookupKind
	Err       error
}

// NewLookupError classifies err and wraps it into a LookupError.
func NewLookupError(operation, id string, err error) *LookupError {
	return &LookupError{
		Operation: operation,
		ID:        id,
		Kind:      classify(err),
		Err:       err,
	}
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("%s %s: %s: %v", e.Operation, e.ID, e.Kind, e.Err)
}

func (e *LookupError) Unwrap() error {
	return e.Err
}

// Is matches the sentinel of the lookup kind, so errors.Is(err, ErrTimeout) works for wrapped causes.
func (e *LookupError) Is(target error) bool {
	switch e.Kind {
	case LookupNotFound:
		return target == ErrNotFound
	case LookupTimeout:
		return target == ErrTimeout
	case LookupNetwork:
		return target == ErrNetwork
	}
	return false
}

func classify(err error) LookupKind {
	switch {
	case errors.Is(err, ErrNotFound):
		return LookupNotFound
	case errors.Is(err, ErrTimeout), errors.Is(err, context.DeadlineExceeded):
		return LookupTimeout
	default:
		return LookupNetwork
	}
}

// IsRecoverable reports whether retrying the same batch may succeed.
func IsRecoverable(err error) bool {
	var lerr *LookupError
	return errors.As(err, &lerr) && lerr.Kind != LookupNotFound
}
