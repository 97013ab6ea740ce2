package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Caller-supplied configuration violates a precondition
	ErrInvalidParameter = errors.New("invalid parameter")

	// Generated data cannot support the statistical test
	ErrDegenerateSample = errors.New("degenerate sample")

	// Not found errors
	ErrNotFound       = errors.New("resource not found")
	ErrResultNotFound = fmt.Errorf("%w: simulation result", ErrNotFound)
)

// Error constructors with context
func NewInvalidParameterError(param string, reason string) error {
	return fmt.Errorf("%w: %s %s", ErrInvalidParameter, param, reason)
}

func NewDegenerateSampleError(group string, reason string) error {
	return fmt.Errorf("%w: %s group %s", ErrDegenerateSample, group, reason)
}

func NewNotFoundError(resource string, id string) error {
	return fmt.Errorf("%w: %s with id %s", ErrNotFound, resource, id)
}

// Error checking helpers
func IsInvalidParameter(err error) bool {
	return errors.Is(err, ErrInvalidParameter)
}

func IsDegenerateSample(err error) bool {
	return errors.Is(err, ErrDegenerateSample)
}

func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}
