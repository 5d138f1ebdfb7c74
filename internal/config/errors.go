package config

import (
	"errors"
	"fmt"
)

// ErrConfigInvalid is matched by every ValidationError.
var ErrConfigInvalid = errors.New("invalid configuration")

// ValidationError represents an error in configuration validation.
type ValidationError struct {
	Field  string
	Value  any
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid config: field %q with value %v: %s", e.Field, e.Value, e.Reason)
}

// Is reports ErrConfigInvalid as a match.
func (e *ValidationError) Is(target error) bool {
	return target == ErrConfigInvalid
}
