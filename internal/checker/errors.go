package checker

import (
	"errors"
	"fmt"
)

// ErrInvalidSelector is matched by every InvalidSelectorError.
var ErrInvalidSelector = errors.New("invalid selector")

// InvalidSelectorError reports a selector that could not be compiled.
type InvalidSelectorError struct {
	Selector string
	Err      error
}

func (e *InvalidSelectorError) Error() string {
	return fmt.Sprintf("invalid selector %q: %v", e.Selector, e.Err)
}

func (e *InvalidSelectorError) Unwrap() error {
	return e.Err
}

// Is reports ErrInvalidSelector as a match.
func (e *InvalidSelectorError) Is(target error) bool {
	return target == ErrInvalidSelector
}
