package cmd

import "errors"

// ErrConflictingSource is returned when both a non-default file and a URL are given.
var ErrConflictingSource = errors.New("Cannot specify both file and URL.") //nolint:staticcheck // shown to the user verbatim
