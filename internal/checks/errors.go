package checks

import "errors"

// ErrMalformedChecksFile is returned when a checks file is not a list of selector strings.
var ErrMalformedChecksFile = errors.New("malformed checks file")
