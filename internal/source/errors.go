package source

import (
	"errors"
	"fmt"
)

var (
	// ErrFileNotFound is matched by every FileNotFoundError.
	ErrFileNotFound = errors.New("file not found")

	// ErrNetwork is matched by every NetworkError.
	ErrNetwork = errors.New("network error")

	// ErrIO is returned when an existing file cannot be read.
	ErrIO = errors.New("io error")

	// ErrNotHTML is the cause of a NetworkError for responses that are not HTML.
	ErrNotHTML = errors.New("response is not html")

	// ErrHTTPStatus is the cause of a NetworkError for non-2xx responses.
	ErrHTTPStatus = errors.New("unexpected http status")

	// ErrBodyTooLarge is the cause of a NetworkError for a body over the
	// configured size limit.
	ErrBodyTooLarge = errors.New("response body too large")

	// ErrNoResponse is the cause of a NetworkError when the collector finished
	// without delivering a response or an error.
	ErrNoResponse = errors.New("no response received")
)

// FileNotFoundError reports a missing input file. Its message is shown to the
// user as is.
type FileNotFoundError struct {
	Path string
	Err  error
}

func (e *FileNotFoundError) Error() string {
	return fmt.Sprintf("%s does not exist. Exiting.", e.Path)
}

func (e *FileNotFoundError) Unwrap() error {
	return e.Err
}

// Is reports ErrFileNotFound as a match.
func (e *FileNotFoundError) Is(target error) bool {
	return target == ErrFileNotFound
}

// NetworkError reports a failed URL retrieval. The message is fixed; the
// cause is available through Unwrap.
type NetworkError struct {
	URL string
	Err error
}

func (e *NetworkError) Error() string {
	return "Failed to retrieve the URL."
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// Is reports ErrNetwork as a match.
func (e *NetworkError) Is(target error) bool {
	return target == ErrNetwork
}
