// Package source obtains raw HTML from a local file or a remote URL.
package source

import (
	"fmt"
	"os"
)

// DefaultHTMLFile is the HTML file read when neither a file nor a URL is given.
const DefaultHTMLFile = "index.html"

// AssertFileExists returns path unchanged when it can be stat'ed, and a
// FileNotFoundError otherwise.
func AssertFileExists(path string) (string, error) {
	if _, err := os.Stat(path); err != nil {
		return "", &FileNotFoundError{Path: path, Err: err}
	}
	return path, nil
}

// FromFile reads the HTML file at path.
func FromFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: read html file %s: %w", ErrIO, path, err)
	}
	return data, nil
}
