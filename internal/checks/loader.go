// Package checks loads the list of CSS selectors an HTML document is graded against.
package checks

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultFile is the checks file used when none is given.
const DefaultFile = "checks.json"

// Format identifies the encoding of a checks file.
type Format string

const (
	// FormatJSON is a JSON array of selector strings.
	FormatJSON Format = "json"
	// FormatYAML is a YAML sequence of selector strings.
	FormatYAML Format = "yaml"
)

// List is an ascending, sorted sequence of selectors.
type List []string

// FormatFor picks the checks format from the file extension. Anything that is
// not .yaml or .yml is treated as JSON.
func FormatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Load reads the checks file at path and returns its selectors sorted ascending.
func Load(path string) (List, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read checks file %s: %w", path, err)
	}

	list, err := Parse(data, FormatFor(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return list, nil
}

// Parse decodes data as a list of selector strings and sorts it.
// Duplicates are kept. Every item must be a string.
func Parse(data []byte, format Format) (List, error) {
	var (
		selectors []string
		err       error
	)

	switch format {
	case FormatYAML:
		selectors, err = parseYAML(data)
	default:
		selectors, err = parseJSON(data)
	}
	if err != nil {
		return nil, err
	}

	slices.Sort(selectors)

	return List(selectors), nil
}

func parseJSON(data []byte) ([]string, error) {
	// A bare null decodes into a nil slice without error, so it is rejected explicitly.
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil, fmt.Errorf("%w: expected an array of selectors, got null", ErrMalformedChecksFile)
	}

	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedChecksFile, err)
	}

	selectors := make([]string, 0, len(items))
	for i, item := range items {
		// null would otherwise decode into "" without error.
		trimmed := bytes.TrimSpace(item)
		if len(trimmed) == 0 || trimmed[0] != '"' {
			return nil, fmt.Errorf("%w: item %d is not a string: %s", ErrMalformedChecksFile, i, trimmed)
		}

		var selector string
		if err := json.Unmarshal(trimmed, &selector); err != nil {
			return nil, fmt.Errorf("%w: item %d: %w", ErrMalformedChecksFile, i, err)
		}
		selectors = append(selectors, selector)
	}

	return selectors, nil
}

func parseYAML(data []byte) ([]string, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedChecksFile, err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, fmt.Errorf("%w: expected a sequence of selectors", ErrMalformedChecksFile)
	}

	root := doc.Content[0]
	if root.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("%w: expected a sequence of selectors", ErrMalformedChecksFile)
	}

	selectors := make([]string, 0, len(root.Content))
	for i, item := range root.Content {
		// Resolved tags keep 1, true and ~ from being read as selectors.
		if item.Kind != yaml.ScalarNode || item.Tag != "!!str" {
			return nil, fmt.Errorf("%w: item %d is not a string (line %d)", ErrMalformedChecksFile, i, item.Line)
		}
		selectors = append(selectors, item.Value)
	}

	return selectors, nil
}
