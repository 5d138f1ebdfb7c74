// Package report writes check results to an output stream.
package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/jonesrussell/north-cloud/htmlcheck/internal/checker"
)

// Format selects how results are rendered.
type Format string

const (
	// FormatJSON renders a JSON object of selector to presence.
	FormatJSON Format = "json"
	// FormatTable renders a human-readable table.
	FormatTable Format = "table"
)

// jsonIndent matches the four-space indentation of the report format.
const jsonIndent = "    "

// ErrUnknownFormat is returned for an unsupported output format.
var ErrUnknownFormat = errors.New("unknown output format")

// ParseFormat validates a format name. An empty name selects JSON.
func ParseFormat(name string) (Format, error) {
	switch Format(name) {
	case "", FormatJSON:
		return FormatJSON, nil
	case FormatTable:
		return FormatTable, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// Reporter renders results to a writer.
type Reporter struct {
	w      io.Writer
	format Format
}

// New creates a Reporter writing to w.
func New(w io.Writer, format Format) *Reporter {
	if format == "" {
		format = FormatJSON
	}
	return &Reporter{w: w, format: format}
}

// Emit renders result in a single write.
func (r *Reporter) Emit(result *checker.Result) error {
	var (
		out []byte
		err error
	)

	switch r.format {
	case FormatJSON:
		out, err = MarshalJSON(result)
	case FormatTable:
		out = renderTable(result)
	default:
		err = fmt.Errorf("%w: %q", ErrUnknownFormat, r.format)
	}
	if err != nil {
		return err
	}

	if _, err = r.w.Write(out); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// MarshalJSON returns result as indented JSON followed by a newline.
func MarshalJSON(result *checker.Result) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", jsonIndent)
	if err := enc.Encode(result); err != nil {
		return nil, fmt.Errorf("encode report: %w", err)
	}
	return buf.Bytes(), nil
}

func renderTable(result *checker.Result) []byte {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Selector", "Present"})

	for _, e := range result.Entries() {
		t.AppendRow(table.Row{e.Selector, e.Present})
	}

	t.AppendFooter(table.Row{"Matched", fmt.Sprintf("%d/%d", result.Matched(), result.Len())})

	return []byte(t.Render() + "\n")
}
