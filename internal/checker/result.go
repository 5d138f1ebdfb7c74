package checker

import (
	"bytes"
	"encoding/json"
)

// Entry is the presence check outcome for one selector.
type Entry struct {
	Selector string
	Present  bool
}

// Result maps selectors to presence, keeping insertion order.
type Result struct {
	entries []Entry
	index   map[string]int
}

// NewResult returns an empty result with room for size selectors.
func NewResult(size int) *Result {
	return &Result{
		entries: make([]Entry, 0, size),
		index:   make(map[string]int, size),
	}
}

// Set records presence for selector. A selector seen before keeps its position.
func (r *Result) Set(selector string, present bool) {
	if i, ok := r.index[selector]; ok {
		r.entries[i].Present = present
		return
	}

	r.index[selector] = len(r.entries)
	r.entries = append(r.entries, Entry{Selector: selector, Present: present})
}

// Get returns the presence recorded for selector.
func (r *Result) Get(selector string) (present, ok bool) {
	i, ok := r.index[selector]
	if !ok {
		return false, false
	}
	return r.entries[i].Present, true
}

// Len returns the number of selectors in the result.
func (r *Result) Len() int {
	return len(r.entries)
}

// Entries returns a copy of the entries in insertion order.
func (r *Result) Entries() []Entry {
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Matched returns how many selectors matched at least one element.
func (r *Result) Matched() int {
	n := 0
	for _, e := range r.entries {
		if e.Present {
			n++
		}
	}
	return n
}

// MarshalJSON encodes the result as a JSON object whose keys keep insertion order.
func (r *Result) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	for i, e := range r.entries {
		if i > 0 {
			buf.WriteByte(',')
		}

		key, err := marshalKey(e.Selector)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		if e.Present {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// marshalKey quotes s without escaping <, > and &, which are common in selectors.
func marshalKey(s string) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
