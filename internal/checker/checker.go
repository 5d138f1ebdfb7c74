// Package checker reports which CSS selectors match at least one element of an HTML document.
package checker

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"

	"github.com/jonesrussell/north-cloud/htmlcheck/internal/checks"
	"github.com/jonesrussell/north-cloud/htmlcheck/internal/logger"
)

// Checker evaluates selectors against HTML documents. It holds no document
// state; every Check parses its own document.
type Checker struct {
	skipInvalid bool
	log         logger.Interface
}

// Option configures a Checker.
type Option func(*Checker)

// WithSkipInvalid records invalid selectors as absent instead of failing the check.
func WithSkipInvalid(skip bool) Option {
	return func(c *Checker) {
		c.skipInvalid = skip
	}
}

// WithLogger sets the logger used for skipped selectors and debug output.
func WithLogger(log logger.Interface) Option {
	return func(c *Checker) {
		if log != nil {
			c.log = log
		}
	}
}

// New creates a Checker.
func New(opts ...Option) *Checker {
	c := &Checker{log: logger.NewNop()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Check parses html and records, for each selector in list order, whether it
// matches at least one element.
func (c *Checker) Check(html []byte, list checks.List) (*Result, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	result := NewResult(len(list))
	for _, selector := range list {
		if _, seen := result.Get(selector); seen {
			continue
		}

		present, matchErr := c.present(doc, selector)
		if matchErr != nil {
			if !c.skipInvalid {
				return nil, matchErr
			}
			c.log.Warn("Skipping invalid selector", "selector", selector, "error", matchErr)
		}

		c.log.Debug("Selector checked", "selector", selector, "present", present)
		result.Set(selector, present)
	}

	return result, nil
}

// present compiles selector and reports whether doc has a match. A blank
// selector matches nothing.
func (c *Checker) present(doc *goquery.Document, selector string) (bool, error) {
	if strings.TrimSpace(selector) == "" {
		return false, nil
	}

	matcher, err := cascadia.Compile(selector)
	if err != nil {
		return false, &InvalidSelectorError{Selector: selector, Err: err}
	}

	return doc.FindMatcher(matcher).Length() > 0, nil
}
