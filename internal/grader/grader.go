// Package grader checks an HTML document, from a file or a URL, against a
// checks file.
package grader

import (
	"context"
	"errors"

	"github.com/jonesrussell/north-cloud/htmlcheck/internal/checker"
	"github.com/jonesrussell/north-cloud/htmlcheck/internal/checks"
	"github.com/jonesrussell/north-cloud/htmlcheck/internal/logger"
	"github.com/jonesrussell/north-cloud/htmlcheck/internal/source"
)

// Grader composes the checks loader, the selector checker and an HTML source.
type Grader struct {
	checker *checker.Checker
	fetcher source.Fetcher
	log     logger.Interface
}

// New creates a Grader. fetcher is only needed for URL checks.
func New(c *checker.Checker, fetcher source.Fetcher, log logger.Interface) *Grader {
	if c == nil {
		c = checker.New()
	}
	if log == nil {
		log = logger.NewNop()
	}
	return &Grader{checker: c, fetcher: fetcher, log: log}
}

// CheckHTML checks html against the selectors in checksPath.
func (g *Grader) CheckHTML(html []byte, checksPath string) (*checker.Result, error) {
	list, err := checks.Load(checksPath)
	if err != nil {
		return nil, err
	}

	g.log.Debug("Checks loaded", "checks_file", checksPath, "count", len(list))

	return g.checker.Check(html, list)
}

// CheckHTMLFile checks the HTML file at htmlPath.
func (g *Grader) CheckHTMLFile(htmlPath, checksPath string) (*checker.Result, error) {
	html, err := source.FromFile(htmlPath)
	if err != nil {
		return nil, err
	}
	return g.CheckHTML(html, checksPath)
}

// CheckHTMLURL fetches rawURL and, from the fetch completion callback, checks
// the body and passes the result to emit. emit is never called when the fetch
// or the check fails. CheckHTMLURL returns once the callback has finished.
func (g *Grader) CheckHTMLURL(
	ctx context.Context,
	rawURL, checksPath string,
	emit func(*checker.Result) error,
) error {
	if g.fetcher == nil {
		return errors.New("grader has no fetcher")
	}

	errCh := make(chan error, 1)
	g.fetcher.Fetch(ctx, rawURL, func(body []byte, fetchErr error) {
		if fetchErr != nil {
			g.log.Error("URL retrieval failed", "url", rawURL, "error", errors.Unwrap(fetchErr))
			errCh <- fetchErr
			return
		}

		result, err := g.CheckHTML(body, checksPath)
		if err != nil {
			errCh <- err
			return
		}
		errCh <- emit(result)
	})

	return <-errCh
}
