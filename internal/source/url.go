package source

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gocolly/colly/v2"

	"github.com/jonesrussell/north-cloud/htmlcheck/internal/logger"
)

// DefaultUserAgent is sent when no user agent is configured.
const DefaultUserAgent = "htmlcheck/1.0"

// Fetcher retrieves a URL and reports the outcome through done.
type Fetcher interface {
	Fetch(ctx context.Context, rawURL string, done func(body []byte, err error))
}

// URLFetcherConfig configures a URLFetcher.
type URLFetcherConfig struct {
	UserAgent string
	// RequestTimeout of zero waits for the response indefinitely.
	RequestTimeout time.Duration
	// MaxBodySize of zero reads the whole body. A larger body fails the fetch.
	MaxBodySize int
}

// URLFetcher retrieves pages with a colly collector. Each Fetch uses its own
// collector, so no state is shared between fetches.
type URLFetcher struct {
	userAgent   string
	timeout     time.Duration
	maxBodySize int
	log         logger.Interface
}

// NewURLFetcher creates a URLFetcher, filling unset config with defaults.
func NewURLFetcher(cfg URLFetcherConfig, log logger.Interface) *URLFetcher {
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}
	if cfg.MaxBodySize < 0 {
		cfg.MaxBodySize = 0
	}
	if log == nil {
		log = logger.NewNop()
	}

	return &URLFetcher{
		userAgent:   cfg.UserAgent,
		timeout:     cfg.RequestTimeout,
		maxBodySize: cfg.MaxBodySize,
		log:         log,
	}
}

// Fetch issues a GET for rawURL and returns immediately. done is called exactly
// once, from the collector's completion callback, with either the response
// body or a *NetworkError.
func (f *URLFetcher) Fetch(ctx context.Context, rawURL string, done func(body []byte, err error)) {
	var once sync.Once
	finish := func(body []byte, err error) {
		once.Do(func() { done(body, err) })
	}

	c := colly.NewCollector(f.collectorOptions(ctx)...)
	c.SetRequestTimeout(f.timeout)

	c.OnRequest(func(r *colly.Request) {
		f.log.Debug("Fetching URL", "url", r.URL.String())
	})

	c.OnResponse(func(r *colly.Response) {
		if err := f.checkResponse(r); err != nil {
			finish(nil, &NetworkError{URL: rawURL, Err: err})
			return
		}

		f.log.Debug("URL fetched",
			"url", rawURL,
			"status", r.StatusCode,
			"bytes", len(r.Body),
		)
		finish(r.Body, nil)
	})

	// With ParseHTTPErrorResponse only transport failures reach OnError.
	c.OnError(func(_ *colly.Response, err error) {
		finish(nil, &NetworkError{URL: rawURL, Err: err})
	})

	if err := c.Visit(rawURL); err != nil {
		finish(nil, &NetworkError{URL: rawURL, Err: err})
		return
	}

	go func() {
		c.Wait()
		finish(nil, &NetworkError{URL: rawURL, Err: ErrNoResponse})
	}()
}

func (f *URLFetcher) collectorOptions(ctx context.Context) []colly.CollectorOption {
	// The collector reads one byte past the configured limit so an oversized
	// body can be told apart from one that fits exactly. Zero lifts colly's
	// own default limit.
	bodyLimit := 0
	if f.maxBodySize > 0 {
		bodyLimit = f.maxBodySize + 1
	}

	return []colly.CollectorOption{
		colly.UserAgent(f.userAgent),
		colly.MaxBodySize(bodyLimit),
		colly.StdlibContext(ctx),
		colly.Async(true),
		colly.ParseHTTPErrorResponse(),
	}
}

// checkResponse rejects non-2xx statuses, non-HTML content and bodies over the
// configured limit.
func (f *URLFetcher) checkResponse(r *colly.Response) error {
	if r.StatusCode < 200 || r.StatusCode > 299 {
		return fmt.Errorf("%w: %d %s", ErrHTTPStatus, r.StatusCode, http.StatusText(r.StatusCode))
	}

	contentType := r.Headers.Get("Content-Type")
	if !isHTMLContentType(contentType) {
		return fmt.Errorf("%w: %s", ErrNotHTML, contentType)
	}

	if f.maxBodySize > 0 && len(r.Body) > f.maxBodySize {
		return fmt.Errorf("%w: limit is %d bytes", ErrBodyTooLarge, f.maxBodySize)
	}
	return nil
}

// FetchSync blocks until Fetch completes or ctx is done.
func FetchSync(ctx context.Context, f Fetcher, rawURL string) ([]byte, error) {
	type outcome struct {
		body []byte
		err  error
	}

	ch := make(chan outcome, 1)
	f.Fetch(ctx, rawURL, func(body []byte, err error) {
		ch <- outcome{body: body, err: err}
	})

	select {
	case out := <-ch:
		return out.body, out.err
	case <-ctx.Done():
		return nil, &NetworkError{URL: rawURL, Err: ctx.Err()}
	}
}

// isHTMLContentType accepts a missing Content-Type header, text/html and XHTML.
func isHTMLContentType(contentType string) bool {
	if strings.TrimSpace(contentType) == "" {
		return true
	}

	// ErrInvalidMediaParameter still yields the media type.
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil && !errors.Is(err, mime.ErrInvalidMediaParameter) {
		return false
	}

	switch mediaType {
	case "text/html", "application/xhtml+xml":
		return true
	default:
		return false
	}
}
