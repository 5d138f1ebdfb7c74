// Package testutils provides fixtures shared by package tests.
package testutils

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

// Page is a canned response served by MockSite.
type Page struct {
	Status      int
	ContentType string
	Body        string
}

// HTMLPage returns a 200 text/html page.
func HTMLPage(body string) Page {
	return Page{Status: http.StatusOK, ContentType: "text/html; charset=utf-8", Body: body}
}

// MockSite starts a test server that serves pages keyed by URL path.
// Unknown paths return 404. The server is closed when the test ends.
func MockSite(t *testing.T, pages map[string]Page) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		page, ok := pages[r.URL.Path]
		if !ok {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			w.WriteHeader(http.StatusNotFound)
			_, _ = fmt.Fprint(w, "<html><body>404 Not Found</body></html>")
			return
		}

		if page.ContentType != "" {
			w.Header().Set("Content-Type", page.ContentType)
		}
		status := page.Status
		if status == 0 {
			status = http.StatusOK
		}
		w.WriteHeader(status)
		_, _ = fmt.Fprint(w, page.Body)
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	return srv
}

// WriteFile writes content to name inside a fresh temp dir and returns its path.
func WriteFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write fixture %s: %v", path, err)
	}

	return path
}
