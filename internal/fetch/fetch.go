// Package fetch contains the page-acquisition collaborators. The extraction
// engine never fetches; these fetchers exist so the CLI can hand it content.
// They carry no auth, rate-limiting or retry machinery.
package fetch

import (
	"context"
	"time"
)

// Content is one fetched page.
type Content struct {
	URL         string
	HTML        string
	StatusCode  int
	ContentType string
	FetchedAt   time.Time
}

// Options controls a single fetch.
type Options struct {
	UserAgent    string
	Timeout      time.Duration
	WaitDuration time.Duration // extra wait after load (snapshot only)
}

// Fetcher abstracts page acquisition strategies.
type Fetcher interface {
	// Fetch retrieves page content from a URL.
	Fetch(ctx context.Context, url string, opts Options) (Content, error)

	// Close releases any resources (browser instances, etc.).
	Close() error

	// Type returns "static" or "snapshot".
	Type() string
}

// Browser-like user agent; restaurant sites routinely refuse default Go
// clients.
const defaultUserAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// DefaultOptions returns sensible defaults.
func DefaultOptions() Options {
	return Options{
		UserAgent: defaultUserAgent,
		Timeout:   30 * time.Second,
	}
}

// coalesce returns the first non-empty string.
func coalesce(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
