package fetch

import (
	"context"
	"fmt"
	"time"

	"github.com/gocolly/colly/v2"

	"github.com/menuharvest/menuharvest/internal/logger"
)

// StaticFetcher uses Colly for plain HTML fetching.
type StaticFetcher struct {
	defaults Options
}

// NewStatic creates a static fetcher.
func NewStatic(defaults Options) *StaticFetcher {
	if defaults.UserAgent == "" {
		defaults.UserAgent = DefaultOptions().UserAgent
	}
	if defaults.Timeout == 0 {
		defaults.Timeout = DefaultOptions().Timeout
	}
	return &StaticFetcher{defaults: defaults}
}

// Fetch retrieves page content using Colly.
func (f *StaticFetcher) Fetch(ctx context.Context, targetURL string, opts Options) (Content, error) {
	logger.Debug("static fetch starting", "url", targetURL)

	result := Content{
		URL:       targetURL,
		FetchedAt: time.Now(),
	}

	// A fresh collector per request; fetches are independent.
	c := colly.NewCollector(
		colly.UserAgent(coalesce(opts.UserAgent, f.defaults.UserAgent)),
	)

	timeout := opts.Timeout
	if timeout == 0 {
		timeout = f.defaults.Timeout
	}
	c.SetRequestTimeout(timeout)

	var fetchErr error

	c.OnResponse(func(r *colly.Response) {
		result.StatusCode = r.StatusCode
		result.ContentType = r.Headers.Get("Content-Type")
		result.HTML = string(r.Body)
		logger.Debug("static fetch response",
			"url", targetURL,
			"status", r.StatusCode,
			"body_size", len(r.Body))
	})

	c.OnError(func(r *colly.Response, err error) {
		if r != nil {
			result.StatusCode = r.StatusCode
		}
		fetchErr = fmt.Errorf("fetch error: %w", err)
	})

	if err := c.Visit(targetURL); err != nil {
		return result, fmt.Errorf("failed to visit URL: %w", err)
	}
	if fetchErr != nil {
		return result, fetchErr
	}

	return result, nil
}

// Close releases resources.
func (f *StaticFetcher) Close() error {
	return nil
}

// Type returns the fetcher type.
func (f *StaticFetcher) Type() string {
	return "static"
}
