package fetch

import (
	"context"
	"fmt"
	"time"

	"github.com/chromedp/chromedp"

	"github.com/menuharvest/menuharvest/internal/logger"
)

// SnapshotFetcher drives a headless browser and returns the rendered page
// source. Script-heavy restaurant sites and mapping-service listings need
// this; plain sites should use the static fetcher.
type SnapshotFetcher struct {
	defaults  Options
	allocCtx  context.Context
	cancelCtx context.CancelFunc
}

// NewSnapshot creates a snapshot fetcher with a shared browser allocator.
func NewSnapshot(defaults Options) (*SnapshotFetcher, error) {
	if defaults.UserAgent == "" {
		defaults.UserAgent = DefaultOptions().UserAgent
	}
	if defaults.Timeout == 0 {
		defaults.Timeout = DefaultOptions().Timeout
	}
	if defaults.WaitDuration == 0 {
		defaults.WaitDuration = 2 * time.Second
	}

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-blink-features", "AutomationControlled"),
		chromedp.UserAgent(defaults.UserAgent),
		chromedp.WindowSize(1920, 1080),
	)

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(context.Background(), opts...)

	return &SnapshotFetcher{
		defaults:  defaults,
		allocCtx:  allocCtx,
		cancelCtx: cancelAlloc,
	}, nil
}

// Fetch renders the page and returns its final markup.
func (f *SnapshotFetcher) Fetch(ctx context.Context, targetURL string, opts Options) (Content, error) {
	logger.Debug("snapshot fetch starting", "url", targetURL)

	result := Content{
		URL:       targetURL,
		FetchedAt: time.Now(),
	}

	browserCtx, cancelBrowser := chromedp.NewContext(f.allocCtx)
	defer cancelBrowser()

	timeout := opts.Timeout
	if timeout == 0 {
		timeout = f.defaults.Timeout
	}
	timeoutCtx, cancelTimeout := context.WithTimeout(browserCtx, timeout)
	defer cancelTimeout()

	wait := opts.WaitDuration
	if wait == 0 {
		wait = f.defaults.WaitDuration
	}

	var html string
	actions := []chromedp.Action{
		chromedp.Navigate(targetURL),
		chromedp.WaitVisible("body"),
		chromedp.Sleep(wait),
		// Mapping-service listings hide the menu behind a tab; clicking is
		// best-effort and failure just means we snapshot what is visible.
		chromedp.ActionFunc(func(ctx context.Context) error {
			_ = chromedp.Click(`button[aria-label*="enu" i]`, chromedp.AtLeast(0)).Do(ctx)
			return nil
		}),
		chromedp.OuterHTML("html", &html),
	}

	if err := chromedp.Run(timeoutCtx, actions...); err != nil {
		return result, fmt.Errorf("browser automation failed: %w", err)
	}

	result.HTML = html
	result.StatusCode = 200 // chromedp doesn't easily expose status codes
	logger.Debug("snapshot fetch complete", "url", targetURL, "html_size", len(html))
	return result, nil
}

// Close releases browser resources.
func (f *SnapshotFetcher) Close() error {
	if f.cancelCtx != nil {
		f.cancelCtx()
	}
	return nil
}

// Type returns the fetcher type.
func (f *SnapshotFetcher) Type() string {
	return "snapshot"
}
