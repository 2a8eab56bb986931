package rod

import (
	"context"

	"github.com/fwojciec/pagescribe"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// Ensure Fetcher implements pagescribe.Fetcher at compile time.
var _ pagescribe.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves rendered HTML from URLs using Chrome browser automation.
// Fetcher is safe for concurrent use by multiple goroutines.
type Fetcher struct {
	browser  *rod.Browser
	launcher *launcher.Launcher
}

// NewFetcher creates a new Fetcher that launches a headless Chrome browser.
// Close must be called when the Fetcher is no longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewFetcher() (*Fetcher, error) {
	browser, lnchr, err := launchBrowser()
	if err != nil {
		return nil, err
	}
	return &Fetcher{browser: browser, launcher: lnchr}, nil
}

// Fetch navigates to the URL, waits for the page to load, and returns
// the rendered HTML. Navigation failures carry code EUNAVAILABLE.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	// Check context before starting
	if err := ctx.Err(); err != nil {
		return "", err
	}

	page, err := f.browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return "", pagescribe.Errorf(pagescribe.EUNAVAILABLE, "fetch %s: opening page: %v", url, err)
	}
	defer page.Close()

	// Set context for all subsequent operations
	page = page.Context(ctx)

	if err := page.Navigate(url); err != nil {
		return "", pagescribe.Errorf(pagescribe.EUNAVAILABLE, "fetch %s: %v", url, err)
	}

	if err := page.WaitLoad(); err != nil {
		return "", pagescribe.Errorf(pagescribe.EUNAVAILABLE, "fetch %s: waiting for load: %v", url, err)
	}

	html, err := page.HTML()
	if err != nil {
		return "", pagescribe.Errorf(pagescribe.EUNAVAILABLE, "fetch %s: reading HTML: %v", url, err)
	}

	return html, nil
}

// Close releases browser resources.
func (f *Fetcher) Close() error {
	err := f.browser.Close()
	f.launcher.Kill()
	return err
}

// LauncherPID returns the process ID of the browser launcher.
// This method exists for testing purposes to verify proper cleanup.
func (f *Fetcher) LauncherPID() int {
	return f.launcher.PID()
}
