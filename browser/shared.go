package browser

import (
	"fmt"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// DefaultTimeout bounds a single call made through a session page.
const DefaultTimeout = 30 * time.Second

// BrowserSession represents a headless Chromium session. Page carries no
// deadline of its own; callers bound each call with CallPage.
type BrowserSession struct {
	Launcher *launcher.Launcher
	Browser  *rod.Browser
	Page     *rod.Page
	Timeout  time.Duration
}

// NewBrowserSession launches a headless browser with one blank page
func NewBrowserSession(timeout time.Duration) (*BrowserSession, error) {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	// Launch browser
	l := launcher.New().Headless(true)
	url, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("error launching browser: %w", err)
	}

	browser := rod.New().ControlURL(url)
	if err := browser.Connect(); err != nil {
		l.Cleanup()
		return nil, fmt.Errorf("error connecting to browser: %w", err)
	}

	page, err := browser.Page(proto.TargetCreateTarget{URL: "about:blank"})
	if err != nil {
		browser.Close()
		l.Cleanup()
		return nil, fmt.Errorf("error creating page: %w", err)
	}

	return &BrowserSession{
		Launcher: l,
		Browser:  browser,
		Page:     page,
		Timeout:  timeout,
	}, nil
}

// CallPage returns the session page with a fresh Timeout deadline. rod's
// Timeout starts counting when it is called and covers every chained call,
// so it must be taken once per operation.
func (bs *BrowserSession) CallPage() *rod.Page {
	return bs.Page.Timeout(bs.Timeout)
}

// Close cleans up the browser session
func (bs *BrowserSession) Close() {
	if bs.Page != nil {
		bs.Page.Close()
	}
	if bs.Browser != nil {
		bs.Browser.Close()
	}
	if bs.Launcher != nil {
		bs.Launcher.Cleanup()
	}
}
