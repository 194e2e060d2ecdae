package rod

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"path/filepath"
	"sync"
	"sync/atomic"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// ErrBrowserClosed is returned by Open once Close has been called.
var ErrBrowserClosed = errors.New("browser closed")

// Browser loads saved product pages into a headless Chrome so fields are
// read from the live DOM, with computed styles.
//
// Browser is safe for concurrent use.
type Browser struct {
	browser  *rod.Browser
	launcher *launcher.Launcher
	opened   atomic.Int64
	mu       sync.Mutex
	closed   atomic.Bool
}

// NewBrowser launches a headless Chrome browser.
// Close must be called when the Browser is no longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewBrowser() (*Browser, error) {
	lnchr := launcher.New().
		Set("disable-background-timer-throttling").
		Set("disable-backgrounding-occluded-windows").
		Set("disable-renderer-backgrounding").
		Set("disable-dev-shm-usage").
		Set("disable-hang-monitor").
		Leakless(true).
		Headless(true)

	u, err := lnchr.Launch()
	if err != nil {
		return nil, fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		lnchr.Kill()
		return nil, fmt.Errorf("connecting to browser: %w", err)
	}

	return &Browser{browser: browser, launcher: lnchr}, nil
}

// Open loads the HTML file at path in a new tab. The page's scripts run as
// they would online, but nothing is fetched for the page address itself.
// The returned Document must be closed.
func (b *Browser) Open(ctx context.Context, path string, opts ...Option) (*Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if b.closed.Load() {
		return nil, fmt.Errorf("opening %s: %w", path, ErrBrowserClosed)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", path, err)
	}

	b.mu.Lock()
	if b.browser == nil {
		b.mu.Unlock()
		return nil, fmt.Errorf("opening %s: %w", path, ErrBrowserClosed)
	}
	page, err := b.browser.Page(proto.TargetCreateTarget{})
	b.mu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("opening tab: %w", err)
	}
	page = page.Context(ctx)

	if err := page.Navigate(FileURL(abs)); err != nil {
		_ = page.Close()
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	if err := page.WaitLoad(); err != nil {
		_ = page.Close()
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	b.opened.Add(1)

	doc := &Document{page: page}
	for _, opt := range opts {
		opt(doc)
	}
	if doc.location == "" {
		doc.location = doc.discoverLocation()
	}
	return doc, nil
}

// Opened returns the number of pages loaded so far.
func (b *Browser) Opened() int64 {
	return b.opened.Load()
}

// Close releases browser resources. Close is safe to call multiple times.
func (b *Browser) Close() error {
	if !b.closed.CompareAndSwap(false, true) {
		return nil
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	var err error
	if b.browser != nil {
		err = b.browser.Close()
		b.browser = nil
	}
	if b.launcher != nil {
		b.launcher.Kill()
		b.launcher = nil
	}
	return err
}

// LauncherPID returns the process ID of the browser launcher.
// This method exists for testing purposes to verify proper cleanup.
func (b *Browser) LauncherPID() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.launcher == nil {
		return 0
	}
	return b.launcher.PID()
}

// FileURL returns the file:// URL of an absolute path.
func FileURL(abs string) string {
	return (&url.URL{Scheme: "file", Path: filepath.ToSlash(abs)}).String()
}
