package main

import (
	"context"
	"fmt"
	"os"

	"github.com/fwojciec/prodmd"
	"github.com/fwojciec/prodmd/goquery"
	"github.com/fwojciec/prodmd/rod"
)

// Ensure loaders implement PageLoader at compile time.
var (
	_ PageLoader = (*StaticLoader)(nil)
	_ PageLoader = (*BrowserLoader)(nil)
)

// StaticLoader parses saved pages without running them.
type StaticLoader struct{}

// Load parses the HTML file at path.
func (l *StaticLoader) Load(ctx context.Context, path, location string) (prodmd.Document, func() error, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	var opts []goquery.Option
	if location != "" {
		opts = append(opts, goquery.WithLocation(location))
	}
	doc, err := goquery.NewDocument(f, opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return doc, func() error { return nil }, nil
}

// BrowserLoader loads saved pages in headless Chrome.
type BrowserLoader struct {
	Browser *rod.Browser
}

// Load opens the HTML file at path in a new browser tab.
func (l *BrowserLoader) Load(ctx context.Context, path, location string) (prodmd.Document, func() error, error) {
	var opts []rod.Option
	if location != "" {
		opts = append(opts, rod.WithLocation(location))
	}
	doc, err := l.Browser.Open(ctx, path, opts...)
	if err != nil {
		return nil, nil, err
	}
	return doc, doc.Close, nil
}
