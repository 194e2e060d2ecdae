// Package goquery provides a static implementation of prodmd.Document over
// a parsed HTML page. Visibility is computed from the markup alone: inline
// styles, the hidden attribute and the site's hidden utility classes.
package goquery

import (
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/prodmd"
	"golang.org/x/net/html"
)

// Ensure Document implements prodmd.Document at compile time.
var _ prodmd.Document = (*Document)(nil)

// Document is a read-only view of a saved product page.
type Document struct {
	doc      *goquery.Document
	location string
}

// Option configures a Document.
type Option func(*Document)

// WithLocation sets the page address. Without it the address is read from
// <link rel="canonical"> or <meta property="og:url">.
func WithLocation(location string) Option {
	return func(d *Document) {
		d.location = location
	}
}

// NewDocument parses an HTML page from r.
func NewDocument(r io.Reader, opts ...Option) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, prodmd.Errorf(prodmd.EINVALID, "failed to parse HTML: %v", err)
	}

	d := &Document{doc: goquery.NewDocumentFromNode(root)}
	for _, opt := range opts {
		opt(d)
	}
	if d.location == "" {
		d.location = d.discoverLocation()
	}
	return d, nil
}

// NewDocumentFromString parses an HTML page held in a string.
func NewDocumentFromString(s string, opts ...Option) (*Document, error) {
	return NewDocument(strings.NewReader(s), opts...)
}

// Find returns every element matching selector in document order.
func (d *Document) Find(selector string) ([]prodmd.Element, error) {
	return find(d.doc.Selection, selector)
}

// Location returns the page address.
func (d *Document) Location() string {
	return d.location
}

// discoverLocation reads the address a saved page declares for itself.
func (d *Document) discoverLocation() string {
	if href, ok := d.doc.Find(`link[rel="canonical"]`).First().Attr("href"); ok && strings.TrimSpace(href) != "" {
		return strings.TrimSpace(href)
	}
	if content, ok := d.doc.Find(`meta[property="og:url"]`).First().Attr("content"); ok {
		return strings.TrimSpace(content)
	}
	return ""
}

// find compiles selector and wraps every match of sel's descendants.
func find(sel *goquery.Selection, selector string) ([]prodmd.Element, error) {
	m, err := compile(selector)
	if err != nil {
		return nil, err
	}

	matches := sel.FindMatcher(m)
	els := make([]prodmd.Element, 0, matches.Length())
	matches.Each(func(_ int, s *goquery.Selection) {
		els = append(els, &Element{sel: s})
	})
	return els, nil
}
