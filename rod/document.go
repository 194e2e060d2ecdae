package rod

import (
	"github.com/fwojciec/prodmd"
	"github.com/go-rod/rod"
)

// Ensure Document and Element implement the prodmd interfaces at compile time.
var (
	_ prodmd.Document = (*Document)(nil)
	_ prodmd.Element  = (*Element)(nil)
)

// Option configures a Document.
type Option func(*Document)

// WithLocation sets the page address. Saved pages are loaded from disk, so
// the browser's own address is a file:// URL; without this option the
// address is read from the page's canonical link or og:url metadata.
func WithLocation(location string) Option {
	return func(d *Document) {
		d.location = location
	}
}

// Document is a prodmd.Document over a page loaded in the browser.
type Document struct {
	page     *rod.Page
	location string
}

// Find returns the elements matching selector in document order.
func (d *Document) Find(selector string) ([]prodmd.Element, error) {
	els, err := d.page.Elements(selector)
	if err != nil {
		return nil, prodmd.Errorf(prodmd.EINVALID, "query %q: %v", selector, err)
	}
	return wrap(els), nil
}

// Location returns the page address.
func (d *Document) Location() string {
	return d.location
}

// Close closes the browser tab holding the page.
func (d *Document) Close() error {
	return d.page.Close()
}

func (d *Document) discoverLocation() string {
	if href := prodmd.AttrOf(d, `link[rel="canonical"]`, "href"); href != "" {
		return href
	}
	return prodmd.AttrOf(d, `meta[property="og:url"]`, "content")
}

// Element is a prodmd.Element over a live DOM node.
type Element struct {
	el *rod.Element
}

// Find returns the descendants matching selector in document order.
func (e *Element) Find(selector string) ([]prodmd.Element, error) {
	els, err := e.el.Elements(selector)
	if err != nil {
		return nil, prodmd.Errorf(prodmd.EINVALID, "query %q: %v", selector, err)
	}
	return wrap(els), nil
}

// Text returns the node's textContent. A detached node has no text.
func (e *Element) Text() string {
	v, err := e.el.Property("textContent")
	if err != nil || v.Nil() {
		return ""
	}
	return v.Str()
}

// Attr returns the value of the named attribute.
func (e *Element) Attr(name string) (string, bool) {
	v, err := e.el.Attribute(name)
	if err != nil || v == nil {
		return "", false
	}
	return *v, true
}

// Contains reports whether other is this node or one of its descendants.
func (e *Element) Contains(other prodmd.Element) (bool, error) {
	o, ok := other.(*Element)
	if !ok {
		return false, prodmd.Errorf(prodmd.EINVALID, "cannot compare with %T", other)
	}
	return e.el.ContainsElement(o.el)
}

// Visible reports whether the browser renders the node.
func (e *Element) Visible() (bool, error) {
	return e.el.Visible()
}

func wrap(els rod.Elements) []prodmd.Element {
	out := make([]prodmd.Element, 0, len(els))
	for _, el := range els {
		out = append(out, &Element{el: el})
	}
	return out
}
