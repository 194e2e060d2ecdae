package prodmd

// Querier runs CSS selector queries against a subtree.
type Querier interface {
	// Find returns the descendants matching selector in document order.
	// An invalid selector or a host failure is reported as an error.
	Find(selector string) ([]Element, error)
}

// Element is a read-only node of a loaded product page.
type Element interface {
	Querier

	// Text returns the element's text content, untrimmed.
	Text() string

	// Attr returns the value of the named attribute and whether it exists.
	Attr(name string) (string, bool)

	// Contains reports whether other is this element or one of its
	// descendants.
	Contains(other Element) (bool, error)

	// Visible reports whether the element is rendered: it has a box and is
	// not hidden by display, visibility or opacity.
	Visible() (bool, error)
}

// Document is the read-only view of a loaded product page. The pipeline
// never mutates it.
type Document interface {
	Querier

	// Location returns the current page address.
	Location() string
}

// First returns the first element under q matching selector.
// A failed query is treated as no match and returns nil.
func First(q Querier, selector string) Element {
	if q == nil {
		return nil
	}
	els, err := q.Find(selector)
	if err != nil || len(els) == 0 {
		return nil
	}
	return els[0]
}

// All returns every element under q matching selector.
// A failed query is treated as no match.
func All(q Querier, selector string) []Element {
	if q == nil {
		return nil
	}
	els, err := q.Find(selector)
	if err != nil {
		return nil
	}
	return els
}

// TextOf returns the trimmed, normalized text of the first element under q
// matching selector, or an empty string.
func TextOf(q Querier, selector string) string {
	el := First(q, selector)
	if el == nil {
		return ""
	}
	return Normalize(el.Text())
}

// AttrOf returns the trimmed value of attr on the first element under q
// matching selector, or an empty string.
func AttrOf(q Querier, selector, attr string) string {
	el := First(q, selector)
	if el == nil {
		return ""
	}
	v, _ := el.Attr(attr)
	return Normalize(v)
}
