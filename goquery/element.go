package goquery

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/prodmd"
	"golang.org/x/net/html"
)

// Ensure Element implements prodmd.Element at compile time.
var _ prodmd.Element = (*Element)(nil)

// hiddenClasses are utility classes the site styles with display:none.
var hiddenClasses = []string{"aok-hidden", "a-hidden", "hidden"}

// boxlessTags never produce a rendered box.
var boxlessTags = map[string]bool{
	"head":     true,
	"script":   true,
	"style":    true,
	"template": true,
	"noscript": true,
}

// Element wraps a single node of a Document.
type Element struct {
	sel *goquery.Selection
}

// Find returns the descendants of e matching selector.
func (e *Element) Find(selector string) ([]prodmd.Element, error) {
	return find(e.sel, selector)
}

// Text returns the combined text of e and its descendants.
func (e *Element) Text() string {
	return e.sel.Text()
}

// Attr returns the value of the named attribute.
func (e *Element) Attr(name string) (string, bool) {
	return e.sel.Attr(name)
}

// Contains reports whether other is e or one of its descendants.
func (e *Element) Contains(other prodmd.Element) (bool, error) {
	o, ok := other.(*Element)
	if !ok || o == nil {
		return false, fmt.Errorf("cannot compare %T with a goquery element", other)
	}
	target := o.node()
	for n := target; n != nil; n = n.Parent {
		if n == e.node() {
			return true, nil
		}
	}
	return false, nil
}

// Visible reports whether e would be rendered according to its markup.
// An element is hidden when it or an ancestor has no box (display:none,
// the hidden attribute, a hidden utility class or a non-rendered tag), when
// the nearest visibility declaration is hidden, or when its own opacity is 0.
func (e *Element) Visible() (bool, error) {
	n := e.node()
	if n == nil || n.Type != html.ElementNode {
		return false, nil
	}

	visibilitySeen := false
	for cur := n; cur != nil && cur.Type == html.ElementNode; cur = cur.Parent {
		if boxlessTags[cur.Data] || hasAttr(cur, "hidden") || hasHiddenClass(cur) {
			return false, nil
		}
		style := parseStyle(attr(cur, "style"))
		if style["display"] == "none" {
			return false, nil
		}
		if v, ok := style["visibility"]; ok && !visibilitySeen {
			visibilitySeen = true
			if v == "hidden" || v == "collapse" {
				return false, nil
			}
		}
		if cur == n && isZero(style["opacity"]) {
			return false, nil
		}
	}
	return true, nil
}

func (e *Element) node() *html.Node {
	if e == nil || e.sel == nil || len(e.sel.Nodes) == 0 {
		return nil
	}
	return e.sel.Nodes[0]
}

// parseStyle reads an inline style attribute into lower-cased declarations.
func parseStyle(s string) map[string]string {
	decls := make(map[string]string)
	for _, decl := range strings.Split(s, ";") {
		name, value, ok := strings.Cut(decl, ":")
		if !ok {
			continue
		}
		value = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(value), "!important"))
		decls[strings.ToLower(strings.TrimSpace(name))] = strings.ToLower(value)
	}
	return decls
}

func isZero(opacity string) bool {
	switch strings.TrimSpace(opacity) {
	case "0", "0.0", "0%", ".0":
		return true
	}
	return false
}

func attr(n *html.Node, name string) string {
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}

func hasAttr(n *html.Node, name string) bool {
	for _, a := range n.Attr {
		if a.Key == name {
			return true
		}
	}
	return false
}

func hasHiddenClass(n *html.Node) bool {
	classes := strings.Fields(attr(n, "class"))
	for _, c := range classes {
		for _, h := range hiddenClasses {
			if c == h {
				return true
			}
		}
	}
	return false
}
