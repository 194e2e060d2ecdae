package mock

import "github.com/fwojciec/prodmd"

var _ prodmd.Document = (*Document)(nil)

// Document is a mock implementation of prodmd.Document.
type Document struct {
	FindFn     func(selector string) ([]prodmd.Element, error)
	LocationFn func() string
}

func (d *Document) Find(selector string) ([]prodmd.Element, error) {
	return d.FindFn(selector)
}

func (d *Document) Location() string {
	return d.LocationFn()
}

var _ prodmd.Element = (*Element)(nil)

// Element is a mock implementation of prodmd.Element.
type Element struct {
	FindFn     func(selector string) ([]prodmd.Element, error)
	TextFn     func() string
	AttrFn     func(name string) (string, bool)
	ContainsFn func(other prodmd.Element) (bool, error)
	VisibleFn  func() (bool, error)
}

func (e *Element) Find(selector string) ([]prodmd.Element, error) {
	return e.FindFn(selector)
}

func (e *Element) Text() string {
	return e.TextFn()
}

func (e *Element) Attr(name string) (string, bool) {
	return e.AttrFn(name)
}

func (e *Element) Contains(other prodmd.Element) (bool, error) {
	return e.ContainsFn(other)
}

func (e *Element) Visible() (bool, error) {
	return e.VisibleFn()
}
