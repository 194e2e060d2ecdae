package extract

import "github.com/fwojciec/prodmd"

// candidate is one lookup of a field's fallback chain. find reports false
// when the lookup found nothing usable.
type candidate[T any] struct {
	name string
	find func(doc prodmd.Document) (T, bool)
}

// firstOf evaluates candidates left to right and returns the first value
// found together with the name of the candidate that produced it.
func firstOf[T any](doc prodmd.Document, candidates ...candidate[T]) (T, string) {
	for _, c := range candidates {
		if v, ok := c.try(doc); ok {
			return v, c.name
		}
	}
	var zero T
	return zero, ""
}

// try runs the lookup; a panicking lookup counts as finding nothing.
func (c candidate[T]) try(doc prodmd.Document) (v T, ok bool) {
	defer func() {
		if recover() != nil {
			var zero T
			v, ok = zero, false
		}
	}()
	return c.find(doc)
}

// textCandidate looks up the normalized text of the first match of selector.
func textCandidate(name, selector string) candidate[string] {
	return candidate[string]{
		name: name,
		find: func(doc prodmd.Document) (string, bool) {
			t := prodmd.TextOf(doc, selector)
			return t, t != ""
		},
	}
}

// attrCandidate looks up attr on the first match of selector.
func attrCandidate(name, selector, attr string) candidate[string] {
	return candidate[string]{
		name: name,
		find: func(doc prodmd.Document) (string, bool) {
			v := prodmd.AttrOf(doc, selector, attr)
			return v, v != ""
		},
	}
}
