package goquery

import (
	"github.com/andybalholm/cascadia"
	"github.com/fwojciec/prodmd"
	lru "github.com/hashicorp/golang-lru/v2"
)

// selectorCacheSize bounds the compiled selectors kept across documents.
// The extractors use a few hundred distinct selectors.
const selectorCacheSize = 1024

var selectors = mustSelectorCache(selectorCacheSize)

func mustSelectorCache(size int) *lru.Cache[string, cascadia.Selector] {
	c, err := lru.New[string, cascadia.Selector](size)
	if err != nil {
		panic(err)
	}
	return c
}

// compile returns the compiled form of selector, compiling it once per
// process. Invalid selectors are not cached.
func compile(selector string) (cascadia.Selector, error) {
	if sel, ok := selectors.Get(selector); ok {
		return sel, nil
	}
	sel, err := cascadia.Compile(selector)
	if err != nil {
		return nil, prodmd.Errorf(prodmd.EINVALID, "invalid selector %q: %v", selector, err)
	}
	selectors.Add(selector, sel)
	return sel, nil
}
