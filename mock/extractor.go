package mock

import "github.com/fwojciec/prodmd"

var _ prodmd.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of prodmd.Extractor.
type Extractor struct {
	ExtractFn func(doc prodmd.Document) *prodmd.Extraction
}

func (e *Extractor) Extract(doc prodmd.Document) *prodmd.Extraction {
	return e.ExtractFn(doc)
}
