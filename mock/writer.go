package mock

import (
	"context"

	"github.com/fwojciec/prodmd"
)

var _ prodmd.DocumentWriter = (*DocumentWriter)(nil)

// DocumentWriter is a mock implementation of prodmd.DocumentWriter.
type DocumentWriter struct {
	WriteDocumentFn func(ctx context.Context, out *prodmd.Output) error
}

func (w *DocumentWriter) WriteDocument(ctx context.Context, out *prodmd.Output) error {
	return w.WriteDocumentFn(ctx, out)
}
