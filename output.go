package prodmd

import "context"

// Output is a rendered product document ready to be stored.
type Output struct {
	URL     string
	Format  Format
	Content string
}

// DocumentWriter stores rendered documents.
type DocumentWriter interface {
	WriteDocument(ctx context.Context, out *Output) error
}
