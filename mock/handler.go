package mock

import (
	"context"

	"github.com/fwojciec/prodmd"
)

var _ prodmd.Handler = (*Handler)(nil)

// Handler is a mock implementation of prodmd.Handler.
type Handler struct {
	HandleFn func(ctx context.Context, req prodmd.Request) *prodmd.Response
}

func (h *Handler) Handle(ctx context.Context, req prodmd.Request) *prodmd.Response {
	return h.HandleFn(ctx, req)
}
