package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/prodmd"
)

// Ensure LoggingHandler implements prodmd.Handler.
var _ prodmd.Handler = (*LoggingHandler)(nil)

// LoggingHandler wraps a Handler with request logging.
type LoggingHandler struct {
	next   prodmd.Handler
	logger *slog.Logger
}

// NewLoggingHandler creates a new LoggingHandler.
func NewLoggingHandler(next prodmd.Handler, logger *slog.Logger) *LoggingHandler {
	return &LoggingHandler{next: next, logger: logger}
}

// Handle logs the outcome of each request and delegates to the wrapped handler.
func (h *LoggingHandler) Handle(ctx context.Context, req prodmd.Request) (resp *prodmd.Response) {
	defer func(begin time.Time) {
		attrs := []any{
			"request_id", req.ID,
			"action", req.Action,
			"success", resp != nil && resp.Success,
			"duration", time.Since(begin),
		}
		if resp != nil && !resp.Success {
			attrs = append(attrs, "code", resp.Code, "err", resp.Error)
		}
		h.logger.Info("handle", attrs...)
	}(time.Now())
	return h.next.Handle(ctx, req)
}
