package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/prodmd"
)

// Ensure LoggingWriter implements prodmd.DocumentWriter.
var _ prodmd.DocumentWriter = (*LoggingWriter)(nil)

// LoggingWriter wraps a DocumentWriter with debug logging.
type LoggingWriter struct {
	next   prodmd.DocumentWriter
	logger *slog.Logger
}

// NewLoggingWriter creates a new LoggingWriter.
func NewLoggingWriter(next prodmd.DocumentWriter, logger *slog.Logger) *LoggingWriter {
	return &LoggingWriter{next: next, logger: logger}
}

// WriteDocument logs the stored document and delegates to the wrapped writer.
func (w *LoggingWriter) WriteDocument(ctx context.Context, out *prodmd.Output) (err error) {
	defer func(begin time.Time) {
		w.logger.Debug("write",
			"url", out.URL,
			"format", string(out.Format),
			"bytes", len(out.Content),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return w.next.WriteDocument(ctx, out)
}
