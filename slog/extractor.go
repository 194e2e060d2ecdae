package slog

import (
	"log/slog"
	"slices"
	"time"

	"github.com/fwojciec/prodmd"
)

// Ensure LoggingExtractor implements prodmd.Extractor.
var _ prodmd.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with per-page logging.
type LoggingExtractor struct {
	next   prodmd.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next prodmd.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract logs the number of fields found and every recovered field fault.
func (x *LoggingExtractor) Extract(doc prodmd.Document) *prodmd.Extraction {
	begin := time.Now()
	ext := x.next.Extract(doc)

	var location string
	if doc != nil {
		location = doc.Location()
	}
	if ext == nil {
		x.logger.Warn("extract", "url", location, "err", "no extraction")
		return ext
	}

	for _, field := range faultFields(ext) {
		x.logger.Warn("field fault",
			"url", location,
			"field", string(field),
			"code", prodmd.ErrorCode(ext.Faults[field]),
			"err", prodmd.ErrorMessage(ext.Faults[field]),
		)
	}
	x.logger.Info("extract",
		"url", location,
		"fields_found", ext.Found(),
		"faults", len(ext.Faults),
		"duration", time.Since(begin),
	)
	for _, field := range prodmd.Fields {
		if src, ok := ext.Sources[field]; ok {
			x.logger.Debug("field found", "field", string(field), "source", src)
		}
	}
	return ext
}

// faultFields returns the faulty fields in a stable order.
func faultFields(ext *prodmd.Extraction) []prodmd.Field {
	fields := make([]prodmd.Field, 0, len(ext.Faults))
	for field := range ext.Faults {
		fields = append(fields, field)
	}
	slices.Sort(fields)
	return fields
}
