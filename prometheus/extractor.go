package prometheus

import (
	"time"

	"github.com/fwojciec/prodmd"
)

// Ensure MetricsExtractor implements prodmd.Extractor.
var _ prodmd.Extractor = (*MetricsExtractor)(nil)

// MetricsExtractor wraps an Extractor and counts, per field, the winning
// candidate lookups, the misses and the recovered faults.
type MetricsExtractor struct {
	next    prodmd.Extractor
	metrics *Metrics
}

// NewMetricsExtractor creates a new MetricsExtractor.
func NewMetricsExtractor(next prodmd.Extractor, metrics *Metrics) *MetricsExtractor {
	return &MetricsExtractor{next: next, metrics: metrics}
}

// Extract delegates to the wrapped extractor and records the outcome.
func (x *MetricsExtractor) Extract(doc prodmd.Document) *prodmd.Extraction {
	begin := time.Now()
	ext := x.next.Extract(doc)
	x.metrics.ObserveDuration(time.Since(begin))
	x.metrics.PagesTotal.Inc()
	if ext == nil {
		return nil
	}

	for _, field := range prodmd.Fields {
		if _, ok := ext.Faults[field]; ok {
			x.metrics.FaultsTotal.WithLabelValues(string(field)).Inc()
		}
		if src, ok := ext.Sources[field]; ok {
			x.metrics.FieldsTotal.WithLabelValues(string(field), src).Inc()
		} else {
			x.metrics.MissesTotal.WithLabelValues(string(field)).Inc()
		}
	}
	return ext
}
