// Package prometheus records extraction metrics with the Prometheus client
// and exports them in the text exposition format.
package prometheus

import (
	"fmt"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

// Metrics bundles the extraction collectors on a dedicated registry.
type Metrics struct {
	Registry        *prom.Registry
	PagesTotal      prom.Counter
	FieldsTotal     *prom.CounterVec
	MissesTotal     *prom.CounterVec
	FaultsTotal     *prom.CounterVec
	ExtractDuration prom.Histogram
}

// NewMetrics constructs and registers all metrics on a dedicated registry.
func NewMetrics() *Metrics {
	registry := prom.NewRegistry()

	pages := prom.NewCounter(
		prom.CounterOpts{
			Name: "prodmd_pages_total",
			Help: "Total number of pages extracted.",
		},
	)
	fields := prom.NewCounterVec(
		prom.CounterOpts{
			Name: "prodmd_fields_found_total",
			Help: "Fields found, by field and winning candidate lookup.",
		},
		[]string{"field", "source"},
	)
	misses := prom.NewCounterVec(
		prom.CounterOpts{
			Name: "prodmd_fields_missing_total",
			Help: "Fields for which no candidate lookup produced a value.",
		},
		[]string{"field"},
	)
	faults := prom.NewCounterVec(
		prom.CounterOpts{
			Name: "prodmd_field_faults_total",
			Help: "Field extractors that failed and were recovered.",
		},
		[]string{"field"},
	)
	duration := prom.NewHistogram(
		prom.HistogramOpts{
			Name:    "prodmd_extract_duration_seconds",
			Help:    "Time spent extracting the fields of one page.",
			Buckets: prom.DefBuckets,
		},
	)

	registry.MustRegister(pages, fields, misses, faults, duration)

	return &Metrics{
		Registry:        registry,
		PagesTotal:      pages,
		FieldsTotal:     fields,
		MissesTotal:     misses,
		FaultsTotal:     faults,
		ExtractDuration: duration,
	}
}

// ObserveDuration records the extraction time of one page.
func (m *Metrics) ObserveDuration(d time.Duration) {
	if m == nil {
		return
	}
	m.ExtractDuration.Observe(d.Seconds())
}

// WriteTextfile writes every registered metric to path in the text format
// read by the node exporter's textfile collector.
func (m *Metrics) WriteTextfile(path string) error {
	if err := prom.WriteToTextfile(path, m.Registry); err != nil {
		return fmt.Errorf("writing metrics to %s: %w", path, err)
	}
	return nil
}
