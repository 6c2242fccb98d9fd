// SPDX-License-Identifier: MIT
// Package: csvgraph/csvimport
//
// metrics.go: optional Prometheus instrumentation for Read.
//
// Contract:
//   • Metrics are registered on a caller-supplied prometheus.Registerer, never
//     on the global default registry.
//   • A nil *Metrics is valid and records nothing.
//   • Every metric is labeled by format; imports_total also by result.

package csvimport

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	metricsNamespace = "csvgraph"
	metricsSubsystem = "import"
)

// Result label values for ImportsTotal.
const (
	ResultOK              = "ok"
	ResultIO              = "io"
	ResultSyntax          = "syntax"
	ResultSemantic        = "semantic"
	ResultGraphConstraint = "graph_constraint"
)

// Metrics holds the counters and histograms updated by Read.
type Metrics struct {
	// ImportsTotal counts finished Read calls.
	// Labels: format, result (ok, io, syntax, semantic, graph_constraint)
	ImportsTotal *prometheus.CounterVec

	// RowsTotal counts records handed to a row handler.
	// Labels: format
	RowsTotal *prometheus.CounterVec

	// EdgesTotal counts edges added to target graphs.
	// Labels: format
	EdgesTotal *prometheus.CounterVec

	// DurationSeconds measures Read wall time.
	// Labels: format
	DurationSeconds *prometheus.HistogramVec
}

// NewMetrics creates the import metrics and registers them on reg.
// Panics on duplicate registration, like promauto.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		ImportsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Subsystem: metricsSubsystem,
				Name:      "imports_total",
				Help:      "Finished CSV graph imports by format and result",
			},
			[]string{"format", "result"},
		),
		RowsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Subsystem: metricsSubsystem,
				Name:      "rows_total",
				Help:      "Records processed by format",
			},
			[]string{"format"},
		),
		EdgesTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Subsystem: metricsSubsystem,
				Name:      "edges_total",
				Help:      "Edges added to target graphs by format",
			},
			[]string{"format"},
		),
		DurationSeconds: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Subsystem: metricsSubsystem,
				Name:      "duration_seconds",
				Help:      "Wall time of one import in seconds",
				Buckets:   []float64{0.0001, 0.001, 0.01, 0.1, 1, 10},
			},
			[]string{"format"},
		),
	}
}

// observe records one finished import. err is nil or an *ImportError.
func (m *Metrics) observe(format Format, rows, edges int, elapsed time.Duration, err error) {
	if m == nil {
		return
	}
	name := format.String()
	m.ImportsTotal.WithLabelValues(name, resultLabel(err)).Inc()
	m.RowsTotal.WithLabelValues(name).Add(float64(rows))
	m.EdgesTotal.WithLabelValues(name).Add(float64(edges))
	m.DurationSeconds.WithLabelValues(name).Observe(elapsed.Seconds())
}

// resultLabel maps an import outcome to its result label.
func resultLabel(err error) string {
	switch {
	case err == nil:
		return ResultOK
	case errors.Is(err, ErrSyntax):
		return ResultSyntax
	case errors.Is(err, ErrSemantic):
		return ResultSemantic
	case errors.Is(err, ErrGraphConstraint):
		return ResultGraphConstraint
	default:
		return ResultIO
	}
}
