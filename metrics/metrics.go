// Package metrics holds the prometheus collectors of the read path.
//
// A nil *Read is valid and records nothing, so callers that do not want
// metrics pass nil.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	namespace = "yamlrows"
	subsystem = "read"
)

// Read holds the read path collectors.
type Read struct {
	rows        prometheus.Counter
	documents   *prometheus.CounterVec // by outcome: parsed, discarded, oversized
	values      *prometheus.CounterVec // by outcome of convert.Outcome
	passthrough prometheus.Counter
	inference   prometheus.Histogram
}

// NewRead creates the read path collectors and registers them with reg.
func NewRead(reg prometheus.Registerer) (*Read, error) {
	m := &Read{
		rows: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "rows_total",
			Help:      "Total number of rows produced",
		}),
		documents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "documents_total",
			Help:      "Total number of documents read, by outcome",
		}, []string{"outcome"}),
		values: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "values_total",
			Help:      "Total number of column values converted, by outcome",
		}, []string{"outcome"}),
		passthrough: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "passthrough_columns_total",
			Help:      "Total number of columns typed YAML by schema inference",
		}),
		inference: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "inference_duration_seconds",
			Help:      "Schema inference duration in seconds",
			Buckets:   []float64{0.0001, 0.001, 0.01, 0.1, 1, 10},
		}),
	}
	for _, c := range []prometheus.Collector{m.rows, m.documents, m.values, m.passthrough, m.inference} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Read) AddRows(n int) {
	if m == nil {
		return
	}
	m.rows.Add(float64(n))
}

// AddDocuments counts n documents with the given outcome.
func (m *Read) AddDocuments(outcome string, n int) {
	if m == nil || n == 0 {
		return
	}
	m.documents.WithLabelValues(outcome).Add(float64(n))
}

// Value counts one converted column value. outcome is the string form of a
// convert.Outcome.
func (m *Read) Value(outcome string) {
	if m == nil {
		return
	}
	m.values.WithLabelValues(outcome).Inc()
}

func (m *Read) AddPassthroughColumns(n int) {
	if m == nil || n == 0 {
		return
	}
	m.passthrough.Add(float64(n))
}

func (m *Read) ObserveInference(d time.Duration) {
	if m == nil {
		return
	}
	m.inference.Observe(d.Seconds())
}
