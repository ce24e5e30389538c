package search

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/hupe1980/logsift/config"
	"github.com/hupe1980/logsift/sample"
)

// Metrics bundles the prometheus instruments for the search layer. A nil
// *Metrics is valid and records nothing, so callers without a registry pay
// no cost.
type Metrics struct {
	queriesBuilt  prometheus.Counter
	timeFallbacks prometheus.Counter
	samples       *prometheus.CounterVec
}

// NewMetrics builds and registers the search metrics. Returns nil when
// metrics are disabled. A nil registerer falls back to the default prometheus
// registry.
func NewMetrics(cfg config.MetricsConfig, reg prometheus.Registerer) *Metrics {
	if !cfg.Enabled {
		return nil
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	ns := cfg.Namespace
	if ns == "" {
		ns = "logsift"
	}

	m := &Metrics{
		queriesBuilt: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: ns,
			Name:      "queries_built_total",
			Help:      "Total number of query specs built.",
		}),
		timeFallbacks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: ns,
			Name:      "time_fallbacks_total",
			Help:      "Time expressions that silently resolved to the caller default.",
		}),
		samples: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: ns,
			Name:      "samples_selected_total",
			Help:      "Records selected into samples, labelled by sampling mode.",
		}, []string{"mode"}),
	}
	reg.MustRegister(m.queriesBuilt, m.timeFallbacks, m.samples)
	return m
}

// QueryBuilt counts one built query spec.
func (m *Metrics) QueryBuilt() {
	if m == nil {
		return
	}
	m.queriesBuilt.Inc()
}

// TimeFallback counts one silent time-expression fallback.
func (m *Metrics) TimeFallback() {
	if m == nil {
		return
	}
	m.timeFallbacks.Inc()
}

// SamplesSelected counts records selected under the given mode.
func (m *Metrics) SamplesSelected(mode sample.Mode, n int) {
	if m == nil {
		return
	}
	m.samples.WithLabelValues(string(mode)).Add(float64(n))
}
