// Package logsift turns the loosely structured time expressions and filters
// produced by automated callers (LLM agents, schedulers) into validated
// absolute time ranges and composed log-search queries, and reduces bulk
// result sets to bounded, representative samples. Most applications interact
// with this package by:
//  1. Creating a Logsift via New() around their backend search.Client
//  2. Registering the exposed tools with their agent framework, or calling
//     Service() directly from their own dispatch layer
//
// The façade wires default configuration, a real clock, a no-op logger and
// optional prometheus metrics; everything is overridable through Options.
// The library performs no network I/O itself: the injected Client owns
// transport and credentials.
package logsift

import (
	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/hupe1980/logsift/config"
	"github.com/hupe1980/logsift/logging"
	"github.com/hupe1980/logsift/search"
	"github.com/hupe1980/logsift/tool"
)

// Options configures the Logsift instance.
type Options struct {
	// Clock supplies "now" to all time-expression parsing; defaults to the
	// real system clock. Tests inject a frozen clock.
	Clock clockwork.Clock
	// Logger receives diagnostics from the search and tool layers; defaults
	// to a no-op logger.
	Logger logging.Logger
	// Config supplies sampling and range defaults.
	Config *config.Config
	// Registerer receives prometheus metrics when Config.Metrics.Enabled is
	// set; nil falls back to the default registry.
	Registerer prometheus.Registerer
}

// Logsift is the high-level façade aggregating the search service and its
// agent-facing tools.
type Logsift struct {
	service *search.Service
	tools   []tool.Tool
}

// New creates a Logsift instance around the given backend client with
// optional overrides.
func New(client search.Client, optFns ...func(o *Options)) *Logsift {
	opts := Options{
		Clock:  clockwork.NewRealClock(),
		Logger: logging.NoOpLogger{},
		Config: config.Default(),
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	svc := search.New(client, func(o *search.Options) {
		o.Clock = opts.Clock
		o.Logger = opts.Logger
		o.Config = opts.Config
		o.Metrics = search.NewMetrics(opts.Config.Metrics, opts.Registerer)
	})

	return &Logsift{
		service: svc,
		tools:   []tool.Tool{tool.NewSearchLogsTool(svc), tool.NewSampleLogsTool()},
	}
}

// Service returns the underlying search service for callers with their own
// dispatch layer.
func (l *Logsift) Service() *search.Service { return l.service }

// Tools returns the agent-facing tools ready for registration with a host
// framework.
func (l *Logsift) Tools() []tool.Tool { return l.tools }
