package search

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/hupe1980/logsift/config"
	"github.com/hupe1980/logsift/logging"
	"github.com/hupe1980/logsift/logquery"
	"github.com/hupe1980/logsift/sample"
	"github.com/hupe1980/logsift/timeexpr"
)

// Options configures a Service. Any unset field is replaced by a safe
// default in New.
type Options struct {
	// Clock supplies "now"; defaults to the real system clock.
	Clock clockwork.Clock
	// Logger receives search-layer diagnostics; defaults to NoOpLogger.
	Logger logging.Logger
	// Config supplies sampling and range defaults; defaults to
	// config.Default().
	Config *config.Config
	// Metrics records counters; nil disables metrics.
	Metrics *Metrics
}

// Service turns raw query requests into resolved specs, runs them through
// the injected Client and samples the results. It holds no mutable state
// after construction and is safe for concurrent use.
type Service struct {
	client  Client
	clock   clockwork.Clock
	logger  logging.Logger
	cfg     *config.Config
	metrics *Metrics
}

// New creates a Service around the given backend client.
func New(client Client, optFns ...func(o *Options)) *Service {
	opts := Options{
		Clock:  clockwork.NewRealClock(),
		Logger: logging.NoOpLogger{},
		Config: config.Default(),
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Service{
		client:  client,
		clock:   opts.Clock,
		logger:  opts.Logger,
		cfg:     opts.Config,
		metrics: opts.Metrics,
	}
}

// BuildQuery resolves a raw request into a QuerySpec. Malformed time inputs
// resolve to the default window (now minus the configured lookback up to
// now) rather than failing; fallbacks are counted and logged at debug here,
// outside the parsing core.
func (s *Service) BuildQuery(req QueryRequest) QuerySpec {
	now := s.clock.Now().Unix()

	from := timeexpr.ParseDetailed(req.From, now-s.cfg.LookbackSeconds, s.clock)
	to := timeexpr.ParseDetailed(req.To, now, s.clock)
	if from.FellBack || to.FellBack {
		s.metrics.TimeFallback()
		s.logger.Debug("time expression fell back to default",
			"from", req.From, "to", req.To,
			"from_fell_back", from.FellBack, "to_fell_back", to.FellBack)
	}
	fromSec, toSec := timeexpr.ClampRange(from.Seconds, to.Seconds, s.cfg.MinSpanSeconds)

	spec := QuerySpec{
		ID: uuid.NewString(),
		Query: logquery.Build(logquery.Filters{
			Query:   req.Query,
			Keyword: req.Keyword,
			Pattern: req.Pattern,
			Facets:  req.Facets,
		}),
		From:       fromSec,
		To:         toSec,
		FetchLimit: s.fetchLimit(req),
	}
	if ns, ok := timeexpr.ParseDuration(req.Duration); ok {
		spec.DurationNs = ns
		spec.HasDuration = true
	}

	s.metrics.QueryBuilt()
	return spec
}

// Search builds the spec, fetches through the Client and samples the result
// set. Parsing never fails; only the backend collaborator can return an
// error here.
func (s *Service) Search(ctx context.Context, req QueryRequest) (*Response, error) {
	spec := s.BuildQuery(req)

	records, err := s.client.Search(ctx, spec)
	if err != nil {
		return nil, fmt.Errorf("search backend: %w", err)
	}

	mode := req.Mode
	if mode == "" {
		mode = sample.ModeFirst
	}
	res := sample.Select(records, s.sampleLimit(req.Limit), mode)
	s.metrics.SamplesSelected(mode, len(res.Samples))

	s.logger.Info("search completed",
		"query_id", spec.ID,
		"query", spec.Query,
		"fetched", len(records),
		"sampled", len(res.Samples),
		"mode", string(mode))

	return &Response{
		Spec:             spec,
		Records:          res.Samples,
		TotalFetched:     len(records),
		Mode:             mode,
		DistinctPatterns: res.DistinctPatterns,
	}, nil
}

// sampleLimit normalizes the caller limit against configured bounds.
func (s *Service) sampleLimit(limit int) int {
	if limit <= 0 {
		limit = s.cfg.DefaultLimit
	}
	if limit > s.cfg.MaxLimit {
		limit = s.cfg.MaxLimit
	}
	return limit
}

// fetchLimit sizes the backend fetch. Spread and diverse sampling select
// from a wider universe than the sample limit, so the fetch is multiplied by
// the configured overfetch factor and capped at the configured maximum.
func (s *Service) fetchLimit(req QueryRequest) int {
	limit := s.sampleLimit(req.Limit)
	switch req.Mode {
	case sample.ModeSpread, sample.ModeDiverse:
		fetch := limit * s.cfg.Overfetch
		if fetch > s.cfg.MaxLimit {
			fetch = s.cfg.MaxLimit
		}
		return fetch
	default:
		return limit
	}
}
