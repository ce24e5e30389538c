package search

import (
	"context"

	json "github.com/goccy/go-json"

	"github.com/hupe1980/logsift/core"
	"github.com/hupe1980/logsift/logquery"
	"github.com/hupe1980/logsift/sample"
)

// Client performs the actual search request against a remote log backend.
// Implementations own transport, authentication and pagination; they receive
// a fully resolved QuerySpec and return projected records in backend order.
type Client interface {
	Search(ctx context.Context, spec QuerySpec) ([]core.LogRecord, error)
}

// ClientFunc adapts a plain function to the Client interface.
type ClientFunc func(ctx context.Context, spec QuerySpec) ([]core.LogRecord, error)

// Search invokes the wrapped function.
func (f ClientFunc) Search(ctx context.Context, spec QuerySpec) ([]core.LogRecord, error) {
	return f(ctx, spec)
}

// QueryRequest is the raw, loosely structured input supplied by an automated
// caller. From, To and Duration may each be a string expression, a number or
// absent; nothing in a QueryRequest is trusted to be well formed.
type QueryRequest struct {
	// Query is free text placed first in the composed query.
	Query string
	// Keyword requests an exact-phrase match.
	Keyword string
	// Pattern requests a message match.
	Pattern string
	// Facets are field equalities applied in declared order.
	Facets []logquery.Facet
	// From and To are time expressions (string, epoch-seconds number or nil).
	From any
	To   any
	// Duration is an optional minimum-duration filter ("500ms", ns number).
	Duration any
	// Limit is the requested sample size; zero means the configured default.
	Limit int
	// Mode selects the sampling strategy; empty means sample.ModeFirst.
	Mode sample.Mode
}

// QuerySpec is the fully resolved request handed to a Client. All time
// fields are epoch seconds and the range is guaranteed well formed.
type QuerySpec struct {
	// ID correlates logs, metrics and backend requests for one query.
	ID    string `json:"id"`
	Query string `json:"query"`
	From  int64  `json:"from"`
	To    int64  `json:"to"`
	// DurationNs is a minimum-duration filter; valid only when HasDuration.
	DurationNs  int64 `json:"duration_ns,omitempty"`
	HasDuration bool  `json:"has_duration,omitempty"`
	// FetchLimit is how many records the client should fetch. For spread and
	// diverse sampling it exceeds the sample limit so the sampler has a
	// wider universe to choose from.
	FetchLimit int `json:"fetch_limit"`
}

// Response is the envelope returned to the caller after sampling.
type Response struct {
	Spec             QuerySpec        `json:"spec"`
	Records          []core.LogRecord `json:"records"`
	TotalFetched     int              `json:"total_fetched"`
	Mode             sample.Mode      `json:"mode"`
	DistinctPatterns int              `json:"distinct_patterns,omitempty"`
}

// Encode serializes the response envelope.
func (r *Response) Encode() ([]byte, error) {
	return json.Marshal(r)
}
