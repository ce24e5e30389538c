package tool

import (
	"time"

	json "github.com/goccy/go-json"
	"github.com/tidwall/gjson"

	"github.com/hupe1980/logsift/internal/util"
	"github.com/hupe1980/logsift/logquery"
	"github.com/hupe1980/logsift/sample"
	"github.com/hupe1980/logsift/search"
)

// SearchLogsTool exposes search.Service as an agent tool. Time inputs keep
// their JSON type (string expression or epoch number) all the way into the
// parser, which is why argument extraction goes through gjson rather than a
// typed struct.
type SearchLogsTool struct {
	svc *search.Service
}

// NewSearchLogsTool creates the search_logs tool around a service.
func NewSearchLogsTool(svc *search.Service) *SearchLogsTool {
	return &SearchLogsTool{svc: svc}
}

// Name returns the tool name used in function call declarations and routing.
func (t *SearchLogsTool) Name() string { return "search_logs" }

// Description returns the description exposed to models.
func (t *SearchLogsTool) Description() string {
	return "Search logs in a time range and return a bounded, representative sample. " +
		"Times accept epoch seconds, ISO timestamps, relative offsets like '15m' or '3d@11:45', " +
		"and 'today'/'yesterday' with a clock time. Malformed times fall back to the last hour."
}

// Parameters returns the JSON schema for the accepted arguments. The from,
// to and duration properties deliberately omit a type: they accept a string
// or a number.
func (t *SearchLogsTool) Parameters() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"query":    map[string]any{"type": "string", "description": "Free text base query"},
			"keyword":  map[string]any{"type": "string", "description": "Exact phrase to match"},
			"pattern":  map[string]any{"type": "string", "description": "Message pattern to match"},
			"facets":   map[string]any{"type": "object", "description": "Field equality filters, applied in declared order"},
			"from":     map[string]any{"description": "Start of the time range (string expression or epoch seconds)"},
			"to":       map[string]any{"description": "End of the time range (string expression or epoch seconds)"},
			"duration": map[string]any{"description": "Minimum event duration, e.g. '500ms' (or nanoseconds)"},
			"limit":    map[string]any{"type": "integer", "description": "Maximum number of sampled records"},
			"mode":     map[string]any{"type": "string", "description": "Sampling mode: first, spread or diverse"},
		},
	}
}

// Call validates the raw arguments, runs the search and returns the response
// envelope.
func (t *SearchLogsTool) Call(tc *Context, raw []byte) (any, error) {
	args, err := decodeArgs(raw)
	if err != nil {
		return nil, NewToolError(t.Name(), err.Error(), CodeValidation)
	}
	if err := util.ValidateParameters(args, t.Parameters()); err != nil {
		tc.Logger().Warn("tool.call.validation_failed", "tool", t.Name(), "error", err.Error())
		return nil, NewToolError(t.Name(), err.Error(), CodeValidation)
	}

	parsed := gjson.ParseBytes(raw)
	req := search.QueryRequest{
		Query:    parsed.Get("query").String(),
		Keyword:  parsed.Get("keyword").String(),
		Pattern:  parsed.Get("pattern").String(),
		From:     rawValue(parsed.Get("from")),
		To:       rawValue(parsed.Get("to")),
		Duration: rawValue(parsed.Get("duration")),
		Limit:    int(parsed.Get("limit").Int()),
		Mode:     sample.ParseMode(parsed.Get("mode").String()),
	}
	// gjson iterates object members in document order, preserving the
	// caller's declared facet order.
	parsed.Get("facets").ForEach(func(key, value gjson.Result) bool {
		req.Facets = append(req.Facets, logquery.Facet{Field: key.String(), Value: value.String()})
		return true
	})

	start := time.Now()
	resp, err := t.svc.Search(tc.Context(), req)
	if err != nil {
		tc.Logger().Error("tool.call.failed", "tool", t.Name(), "fc_id", tc.FunctionCallID(), "error", err.Error())
		return nil, NewToolError(t.Name(), err.Error(), CodeExecution)
	}

	tc.Logger().Debug("tool.call.completed",
		"tool", t.Name(),
		"fc_id", tc.FunctionCallID(),
		"query_id", resp.Spec.ID,
		"duration_ms", time.Since(start).Milliseconds())
	return resp, nil
}

// decodeArgs decodes the raw argument document for schema validation. Empty
// input means no arguments, which is acceptable for tools with no required
// fields.
func decodeArgs(raw []byte) (map[string]any, error) {
	if len(raw) == 0 {
		return map[string]any{}, nil
	}
	var args map[string]any
	if err := json.Unmarshal(raw, &args); err != nil {
		return nil, err
	}
	return args, nil
}

// rawValue maps an argument to the any-typed input the parsers expect: nil
// when absent, otherwise the decoded string/number/bool.
func rawValue(r gjson.Result) any {
	if !r.Exists() {
		return nil
	}
	return r.Value()
}
