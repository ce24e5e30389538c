package tool

import (
	json "github.com/goccy/go-json"
	"github.com/tidwall/gjson"

	"github.com/hupe1980/logsift/core"
	"github.com/hupe1980/logsift/internal/util"
	"github.com/hupe1980/logsift/sample"
)

// SampleLogsTool reduces an already-fetched record list to a bounded sample.
// It is the pure half of the tool surface: no service, no clock, no backend.
type SampleLogsTool struct{}

// NewSampleLogsTool creates the sample_logs tool.
func NewSampleLogsTool() *SampleLogsTool { return &SampleLogsTool{} }

// Name returns the tool name used in function call declarations and routing.
func (t *SampleLogsTool) Name() string { return "sample_logs" }

// Description returns the description exposed to models.
func (t *SampleLogsTool) Description() string {
	return "Select a bounded, representative subset of the given log records using the " +
		"'first', 'spread' or 'diverse' sampling strategy."
}

// Parameters returns the JSON schema for the accepted arguments.
func (t *SampleLogsTool) Parameters() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"records": map[string]any{"type": "array", "description": "Log records, each with at least a message field"},
			"limit":   map[string]any{"type": "integer", "description": "Maximum number of records to keep"},
			"mode":    map[string]any{"type": "string", "description": "Sampling mode: first, spread or diverse"},
		},
		"required": []any{"records", "limit"},
	}
}

// Call validates the raw arguments and returns the selection result.
func (t *SampleLogsTool) Call(tc *Context, raw []byte) (any, error) {
	args, err := decodeArgs(raw)
	if err != nil {
		return nil, NewToolError(t.Name(), err.Error(), CodeValidation)
	}
	if err := util.ValidateParameters(args, t.Parameters()); err != nil {
		tc.Logger().Warn("tool.call.validation_failed", "tool", t.Name(), "error", err.Error())
		return nil, NewToolError(t.Name(), err.Error(), CodeValidation)
	}

	parsed := gjson.ParseBytes(raw)
	var records []core.LogRecord
	if err := json.Unmarshal([]byte(parsed.Get("records").Raw), &records); err != nil {
		return nil, NewToolError(t.Name(), "records must be an array of log records: "+err.Error(), CodeValidation)
	}

	res := sample.Select(records, int(parsed.Get("limit").Int()), sample.ParseMode(parsed.Get("mode").String()))

	tc.Logger().Debug("tool.call.completed",
		"tool", t.Name(),
		"fc_id", tc.FunctionCallID(),
		"in", len(records),
		"out", len(res.Samples))
	return res, nil
}
