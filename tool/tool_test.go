package tool

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"

	"github.com/hupe1980/logsift/core"
	"github.com/hupe1980/logsift/internal/testutil"
	"github.com/hupe1980/logsift/sample"
	"github.com/hupe1980/logsift/search"
)

var testNow = time.Date(2024, time.May, 14, 13, 37, 42, 0, time.Local)

func testService(records []core.LogRecord, err error) (*search.Service, *search.QuerySpec) {
	var got search.QuerySpec
	client := search.ClientFunc(func(_ context.Context, spec search.QuerySpec) ([]core.LogRecord, error) {
		got = spec
		return records, err
	})
	svc := search.New(client, func(o *search.Options) {
		o.Clock = clockwork.NewFakeClockAt(testNow)
	})
	return svc, &got
}

func TestContext(t *testing.T) {
	tc := NewContext(nil, nil)
	assert.NotNil(t, tc.Context())
	assert.NotNil(t, tc.Logger())
	_, err := uuid.Parse(tc.FunctionCallID())
	assert.NoError(t, err)
}

func TestSearchLogsTool(t *testing.T) {
	svc, gotSpec := testService(testutil.Records(50, 4), nil)
	st := NewSearchLogsTool(svc)

	raw := []byte(`{
		"keyword": "timeout",
		"facets": {"env": "prod", "host": "web-1"},
		"from": "15m",
		"limit": 3,
		"mode": "diverse"
	}`)
	result, err := st.Call(NewContext(context.Background(), nil), raw)
	assert.NoError(t, err)

	resp, ok := result.(*search.Response)
	assert.True(t, ok)
	assert.Len(t, resp.Records, 3)
	assert.Equal(t, 3, resp.DistinctPatterns)
	assert.Equal(t, sample.ModeDiverse, resp.Mode)

	// Facet clauses keep the caller's declared order.
	assert.Equal(t, `"timeout" env:prod host:web-1`, gotSpec.Query)
	assert.Equal(t, testNow.Unix()-900, gotSpec.From)
	assert.Equal(t, testNow.Unix(), gotSpec.To)
}

func TestSearchLogsTool_NumericTimesSurvive(t *testing.T) {
	svc, gotSpec := testService(nil, nil)
	st := NewSearchLogsTool(svc)

	_, err := st.Call(NewContext(context.Background(), nil), []byte(`{"from": 1715000000, "to": 1715003600}`))
	assert.NoError(t, err)
	assert.Equal(t, int64(1715000000), gotSpec.From)
	assert.Equal(t, int64(1715003600), gotSpec.To)
}

func TestSearchLogsTool_ValidationError(t *testing.T) {
	svc, _ := testService(nil, nil)
	st := NewSearchLogsTool(svc)

	_, err := st.Call(NewContext(context.Background(), nil), []byte(`{"limit": "three"}`))
	var toolErr *ToolError
	assert.ErrorAs(t, err, &toolErr)
	assert.Equal(t, CodeValidation, toolErr.Code)

	// Malformed JSON is a validation failure, not a panic.
	_, err = st.Call(NewContext(context.Background(), nil), []byte(`{"limit": `))
	assert.ErrorAs(t, err, &toolErr)
	assert.Equal(t, CodeValidation, toolErr.Code)
}

func TestSearchLogsTool_ExecutionError(t *testing.T) {
	svc, _ := testService(nil, errors.New("backend down"))
	st := NewSearchLogsTool(svc)

	_, err := st.Call(NewContext(context.Background(), nil), []byte(`{}`))
	var toolErr *ToolError
	assert.ErrorAs(t, err, &toolErr)
	assert.Equal(t, CodeExecution, toolErr.Code)
	assert.Contains(t, toolErr.Message, "backend down")
}

func TestSampleLogsTool(t *testing.T) {
	st := NewSampleLogsTool()

	raw := []byte(`{
		"records": [
			{"message": "a failed", "timestamp": 1},
			{"message": "b failed", "timestamp": 2},
			{"message": "c failed", "timestamp": 3}
		],
		"limit": 2,
		"mode": "first"
	}`)
	result, err := st.Call(NewContext(context.Background(), nil), raw)
	assert.NoError(t, err)

	res, ok := result.(sample.Result)
	assert.True(t, ok)
	assert.Len(t, res.Samples, 2)
	assert.Equal(t, "a failed", res.Samples[0].Message)
}

func TestSampleLogsTool_RequiredFields(t *testing.T) {
	st := NewSampleLogsTool()

	_, err := st.Call(NewContext(context.Background(), nil), []byte(`{"limit": 2}`))
	var toolErr *ToolError
	assert.ErrorAs(t, err, &toolErr)
	assert.Equal(t, CodeValidation, toolErr.Code)
}
