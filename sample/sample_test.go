package sample

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hupe1980/logsift/internal/testutil"
)

func TestSelect_First(t *testing.T) {
	records := testutil.Records(10, 3)

	res := Select(records, 4, ModeFirst)
	assert.Equal(t, records[:4], res.Samples)

	// Fewer records than the limit pass through unchanged.
	res = Select(records, 50, ModeFirst)
	assert.Equal(t, records, res.Samples)
}

func TestSelect_Spread(t *testing.T) {
	records := testutil.Records(10, 3)

	res := Select(records, 4, ModeSpread)
	assert.Len(t, res.Samples, 4)
	// floor(i*10/4) for i in [0,4) is 0, 2, 5, 7.
	assert.Equal(t, []int64{records[0].Timestamp, records[2].Timestamp, records[5].Timestamp, records[7].Timestamp},
		[]int64{res.Samples[0].Timestamp, res.Samples[1].Timestamp, res.Samples[2].Timestamp, res.Samples[3].Timestamp})

	res = Select(records, 3, ModeSpread)
	assert.Len(t, res.Samples, 3)
	assert.Equal(t, records[0], res.Samples[0], "index 0 is always included")

	res = Select(records, 10, ModeSpread)
	assert.Equal(t, records, res.Samples, "pass-through when the input fits")
}

func TestSelect_SpreadAlwaysExact(t *testing.T) {
	for _, n := range []int{11, 50, 99, 1000} {
		records := testutil.Records(n, 2)
		for _, limit := range []int{1, 3, 7, 10} {
			res := Select(records, limit, ModeSpread)
			assert.Len(t, res.Samples, limit, "n=%d limit=%d", n, limit)
			assert.Equal(t, records[0], res.Samples[0], "n=%d limit=%d", n, limit)
		}
	}
}

func TestSelect_Diverse(t *testing.T) {
	// 100 records spanning exactly 5 distinct normalized patterns.
	records := testutil.Records(100, 5)

	res := Select(records, 3, ModeDiverse)
	assert.Len(t, res.Samples, 3)
	assert.Equal(t, 3, res.DistinctPatterns, "capped at the limit even though 5 patterns exist")
	// The earliest record per pattern is kept; the first 3 records each open
	// a new class.
	assert.Equal(t, records[:3], res.Samples)
}

func TestSelect_DiverseFewerPatternsThanLimit(t *testing.T) {
	records := testutil.Records(10, 2)

	res := Select(records, 5, ModeDiverse)
	assert.Len(t, res.Samples, 2)
	assert.Equal(t, 2, res.DistinctPatterns)
	assert.Equal(t, records[0], res.Samples[0])
	assert.Equal(t, records[1], res.Samples[1])
}

func TestParseMode(t *testing.T) {
	assert.Equal(t, ModeSpread, ParseMode("spread"))
	assert.Equal(t, ModeDiverse, ParseMode("diverse"))
	assert.Equal(t, ModeFirst, ParseMode("first"))
	assert.Equal(t, ModeFirst, ParseMode(""))
	assert.Equal(t, ModeFirst, ParseMode("wat"))
}
