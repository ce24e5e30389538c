// Package sample reduces a bulk result set of log records into a bounded,
// representative subset. It never fetches data itself; callers wanting
// "spread" or "diverse" coverage over a larger universe than the limit must
// over-fetch before selecting.
package sample

import (
	"github.com/hupe1980/logsift/core"
	"github.com/hupe1980/logsift/pattern"
)

// Mode names a selection strategy.
type Mode string

const (
	// ModeFirst returns the leading records unchanged (chronological
	// truncation when the input is time ordered).
	ModeFirst Mode = "first"
	// ModeSpread picks evenly spaced indices across the whole input.
	ModeSpread Mode = "spread"
	// ModeDiverse keeps one exemplar per distinct message pattern, biased
	// toward one record per failure class rather than even time coverage.
	ModeDiverse Mode = "diverse"
)

// ParseMode maps a raw mode string to a Mode. Unknown values degrade to
// ModeFirst, consistent with the silent-fallback policy applied to all
// caller-supplied input.
func ParseMode(s string) Mode {
	switch Mode(s) {
	case ModeSpread:
		return ModeSpread
	case ModeDiverse:
		return ModeDiverse
	default:
		return ModeFirst
	}
}

// Result is the outcome of a selection. DistinctPatterns is populated for
// ModeDiverse only.
type Result struct {
	Samples          []core.LogRecord `json:"samples"`
	DistinctPatterns int              `json:"distinct_patterns,omitempty"`
}

// Select picks at most limit records from the input using the given mode.
// Selection is deterministic for a given input and never reorders records.
func Select(records []core.LogRecord, limit int, mode Mode) Result {
	switch mode {
	case ModeSpread:
		return Result{Samples: spread(records, limit)}
	case ModeDiverse:
		kept, distinct := diverse(records, limit)
		return Result{Samples: kept, DistinctPatterns: distinct}
	default:
		return Result{Samples: first(records, limit)}
	}
}

func first(records []core.LogRecord, limit int) []core.LogRecord {
	if limit < 0 {
		limit = 0
	}
	if len(records) <= limit {
		return records
	}
	return records[:limit]
}

// spread chooses index floor(i*n/limit) for i in [0, limit). Index 0 is
// always included; the final record usually is not.
func spread(records []core.LogRecord, limit int) []core.LogRecord {
	n := len(records)
	if n <= limit {
		return records
	}
	if limit <= 0 {
		return nil
	}
	out := make([]core.LogRecord, 0, limit)
	for i := 0; i < limit; i++ {
		out = append(out, records[i*n/limit])
	}
	return out
}

// diverse scans in order keeping the first record per distinct pattern and
// stops once limit distinct patterns have been collected.
func diverse(records []core.LogRecord, limit int) ([]core.LogRecord, int) {
	seen := make(map[string]struct{})
	var kept []core.LogRecord
	for _, rec := range records {
		if len(seen) >= limit {
			break
		}
		key := pattern.Normalize(rec.Message)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		kept = append(kept, rec)
	}
	return kept, len(seen)
}
