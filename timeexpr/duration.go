package timeexpr

import (
	"regexp"
	"strconv"
	"strings"
)

var durationRe = regexp.MustCompile(`^(\d+(?:\.\d+)?)(ns|µs|us|ms|s|m|h|d|w)?$`)

// unitNanos maps a duration suffix to nanoseconds. A missing suffix means the
// value is already nanoseconds.
var unitNanos = map[string]float64{
	"":   1,
	"ns": 1,
	"µs": 1e3,
	"us": 1e3,
	"ms": 1e6,
	"s":  1e9,
	"m":  6e10,
	"h":  3.6e12,
	"d":  8.64e13,
	"w":  6.048e14,
}

// ParseDuration resolves a duration input to integer nanoseconds. Numbers are
// taken verbatim as nanoseconds; strings are matched against "<value><unit>"
// with an optional fractional value. The second return is false when no
// duration was requested or the input matched nothing; ParseDuration never
// fails.
func ParseDuration(input any) (int64, bool) {
	switch v := input.(type) {
	case nil:
		return 0, false
	case int:
		return int64(v), true
	case int64:
		return v, true
	case float64:
		return int64(v), true
	case string:
		if v == "" {
			return 0, false
		}
		s := strings.ToLower(v)
		if m := durationRe.FindStringSubmatch(s); m != nil {
			if val, err := strconv.ParseFloat(m[1], 64); err == nil {
				return int64(val * unitNanos[m[2]]), true
			}
		}
		if n, err := strconv.ParseInt(s, 10, 64); err == nil {
			return n, true
		}
		return 0, false
	default:
		return 0, false
	}
}
