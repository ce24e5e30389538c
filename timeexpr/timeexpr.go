package timeexpr

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"
)

// Result is the two-variant outcome of parsing a time expression. FellBack is
// true only when an input was present but matched no grammar; absent input
// resolving to the default is considered normal, not a fallback.
type Result struct {
	Seconds  int64
	FellBack bool
}

var (
	// "15m", "2h", "3d": an offset backwards from now.
	simpleRelativeRe = regexp.MustCompile(`^(\d+)([smhd])$`)
	// "3d@11:45", "2h 30:15": an offset backwards plus an explicit clock time.
	relativeClockRe = regexp.MustCompile(`^(\d+)([dh])[@ ](\d{1,2}):(\d{2})(?::(\d{2}))?$`)
	// "today@09:00", "yesterday 23:59:59".
	keywordClockRe = regexp.MustCompile(`(?i)^(today|yesterday)[@ ](\d{1,2}):(\d{2})(?::(\d{2}))?$`)
)

var unitSeconds = map[string]int64{
	"s": 1,
	"m": 60,
	"h": 3600,
	"d": 86400,
}

// absoluteLayouts are tried in order for expressions that carry a full
// calendar date. Layouts without an explicit zone are interpreted in the
// process local zone, matching the day-relative grammars.
var absoluteLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
}

// Parse resolves a time expression to epoch seconds. The input may be a
// string in one of the supported grammars, a number (taken verbatim as epoch
// seconds) or nil/absent. Anything unparseable resolves to def; Parse never
// fails.
func Parse(input any, def int64, clock clockwork.Clock) int64 {
	return ParseDetailed(input, def, clock).Seconds
}

// ParseDetailed is Parse plus fallback visibility. Diagnostic handling of
// fallbacks (logging, counters) is deliberately left to callers.
func ParseDetailed(input any, def int64, clock clockwork.Clock) Result {
	switch v := input.(type) {
	case nil:
		return Result{Seconds: def}
	case int:
		return Result{Seconds: int64(v)}
	case int64:
		return Result{Seconds: v}
	case float64:
		// JSON numbers decode as float64 and are already epoch seconds.
		return Result{Seconds: int64(v)}
	case string:
		if v == "" {
			return Result{Seconds: def}
		}
		if sec, ok := parseString(v, clock); ok {
			return Result{Seconds: sec}
		}
		return Result{Seconds: def, FellBack: true}
	default:
		return Result{Seconds: def, FellBack: true}
	}
}

// parseString tries each grammar in a fixed order; the first match wins.
func parseString(s string, clock clockwork.Clock) (int64, bool) {
	if m := simpleRelativeRe.FindStringSubmatch(s); m != nil {
		n, _ := strconv.ParseInt(m[1], 10, 64)
		return clock.Now().Unix() - n*unitSeconds[m[2]], true
	}

	if m := relativeClockRe.FindStringSubmatch(s); m != nil {
		n, _ := strconv.Atoi(m[1])
		hh, mm, ss := clockFields(m[3], m[4], m[5])
		now := clock.Now().In(time.Local)
		if m[2] == "d" {
			// Day offsets anchor at local midnight N days ago and apply the
			// full clock time.
			base := now.AddDate(0, 0, -n)
			return time.Date(base.Year(), base.Month(), base.Day(), hh, mm, ss, 0, time.Local).Unix(), true
		}
		// Hour offsets keep the hour of now-Nh and overwrite only minute and
		// second. The mismatch with the day branch is longstanding observed
		// behavior that callers may rely on, so it is preserved as is.
		base := now.Add(-time.Duration(n) * time.Hour)
		return time.Date(base.Year(), base.Month(), base.Day(), base.Hour(), mm, ss, 0, time.Local).Unix(), true
	}

	if m := keywordClockRe.FindStringSubmatch(s); m != nil {
		days := 0
		if strings.EqualFold(m[1], "yesterday") {
			days = 1
		}
		hh, mm, ss := clockFields(m[2], m[3], m[4])
		base := clock.Now().In(time.Local).AddDate(0, 0, -days)
		return time.Date(base.Year(), base.Month(), base.Day(), hh, mm, ss, 0, time.Local).Unix(), true
	}

	for _, layout := range absoluteLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t.Unix(), true
		}
	}

	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n, true
	}

	return 0, false
}

func clockFields(hh, mm, ss string) (int, int, int) {
	h, _ := strconv.Atoi(hh)
	m, _ := strconv.Atoi(mm)
	s := 0
	if ss != "" {
		s, _ = strconv.Atoi(ss)
	}
	return h, m, s
}
