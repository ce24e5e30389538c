package timeexpr

// DefaultMinSpan is the minimum width of a validated time range in seconds.
const DefaultMinSpan int64 = 60

// ClampRange normalizes a (from, to) pair into a well-formed range. An
// inverted pair is treated as an ordering mistake and swapped; a range
// narrower than minSpan is widened forward from from. The result always
// satisfies from < to and to-from >= minSpan.
func ClampRange(from, to, minSpan int64) (int64, int64) {
	if minSpan <= 0 {
		minSpan = DefaultMinSpan
	}
	if from > to {
		from, to = to, from
	}
	if to-from < minSpan {
		to = from + minSpan
	}
	return from, to
}

// ClampRangeDefault applies ClampRange with DefaultMinSpan.
func ClampRangeDefault(from, to int64) (int64, int64) {
	return ClampRange(from, to, DefaultMinSpan)
}
