// Package pattern derives canonical deduplication keys from log messages by
// substituting variable substrings (identifiers, timestamps, addresses,
// counters) with fixed placeholder tokens.
package pattern

import "regexp"

// rule pairs a matcher with its placeholder. Rules are applied as a single
// left-to-right reduction; order matters because later rules must not
// re-match text already substituted by earlier ones.
type rule struct {
	re          *regexp.Regexp
	placeholder string
}

var rules = []rule{
	{regexp.MustCompile(`[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}`), "{UUID}"},
	{regexp.MustCompile(`[0-9a-fA-F]{16,}`), "{HEX}"},
	{regexp.MustCompile(`[0-9a-fA-F]{8,15}`), "{ID}"},
	{regexp.MustCompile(`\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}(?:\.\d+)?(?:Z|[+-]\d{2}:?\d{2})?`), "{TS}"},
	{regexp.MustCompile(`\b(?:\d{1,3}\.){3}\d{1,3}\b`), "{IP}"},
	{regexp.MustCompile(`\d{4,}`), "{N}"},
}

// maxLen bounds the pattern so a single pathological message cannot blow up
// dedup maps.
const maxLen = 200

// Normalize maps a message to its canonical pattern. It is deterministic and
// side-effect free; identical input always yields identical output.
func Normalize(message string) string {
	out := message
	for _, r := range rules {
		out = r.re.ReplaceAllString(out, r.placeholder)
	}
	if len(out) > maxLen {
		out = truncate(out, maxLen)
	}
	return out
}

// truncate cuts at a rune boundary so multi-byte characters near the limit
// are dropped whole rather than split.
func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
