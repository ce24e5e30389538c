// Package logquery merges independent filter dimensions into a single
// backend search query string. It knows nothing about the backend's full
// query language beyond simple clause composition.
package logquery

import "strings"

// Facet is a single field equality filter. Values pass through verbatim and
// are assumed to be pre-sanitized tokens without whitespace or query
// metacharacters.
type Facet struct {
	Field string
	Value string
}

// Filters is a fixed collection of optional, independently specified filter
// dimensions. Zero values contribute nothing to the built query.
type Filters struct {
	// Query is free text passed through as the base clause.
	Query string
	// Keyword becomes a quoted exact-phrase clause.
	Keyword string
	// Pattern becomes a message-match clause.
	Pattern string
	// Facets are appended in declared order.
	Facets []Facet
}

// Build composes the query string. Clause order is fixed: base query,
// keyword, pattern, then facets. Clauses are joined with a single space and
// an empty filter set yields the universal wildcard.
func Build(f Filters) string {
	clauses := make([]string, 0, 3+len(f.Facets))
	if f.Query != "" {
		clauses = append(clauses, f.Query)
	}
	if f.Keyword != "" {
		clauses = append(clauses, `"`+escapeQuotes(f.Keyword)+`"`)
	}
	if f.Pattern != "" {
		clauses = append(clauses, `@message:~"`+escapeQuotes(f.Pattern)+`"`)
	}
	for _, facet := range f.Facets {
		if facet.Field == "" || facet.Value == "" {
			continue
		}
		clauses = append(clauses, facet.Field+":"+facet.Value)
	}
	if len(clauses) == 0 {
		return "*"
	}
	return strings.Join(clauses, " ")
}

func escapeQuotes(s string) string {
	return strings.ReplaceAll(s, `"`, `\"`)
}
