package logquery

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuild(t *testing.T) {
	tests := []struct {
		name    string
		filters Filters
		want    string
	}{
		{
			name:    "empty set yields wildcard",
			filters: Filters{},
			want:    "*",
		},
		{
			name:    "keyword and facet in declared order",
			filters: Filters{Keyword: "timeout", Facets: []Facet{{"service", "web"}}},
			want:    `"timeout" service:web`,
		},
		{
			name: "all dimensions in fixed order",
			filters: Filters{
				Query:   "status:error",
				Keyword: "connection reset",
				Pattern: "retry [0-9]+",
				Facets:  []Facet{{"env", "prod"}, {"host", "web-1"}},
			},
			want: `status:error "connection reset" @message:~"retry [0-9]+" env:prod host:web-1`,
		},
		{
			name:    "embedded quotes are escaped",
			filters: Filters{Keyword: `say "hi"`},
			want:    `"say \"hi\""`,
		},
		{
			name:    "pattern clause escaping",
			filters: Filters{Pattern: `"quoted"`},
			want:    `@message:~"\"quoted\""`,
		},
		{
			name:    "incomplete facets contribute nothing",
			filters: Filters{Query: "warn", Facets: []Facet{{"service", ""}, {"", "web"}}},
			want:    "warn",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Build(tt.filters))
		})
	}
}
