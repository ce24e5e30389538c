package timeexpr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDuration_Strings(t *testing.T) {
	tests := []struct {
		input string
		want  int64
		ok    bool
	}{
		{"500ms", 500_000_000, true},
		{"1.5s", 1_500_000_000, true},
		{"250", 250, true}, // no unit means nanoseconds
		{"250ns", 250, true},
		{"2us", 2_000, true},
		{"2µs", 2_000, true},
		{"3m", 180_000_000_000, true},
		{"1h", 3_600_000_000_000, true},
		{"1d", 86_400_000_000_000, true},
		{"1w", 604_800_000_000_000, true},
		{"1.5S", 1_500_000_000, true}, // case-insensitive
		{"not-a-duration", 0, false},
		{"5 s", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParseDuration(tt.input)
		assert.Equal(t, tt.ok, ok, tt.input)
		assert.Equal(t, tt.want, got, tt.input)
	}
}

func TestParseDuration_NumericAndAbsent(t *testing.T) {
	got, ok := ParseDuration(float64(2500))
	assert.True(t, ok)
	assert.Equal(t, int64(2500), got)

	got, ok = ParseDuration(int64(99))
	assert.True(t, ok)
	assert.Equal(t, int64(99), got)

	_, ok = ParseDuration(nil)
	assert.False(t, ok)
}
