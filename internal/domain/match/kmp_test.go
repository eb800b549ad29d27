package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildLPS(t *testing.T) {
	tests := []struct {
		pattern string
		want    []int
	}{
		{"aabaa", []int{0, 1, 0, 1, 2}},
		{"aaaa", []int{0, 1, 2, 3}},
		{"abcd", []int{0, 0, 0, 0}},
		{"abab", []int{0, 0, 1, 2}},
		{"a", []int{0}},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			assert.Equal(t, tt.want, buildLPS([]rune(tt.pattern)))
		})
	}
}

func TestKMPSearch(t *testing.T) {
	tests := []struct {
		name            string
		text            string
		pattern         string
		wantOccurrences int
	}{
		{"single word", "python developer", "python", 1},
		{"repeated word", "sql and sql and sql", "sql", 3},
		{"fused rejected", "mysql", "sql", 0},
		{"adjacent after rejected match", "aabaa aabaa", "aabaa", 2},
		{"empty pattern", "text", "", 0},
		{"pattern longer than text", "ab", "abc", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := KMPSearch([]rune(tt.text), []rune(tt.pattern))
			assert.Equal(t, tt.wantOccurrences, got.Occurrences)
		})
	}
}

func TestKMPTextCursorNeverBacktracks(t *testing.T) {
	// Worst case for the naive scan: KMP must probe each text position a
	// bounded number of times, so comparisons stay under 2n.
	text := []rune("aaaaaaaaaaaaaaaaaaab")
	pattern := []rune("aaab")
	res := KMPSearch(text, pattern)
	assert.Equal(t, 1, res.Occurrences)
	assert.LessOrEqual(t, res.Comparisons, 2*len(text))
}
