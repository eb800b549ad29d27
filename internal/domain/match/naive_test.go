package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNaiveSearch(t *testing.T) {
	tests := []struct {
		name            string
		text            string
		pattern         string
		wantOccurrences int
		wantComparisons int
	}{
		// Exact match: m comparisons, boundary approved.
		{"exact", "go", "go", 1, 2},
		// i=0 full match rejected by boundary (2), i=1 mismatch (1),
		// i=2 full match rejected by boundary (2).
		{"fused occurrences rejected", "gogo", "go", 0, 5},
		// Two whole-word hits plus two single-comparison mismatches.
		{"two words", "go go", "go", 2, 6},
		{"no match", "xyz", "ab", 0, 2},
		{"empty pattern", "text", "", 0, 0},
		{"pattern longer than text", "ab", "abc", 0, 0},
		{"empty text", "", "a", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NaiveSearch([]rune(tt.text), []rune(tt.pattern))
			assert.Equal(t, tt.wantOccurrences, got.Occurrences, "occurrences")
			assert.Equal(t, tt.wantComparisons, got.Comparisons, "comparisons")
		})
	}
}

func TestNaiveSearchStopsInnerLoopEarly(t *testing.T) {
	// Every window mismatches on the first character: one comparison per
	// window, never more.
	res := NaiveSearch([]rune("bbbbb"), []rune("ab"))
	assert.Equal(t, 0, res.Occurrences)
	assert.Equal(t, 4, res.Comparisons)
}
