package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRabinKarpSearch(t *testing.T) {
	tests := []struct {
		name            string
		text            string
		pattern         string
		wantOccurrences int
	}{
		{"single word", "hire a go developer", "go", 1},
		{"repeated word", "ab ab ab", "ab", 3},
		{"fused rejected", "golang", "go", 0},
		{"empty pattern", "text", "", 0},
		{"pattern longer than text", "ab", "abc", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RabinKarpSearch([]rune(tt.text), []rune(tt.pattern))
			assert.Equal(t, tt.wantOccurrences, got.Occurrences)
		})
	}
}

func TestRabinKarpNoCollisionNoVerification(t *testing.T) {
	// Every window hash differs from the pattern hash, so the only
	// comparisons are the per-window hash tests: n-m+1 of them.
	res := RabinKarpSearch([]rune("abcde"), []rune("xy"))
	assert.Equal(t, 0, res.Occurrences)
	assert.Equal(t, 4, res.Comparisons)
}

func TestRabinKarpCollisionRejectedByVerification(t *testing.T) {
	// Rune values above the base make distinct contents hash equal:
	// hash({2, 0}) = 2*256+0 = 512 = 1*256+256 = hash({1, 256}).
	text := []rune{2, 0}
	pattern := []rune{1, 256}
	res := RabinKarpSearch(text, pattern)
	assert.Equal(t, 0, res.Occurrences, "collision must not count as an occurrence")
	// One hash comparison plus one verification comparison that fails on
	// the first character.
	assert.Equal(t, 2, res.Comparisons)
}

func TestMulModMatchesSmallCases(t *testing.T) {
	assert.Equal(t, uint64(0), mulMod(0, 12345))
	assert.Equal(t, uint64(256), mulMod(1, 256))
	// (rkMod-1)*2 mod rkMod == rkMod-2.
	assert.Equal(t, rkMod-2, mulMod(rkMod-1, 2))
}
