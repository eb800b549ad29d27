// Package match implements exact keyword search over document text.
//
// Three independent algorithms — naive scan, Rabin-Karp rolling hash, and
// Knuth-Morris-Pratt — share one whole-word boundary rule and count the
// primitive character comparisons they perform. For a fixed text and
// pattern all three report the same occurrence count; comparison counts
// are algorithm-specific and reproducible.
package match

import "strings"

// Algorithm identifies one of the fixed search algorithm variants.
type Algorithm int

const (
	Naive Algorithm = iota
	RabinKarp
	KMP
)

// Algorithms is the canonical iteration order for all variants.
var Algorithms = []Algorithm{Naive, RabinKarp, KMP}

// String returns the display name used in tables and reports.
func (a Algorithm) String() string {
	switch a {
	case Naive:
		return "Naive"
	case RabinKarp:
		return "Rabin-Karp"
	case KMP:
		return "Knuth-Morris-Pratt"
	}
	return "unknown"
}

// Result holds the outcome of searching one pattern with one algorithm.
// An empty pattern, or a pattern longer than the text, yields the zero
// Result by convention — never an error, never "matches everywhere".
type Result struct {
	Occurrences int
	Comparisons int
}

// Search dispatches to the algorithm's search function. Text and pattern
// must be prepared with Runes using the same folding mode so that all
// algorithms see identical character sequences.
func (a Algorithm) Search(text, pattern []rune) Result {
	switch a {
	case Naive:
		return NaiveSearch(text, pattern)
	case RabinKarp:
		return RabinKarpSearch(text, pattern)
	case KMP:
		return KMPSearch(text, pattern)
	}
	return Result{}
}

// Contains reports whether pattern occurs in text as a whole word.
// Defined as Occurrences > 0; it never stops at the first match.
func (a Algorithm) Contains(text, pattern []rune) bool {
	return a.Search(text, pattern).Occurrences > 0
}

// Runes converts s into the character sequence the matchers operate on.
// When fold is true the string is lowercased first; callers must fold
// text and patterns identically.
func Runes(s string, fold bool) []rune {
	if fold {
		s = strings.ToLower(s)
	}
	return []rune(s)
}
