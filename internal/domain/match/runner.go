package match

import "time"

// PatternResult pairs a pattern with its search outcome.
type PatternResult struct {
	Pattern string
	Result
}

// Run holds one algorithm's full pass over a pattern list: per-pattern
// occurrence and comparison counts plus the wall-clock time of the pass.
type Run struct {
	Algorithm        Algorithm
	Elapsed          time.Duration
	Patterns         []PatternResult
	TotalComparisons int64
}

// Matched returns per-pattern presence, keyed by the original pattern
// string. An empty pattern is never present.
func (r Run) Matched() map[string]bool {
	m := make(map[string]bool, len(r.Patterns))
	for _, p := range r.Patterns {
		m[p.Pattern] = p.Occurrences > 0
	}
	return m
}

// RunAll executes every algorithm against every pattern over one text.
// Each algorithm's Elapsed covers its whole pass over the pattern list,
// not a single pattern. Empty patterns yield (0, 0) on all algorithms.
// When caseSensitive is false, text and patterns are folded identically
// before any algorithm runs, so folding cost is outside the timings.
func RunAll(text string, patterns []string, caseSensitive bool) []Run {
	tr := Runes(text, !caseSensitive)
	prs := make([][]rune, len(patterns))
	for i, p := range patterns {
		prs[i] = Runes(p, !caseSensitive)
	}

	runs := make([]Run, 0, len(Algorithms))
	for _, algo := range Algorithms {
		run := Run{Algorithm: algo, Patterns: make([]PatternResult, len(patterns))}
		start := time.Now()
		for i, pr := range prs {
			res := algo.Search(tr, pr)
			run.Patterns[i] = PatternResult{Pattern: patterns[i], Result: res}
			run.TotalComparisons += int64(res.Comparisons)
		}
		run.Elapsed = time.Since(start)
		runs = append(runs, run)
	}
	return runs
}
