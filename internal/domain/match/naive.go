package match

// NaiveSearch tries every start offset and compares characters left to
// right, stopping the inner loop on the first mismatch. Every character
// equality test increments Comparisons, including the one that fails.
// Scanning continues past a match; the occurrence count is total, not a
// first-hit boolean.
func NaiveSearch(text, pattern []rune) Result {
	n, m := len(text), len(pattern)
	if m == 0 || n < m {
		return Result{}
	}

	var res Result
	for i := 0; i <= n-m; i++ {
		j := 0
		for j < m {
			res.Comparisons++
			if text[i+j] != pattern[j] {
				break
			}
			j++
		}
		if j == m && isWordBoundary(text, i, i+m) {
			res.Occurrences++
		}
	}
	return res
}
