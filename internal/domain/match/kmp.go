package match

// buildLPS computes the failure function for pattern: lps[i] is the
// length of the longest proper prefix of pattern[:i+1] that is also a
// suffix of it. Standard construction with a length cursor that falls
// back through lps[length-1] on mismatch.
func buildLPS(pattern []rune) []int {
	m := len(pattern)
	lps := make([]int, m)
	length := 0
	i := 1
	for i < m {
		switch {
		case pattern[i] == pattern[length]:
			length++
			lps[i] = length
			i++
		case length != 0:
			length = lps[length-1]
		default:
			lps[i] = 0
			i++
		}
	}
	return lps
}

// KMPSearch scans text with two cursors and never moves the text cursor
// backwards. Each text-pattern character probe increments Comparisons.
// After a full match the pattern cursor falls back via the LPS table
// whether or not the boundary check accepted the span, so adjacent and
// overlapping occurrences are not missed.
func KMPSearch(text, pattern []rune) Result {
	n, m := len(text), len(pattern)
	if m == 0 || n < m {
		return Result{}
	}

	lps := buildLPS(pattern)
	var res Result
	i, j := 0, 0
	for i < n {
		res.Comparisons++
		if text[i] == pattern[j] {
			i++
			j++
			if j == m {
				if isWordBoundary(text, i-m, i) {
					res.Occurrences++
				}
				j = lps[j-1]
			}
		} else if j != 0 {
			j = lps[j-1]
		} else {
			i++
		}
	}
	return res
}
