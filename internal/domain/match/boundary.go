package match

import "unicode"

// isWordBoundary reports whether the half-open span [start, end) of text
// is a whole word: the character before start and the character at end
// must be non-alphanumeric, with text edges acting as sentinels.
func isWordBoundary(text []rune, start, end int) bool {
	if start > 0 && isAlnum(text[start-1]) {
		return false
	}
	if end < len(text) && isAlnum(text[end]) {
		return false
	}
	return true
}

func isAlnum(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
