package extract

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// singleLetterSkills are one-character tokens that are real skills and
// survive the minimum-length filter.
var singleLetterSkills = map[string]bool{"c": true, "r": true}

// Clean normalizes extracted document text for matching:
//
//   - NFKD decomposition, so accented characters reduce to their ASCII
//     base letter (ligatures and width variants likewise)
//   - every rune outside ASCII letters, digits and + # . _ becomes a
//     space, preserving word boundaries instead of fusing neighbors
//   - whitespace collapses to single spaces
//   - trailing dots are trimmed from tokens ("experience." → "experience"
//     but "node.js" survives)
//   - single-character tokens are dropped unless they are known skills
//
// Case is preserved; folding is the matcher's concern.
func Clean(s string) string {
	if s == "" {
		return ""
	}

	decomposed := norm.NFKD.String(s)
	mapped := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '+' || r == '#' || r == '.' || r == '_':
			return r
		case unicode.Is(unicode.Mn, r):
			// Combining marks left over from NFKD vanish; turning them
			// into spaces would split the word they decorated.
			return -1
		}
		return ' '
	}, decomposed)

	fields := strings.Fields(mapped)
	tokens := fields[:0]
	for _, tok := range fields {
		tok = strings.TrimRight(tok, ".")
		if tok == "" {
			continue
		}
		if len(tok) < 2 && !singleLetterSkills[strings.ToLower(tok)] {
			continue
		}
		tokens = append(tokens, tok)
	}
	return strings.Join(tokens, " ")
}
