package generator

import (
	"strings"
	"unicode"
)

// LeetProbability is the chance that a mappable character is substituted.
const LeetProbability = 0.7

// leetTable maps lowercase letters to their leet-speak substitutes.
var leetTable = map[rune]rune{
	'a': '@', 'b': '8', 'c': '(', 'd': 'D', 'e': '3', 'f': 'F', 'g': '6', 'h': 'H',
	'i': '1', 'j': 'J', 'k': 'K', 'l': 'L', 'm': 'M', 'n': 'N', 'o': '0', 'p': 'P',
	'q': 'Q', 'r': 'R', 's': '5', 't': '7', 'u': 'U', 'v': 'V', 'w': 'W', 'x': 'X',
	'y': 'Y', 'z': 'Z',
}

// LeetSubstitute returns the table substitute for r and whether one exists.
// Lookup is case-insensitive.
func LeetSubstitute(r rune) (rune, bool) {
	sub, ok := leetTable[unicode.ToLower(r)]
	return sub, ok
}

// Leet converts text to leet-speak. Each character is substituted with
// probability LeetProbability and left as is otherwise; characters without a
// table entry are always left as is.
func Leet(src Source, text string) string {
	if text == "" {
		return ""
	}
	src = orDefault(src)

	var sb strings.Builder
	sb.Grow(len(text))
	for _, r := range text {
		if src.Float64() >= LeetProbability {
			sb.WriteRune(r)
			continue
		}
		if sub, ok := LeetSubstitute(r); ok {
			sb.WriteRune(sub)
		} else {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
