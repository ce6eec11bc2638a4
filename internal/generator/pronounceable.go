package generator

import "strings"

const (
	consonants = "bcdfghjklmnprstvwyz"
	vowels     = "aeiou"

	// pronounceableSymbols is the reduced symbol set spliced into
	// pronounceable passwords.
	pronounceableSymbols = "!@#$%^&*-_+="
)

// Pronounceable builds a password from consonant-vowel syllables.
//
// Pairs are appended while at least two slots remain; a single trailing slot
// gets one letter from consonants+vowels. Afterwards, in this order, one
// random position is uppercased, one is overwritten with a digit and one with
// a symbol, each only when requested. Positions are drawn independently, so a
// later injection may overwrite an earlier one. The result always has exactly
// length characters.
func Pronounceable(src Source, length int, includeUppercase, includeNumbers, includeSymbols bool) string {
	if length <= 0 {
		return ""
	}
	src = orDefault(src)

	buf := make([]byte, 0, length)
	for len(buf) < length {
		if len(buf)+2 <= length {
			buf = append(buf, pick(src, consonants), pick(src, vowels))
		} else {
			buf = append(buf, pick(src, consonants+vowels))
		}
	}

	if includeUppercase {
		pos := src.IntN(len(buf))
		buf[pos] = strings.ToUpper(string(buf[pos]))[0]
	}
	if includeNumbers {
		pos := src.IntN(len(buf))
		buf[pos] = pick(src, Digits)
	}
	if includeSymbols {
		pos := src.IntN(len(buf))
		buf[pos] = pick(src, pronounceableSymbols)
	}

	return string(buf)
}

// pick returns a uniformly chosen byte of set.
func pick(src Source, set string) byte {
	return set[src.IntN(len(set))]
}
