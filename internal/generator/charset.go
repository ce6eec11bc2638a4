package generator

import (
	"regexp"

	"github.com/nao1215/cyberkeygen/internal/model"
)

// Character sets. The order of concatenation in BuildCharset is fixed.
const (
	// Lowercase is the lowercase alphabet.
	Lowercase = "abcdefghijklmnopqrstuvwxyz"

	// Uppercase is the uppercase alphabet.
	Uppercase = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

	// Digits are the decimal digits.
	Digits = "0123456789"

	// Symbols is the symbol set used for random passwords.
	Symbols = "!@#$%^&*()_-+=[]{}|:;\"'<>,.?/~`"
)

var (
	// ambiguousChars matches characters easily confused with each other.
	ambiguousChars = regexp.MustCompile(`[0OIl1]`)

	// complexSymbols matches punctuation that is hard to read or type.
	complexSymbols = regexp.MustCompile("[{}\\[\\]|;:'\",./~`]")
)

// BuildCharset assembles the working alphabet from the inclusion flags.
//
// With ExcludeAmbiguous set, ambiguous characters and then complex
// symbols are removed. An empty result falls back to the lowercase alphabet;
// no error is raised for degenerate input.
func BuildCharset(opts model.GenerationOptions) string {
	var charset string
	if opts.IncludeLowercase {
		charset += Lowercase
	}
	if opts.IncludeUppercase {
		charset += Uppercase
	}
	if opts.IncludeNumbers {
		charset += Digits
	}
	if opts.IncludeSymbols {
		charset += Symbols
	}

	if opts.ExcludeAmbiguous {
		charset = ambiguousChars.ReplaceAllString(charset, "")
		charset = complexSymbols.ReplaceAllString(charset, "")
	}

	if charset == "" {
		charset = Lowercase
	}
	return charset
}
