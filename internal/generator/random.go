package generator

import (
	"strings"

	"github.com/nao1215/cyberkeygen/internal/model"
)

// Retry caps for avoid-repeating mode.
const (
	// MaxPasswordAttempts is how many draws a password position gets before
	// a repeated character is accepted.
	MaxPasswordAttempts = 50

	// MaxPINAttempts is the same cap for PIN digits.
	MaxPINAttempts = 20
)

// RandomPassword generates a password from the charset selected by opts.
// When opts.UsePronounceable is set it delegates to Pronounceable.
//
// With AvoidRepeating, each position is redrawn while the candidate already
// occurs anywhere in the password, for at most MaxPasswordAttempts draws.
// This reduces repeats but does not prevent them: when Length exceeds the
// charset size repeats are unavoidable.
func RandomPassword(src Source, opts model.GenerationOptions) string {
	if opts.UsePronounceable {
		return Pronounceable(src, opts.Length, opts.IncludeUppercase, opts.IncludeNumbers, opts.IncludeSymbols)
	}
	return drawFrom(orDefault(src), BuildCharset(opts), opts.Length, opts.AvoidRepeating, MaxPasswordAttempts)
}

// PIN generates a numeric PIN of the given length.
// avoidRepeating uses the same bounded redraw as RandomPassword with a
// cap of MaxPINAttempts.
func PIN(src Source, length int, avoidRepeating bool) string {
	return drawFrom(orDefault(src), Digits, length, avoidRepeating, MaxPINAttempts)
}

// drawFrom picks length characters from charset. charset must be ASCII.
func drawFrom(src Source, charset string, length int, avoidRepeating bool, maxAttempts int) string {
	if length <= 0 || charset == "" {
		return ""
	}

	var sb strings.Builder
	sb.Grow(length)
	used := make(map[byte]bool, len(charset))

	for range length {
		var c byte
		for attempt := 1; ; attempt++ {
			c = charset[src.IntN(len(charset))]
			if !avoidRepeating || !used[c] || attempt >= maxAttempts {
				break
			}
		}
		sb.WriteByte(c)
		used[c] = true
	}

	return sb.String()
}
