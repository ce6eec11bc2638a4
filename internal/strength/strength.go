package strength

import "github.com/nao1215/cyberkeygen/internal/model"

// Length thresholds of the strength bands.
const (
	moderateLength   = 8
	strongLength     = 12
	veryStrongLength = 16

	// richClassCount is the number of character classes that promotes a
	// value one band.
	richClassCount = 3
)

// Result is the outcome of scoring a value.
type Result struct {
	// Level is the strength level.
	Level model.Strength

	// Score is the 0-4 score of Level.
	Score int

	// Classes is the number of character classes present (0-4).
	Classes int
}

// Text returns the display text, e.g. "Very Strong".
func (r Result) Text() string {
	return r.Level.String()
}

// Evaluate scores value. An empty value scores None/0.
func Evaluate(value string) Result {
	if value == "" {
		return Result{Level: model.StrengthNone}
	}

	classes := CountClasses(value)
	rich := classes >= richClassCount
	// Length counts characters, not bytes, so leet text with multibyte
	// letters is banded by what the user sees.
	length := len([]rune(value))

	var level model.Strength
	switch {
	case length < moderateLength:
		level = model.StrengthWeak
	case length < strongLength:
		level = promote(model.StrengthWeak, rich)
	case length < veryStrongLength:
		level = promote(model.StrengthModerate, rich)
	default:
		level = promote(model.StrengthStrong, rich)
	}

	return Result{Level: level, Score: level.Score(), Classes: classes}
}

// Level is shorthand for Evaluate(value).Level.
func Level(value string) model.Strength {
	return Evaluate(value).Level
}

func promote(base model.Strength, rich bool) model.Strength {
	if rich {
		return base + 1
	}
	return base
}

// CountClasses returns how many of lowercase ASCII letters, uppercase ASCII
// letters, digits and everything else appear in value.
func CountClasses(value string) int {
	var lower, upper, digit, other bool
	for _, r := range value {
		switch {
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		default:
			other = true
		}
	}

	count := 0
	for _, present := range []bool{lower, upper, digit, other} {
		if present {
			count++
		}
	}
	return count
}
