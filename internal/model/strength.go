package model

import "strings"

// Strength represents how resistant a generated value is to guessing.
// The numeric value doubles as the 0-4 score shown next to a password.
// String() and Slug() provide the display text and the stored label.
type Strength int

const (
	// StrengthNone is the level of an empty value.
	StrengthNone Strength = iota

	// StrengthWeak is the level of short values or values with few character classes.
	StrengthWeak

	// StrengthModerate is the level of medium-length values.
	StrengthModerate

	// StrengthStrong is the level of long values.
	StrengthStrong

	// StrengthVeryStrong is the level of values of 16+ characters
	// drawing on at least three character classes.
	StrengthVeryStrong
)

// Score returns the 0-4 score for the level.
func (s Strength) Score() int {
	if s < StrengthNone || s > StrengthVeryStrong {
		return 0
	}
	return int(s)
}

// String returns a human-readable representation of the strength level.
func (s Strength) String() string {
	switch s {
	case StrengthNone:
		return "None"
	case StrengthWeak:
		return "Weak"
	case StrengthModerate:
		return "Moderate"
	case StrengthStrong:
		return "Strong"
	case StrengthVeryStrong:
		return "Very Strong"
	default:
		return "Unknown"
	}
}

// Slug returns the label stored in history entries, e.g. "very-strong".
func (s Strength) Slug() string {
	return strings.ReplaceAll(strings.ToLower(s.String()), " ", "-")
}

// ParseStrength converts a stored label back into a Strength.
// Unknown labels map to StrengthNone.
func ParseStrength(slug string) Strength {
	switch strings.ToLower(strings.TrimSpace(slug)) {
	case "weak":
		return StrengthWeak
	case "moderate":
		return StrengthModerate
	case "strong":
		return StrengthStrong
	case "very-strong", "very strong":
		return StrengthVeryStrong
	default:
		return StrengthNone
	}
}

// AllStrengths returns the scored levels from weakest to strongest.
func AllStrengths() []Strength {
	return []Strength{StrengthWeak, StrengthModerate, StrengthStrong, StrengthVeryStrong}
}

// MarshalText encodes the level as its slug so JSON output reads
// "very-strong" rather than 4.
func (s Strength) MarshalText() ([]byte, error) {
	return []byte(s.Slug()), nil
}

// UnmarshalText decodes a slug written by MarshalText.
func (s *Strength) UnmarshalText(text []byte) error {
	*s = ParseStrength(string(text))
	return nil
}
