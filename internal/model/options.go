package model

// GenerationOptions holds the inputs for random and pronounceable password
// generation. It mirrors the generator form: a length slider plus a set of
// independent checkboxes.
//
// No cross-field invariants are enforced. When every inclusion flag is false
// the generator falls back to the lowercase alphabet instead of failing.
type GenerationOptions struct {
	// Length is the number of characters to produce.
	Length int `json:"length" yaml:"length"`

	// IncludeLowercase adds a-z to the charset.
	IncludeLowercase bool `json:"includeLowercase" yaml:"includeLowercase"`

	// IncludeUppercase adds A-Z to the charset. For pronounceable passwords
	// it uppercases one character.
	IncludeUppercase bool `json:"includeUppercase" yaml:"includeUppercase"`

	// IncludeNumbers adds 0-9 to the charset. For pronounceable passwords
	// it splices in one digit.
	IncludeNumbers bool `json:"includeNumbers" yaml:"includeNumbers"`

	// IncludeSymbols adds the symbol set to the charset. For pronounceable
	// passwords it splices in one symbol.
	IncludeSymbols bool `json:"includeSymbols" yaml:"includeSymbols"`

	// ExcludeAmbiguous strips visually confusable characters and complex
	// punctuation from the charset.
	ExcludeAmbiguous bool `json:"excludeAmbiguous" yaml:"excludeAmbiguous"`

	// AvoidRepeating makes the generator redraw characters that already
	// appear in the output, up to a fixed number of attempts.
	AvoidRepeating bool `json:"avoidRepeating" yaml:"avoidRepeating"`

	// UsePronounceable switches to consonant-vowel syllable generation.
	UsePronounceable bool `json:"usePronounceable" yaml:"usePronounceable"`
}
