package model

import (
	"errors"
	"fmt"
	"strings"
)

// Tab names the generator that opens by default.
type Tab string

const (
	// TabRandom opens the password generator.
	TabRandom Tab = "random"

	// TabLeet opens the leet-speak transformer.
	TabLeet Tab = "leet"

	// TabPIN opens the PIN generator.
	TabPIN Tab = "pin"
)

// Default settings values.
const (
	// DefaultLength is the default password length.
	DefaultLength = 16

	// DefaultPinLength is the default PIN length.
	DefaultPinLength = 6

	// MaxLength bounds password and PIN lengths accepted from users.
	MaxLength = 1024
)

// Settings validation errors.
var (
	// ErrInvalidTab is returned when the default tab is not random, leet or pin.
	ErrInvalidTab = errors.New("invalid default tab: must be random, leet or pin")

	// ErrInvalidLength is returned when a default length is outside 1..MaxLength.
	ErrInvalidLength = errors.New("invalid default length: must be between 1 and 1024")
)

// ParseTab converts a string into a Tab.
func ParseTab(s string) (Tab, error) {
	switch tab := Tab(strings.ToLower(strings.TrimSpace(s))); tab {
	case TabRandom, TabLeet, TabPIN:
		return tab, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidTab, s)
	}
}

// Settings holds the persisted defaults of every generator option.
type Settings struct {
	DefaultTab              Tab  `json:"defaultTab" yaml:"defaultTab"`
	DefaultLength           int  `json:"defaultLength" yaml:"defaultLength"`
	DefaultPinLength        int  `json:"defaultPinLength" yaml:"defaultPinLength"`
	DefaultIncludeLowercase bool `json:"defaultIncludeLowercase" yaml:"defaultIncludeLowercase"`
	DefaultIncludeUppercase bool `json:"defaultIncludeUppercase" yaml:"defaultIncludeUppercase"`
	DefaultIncludeNumbers   bool `json:"defaultIncludeNumbers" yaml:"defaultIncludeNumbers"`
	DefaultIncludeSymbols   bool `json:"defaultIncludeSymbols" yaml:"defaultIncludeSymbols"`
	DefaultExcludeAmbiguous bool `json:"defaultExcludeAmbiguous" yaml:"defaultExcludeAmbiguous"`
	DefaultAvoidRepeating   bool `json:"defaultAvoidRepeating" yaml:"defaultAvoidRepeating"`
	DefaultPronounceable    bool `json:"defaultPronounceable" yaml:"defaultPronounceable"`
}

// DefaultSettings returns the hardcoded defaults used on first run and on reset.
func DefaultSettings() Settings {
	return Settings{
		DefaultTab:              TabRandom,
		DefaultLength:           DefaultLength,
		DefaultPinLength:        DefaultPinLength,
		DefaultIncludeLowercase: true,
		DefaultIncludeUppercase: true,
		DefaultIncludeNumbers:   true,
		DefaultIncludeSymbols:   true,
		DefaultExcludeAmbiguous: false,
		DefaultAvoidRepeating:   false,
		DefaultPronounceable:    false,
	}
}

// Validate checks the settings before they are saved.
// It returns the first problem found.
func (s Settings) Validate() error {
	if _, err := ParseTab(string(s.DefaultTab)); err != nil {
		return err
	}
	if s.DefaultLength < 1 || s.DefaultLength > MaxLength {
		return fmt.Errorf("%w: defaultLength=%d", ErrInvalidLength, s.DefaultLength)
	}
	if s.DefaultPinLength < 1 || s.DefaultPinLength > MaxLength {
		return fmt.Errorf("%w: defaultPinLength=%d", ErrInvalidLength, s.DefaultPinLength)
	}
	return nil
}

// PasswordOptions converts the settings into generator options.
func (s Settings) PasswordOptions() GenerationOptions {
	return GenerationOptions{
		Length:           s.DefaultLength,
		IncludeLowercase: s.DefaultIncludeLowercase,
		IncludeUppercase: s.DefaultIncludeUppercase,
		IncludeNumbers:   s.DefaultIncludeNumbers,
		IncludeSymbols:   s.DefaultIncludeSymbols,
		ExcludeAmbiguous: s.DefaultExcludeAmbiguous,
		AvoidRepeating:   s.DefaultAvoidRepeating,
		UsePronounceable: s.DefaultPronounceable,
	}
}

// Theme is the color scheme preference.
type Theme string

const (
	// ThemeLight is the light color scheme and the default.
	ThemeLight Theme = "light"

	// ThemeDark is the dark color scheme.
	ThemeDark Theme = "dark"
)

// ErrInvalidTheme is returned when a theme is neither dark nor light.
var ErrInvalidTheme = errors.New("invalid theme: must be dark or light")

// ParseTheme converts a string into a Theme.
func ParseTheme(s string) (Theme, error) {
	switch theme := Theme(strings.ToLower(strings.TrimSpace(s))); theme {
	case ThemeLight, ThemeDark:
		return theme, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidTheme, s)
	}
}

// Toggle returns the opposite theme.
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}
