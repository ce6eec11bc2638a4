package model

import (
	"time"

	"github.com/google/uuid"
)

// EntryType tags what produced a history entry.
type EntryType string

const (
	// EntryTypeRandom is a random or pronounceable password.
	EntryTypeRandom EntryType = "random"

	// EntryTypeLeet is leet-speak text.
	EntryTypeLeet EntryType = "leet"

	// EntryTypePIN is a numeric PIN.
	EntryTypePIN EntryType = "pin"
)

// DisplayName returns the label used in history tables.
// Leet-speak entries are labeled "Pattern".
func (t EntryType) DisplayName() string {
	switch t {
	case EntryTypeRandom:
		return "Random"
	case EntryTypeLeet:
		return "Pattern"
	case EntryTypePIN:
		return "PIN"
	default:
		return string(t)
	}
}

// Valid reports whether t is one of the known entry types.
func (t EntryType) Valid() bool {
	switch t {
	case EntryTypeRandom, EntryTypeLeet, EntryTypePIN:
		return true
	default:
		return false
	}
}

// HistoryEntry is one generated value kept in history or favorites.
type HistoryEntry struct {
	// ID identifies the entry independently of its position in a list.
	// Entries written by older versions have no ID.
	ID string `json:"id,omitempty"`

	// Password is the generated password, PIN or leet text.
	Password string `json:"password"`

	// Timestamp is when the value was generated.
	Timestamp time.Time `json:"timestamp"`

	// Strength is the strength label slug (e.g. "very-strong").
	Strength string `json:"strength"`

	// Type is what produced the value.
	Type EntryType `json:"type"`
}

// NewHistoryEntry creates an entry stamped with a fresh ID.
func NewHistoryEntry(value string, entryType EntryType, strength Strength, now time.Time) HistoryEntry {
	return HistoryEntry{
		ID:        uuid.NewString(),
		Password:  value,
		Timestamp: now.UTC(),
		Strength:  strength.Slug(),
		Type:      entryType,
	}
}

// StrengthLevel parses the stored strength label.
func (e HistoryEntry) StrengthLevel() Strength {
	return ParseStrength(e.Strength)
}
