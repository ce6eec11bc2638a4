package model

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

// TestEntryTypeDisplayName verifies the labels shown in history tables.
func TestEntryTypeDisplayName(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		entryType EntryType
		expected  string
	}{
		{EntryTypeRandom, "Random"},
		{EntryTypeLeet, "Pattern"},
		{EntryTypePIN, "PIN"},
		{EntryType("custom"), "custom"},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			t.Parallel()
			if got := tc.entryType.DisplayName(); got != tc.expected {
				t.Errorf("got %q, expected %q", got, tc.expected)
			}
		})
	}
}

// TestNewHistoryEntry verifies entries are stamped and labelled.
func TestNewHistoryEntry(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.FixedZone("JST", 9*3600))
	entry := NewHistoryEntry("abc123XYZ!", EntryTypeRandom, StrengthModerate, now)

	if entry.ID == "" {
		t.Error("expected entry to have an ID")
	}
	if entry.Strength != "moderate" {
		t.Errorf("expected strength 'moderate', got %q", entry.Strength)
	}
	if entry.Timestamp.Location() != time.UTC {
		t.Error("expected timestamp to be stored in UTC")
	}
	if !entry.Timestamp.Equal(now) {
		t.Errorf("expected timestamp %v, got %v", now, entry.Timestamp)
	}
	if entry.StrengthLevel() != StrengthModerate {
		t.Errorf("expected StrengthLevel to round-trip, got %v", entry.StrengthLevel())
	}

	other := NewHistoryEntry("abc123XYZ!", EntryTypeRandom, StrengthModerate, now)
	if other.ID == entry.ID {
		t.Error("expected distinct IDs for distinct entries")
	}
}

// TestHistoryEntryJSON verifies the stored field names.
func TestHistoryEntryJSON(t *testing.T) {
	t.Parallel()

	raw := `{"password":"p@55","timestamp":"2024-05-01T10:20:30.000Z","strength":"weak","type":"leet"}`

	var entry HistoryEntry
	if err := json.Unmarshal([]byte(raw), &entry); err != nil {
		t.Fatalf("failed to decode legacy entry: %v", err)
	}
	if entry.Password != "p@55" || entry.Type != EntryTypeLeet || entry.Strength != "weak" {
		t.Errorf("unexpected entry: %+v", entry)
	}
	if entry.Timestamp.IsZero() {
		t.Error("expected timestamp to be parsed")
	}

	out, err := json.Marshal(entry)
	if err != nil {
		t.Fatalf("failed to encode entry: %v", err)
	}
	if strings.Contains(string(out), `"id"`) {
		t.Error("expected empty ID to be omitted")
	}
}

// TestEntryReportCounts tests the per-level and per-type counters.
func TestEntryReportCounts(t *testing.T) {
	t.Parallel()

	now := time.Now()
	report := NewEntryReport("History", []HistoryEntry{
		NewHistoryEntry("a", EntryTypePIN, StrengthWeak, now),
		NewHistoryEntry("b", EntryTypePIN, StrengthWeak, now),
		NewHistoryEntry("c", EntryTypeRandom, StrengthVeryStrong, now),
	})

	strengths := report.StrengthCounts()
	if strengths[StrengthWeak] != 2 || strengths[StrengthVeryStrong] != 1 {
		t.Errorf("unexpected strength counts: %v", strengths)
	}
	types := report.TypeCounts()
	if types[EntryTypePIN] != 2 || types[EntryTypeRandom] != 1 {
		t.Errorf("unexpected type counts: %v", types)
	}

	if !NewEntryReport("Empty", nil).IsEmpty() {
		t.Error("expected nil entries to produce an empty report")
	}
}
