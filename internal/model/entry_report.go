package model

import "time"

// EntryReport is a titled list of entries prepared for export.
type EntryReport struct {
	// Title names the list, e.g. "Password History".
	Title string `json:"title"`

	// GeneratedAt is when the report was produced.
	GeneratedAt time.Time `json:"generated_at"`

	// Entries are the exported entries, newest first.
	Entries []HistoryEntry `json:"entries"`
}

// NewEntryReport creates a report over the given entries.
func NewEntryReport(title string, entries []HistoryEntry) *EntryReport {
	if entries == nil {
		entries = []HistoryEntry{}
	}
	return &EntryReport{
		Title:       title,
		GeneratedAt: time.Now(),
		Entries:     entries,
	}
}

// StrengthCounts returns the number of entries per strength level.
func (r *EntryReport) StrengthCounts() map[Strength]int {
	counts := make(map[Strength]int)
	for _, e := range r.Entries {
		counts[e.StrengthLevel()]++
	}
	return counts
}

// TypeCounts returns the number of entries per entry type.
func (r *EntryReport) TypeCounts() map[EntryType]int {
	counts := make(map[EntryType]int)
	for _, e := range r.Entries {
		counts[e.Type]++
	}
	return counts
}

// IsEmpty reports whether the report has no entries.
func (r *EntryReport) IsEmpty() bool {
	return len(r.Entries) == 0
}
