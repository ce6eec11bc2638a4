// Package model defines the core data structures used throughout CyberKeyGen.
//
// This package contains the following main types:
//   - GenerationOptions: Inputs for the random and pronounceable generators
//   - Request and Result: One generation request and its outcome
//   - HistoryEntry: A generated value recorded in history or favorites
//   - Strength: The canonical strength level of a generated value
//   - Settings and Theme: Persisted user preferences
//   - EntryReport: A list of entries prepared for export
//
// The generator, pipeline, history and report packages all share these types.
// JSON field names are part of the storage format and must not change.
package model
