// Package preferences persists the generator defaults ("settings") and the
// theme preference.
//
// Reads never fail: a missing record or a storage error yields the
// hardcoded defaults, and the error is logged. Fields missing from a stored
// record keep their default values.
package preferences
