// Package database provides SQLite-based storage for CyberKeyGen.
//
// This package implements the store.Store contract on top of a single
// key-value table. It holds:
//   - The password history and favorites lists
//   - The settings record
//   - The theme preference
//
// Storage uses modernc.org/sqlite, which needs no CGO. Writes are atomic and
// WAL mode lets a second invocation read while another one writes.
package database
