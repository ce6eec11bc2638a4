// Package store defines the key-value storage contract used for history,
// favorites, settings and theme, plus an in-memory implementation.
//
// Values are JSON-encoded with the field names of model.HistoryEntry and
// model.Settings. The SQLite implementation lives in the database package.
package store
