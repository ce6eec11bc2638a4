// Package history keeps the bounded password history and favorites lists.
//
// Both lists are stored newest first under their own key of a store.Store.
// History holds at most MaxHistory entries and favorites at most
// MaxFavorites; adding beyond the cap evicts the oldest entry.
//
// Read-modify-write sequences are serialized within one Service. Two
// processes writing the same store concurrently follow last-write-wins.
package history
