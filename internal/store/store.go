package store

import (
	"context"
	"errors"
)

// Storage keys.
const (
	// KeyHistory holds the history list, newest first.
	KeyHistory = "passwordHistory"

	// KeyFavorites holds the favorites list, newest first.
	KeyFavorites = "passwordFavorites"

	// KeySettings holds the settings record.
	KeySettings = "settings"

	// KeyTheme holds the theme preference.
	KeyTheme = "theme"
)

// ErrNotFound is returned by Get when the key has never been set or was deleted.
var ErrNotFound = errors.New("key not found")

// Store is a request/response key-value store.
type Store interface {
	// Get decodes the value stored under key into v.
	// It returns ErrNotFound if the key is absent. Fields of v that the
	// stored value does not mention keep their current contents.
	Get(ctx context.Context, key string, v any) error

	// Set encodes v and stores it under key, replacing any previous value.
	Set(ctx context.Context, key string, v any) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}
