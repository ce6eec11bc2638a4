package history

import "errors"

var (
	// ErrIndexOutOfRange is returned when a list position does not exist.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrEntryNotFound is returned when no entry has the requested ID.
	ErrEntryNotFound = errors.New("entry not found")

	// ErrAlreadyFavorite is returned when the password is already in favorites.
	ErrAlreadyFavorite = errors.New("already in favorites")

	// ErrEmptyValue is returned when recording an empty value.
	ErrEmptyValue = errors.New("cannot record an empty value")
)
