package generator

import "errors"

// Request validation errors.
// Generation functions themselves never fail; these errors are returned by
// Generate when a request must be short-circuited before any drawing happens.
var (
	// ErrInvalidLength is returned when a password or PIN length is not positive
	// or exceeds model.MaxLength.
	ErrInvalidLength = errors.New("invalid length: must be between 1 and 1024")

	// ErrEmptyText is returned when leet-speak input is empty.
	ErrEmptyText = errors.New("no text to convert")

	// ErrUnknownType is returned for a request type the generator does not handle.
	ErrUnknownType = errors.New("unknown generation type")
)
