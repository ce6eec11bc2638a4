package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate() and File.Validate() and
// provide specific information about what is wrong with the configuration.
var (
	// ErrInvalidCount is returned when the number of values to generate is
	// outside 1..MaxCount.
	ErrInvalidCount = errors.New("invalid count: must be between 1 and 1000")

	// ErrInvalidConcurrency is returned when the concurrency is not positive.
	ErrInvalidConcurrency = errors.New("invalid concurrency: must be positive")

	// ErrConflictingReportFormats is returned when both --json and --markdown
	// are specified. Only one output format can be used at a time.
	ErrConflictingReportFormats = errors.New("conflicting report formats: --json and --markdown cannot be used together")

	// ErrEmptyDataDir is returned when no data directory could be determined.
	ErrEmptyDataDir = errors.New("data directory is empty")
)
