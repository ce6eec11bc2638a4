package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

// Default configuration values.
const (
	// AppName is the application name used for XDG directory paths.
	AppName = "cyberkeygen"

	// DefaultCount generates a single value per invocation.
	DefaultCount = 1

	// MaxCount bounds --count. Each value is one history write, and the
	// history only keeps the newest 20 anyway.
	MaxCount = 1000

	// DefaultConcurrency is the number of values generated in parallel
	// when --count is greater than one.
	DefaultConcurrency = 4
)

// Config holds all command line options for CyberKeyGen.
// This struct is populated from CLI flags and passed through the
// application rather than kept in global state.
type Config struct {
	// DataDir is the directory holding the SQLite database.
	// Defaults to the XDG data directory (~/.local/share/cyberkeygen on Linux).
	DataDir string

	// Verbose enables detailed log output using slog.LevelDebug.
	// When false, only warnings and errors are logged.
	Verbose bool

	// ConfigFilePath is the path to the configuration file.
	// If empty, the tool searches for .cyberkeygen in the current directory
	// and then in the user's home directory.
	ConfigFilePath string

	// File holds the loaded configuration file, or nil when none was found.
	File *File

	// JSONReport selects JSON output. Mutually exclusive with MarkdownReport.
	JSONReport bool

	// MarkdownReport selects GitHub Flavored Markdown output.
	// Mutually exclusive with JSONReport.
	MarkdownReport bool

	// ReportFile is the output file path. When empty, output goes to stdout.
	ReportFile string

	// Copy places the generated value on the system clipboard.
	// With Count > 1 the first value is copied.
	Copy bool

	// NoHistory skips writing generated values to the history.
	NoHistory bool

	// Count is the number of values to generate.
	Count int

	// Concurrency is the number of values generated in parallel.
	Concurrency int
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		DataDir:     XDGDataDir(),
		Count:       DefaultCount,
		Concurrency: DefaultConcurrency,
	}
}

// ApplyFile merges the configuration file into c.
// Values given on the command line win over the file; dataDirFromFlag
// reports whether --data-dir was given explicitly.
func (c *Config) ApplyFile(f *File, dataDirFromFlag bool) {
	if f == nil {
		return
	}
	c.File = f
	if f.DataDir != "" && !dataDirFromFlag {
		c.DataDir = f.DataDir
	}
}

// XDGDataDir returns the XDG data directory for CyberKeyGen.
// On Linux: ~/.local/share/cyberkeygen
// On macOS: ~/Library/Application Support/cyberkeygen
// On Windows: %LOCALAPPDATA%\cyberkeygen
func XDGDataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// XDGConfigDir returns the XDG config directory for CyberKeyGen.
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Validate checks if the configuration is valid.
// It returns the first problem found.
func (c *Config) Validate() error {
	if c.DataDir == "" {
		return ErrEmptyDataDir
	}

	if c.Count < 1 || c.Count > MaxCount {
		return ErrInvalidCount
	}

	if c.Concurrency <= 0 {
		return ErrInvalidConcurrency
	}

	// JSONReport and MarkdownReport are mutually exclusive
	if c.JSONReport && c.MarkdownReport {
		return ErrConflictingReportFormats
	}

	if c.File != nil {
		return c.File.Validate()
	}
	return nil
}
