package config

import (
	"fmt"

	"github.com/nao1215/cyberkeygen/internal/model"
)

// File represents the structure of the .cyberkeygen configuration file.
//
//	dataDir: ~/passwords
//	theme: dark
//	settings:
//	  defaultLength: 24
//	  defaultIncludeSymbols: false
type File struct {
	// DataDir overrides the default data directory.
	DataDir string `yaml:"dataDir,omitempty"`

	// Theme is the initial theme, "dark" or "light".
	Theme string `yaml:"theme,omitempty"`

	// Settings seeds the stored settings on first run. Fields not given in
	// the file keep their hardcoded defaults. Nil when the file has no
	// settings block.
	Settings *model.Settings `yaml:"settings,omitempty"`
}

// Validate checks the theme and settings of the file.
func (f *File) Validate() error {
	if f.Theme != "" {
		if _, err := model.ParseTheme(f.Theme); err != nil {
			return fmt.Errorf("config file: %w", err)
		}
	}
	if f.Settings != nil {
		if err := f.Settings.Validate(); err != nil {
			return fmt.Errorf("config file: %w", err)
		}
	}
	return nil
}
