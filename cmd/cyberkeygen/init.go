package main

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/nao1215/cyberkeygen/internal/config"
)

//go:embed templates/cyberkeygen.yaml
var configTemplate embed.FS

// templatePath is the embedded configuration template.
const templatePath = "templates/cyberkeygen.yaml"

// NewInitCmd creates the init command.
func NewInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new CyberKeyGen configuration file",
		Long: `Initialize creates a new .cyberkeygen configuration file in the current directory.

The generated file includes:
- The data directory of the history database
- The initial theme
- Initial generator defaults, copied into the database on first run

Examples:
  # Create .cyberkeygen in current directory
  cyberkeygen init

  # Create config file at a specific path
  cyberkeygen init -o ~/.config/cyberkeygen/config.yaml

  # Force overwrite existing file
  cyberkeygen init -f`,
		Args: cobra.NoArgs,
		RunE: runInitCmd,
	}

	cmd.Flags().StringP("output", "o", config.DefaultConfigFile,
		"Output file path for the configuration")
	cmd.Flags().BoolP("force", "f", false,
		"Overwrite existing configuration file")

	return cmd
}

// runInitCmd executes the init command.
func runInitCmd(cmd *cobra.Command, _ []string) error {
	outputPath, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}

	force, err := cmd.Flags().GetBool("force")
	if err != nil {
		return err
	}

	if !force {
		if _, err := os.Stat(outputPath); err == nil {
			return fmt.Errorf("configuration file already exists: %s (use -f to overwrite)", outputPath)
		}
	}

	content, err := configTemplate.ReadFile(templatePath)
	if err != nil {
		return fmt.Errorf("failed to read config template: %w", err)
	}

	dir := filepath.Dir(outputPath)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	if err := os.WriteFile(outputPath, content, 0600); err != nil {
		return fmt.Errorf("failed to write configuration file: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Created configuration file: %s\n", outputPath)
	fmt.Fprintln(out, "\nEdit this file to set:")
	fmt.Fprintln(out, "  - the data directory of the history database")
	fmt.Fprintln(out, "  - the initial theme")
	fmt.Fprintln(out, "  - generator defaults used on first run")

	return nil
}
