package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/nao1215/cyberkeygen/internal/model"
	"github.com/nao1215/cyberkeygen/internal/store"
)

// NewSettingsCmd creates the settings command and its subcommands.
func NewSettingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show and change generator defaults",
		Long: `Show the stored generator defaults.

Keys:
  defaultTab               random, leet or pin (used by "generate")
  defaultLength            password length (1-1024)
  defaultPinLength         PIN length (1-1024)
  defaultIncludeLowercase  true or false
  defaultIncludeUppercase  true or false
  defaultIncludeNumbers    true or false
  defaultIncludeSymbols    true or false
  defaultExcludeAmbiguous  true or false
  defaultAvoidRepeating    true or false
  defaultPronounceable     true or false

Examples:
  cyberkeygen settings
  cyberkeygen settings set defaultLength=24 defaultIncludeSymbols=false
  cyberkeygen settings reset`,
		Args: cobra.NoArgs,
		RunE: runSettingsShow,
	}
	cmd.Flags().BoolP("json", "j", false, "Output in JSON format")

	cmd.AddCommand(&cobra.Command{
		Use:   "set <key=value>...",
		Short: "Change one or more defaults",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runSettingsSet,
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "reset",
		Short: "Restore the built-in defaults",
		Args:  cobra.NoArgs,
		RunE:  runSettingsReset,
	})

	return cmd
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	asJSON, err := cmd.Flags().GetBool("json")
	if err != nil {
		return err
	}

	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	settings := a.prefs.Settings(cmd.Context())
	out := cmd.OutOrStdout()

	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(settings)
	}

	if err := writeSettings(out, settings); err != nil {
		return err
	}

	updated, err := a.db.UpdatedAt(cmd.Context(), store.KeySettings)
	switch {
	case errors.Is(err, store.ErrNotFound):
		fmt.Fprintln(out, "# built-in defaults (never saved)")
	case err != nil:
		a.logger.Warn("failed to read settings timestamp", "error", err)
	case !updated.IsZero():
		fmt.Fprintf(out, "# saved %s\n", updated.Local().Format(displayTimeLayout))
	}
	return nil
}

// writeSettings writes settings as YAML, the format of the config file.
func writeSettings(w io.Writer, settings model.Settings) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(settings); err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}
	return enc.Close()
}

// applySettings sets the key=value pairs on settings. Values use YAML
// syntax and unknown keys are rejected.
func applySettings(settings *model.Settings, pairs []string) error {
	var doc strings.Builder
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return fmt.Errorf("invalid setting %q: expected key=value", pair)
		}
		fmt.Fprintf(&doc, "%s: %s\n", key, strings.TrimSpace(value))
	}

	dec := yaml.NewDecoder(strings.NewReader(doc.String()))
	dec.KnownFields(true)
	if err := dec.Decode(settings); err != nil {
		return fmt.Errorf("invalid setting: %w", err)
	}
	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	settings := a.prefs.Settings(cmd.Context())
	if err := applySettings(&settings, args); err != nil {
		return err
	}
	if err := a.prefs.SaveSettings(cmd.Context(), settings); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Settings saved")
	return writeSettings(cmd.OutOrStdout(), settings)
}

func runSettingsReset(cmd *cobra.Command, _ []string) error {
	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	settings, err := a.prefs.ResetSettings(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Settings reset to defaults")
	return writeSettings(cmd.OutOrStdout(), settings)
}
