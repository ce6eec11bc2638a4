package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nao1215/cyberkeygen/internal/model"
)

// NewThemeCmd creates the theme command and its subcommands.
func NewThemeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Show or change the color scheme",
		Long: `Show the stored color scheme (light or dark). An unset theme is light.

Examples:
  cyberkeygen theme
  cyberkeygen theme set dark
  cyberkeygen theme toggle`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			fmt.Fprintln(cmd.OutOrStdout(), a.prefs.Theme(cmd.Context()))
			return nil
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:       "set <light|dark>",
		Short:     "Set the color scheme",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{string(model.ThemeLight), string(model.ThemeDark)},
		RunE: func(cmd *cobra.Command, args []string) error {
			theme, err := model.ParseTheme(args[0])
			if err != nil {
				return err
			}

			a, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			if err := a.prefs.SetTheme(cmd.Context(), theme); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), theme)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "toggle",
		Short: "Switch between light and dark",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			theme, err := a.prefs.ToggleTheme(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), theme)
			return nil
		},
	})

	return cmd
}
