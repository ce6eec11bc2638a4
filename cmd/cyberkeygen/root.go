package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for CyberKeyGen.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cyberkeygen",
		Short: "Password, PIN and leet-speak generator with strength scoring",
		Long: `CyberKeyGen generates random or pronounceable passwords, numeric PINs
and leet-speak variants of a phrase, and rates each value from Weak to
Very Strong.

Generated values are kept in a local history (newest 20) stored in the
XDG data directory. Up to 10 values can be pinned as favorites.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().Bool("log-json", false, "Write logs as JSON")
	cmd.PersistentFlags().StringP("data-dir", "d", "",
		"Directory of the history database (default: XDG data directory)")
	cmd.PersistentFlags().StringP("config", "c", "",
		"Path to configuration file (default: .cyberkeygen in current or home directory)")

	cmd.AddCommand(NewGenerateCmd())
	cmd.AddCommand(NewPasswordCmd())
	cmd.AddCommand(NewPINCmd())
	cmd.AddCommand(NewLeetCmd())
	cmd.AddCommand(NewHistoryCmd())
	cmd.AddCommand(NewFavoritesCmd())
	cmd.AddCommand(NewSettingsCmd())
	cmd.AddCommand(NewThemeCmd())
	cmd.AddCommand(NewFillCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
