package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/nao1215/cyberkeygen/internal/model"
)

// Titles of exported lists.
const (
	historyTitle   = "Password History"
	favoritesTitle = "Favorite Passwords"
)

// NewHistoryCmd creates the history command and its subcommands.
func NewHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List, export and manage generated values",
		Long: `List the most recently generated values, newest first.
Only the newest 20 values are kept.

Examples:
  # Show the history
  cyberkeygen history

  # Export it as Markdown with masked values
  cyberkeygen history --markdown --mask -o history.md

  # Pin the newest value as a favorite
  cyberkeygen history fav 0`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd, historyTitle, func(ctx context.Context, a *app) ([]model.HistoryEntry, error) {
				return a.history.List(ctx)
			})
		},
	}
	addListFlags(cmd)

	cmd.AddCommand(&cobra.Command{
		Use:   "rm <index|id>",
		Short: "Remove one entry by index or ID",
		Args:  cobra.ExactArgs(1),
		RunE:  runHistoryRemove,
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Remove all entries",
		Args:  cobra.NoArgs,
		RunE:  runHistoryClear,
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "fav <index>",
		Short: "Add an entry to the favorites",
		Args:  cobra.ExactArgs(1),
		RunE:  runHistoryFavorite,
	})

	return cmd
}

// addListFlags adds the flags of list output.
func addListFlags(cmd *cobra.Command) {
	addOutputFlags(cmd)
	cmd.Flags().Bool("mask", false, "Hide all but the first two characters of each value")
}

// runList writes the entries returned by load as a report.
func runList(cmd *cobra.Command, title string, load func(context.Context, *app) ([]model.HistoryEntry, error)) error {
	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	mask, err := cmd.Flags().GetBool("mask")
	if err != nil {
		return err
	}

	entries, err := load(cmd.Context(), a)
	if err != nil {
		return err
	}

	output, closeOutput, err := openOutput(cmd, a.cfg)
	if err != nil {
		return err
	}
	if _, err := newWriter(a.cfg, output, mask, true).Write(model.NewEntryReport(title, entries)); err != nil {
		_ = closeOutput()
		return fmt.Errorf("failed to write output: %w", err)
	}
	return closeOutput()
}

// runHistoryRemove removes the entry at an index, or with an ID when the
// argument is not a number.
func runHistoryRemove(cmd *cobra.Command, args []string) error {
	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	var removed model.HistoryEntry
	if index, convErr := strconv.Atoi(args[0]); convErr == nil {
		removed, err = a.history.Remove(cmd.Context(), index)
	} else {
		removed, err = a.history.RemoveByID(cmd.Context(), args[0])
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Removed %s entry from %s\n",
		removed.Type.DisplayName(), removed.Timestamp.Local().Format(displayTimeLayout))
	return nil
}

func runHistoryClear(cmd *cobra.Command, _ []string) error {
	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.history.Clear(cmd.Context()); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "History cleared")
	return nil
}

func runHistoryFavorite(cmd *cobra.Command, args []string) error {
	index, err := parseIndex(args[0])
	if err != nil {
		return err
	}

	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	entry, err := a.history.Favorite(cmd.Context(), index)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Added %s entry to favorites\n", entry.Type.DisplayName())
	return nil
}

// parseIndex parses a list index argument.
func parseIndex(s string) (int, error) {
	index, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid index %q: must be a number", s)
	}
	return index, nil
}
