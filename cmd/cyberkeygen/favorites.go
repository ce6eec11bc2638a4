package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/nao1215/cyberkeygen/internal/model"
	"github.com/nao1215/cyberkeygen/internal/strength"
)

// NewFavoritesCmd creates the favorites command and its subcommands.
func NewFavoritesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "favorites",
		Aliases: []string{"fav"},
		Short:   "List and manage favorite values",
		Long: `List pinned values, newest first. Up to 10 favorites are kept.

Examples:
  cyberkeygen favorites
  cyberkeygen favorites add "my-passphrase" --type leet
  cyberkeygen favorites rm 2`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd, favoritesTitle, func(ctx context.Context, a *app) ([]model.HistoryEntry, error) {
				return a.history.Favorites(ctx)
			})
		},
	}
	addListFlags(cmd)

	add := &cobra.Command{
		Use:   "add <value>",
		Short: "Add a value to the favorites",
		Args:  cobra.ExactArgs(1),
		RunE:  runFavoritesAdd,
	}
	add.Flags().String("type", string(model.EntryTypeRandom), "Entry type: random, leet or pin")
	cmd.AddCommand(add)

	cmd.AddCommand(&cobra.Command{
		Use:   "rm <index>",
		Short: "Remove a favorite by index",
		Args:  cobra.ExactArgs(1),
		RunE:  runFavoritesRemove,
	})

	return cmd
}

func runFavoritesAdd(cmd *cobra.Command, args []string) error {
	typeFlag, err := cmd.Flags().GetString("type")
	if err != nil {
		return err
	}
	entryType := model.EntryType(strings.ToLower(typeFlag))
	if !entryType.Valid() {
		return fmt.Errorf("invalid type %q: must be random, leet or pin", typeFlag)
	}

	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	entry := model.NewHistoryEntry(args[0], entryType, strength.Level(args[0]), time.Now())
	if err := a.history.AddFavorite(cmd.Context(), entry); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Added %s entry to favorites (%s)\n",
		entryType.DisplayName(), entry.StrengthLevel())
	return nil
}

func runFavoritesRemove(cmd *cobra.Command, args []string) error {
	index, err := parseIndex(args[0])
	if err != nil {
		return err
	}

	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	removed, err := a.history.RemoveFavorite(cmd.Context(), index)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Removed %s entry from favorites\n", removed.Type.DisplayName())
	return nil
}
