package main

import (
	"github.com/spf13/cobra"

	"github.com/makalin/terminaut/pkg/termcore"
)

func favoritesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "favorites",
		Short: "Manage favorite directories",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List favorites alphabetically",
		RunE: func(cmd *cobra.Command, args []string) error {
			return emitJSON(termcore.Default().ListFavorites())
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "add <path>",
		Short: "Add a favorite",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return termcore.Default().AddFavorite(args[0])
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "remove <path>",
		Short: "Remove a favorite",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return termcore.Default().RemoveFavorite(args[0])
		},
	})
	return cmd
}
