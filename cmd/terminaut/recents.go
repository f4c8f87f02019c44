package main

import (
	"github.com/spf13/cobra"

	"github.com/makalin/terminaut/pkg/termcore"
)

func recentsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recents",
		Short: "Manage recently opened directories",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List recents, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			return emitJSON(termcore.Default().ListRecents())
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "touch <path>",
		Short: "Record a directory as just opened",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return termcore.Default().TouchRecent(args[0])
		},
	})
	return cmd
}
