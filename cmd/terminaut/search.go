package main

import (
	"github.com/spf13/cobra"

	"github.com/makalin/terminaut/pkg/termcore"
)

func searchCmd() *cobra.Command {
	var (
		start string
		limit int
	)
	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Fuzzy-search directories under a root",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results, err := termcore.Default().Search(start, args[0], limit)
			if err != nil {
				return err
			}
			return emitJSON(results)
		},
	}
	cmd.Flags().StringVar(&start, "start", "~", "directory to search from")
	cmd.Flags().IntVarP(&limit, "limit", "l", 20, "maximum results")
	return cmd
}
