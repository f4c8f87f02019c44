package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/makalin/terminaut/pkg/termcore"
)

func normalizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "normalize <path>",
		Short: "Expand ~ and canonicalize a path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			normalized, err := termcore.Default().NormalizePath(args[0])
			if err != nil {
				return err
			}
			fmt.Println(normalized)
			return nil
		},
	}
}

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list <path>",
		Short: "List a directory's entries",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := termcore.Default().ListDirectory(args[0])
			if err != nil {
				return err
			}
			return emitJSON(entries)
		},
	}
}

func projectsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "projects <path>",
		Short: "Detect project roots on the ancestor chain",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			roots, err := termcore.Default().DetectProjects(args[0])
			if err != nil {
				return err
			}
			return emitJSON(roots)
		},
	}
}
