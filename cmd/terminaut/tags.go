package main

import (
	"github.com/spf13/cobra"

	"github.com/makalin/terminaut/pkg/termcore"
)

func tagsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tags",
		Short: "Manage colored directory tags",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List all tags",
		RunE: func(cmd *cobra.Command, args []string) error {
			return emitJSON(termcore.Default().ListTags())
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "for <path>",
		Short: "List the tags on a directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tags, err := termcore.Default().TagsFor(args[0])
			if err != nil {
				return err
			}
			return emitJSON(tags)
		},
	})
	cmd.AddCommand(tagsAddCmd())
	cmd.AddCommand(&cobra.Command{
		Use:   "remove <path> <tag>",
		Short: "Remove a tag from a directory",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return termcore.Default().RemoveTag(args[0], args[1])
		},
	})
	return cmd
}

func tagsAddCmd() *cobra.Command {
	var color string
	cmd := &cobra.Command{
		Use:   "add <path> <tag>",
		Short: "Add or recolor a tag on a directory",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return termcore.Default().SetTag(args[0], args[1], color)
		},
	}
	cmd.Flags().StringVar(&color, "color", "", "tag color (default #0a84ff)")
	return cmd
}
