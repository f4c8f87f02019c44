package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// version is stamped at build time via -ldflags.
var version = "dev"

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "terminaut",
		Short:         "JSON surface for the Terminaut core",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(normalizeCmd())
	root.AddCommand(listCmd())
	root.AddCommand(projectsCmd())
	root.AddCommand(favoritesCmd())
	root.AddCommand(recentsCmd())
	root.AddCommand(tagsCmd())
	root.AddCommand(profilesCmd())
	root.AddCommand(searchCmd())
	root.AddCommand(versionCmd())
	return root
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the core version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}
}

// emitJSON pretty-prints v to stdout.
func emitJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
