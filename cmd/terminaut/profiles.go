package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/makalin/terminaut/internal/store"
	"github.com/makalin/terminaut/pkg/termcore"
)

func profilesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profiles",
		Short: "Manage launch profiles",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List profiles by name",
		RunE: func(cmd *cobra.Command, args []string) error {
			return emitJSON(termcore.Default().ListProfiles())
		},
	})
	cmd.AddCommand(profilesSaveCmd())
	cmd.AddCommand(&cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a profile by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid profile id %q: %w", args[0], err)
			}
			return termcore.Default().DeleteProfile(id)
		},
	})
	return cmd
}

func profilesSaveCmd() *cobra.Command {
	var (
		idFlag     string
		command    string
		workingDir string
		terminal   string
		windows    int
	)
	cmd := &cobra.Command{
		Use:   "save <name>",
		Short: "Create or update a launch profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := store.ProfileInput{Name: args[0]}
			if idFlag != "" {
				id, err := uuid.Parse(idFlag)
				if err != nil {
					return fmt.Errorf("invalid profile id %q: %w", idFlag, err)
				}
				in.ID = &id
			}
			if cmd.Flags().Changed("command") {
				in.Command = &command
			}
			if cmd.Flags().Changed("working-dir") {
				in.WorkingDir = &workingDir
			}
			if cmd.Flags().Changed("terminal") {
				in.Terminal = &terminal
			}
			if cmd.Flags().Changed("windows") {
				in.Windows = &windows
			}

			profile, err := termcore.Default().SaveProfile(in)
			if err != nil {
				return err
			}
			return emitJSON(profile)
		},
	}
	cmd.Flags().StringVar(&idFlag, "id", "", "existing profile id to update")
	cmd.Flags().StringVar(&command, "command", "", "command to run")
	cmd.Flags().StringVar(&workingDir, "working-dir", "", "working directory")
	cmd.Flags().StringVar(&terminal, "terminal", "", "terminal application")
	cmd.Flags().IntVarP(&windows, "windows", "w", 1, "number of windows (1-10)")
	return cmd
}
