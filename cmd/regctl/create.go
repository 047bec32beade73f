package main

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newCreateCmd())
}

func newCreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create <path>",
		Short: "Create a registry key",
		Long: `The create command creates a registry key. Creating a key that
already exists is a no-op.

Example:
  regctl create "HKCU\Software\Vendor\App"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCreate(cmd, args)
		},
	}
	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	k, err := keyFromArg(args[0])
	if err != nil {
		return err
	}

	if err := k.Create(cmd.Context()); err != nil {
		return err
	}

	printInfo("The operation completed successfully.\n")
	return nil
}
