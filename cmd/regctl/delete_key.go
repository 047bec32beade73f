package main

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newDeleteKeyCmd())
}

func newDeleteKeyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete-key <path>",
		Short: "Delete a registry key and its entire subtree",
		Long: `The delete-key command removes a registry key with all of its values
and subkeys. To remove only the values and keep the subkeys, use
erase-values instead.

Example:
  regctl delete-key "HKCU\Software\Vendor\Stale"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDeleteKey(cmd, args)
		},
	}
	return cmd
}

func runDeleteKey(cmd *cobra.Command, args []string) error {
	k, err := keyFromArg(args[0])
	if err != nil {
		return err
	}

	if err := k.DeleteKey(cmd.Context()); err != nil {
		return err
	}

	printInfo("The operation completed successfully.\n")
	return nil
}
