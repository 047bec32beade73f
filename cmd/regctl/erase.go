package main

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newEraseValuesCmd())
}

func newEraseValuesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "erase-values <path>",
		Short: "Delete every value under a registry key, keeping its subkeys",
		Long: `The erase-values command removes all values stored under a registry
key while leaving the key itself and its subkeys in place. To remove the
whole subtree, use delete-key instead.

Example:
  regctl erase-values "HKCU\Software\Vendor\Cache"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEraseValues(cmd, args)
		},
	}
	return cmd
}

func runEraseValues(cmd *cobra.Command, args []string) error {
	k, err := keyFromArg(args[0])
	if err != nil {
		return err
	}

	if err := k.EraseValues(cmd.Context()); err != nil {
		return err
	}

	printInfo("The operation completed successfully.\n")
	return nil
}
