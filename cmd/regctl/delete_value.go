package main

import (
	"github.com/spf13/cobra"

	"github.com/joshuapare/regkit/pkg/reg"
)

func init() {
	rootCmd.AddCommand(newDeleteValueCmd())
}

func newDeleteValueCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete-value <path> [name]",
		Short: "Delete a value from a registry key",
		Long: `The delete-value command removes one value from a registry key.
Omit the name to remove the key's default (unnamed) value.

Example:
  regctl delete-value "HKCU\Software\Vendor" OldSetting
  regctl delete-value "HKCU\Software\Vendor"`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDeleteValue(cmd, args)
		},
	}
	return cmd
}

func runDeleteValue(cmd *cobra.Command, args []string) error {
	k, err := keyFromArg(args[0])
	if err != nil {
		return err
	}

	name := reg.DefaultValue
	if len(args) == 2 {
		name = args[1]
	}

	if err := k.DeleteValue(cmd.Context(), name); err != nil {
		return err
	}

	printInfo("The operation completed successfully.\n")
	return nil
}
