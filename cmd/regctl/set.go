package main

import (
	"github.com/spf13/cobra"

	"github.com/joshuapare/regkit/pkg/reg"
)

var setType string

func init() {
	cmd := newSetCmd()
	cmd.Flags().StringVarP(&setType, "type", "t", "REG_SZ", "Value type (REG_SZ, REG_DWORD, ...)")
	rootCmd.AddCommand(cmd)
}

func newSetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <path> <name> <data>",
		Short: "Set a registry value",
		Long: `The set command writes one value under a registry key, overwriting
any existing value without prompting. Pass an empty name ("") to set the
key's default (unnamed) value.

Example:
  regctl set "HKCU\Software\Vendor" Version 1.2.3
  regctl set "HKCU\Software\Vendor" Count 0x2a --type REG_DWORD
  regctl set "HKCU\Software\Vendor" "" hello`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSet(cmd, args)
		},
	}
	return cmd
}

func runSet(cmd *cobra.Command, args []string) error {
	k, err := keyFromArg(args[0])
	if err != nil {
		return err
	}
	name, data := args[1], args[2]

	if err := k.SetValue(cmd.Context(), name, reg.RegType(setType), data); err != nil {
		return err
	}

	printVerbose("Set %s %q = %q (%s)\n", k.Path(), name, data, setType)
	printInfo("The operation completed successfully.\n")
	return nil
}
