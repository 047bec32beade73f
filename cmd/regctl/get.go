package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/regkit/pkg/reg"
)

func init() {
	rootCmd.AddCommand(newGetCmd())
}

func newGetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get <path> [name]",
		Short: "Get a specific registry value",
		Long: `The get command reads one value from a registry key. Omit the name
to read the key's default (unnamed) value.

Example:
  regctl get "HKCU\Software\Vendor" Version
  regctl get "HKCU\Software\Vendor"
  regctl get "HKLM\Software\Vendor" InstallDir --json`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGet(cmd, args)
		},
	}
	return cmd
}

func runGet(cmd *cobra.Command, args []string) error {
	k, err := keyFromArg(args[0])
	if err != nil {
		return err
	}

	name := reg.DefaultValue
	if len(args) == 2 {
		name = args[1]
	}

	v, ok, err := k.Value(cmd.Context(), name)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("value %q not found under %s", name, k.Path())
	}

	if jsonOut {
		return printJSON(v)
	}

	printInfo("%s  %s\n", v.Type, v.Data)
	return nil
}
