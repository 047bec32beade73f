package main

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newValuesCmd())
}

func newValuesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "values <path>",
		Short: "List all values under a registry key",
		Long: `The values command lists every value stored under a registry key.

Example:
  regctl values "HKCU\Software\Vendor"
  regctl values "HKLM\Software" --arch x86
  regctl values "HKLM\Software\Vendor" --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValues(cmd, args)
		},
	}
	return cmd
}

func runValues(cmd *cobra.Command, args []string) error {
	k, err := keyFromArg(args[0])
	if err != nil {
		return err
	}

	values, err := k.Values(cmd.Context())
	if err != nil {
		return err
	}

	if jsonOut {
		return printJSON(values)
	}

	printInfo("%s\n", k.Path())
	for _, v := range values {
		name := v.Name
		if name == "" {
			name = "(Default)"
		}
		printInfo("    %-30s %-14s %s\n", name, v.Type, v.Data)
	}
	printInfo("\n%d value(s)\n", len(values))
	return nil
}
