package main

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newKeysCmd())
}

func newKeysCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keys <path>",
		Short: "List the direct subkeys of a registry key",
		Long: `The keys command lists the direct subkeys of a registry key.

Example:
  regctl keys "HKCU\Software"
  regctl keys "HKLM\Software\Vendor" --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runKeys(cmd, args)
		},
	}
	return cmd
}

func runKeys(cmd *cobra.Command, args []string) error {
	k, err := keyFromArg(args[0])
	if err != nil {
		return err
	}

	subkeys, err := k.Subkeys(cmd.Context())
	if err != nil {
		return err
	}

	if jsonOut {
		paths := make([]string, 0, len(subkeys))
		for _, sk := range subkeys {
			paths = append(paths, sk.Path())
		}
		return printJSON(paths)
	}

	for _, sk := range subkeys {
		printInfo("%s\n", sk.Path())
	}
	printInfo("\n%d subkey(s)\n", len(subkeys))
	return nil
}
