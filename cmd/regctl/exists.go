package main

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newExistsCmd())
}

func newExistsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "exists <path> [name]",
		Short: "Check whether a registry key or value exists",
		Long: `The exists command reports whether a registry key (or, with a name
argument, a value under it) exists. Exits 0 when present and 1 when
absent; a broken reg.exe installation is reported as an error, not as
"absent".

Example:
  regctl exists "HKCU\Software\Vendor"
  regctl exists "HKCU\Software\Vendor" Version`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExists(cmd, args)
		},
	}
	return cmd
}

func runExists(cmd *cobra.Command, args []string) error {
	k, err := keyFromArg(args[0])
	if err != nil {
		return err
	}

	var ok bool
	if len(args) == 2 {
		ok, err = k.ValueExists(cmd.Context(), args[1])
	} else {
		ok, err = k.Exists(cmd.Context())
	}
	if err != nil {
		return err
	}
	return reportExists(ok)
}

// reportExists prints the result and arranges the exit status: absence is
// exit 1, mirroring the registry tool's own convention. The status is
// deferred to execute() rather than exiting mid-handler.
func reportExists(ok bool) error {
	if jsonOut {
		if err := printJSON(map[string]bool{"exists": ok}); err != nil {
			return err
		}
	} else if ok {
		printInfo("true\n")
	} else {
		printInfo("false\n")
	}

	if !ok {
		exitCode = 1
	}
	return nil
}
