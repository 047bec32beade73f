package main

import (
	"fmt"
	"os"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"

	"github.com/joshuapare/regkit/pkg/reg"
)

var (
	// Global flags
	verbose bool
	quiet   bool
	jsonOut bool
	host    string
	arch    string
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var rootCmd = &cobra.Command{
	Use:   "regctl",
	Short: "Query and manipulate the Windows registry via reg.exe",
	Long: `regctl is a thin command-line front end over the live Windows
registry. Every operation shells out to the system's reg.exe and parses
its output, so regctl sees exactly what the registry tool reports.`,
	Version: "0.1.0",
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().StringVar(&host, "host", "", "Target a remote machine's registry")
	rootCmd.PersistentFlags().
		StringVar(&arch, "arch", "", "Registry view on 64-bit systems: x86 or x64")
}

// exitCode is the process exit status for handlers that finish without an
// error but still need a non-zero exit (e.g. "exists" reporting absence).
// Consumed by execute() after cobra unwinds, so deferred cleanup runs.
var exitCode int

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if exitCode != 0 {
		os.Exit(exitCode)
	}
}

// keyFromArg builds a Key from a textual registry path plus the global
// host/arch/verbosity flags.
func keyFromArg(path string) (*reg.Key, error) {
	var opts []reg.Option
	if host != "" {
		opts = append(opts, reg.WithHost(host))
	}
	if arch != "" {
		opts = append(opts, reg.WithArch(reg.Arch(arch)))
	}
	if verbose {
		opts = append(opts, reg.WithDiagnostics(func(format string, args ...any) {
			printVerbose(format+"\n", args...)
		}))
	}
	k, err := reg.ParsePath(path, opts...)
	if err != nil {
		return nil, fmt.Errorf("invalid registry path %q: %w", path, err)
	}
	return k, nil
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...interface{}) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...interface{}) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
