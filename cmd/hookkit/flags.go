package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/gorewood/hookkit/internal/output"
)

// lookupPersistent finds a persistent flag from anywhere in the command tree.
func lookupPersistent(cmd *cobra.Command, name string) string {
	flag := cmd.Flags().Lookup(name)
	if flag == nil {
		flag = cmd.Root().PersistentFlags().Lookup(name)
	}
	if flag == nil {
		return ""
	}
	return flag.Value.String()
}

// isJSONMode reads the --json persistent flag.
func isJSONMode(cmd *cobra.Command) bool {
	return lookupPersistent(cmd, "json") == "true"
}

// callerDir returns --dir, or the working directory when unset. This is the
// start point handed to every repository lookup.
func callerDir(cmd *cobra.Command) (string, error) {
	if dir := lookupPersistent(cmd, "dir"); dir != "" {
		return dir, nil
	}
	dir, err := os.Getwd()
	if err != nil {
		return "", output.NewSystemErrorWithCause("cannot determine working directory", err)
	}
	return dir, nil
}

// newPrinter builds a printer honoring --json and --color. Warnings go to
// stderr; results and errors go to stdout.
func newPrinter(cmd *cobra.Command) *output.Printer {
	out := cmd.OutOrStdout()
	isTTY := output.ResolveColorMode(lookupPersistent(cmd, "color"), output.IsTTY(out))
	return output.NewPrinter(out, isJSONMode(cmd), isTTY).WithStderr(cmd.ErrOrStderr())
}

// report prints err and returns what the command should return.
//
// An abort is printed as a warning and swallowed so the process exits 0.
// Everything else is printed and passed on for run to map to an exit code.
func report(printer *output.Printer, err error) error {
	if err == nil {
		return nil
	}
	if output.IsAbort(err) {
		printer.Warn("%s, installation aborted.", err.Error())
		return nil
	}
	printer.Error(err)
	return err
}
