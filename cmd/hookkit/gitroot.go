package main

import (
	"github.com/spf13/cobra"

	"github.com/gorewood/hookkit/internal/git"
)

// newRootPathCmd creates the root command, which prints the repository root.
func newRootPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "root",
		Short: "Print the git repository root",
		Long:  `Print the nearest directory at or above --dir that contains a .git directory.`,
		Args:  cobra.NoArgs,
		RunE:  runRootPath,
	}
}

// runRootPath executes the root command.
func runRootPath(cmd *cobra.Command, _ []string) error {
	printer := newPrinter(cmd)

	dir, err := callerDir(cmd)
	if err != nil {
		return report(printer, err)
	}
	root, err := git.FindRoot(dir)
	if err != nil {
		return report(printer, err)
	}

	if printer.IsJSON() {
		return printer.Success(map[string]any{
			"root":      root,
			"hooks_dir": git.HooksDir(root),
		})
	}
	printer.Println(root)
	return nil
}
