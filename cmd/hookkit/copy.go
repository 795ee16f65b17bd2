package main

import (
	"github.com/spf13/cobra"

	"github.com/gorewood/hookkit/internal/copier"
	"github.com/gorewood/hookkit/internal/stage"
)

// newCopyCmd creates the copy command.
func newCopyCmd() *cobra.Command {
	var opts copier.Options

	cmd := &cobra.Command{
		Use:   "copy <source> [target]",
		Short: "Copy a file or directory into the project",
		Long: `Copy a file or directory tree into the enclosing git project.

<source> is relative to --dir (default: cwd). [target] is relative to the
project root and defaults to the same relative path as <source>. Targets
that resolve outside the project root are refused before anything is written.

Existing files are left alone and reported unless --overwrite is given.
An unreadable source stops the copy with exit code 2.

Examples:
  hookkit copy assets/editorconfig .editorconfig
  hookkit copy templates --exclude '*.tmp' --overwrite`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			target := ""
			if len(args) == 2 {
				target = args[1]
			}
			return runCopy(cmd, args[0], target, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.Overwrite, "overwrite", false, "Replace existing files")
	cmd.Flags().StringArrayVar(&opts.Exclude, "exclude", nil, "Gitignore-style pattern to skip (repeatable)")

	return cmd
}

// runCopy executes the copy command.
func runCopy(cmd *cobra.Command, source, target string, opts copier.Options) error {
	printer := newPrinter(cmd)

	dir, err := callerDir(cmd)
	if err != nil {
		return report(printer, err)
	}

	plan, err := stage.Copy(dir, source, target, opts)
	if err != nil {
		return report(printer, err)
	}

	if printer.IsJSON() {
		return printer.Success(map[string]any{
			"status": "ok",
			"root":   plan.Root,
			"source": plan.Source,
			"target": plan.Target,
		})
	}
	return printer.Success(map[string]any{"message": "Copied " + plan.Source + " -> " + plan.Target})
}
