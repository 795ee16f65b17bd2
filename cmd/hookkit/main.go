// Package main provides the entry point for the hookkit CLI.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/gorewood/hookkit/internal/output"
)

// Build info set via ldflags at build time by goreleaser.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// buildVersion returns the full version string including commit and date.
func buildVersion() string {
	if commit == "none" && date == "unknown" {
		return version
	}
	shortCommit := commit
	if len(commit) > 7 {
		shortCommit = commit[:7]
	}
	return fmt.Sprintf("%s (%s, %s)", version, shortCommit, date)
}

func main() {
	os.Exit(run())
}

// run is the only place errors turn into exit codes. Library packages
// return *output.ExitError values; an abort maps to 0, a fatal error to 2.
func run() int {
	cmd := newRootCmd()
	err := fang.Execute(context.Background(), cmd, fang.WithVersion(buildVersion()))
	return output.GetExitCode(err)
}

// newRootCmd creates the root command for the hookkit CLI.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hookkit",
		Short: "Install git hooks and stage project assets",
		Long: `hookkit installs a pre-commit hook into the enclosing git repository and
copies bundled assets into the project, refusing destinations outside it.

It is meant to run from a package's install step:
  - The repository is found by walking up from --dir (default: cwd)
  - Existing hooks are kept as <name>.backup
  - Copies never overwrite unless asked, and never leave the project

When no repository is found, hookkit prints a warning and exits 0 so the
surrounding install keeps going.`,
		Version:       buildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if isJSONMode(cmd) {
				err := output.NewUserError("no command specified. Run 'hookkit --help' for usage")
				newPrinter(cmd).Error(err)
				return err
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().Bool("json", false, "Output in JSON format")
	cmd.PersistentFlags().String("color", output.ColorAuto, "Color output: auto, always, never")
	cmd.PersistentFlags().String("dir", "", "Directory to start from (default: current directory)")

	lipgloss.SetHasDarkBackground(true)

	addCommandGroups(cmd)
	addCommands(cmd)

	return cmd
}

// addCommandGroups defines the command groups for help output.
func addCommandGroups(cmd *cobra.Command) {
	cmd.AddGroup(&cobra.Group{ID: "hooks", Title: "Hook Commands:"})
	cmd.AddGroup(&cobra.Group{ID: "assets", Title: "Asset Commands:"})
	cmd.AddGroup(&cobra.Group{ID: "agent", Title: "Agent Commands:"})
}

// addCommands adds all subcommands with their group assignments.
func addCommands(cmd *cobra.Command) {
	addGroupedCommand(cmd, newInstallCmd(), "hooks")
	addGroupedCommand(cmd, newStatusCmd(), "hooks")
	addGroupedCommand(cmd, newUninstallCmd(), "hooks")
	addGroupedCommand(cmd, newRootPathCmd(), "hooks")

	addGroupedCommand(cmd, newCopyCmd(), "assets")

	addGroupedCommand(cmd, newServeCmd(), "agent")
}

// addGroupedCommand adds a subcommand with a group assignment.
func addGroupedCommand(parent *cobra.Command, child *cobra.Command, groupID string) {
	child.GroupID = groupID
	parent.AddCommand(child)
}
