package main

import (
	"github.com/spf13/cobra"

	"github.com/gorewood/hookkit/internal/config"
	"github.com/gorewood/hookkit/internal/git"
	"github.com/gorewood/hookkit/internal/output"
	"github.com/gorewood/hookkit/internal/setup"
)

// statusResult holds the data for status output.
type statusResult struct {
	Root      string             `json:"root"`
	HooksPath string             `json:"hooks_path,omitempty"`
	Template  string             `json:"template"`
	Hooks     []setup.HookStatus `json:"hooks"`
}

// newStatusCmd creates the status command.
func newStatusCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "status [hook...]",
		Short: "Show the state of git hooks",
		Long: `Show whether each hook is installed, whether it matches the hookkit
template, and whether a .backup exists. Defaults to pre-commit; --all lists
every hook git knows about.

Warns when core.hooksPath is set, since git then ignores .git/hooks.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if all {
				args = make([]string, 0, len(setup.KnownHooks()))
				for _, hook := range setup.KnownHooks() {
					args = append(args, string(hook))
				}
			}
			return runStatus(cmd, args)
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Show every known hook")
	return cmd
}

// runStatus executes the status command.
func runStatus(cmd *cobra.Command, args []string) error {
	printer := newPrinter(cmd)

	hooks, err := setup.ParseHookNames(args)
	if err != nil {
		return report(printer, err)
	}
	dir, err := callerDir(cmd)
	if err != nil {
		return report(printer, err)
	}
	root, err := git.FindRoot(dir)
	if err != nil {
		return report(printer, err)
	}
	tmpl, err := setup.LoadTemplate("", config.Dir())
	if err != nil {
		return report(printer, err)
	}

	result := statusResult{
		Root:      root,
		HooksPath: git.HooksPathOverride(cmd.Context(), root),
		Template:  tmpl.Source,
		Hooks:     make([]setup.HookStatus, 0, len(hooks)),
	}
	for _, hook := range hooks {
		result.Hooks = append(result.Hooks, setup.CheckHookStatus(git.HooksDir(root), hook, tmpl.Content))
	}

	if printer.IsJSON() {
		return printer.WriteJSON(result)
	}
	printHumanStatus(printer, result)
	return nil
}

// describeHookState returns the STATUS column for a hook.
func describeHookState(status setup.HookStatus) string {
	switch {
	case !status.Installed:
		return "not installed"
	case !status.Executable:
		return "not executable"
	case status.Current:
		return "installed"
	default:
		return "installed (differs from template)"
	}
}

// printHumanStatus outputs hook status in human-readable format.
func printHumanStatus(printer *output.Printer, result statusResult) {
	printer.Section("Git Hooks")
	printer.KeyValue("Root", result.Root)
	printer.KeyValue("Template", result.Template)
	printer.Println()

	rows := make([][]string, 0, len(result.Hooks))
	for _, status := range result.Hooks {
		backup := "-"
		if status.HasBackup {
			backup = "yes"
		}
		rows = append(rows, []string{string(status.Hook), describeHookState(status), backup})
	}
	printer.Table([]string{"HOOK", "STATUS", "BACKUP"}, rows)

	if result.HooksPath != "" {
		printer.Warn("core.hooksPath is set to %q; git will not run hooks from .git/hooks", result.HooksPath)
	}
}
