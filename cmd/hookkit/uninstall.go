package main

import (
	"github.com/spf13/cobra"

	"github.com/gorewood/hookkit/internal/git"
	"github.com/gorewood/hookkit/internal/output"
	"github.com/gorewood/hookkit/internal/setup"
)

// uninstallEntry holds the outcome for one hook.
type uninstallEntry struct {
	Hook     setup.HookName `json:"hook"`
	Removed  bool           `json:"removed"`
	Restored bool           `json:"restored"`
	Action   string         `json:"action,omitempty"`
}

// newUninstallCmd creates the uninstall command.
func newUninstallCmd() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "uninstall [hook...]",
		Short: "Remove hooks and restore backups",
		Long: `Remove installed hooks (default: pre-commit) from .git/hooks and move
any <name>.backup back into place.

Note that this removes whatever is at .git/hooks/<name>, whether or not
hookkit wrote it. Use --dry-run to check first.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUninstall(cmd, args, dryRun)
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show what would be done without doing it")
	return cmd
}

// runUninstall executes the uninstall command.
func runUninstall(cmd *cobra.Command, args []string, dryRun bool) error {
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
	hooksDir := git.HooksDir(root)

	entries := make([]uninstallEntry, 0, len(hooks))
	for _, hook := range hooks {
		if dryRun {
			status := setup.CheckHookStatus(hooksDir, hook, nil)
			entries = append(entries, uninstallEntry{Hook: hook, Action: setup.DescribeUninstallAction(status)})
			continue
		}

		removed, restored, err := setup.UninstallHook(hooksDir, hook)
		if err != nil {
			return report(printer, err)
		}
		entries = append(entries, uninstallEntry{Hook: hook, Removed: removed, Restored: restored})
	}

	if printer.IsJSON() {
		status := "ok"
		if dryRun {
			status = "dry_run"
		}
		return printer.WriteJSON(map[string]any{"status": status, "hooks": entries})
	}

	printHumanUninstall(printer, entries, dryRun)
	return nil
}

// printHumanUninstall outputs uninstall results in human-readable format.
func printHumanUninstall(printer *output.Printer, entries []uninstallEntry, dryRun bool) {
	if dryRun {
		printer.Section("Dry Run")
		for _, entry := range entries {
			printer.KeyValue(string(entry.Hook), entry.Action)
		}
		return
	}

	for _, entry := range entries {
		var msg string
		switch {
		case entry.Removed && entry.Restored:
			msg = "Removed " + string(entry.Hook) + " hook and restored original"
		case entry.Restored:
			msg = "Restored original " + string(entry.Hook) + " hook"
		case entry.Removed:
			msg = "Removed " + string(entry.Hook) + " hook"
		default:
			msg = "No " + string(entry.Hook) + " hook installed"
		}
		_ = printer.Success(map[string]any{"message": msg})
	}
}
