package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/gorewood/hookkit/internal/config"
	"github.com/gorewood/hookkit/internal/copier"
	"github.com/gorewood/hookkit/internal/git"
	"github.com/gorewood/hookkit/internal/manifest"
	"github.com/gorewood/hookkit/internal/output"
	"github.com/gorewood/hookkit/internal/setup"
	"github.com/gorewood/hookkit/internal/stage"
)

// installFlags holds the install command's flags.
type installFlags struct {
	manifest string
	template string
	dryRun   bool
}

// newInstallCmd creates the install command.
func newInstallCmd() *cobra.Command {
	var flags installFlags

	cmd := &cobra.Command{
		Use:   "install [hook...]",
		Short: "Install git hooks and copy manifest assets",
		Long: `Install the hookkit pre-commit script into .git/hooks of the enclosing
repository, then copy the assets listed in the manifest.

Hooks come from the arguments, or from the manifest's "hooks" list, or
default to pre-commit. An existing hook is renamed to <name>.backup.

The manifest (.hookkit.yml or .hookkit.json in --dir) may also set a template override and
list copy entries. A copy target that already exists is reported as a
conflict unless the entry sets overwrite: true.

Examples:
  hookkit install                      # pre-commit, plus manifest assets
  hookkit install pre-commit pre-push  # several hooks
  hookkit install --dry-run            # show what would happen`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInstall(cmd, args, flags)
		},
	}

	cmd.Flags().StringVar(&flags.manifest, "manifest", "", "Manifest path (default: <dir>/"+manifest.FileName+")")
	cmd.Flags().StringVar(&flags.template, "template", "", "Hook script to install instead of the bundled one")
	cmd.Flags().BoolVar(&flags.dryRun, "dry-run", false, "Show what would be done without doing it")

	return cmd
}

// installResult holds the data for install output.
type installResult struct {
	Template string                `json:"template"`
	Hooks    []setup.InstallResult `json:"hooks"`
	Copied   []stage.Plan          `json:"copied"`
}

// runInstall executes the install command.
func runInstall(cmd *cobra.Command, args []string, flags installFlags) error {
	printer := newPrinter(cmd)

	dir, err := callerDir(cmd)
	if err != nil {
		return report(printer, err)
	}

	m, hooks, err := loadInstallPlan(dir, args, flags)
	if err != nil {
		return report(printer, err)
	}

	override := flags.template
	if override == "" {
		override = m.TemplatePath()
	}
	tmpl, err := setup.LoadTemplate(override, config.Dir())
	if err != nil {
		return report(printer, err)
	}

	if flags.dryRun {
		return report(printer, installDryRun(printer, dir, hooks, tmpl))
	}

	result := installResult{Template: tmpl.Source}
	result.Hooks, err = setup.InstallHooks(dir, hooks, tmpl.Content)
	if err != nil {
		return report(printer, err)
	}

	var copyErr error
	result.Copied, copyErr = copyManifestEntries(m)

	if printer.IsJSON() {
		if copyErr != nil {
			return report(printer, copyErr)
		}
		return printer.WriteJSON(result)
	}

	printHumanInstall(printer, result)
	return report(printer, copyErr)
}

// loadInstallPlan loads the manifest and picks the hook list: arguments win
// over the manifest.
func loadInstallPlan(dir string, args []string, flags installFlags) (*manifest.Manifest, []setup.HookName, error) {
	path := flags.manifest
	if path == "" {
		path = manifest.Find(dir)
	}

	m, err := manifest.Load(path)
	if err != nil {
		return nil, nil, output.NewUserErrorWithCause(err.Error(), err)
	}

	names := m.Hooks
	if len(args) > 0 {
		names = args
	}
	hooks, err := setup.ParseHookNames(names)
	if err != nil {
		return nil, nil, err
	}
	return m, hooks, nil
}

// copyManifestEntries stages each manifest copy entry. Conflicts are
// collected and the remaining entries still run; a fatal error stops.
func copyManifestEntries(m *manifest.Manifest) ([]stage.Plan, error) {
	copied := make([]stage.Plan, 0, len(m.Copy))
	var errs []error

	for _, entry := range m.Copy {
		plan, err := stage.Copy(m.Dir, entry.Source, entry.Target, entry.Options)
		if err == nil {
			copied = append(copied, plan)
			continue
		}
		errs = append(errs, err)
		if !errors.Is(err, copier.ErrTargetExists) || output.IsFatal(err) {
			break
		}
	}
	return copied, errors.Join(errs...)
}

// installDryRun reports what install would do without writing anything.
func installDryRun(printer *output.Printer, dir string, hooks []setup.HookName, tmpl setup.Template) error {
	root, err := git.FindRoot(dir)
	if err != nil {
		return err
	}
	hooksDir := git.HooksDir(root)

	statuses := make([]setup.HookStatus, 0, len(hooks))
	for _, hook := range hooks {
		statuses = append(statuses, setup.CheckHookStatus(hooksDir, hook, tmpl.Content))
	}

	if printer.IsJSON() {
		actions := make([]map[string]any, 0, len(statuses))
		for _, status := range statuses {
			actions = append(actions, map[string]any{
				"hook":   status.Hook,
				"path":   status.Path,
				"exists": status.Installed,
				"action": setup.DescribeInstallAction(status),
			})
		}
		return printer.WriteJSON(map[string]any{
			"status":   "dry_run",
			"root":     root,
			"template": tmpl.Source,
			"hooks":    actions,
		})
	}

	printer.Section("Dry Run")
	printer.KeyValue("Root", root)
	printer.KeyValue("Template", tmpl.Source)
	rows := make([][]string, 0, len(statuses))
	for _, status := range statuses {
		rows = append(rows, []string{string(status.Hook), setup.DescribeInstallAction(status)})
	}
	printer.Println()
	printer.Table([]string{"HOOK", "ACTION"}, rows)
	return nil
}

// printHumanInstall outputs install results in human-readable format.
func printHumanInstall(printer *output.Printer, result installResult) {
	for _, hook := range result.Hooks {
		msg := "Installed " + string(hook.Hook) + " hook"
		if hook.BackedUp {
			msg += " (existing hook saved as " + string(hook.Hook) + setup.BackupSuffix + ")"
		}
		_ = printer.Success(map[string]any{"message": msg})
	}
	for _, plan := range result.Copied {
		_ = printer.Success(map[string]any{"message": "Copied " + plan.Source + " -> " + plan.Target})
	}
}
