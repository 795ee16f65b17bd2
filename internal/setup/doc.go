// Package setup installs, inspects and removes git hooks.
//
// The hook script comes from LoadTemplate: a project override, a global
// override in the config directory, or the pre-commit script compiled into
// the binary. InstallHooks finds the repository from an explicit start
// directory and writes the script to each requested hook:
//
//	tmpl, err := setup.LoadTemplate(manifest.Template, config.Dir())
//	hooks, err := setup.ParseHookNames([]string{"pre-commit"})
//	results, err := setup.InstallHooks(dir, hooks, tmpl.Content)
//
// A hook that already exists is renamed with a .backup suffix before the
// new one is written. The new file is chmod'ed to 0777 so it is executable
// whatever the umask. There is no rollback: a failure on the second hook
// leaves the first one installed.
//
// CheckHookStatus and UninstallHook back the status and uninstall commands.
package setup
