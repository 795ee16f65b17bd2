package setup

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/gorewood/hookkit/internal/copier"
	"github.com/gorewood/hookkit/internal/git"
	"github.com/gorewood/hookkit/internal/output"
)

// HookMode is applied with chmod after writing, so the umask never strips
// the execute bits.
const HookMode os.FileMode = 0o777

// BackupSuffix is appended to a hook that gets replaced.
const BackupSuffix = ".backup"

//go:embed hooks/pre-commit
var bundledTemplate []byte

// BundledTemplate returns a copy of the pre-commit script shipped with hookkit.
func BundledTemplate() []byte {
	return bytes.Clone(bundledTemplate)
}

// HookName identifies a git hook, e.g. "pre-commit".
type HookName string

// PreCommit is the hook installed when none is requested explicitly.
const PreCommit HookName = "pre-commit"

// ErrUnknownHook is the cause of the user error for names git does not run.
var ErrUnknownHook = errors.New("unknown git hook")

// knownHooks lists the client-side hooks git invokes from .git/hooks.
var knownHooks = []HookName{
	"applypatch-msg",
	"commit-msg",
	"fsmonitor-watchman",
	"post-applypatch",
	"post-checkout",
	"post-commit",
	"post-merge",
	"post-rewrite",
	"pre-applypatch",
	"pre-auto-gc",
	"pre-commit",
	"pre-merge-commit",
	"pre-push",
	"pre-rebase",
	"prepare-commit-msg",
	"push-to-checkout",
	"reference-transaction",
}

// KnownHooks returns the hook names hookkit accepts.
func KnownHooks() []HookName {
	return slices.Clone(knownHooks)
}

// ParseHookNames validates names. An empty list yields [PreCommit].
// Duplicates are dropped, keeping first-seen order.
func ParseHookNames(names []string) ([]HookName, error) {
	if len(names) == 0 {
		return []HookName{PreCommit}, nil
	}

	hooks := make([]HookName, 0, len(names))
	for _, name := range names {
		hook := HookName(strings.TrimSpace(name))
		if !slices.Contains(knownHooks, hook) {
			return nil, output.NewUserErrorWithCause(fmt.Sprintf("unknown hook: %q", name), ErrUnknownHook)
		}
		if !slices.Contains(hooks, hook) {
			hooks = append(hooks, hook)
		}
	}
	return hooks, nil
}

// InstallResult records what happened to one hook.
type InstallResult struct {
	Hook     HookName `json:"hook"`
	Path     string   `json:"path"`
	BackedUp bool     `json:"backed_up"`
}

// InstallHooks writes template to <root>/.git/hooks/<name> for every hook,
// where root is the repository found by walking up from start.
//
// An existing hook is renamed to <name>.backup first, replacing any older
// backup. Nothing is rolled back on failure: the results for hooks already
// installed are returned together with the error.
func InstallHooks(start string, hooks []HookName, template []byte) ([]InstallResult, error) {
	root, err := git.FindRoot(start)
	if err != nil {
		return nil, err
	}

	hooksDir := git.HooksDir(root)
	if !copier.IsDir(hooksDir) {
		if err := copier.MkdirAll(hooksDir); err != nil {
			return nil, err
		}
	}

	results := make([]InstallResult, 0, len(hooks))
	for _, hook := range hooks {
		result, err := InstallHook(hooksDir, hook, template)
		if err != nil {
			return results, err
		}
		results = append(results, result)
	}
	return results, nil
}

// InstallHook writes template to hooksDir/hook, backing up what was there.
func InstallHook(hooksDir string, hook HookName, template []byte) (InstallResult, error) {
	dest := filepath.Join(hooksDir, string(hook))
	result := InstallResult{Hook: hook, Path: dest}

	if HookExists(dest) {
		if err := BackupExistingHook(dest); err != nil {
			return result, err
		}
		result.BackedUp = true
	}

	// #nosec G306 -- hook needs execute permission
	if err := os.WriteFile(dest, template, HookMode); err != nil {
		return result, output.NewSystemErrorWithCause("failed to write hook "+dest, err)
	}
	if err := os.Chmod(dest, HookMode); err != nil {
		return result, output.NewSystemErrorWithCause("failed to make hook executable "+dest, err)
	}
	return result, nil
}

// HookExists checks if anything is present at path.
func HookExists(path string) bool {
	return copier.Exists(path)
}

// BackupExistingHook moves an existing hook to path+BackupSuffix.
// An older backup at that location is replaced.
func BackupExistingHook(hookPath string) error {
	if err := os.Rename(hookPath, hookPath+BackupSuffix); err != nil {
		return output.NewSystemErrorWithCause("failed to backup existing hook", err)
	}
	return nil
}

// HookStatus describes the state of one hook on disk.
type HookStatus struct {
	Hook       HookName `json:"hook"`
	Path       string   `json:"path"`
	Installed  bool     `json:"installed"`
	Current    bool     `json:"current"`
	Executable bool     `json:"executable"`
	HasBackup  bool     `json:"has_backup"`
}

// CheckHookStatus inspects hooksDir/hook. Current means the content is
// byte-identical to template.
func CheckHookStatus(hooksDir string, hook HookName, template []byte) HookStatus {
	path := filepath.Join(hooksDir, string(hook))
	status := HookStatus{
		Hook:      hook,
		Path:      path,
		HasBackup: HookExists(path + BackupSuffix),
	}

	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return status
	}
	status.Installed = true
	status.Executable = info.Mode().Perm()&0o111 != 0

	content, err := os.ReadFile(path)
	if err == nil {
		status.Current = bytes.Equal(content, template)
	}
	return status
}

// UninstallHook removes hooksDir/hook and restores its backup if one exists.
// A missing hook is not an error.
func UninstallHook(hooksDir string, hook HookName) (removed, restored bool, err error) {
	path := filepath.Join(hooksDir, string(hook))
	backup := path + BackupSuffix

	if err := os.Remove(path); err != nil {
		if !os.IsNotExist(err) {
			return false, false, output.NewSystemErrorWithCause("failed to remove hook", err)
		}
	} else {
		removed = true
	}

	if !HookExists(backup) {
		return removed, false, nil
	}
	if err := os.Rename(backup, path); err != nil {
		return removed, false, output.NewSystemErrorWithCause("failed to restore backup hook", err)
	}
	return removed, true, nil
}

// DescribeInstallAction returns what installing over the given state would do.
func DescribeInstallAction(status HookStatus) string {
	switch {
	case !status.Installed:
		return "would install"
	case status.HasBackup:
		return "would replace existing backup and install"
	default:
		return "would backup existing hook and install"
	}
}

// DescribeUninstallAction returns what uninstalling from the given state would do.
func DescribeUninstallAction(status HookStatus) string {
	switch {
	case !status.Installed && !status.HasBackup:
		return "nothing to do"
	case status.HasBackup:
		return "would remove and restore backup"
	default:
		return "would remove"
	}
}
