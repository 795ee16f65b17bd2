// Package git locates git repositories and wraps the git executable.
package git

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/gorewood/hookkit/internal/copier"
	"github.com/gorewood/hookkit/internal/output"
)

// ErrNoRepository is the cause carried by the abort error FindRoot returns
// when no ancestor of the start directory holds a .git directory.
var ErrNoRepository = errors.New("no .git directory found")

// FindRoot returns the nearest directory, starting at start and walking up
// one parent at a time, that contains a .git directory. The filesystem is
// re-read on every call.
//
// When the filesystem root is reached without a match, FindRoot returns an
// abort error (see output.NewAbortError): callers should stop and the
// process should exit successfully after warning.
func FindRoot(start string) (string, error) {
	abs, err := filepath.Abs(start)
	if err != nil {
		return "", output.NewSystemErrorWithCause("cannot resolve "+start, err)
	}
	return findRoot(abs)
}

func findRoot(dir string) (string, error) {
	if copier.IsDir(filepath.Join(dir, ".git")) {
		return dir, nil
	}
	parent := filepath.Dir(dir)
	if parent == dir {
		err := output.NewAbortError("Unable to find a .git directory for this project")
		err.Cause = ErrNoRepository
		return "", err
	}
	return findRoot(parent)
}

// HooksDir returns <root>/.git/hooks.
func HooksDir(root string) string {
	return filepath.Join(root, ".git", "hooks")
}

// Run executes a git command in dir and returns its trimmed stdout.
func Run(dir string, args ...string) (string, error) {
	return RunContext(context.Background(), dir, args...)
}

// RunContext executes a git command in dir with the given context.
// Failures are returned as *output.ExitError with ExitSystemError.
func RunContext(ctx context.Context, dir string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var execErr *exec.Error
		if errors.As(err, &execErr) {
			return "", output.NewSystemErrorWithCause("git not found: ensure git is installed and in PATH", err)
		}

		errMsg := strings.TrimSpace(stderr.String())
		if errMsg == "" {
			errMsg = err.Error()
		}
		return "", output.NewSystemErrorWithCause("git command failed: "+errMsg, err)
	}

	return strings.TrimSpace(stdout.String()), nil
}

// HooksPathOverride returns the configured core.hooksPath for the repository
// at root. When it is set, git ignores .git/hooks. An unset key, or a missing
// git binary, yields "".
func HooksPathOverride(ctx context.Context, root string) string {
	// git config exits 1 when the key is unset.
	value, err := RunContext(ctx, root, "config", "--get", "core.hooksPath")
	if err != nil {
		return ""
	}
	return value
}
