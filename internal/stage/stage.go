// Package stage copies assets from a caller's directory into the project
// that contains it, refusing destinations outside that project.
package stage

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/gorewood/hookkit/internal/copier"
	"github.com/gorewood/hookkit/internal/git"
	"github.com/gorewood/hookkit/internal/output"
)

// ErrOutsideRoot is the cause of the error returned when a target resolves
// outside the project root.
var ErrOutsideRoot = errors.New("destination outside project root")

// Plan holds the absolute paths a Copy call resolved.
type Plan struct {
	Root   string `json:"root"`
	Source string `json:"source"`
	Target string `json:"target"`
}

// Resolve computes the paths for copying source to target.
//
// source is relative to callerDir. target is relative to the git root found
// from callerDir and defaults to source's relative form. The resolved target
// must be the root or lie beneath it.
func Resolve(callerDir, source, target string) (Plan, error) {
	caller, err := filepath.Abs(callerDir)
	if err != nil {
		return Plan{}, output.NewSystemErrorWithCause("cannot resolve "+callerDir, err)
	}

	root, err := git.FindRoot(caller)
	if err != nil {
		return Plan{}, err
	}

	if target == "" {
		target = source
	}
	plan := Plan{
		Root:   root,
		Source: resolve(caller, source),
		Target: resolve(root, target),
	}

	if !within(plan.Root, plan.Target) {
		return Plan{}, output.NewUserErrorWithCause("Destination must be within project root", ErrOutsideRoot)
	}
	return plan, nil
}

// Copy resolves the paths (see Resolve) and copies source to target.
// Nothing is touched when the target falls outside the project root.
func Copy(callerDir, source, target string, opts copier.Options) (Plan, error) {
	plan, err := Resolve(callerDir, source, target)
	if err != nil {
		return Plan{}, err
	}
	return plan, copier.Copy(plan.Source, plan.Target, opts)
}

func resolve(base, path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(base, path)
}

// within reports whether path is root or below it. A bare string prefix
// is not enough: /work/app-evil starts with /work/app.
func within(root, path string) bool {
	if path == root {
		return true
	}
	return strings.HasPrefix(path, strings.TrimSuffix(root, string(filepath.Separator))+string(filepath.Separator))
}
