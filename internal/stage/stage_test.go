package stage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/gorewood/hookkit/internal/copier"
	"github.com/gorewood/hookkit/internal/output"
)

// newProject creates <tmp>/project/.git and <tmp>/project/node_modules/tool
// with an assets directory, returning (root, callerDir).
func newProject(t *testing.T) (string, string) {
	t.Helper()
	base := t.TempDir()
	root := filepath.Join(base, "project")
	caller := filepath.Join(root, "node_modules", "tool")
	for _, dir := range []string{filepath.Join(root, ".git"), filepath.Join(caller, "assets", "lint")} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatal(err)
		}
	}
	writeFile(t, filepath.Join(caller, "assets", "editorconfig"), "root = true\n")
	writeFile(t, filepath.Join(caller, "assets", "lint", "rules.json"), "{}\n")
	return root, caller
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

func TestResolve(t *testing.T) {
	root, caller := newProject(t)

	tests := []struct {
		name       string
		source     string
		target     string
		wantSource string
		wantTarget string
	}{
		{
			name:       "explicit target",
			source:     "assets/editorconfig",
			target:     ".editorconfig",
			wantSource: filepath.Join(caller, "assets", "editorconfig"),
			wantTarget: filepath.Join(root, ".editorconfig"),
		},
		{
			name:       "target defaults to source relative path",
			source:     "assets/lint",
			wantSource: filepath.Join(caller, "assets", "lint"),
			wantTarget: filepath.Join(root, "assets", "lint"),
		},
		{
			name:       "dot-dot that stays inside",
			source:     "assets/editorconfig",
			target:     "config/../.editorconfig",
			wantSource: filepath.Join(caller, "assets", "editorconfig"),
			wantTarget: filepath.Join(root, ".editorconfig"),
		},
		{
			name:       "root itself",
			source:     "assets/lint",
			target:     ".",
			wantSource: filepath.Join(caller, "assets", "lint"),
			wantTarget: root,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan, err := Resolve(caller, tt.source, tt.target)
			if err != nil {
				t.Fatalf("Resolve error = %v", err)
			}
			if plan.Root != root {
				t.Errorf("Root = %q, want %q", plan.Root, root)
			}
			if plan.Source != tt.wantSource {
				t.Errorf("Source = %q, want %q", plan.Source, tt.wantSource)
			}
			if plan.Target != tt.wantTarget {
				t.Errorf("Target = %q, want %q", plan.Target, tt.wantTarget)
			}
		})
	}
}

func TestCopy_RejectsTargetOutsideRoot(t *testing.T) {
	root, caller := newProject(t)
	parent := filepath.Dir(root)

	tests := []struct {
		name    string
		target  string
		written string
	}{
		{"parent traversal", "../escaped", filepath.Join(parent, "escaped")},
		{"sibling sharing the root prefix", "../project-evil/x", filepath.Join(parent, "project-evil", "x")},
		{"absolute path elsewhere", filepath.Join(parent, "abs"), filepath.Join(parent, "abs")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Copy(caller, "assets/editorconfig", tt.target, copier.Options{Overwrite: true})
			if !errors.Is(err, ErrOutsideRoot) {
				t.Fatalf("expected ErrOutsideRoot, got %v", err)
			}
			if err.Error() != "Destination must be within project root" {
				t.Errorf("message = %q", err.Error())
			}
			if output.GetExitCode(err) != output.ExitUserError {
				t.Errorf("exit code = %d", output.GetExitCode(err))
			}
			if copier.Exists(tt.written) {
				t.Errorf("%s must not be written", tt.written)
			}
		})
	}
}

func TestCopy_File(t *testing.T) {
	root, caller := newProject(t)

	plan, err := Copy(caller, "assets/editorconfig", ".editorconfig", copier.Options{})
	if err != nil {
		t.Fatalf("Copy error = %v", err)
	}
	data, err := os.ReadFile(filepath.Join(root, ".editorconfig"))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "root = true\n" {
		t.Errorf("content = %q", data)
	}
	if plan.Target != filepath.Join(root, ".editorconfig") {
		t.Errorf("plan.Target = %q", plan.Target)
	}

	t.Run("second copy conflicts", func(t *testing.T) {
		_, err := Copy(caller, "assets/editorconfig", ".editorconfig", copier.Options{})
		if !errors.Is(err, copier.ErrTargetExists) {
			t.Errorf("expected ErrTargetExists, got %v", err)
		}
	})
}

func TestCopy_DirectoryDefaultTarget(t *testing.T) {
	root, caller := newProject(t)

	if _, err := Copy(caller, "assets", "", copier.Options{}); err != nil {
		t.Fatalf("Copy error = %v", err)
	}
	for _, rel := range []string{"assets/editorconfig", "assets/lint/rules.json"} {
		if !copier.Exists(filepath.Join(root, filepath.FromSlash(rel))) {
			t.Errorf("%s missing", rel)
		}
	}
}

func TestCopy_MissingSourceIsFatal(t *testing.T) {
	_, caller := newProject(t)

	_, err := Copy(caller, "assets/missing", "out", copier.Options{})
	if !output.IsFatal(err) {
		t.Errorf("expected fatal error, got %v", err)
	}
}

func TestWithin(t *testing.T) {
	root := filepath.FromSlash("/work/app")
	tests := []struct {
		path string
		want bool
	}{
		{filepath.FromSlash("/work/app"), true},
		{filepath.FromSlash("/work/app/x"), true},
		{filepath.FromSlash("/work/app/x/y"), true},
		{filepath.FromSlash("/work/app-evil"), false},
		{filepath.FromSlash("/work"), false},
		{filepath.FromSlash("/elsewhere"), false},
	}
	for _, tt := range tests {
		if got := within(root, tt.path); got != tt.want {
			t.Errorf("within(%q, %q) = %v, want %v", root, tt.path, got, tt.want)
		}
	}
}
