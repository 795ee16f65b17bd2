package manifest

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gorewood/hookkit/internal/setup"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name      string
		yaml      string
		wantHooks []string
		wantCopy  int
		wantErr   string
	}{
		{
			name:      "empty document",
			yaml:      "",
			wantHooks: []string{"pre-commit"},
		},
		{
			name:      "hooks only",
			yaml:      "hooks: [pre-commit, pre-push]\n",
			wantHooks: []string{"pre-commit", "pre-push"},
		},
		{
			name: "copy entries",
			yaml: `hooks: [pre-commit]
template: hooks/pre-commit
copy:
  - source: assets/editorconfig
    target: .editorconfig
  - source: assets/lint
    overwrite: true
    exclude: ["*.tmp"]
`,
			wantHooks: []string{"pre-commit"},
			wantCopy:  2,
		},
		{
			name:    "unknown hook",
			yaml:    "hooks: [pre-comit]\n",
			wantErr: "unknown hook",
		},
		{
			name:    "missing source",
			yaml:    "copy:\n  - target: x\n",
			wantErr: "source is required",
		},
		{
			name:    "unknown key",
			yaml:    "hook: [pre-commit]\n",
			wantErr: "invalid manifest",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := Parse([]byte(tt.yaml))
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("error = %v, want to contain %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse error = %v", err)
			}
			if strings.Join(m.Hooks, ",") != strings.Join(tt.wantHooks, ",") {
				t.Errorf("Hooks = %v, want %v", m.Hooks, tt.wantHooks)
			}
			if len(m.Copy) != tt.wantCopy {
				t.Errorf("len(Copy) = %d, want %d", len(m.Copy), tt.wantCopy)
			}
		})
	}
}

func TestParse_CopyOptionsInline(t *testing.T) {
	m, err := Parse([]byte(`copy:
  - source: assets/lint
    overwrite: true
    exclude: ["*.tmp", "node_modules"]
`))
	if err != nil {
		t.Fatal(err)
	}
	entry := m.Copy[0]
	if !entry.Overwrite {
		t.Error("Overwrite should be true")
	}
	if len(entry.Exclude) != 2 || entry.Exclude[1] != "node_modules" {
		t.Errorf("Exclude = %v", entry.Exclude)
	}
	if entry.Target != "" {
		t.Errorf("Target = %q, want empty (defaults to source)", entry.Target)
	}
}

func TestParse_UnknownHookIsUserError(t *testing.T) {
	_, err := Parse([]byte("hooks: [nope]\n"))
	if !errors.Is(err, setup.ErrUnknownHook) {
		t.Errorf("expected ErrUnknownHook, got %v", err)
	}
}

func TestLoad(t *testing.T) {
	t.Run("missing file gives default", func(t *testing.T) {
		dir := t.TempDir()
		m, err := Load(filepath.Join(dir, FileName))
		if err != nil {
			t.Fatal(err)
		}
		if m.Dir != dir {
			t.Errorf("Dir = %q, want %q", m.Dir, dir)
		}
		hooks, err := m.HookNames()
		if err != nil || len(hooks) != 1 || hooks[0] != setup.PreCommit {
			t.Errorf("HookNames = %v, %v", hooks, err)
		}
		if m.TemplatePath() != "" {
			t.Errorf("TemplatePath = %q, want empty", m.TemplatePath())
		}
	})

	t.Run("relative template resolves against manifest dir", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, FileName)
		if err := os.WriteFile(path, []byte("template: hooks/pre-commit\n"), 0o644); err != nil {
			t.Fatal(err)
		}

		m, err := Load(path)
		if err != nil {
			t.Fatal(err)
		}
		if want := filepath.Join(dir, "hooks", "pre-commit"); m.TemplatePath() != want {
			t.Errorf("TemplatePath = %q, want %q", m.TemplatePath(), want)
		}
	})

	t.Run("invalid yaml names the file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), FileName)
		if err := os.WriteFile(path, []byte("hooks: [\n"), 0o644); err != nil {
			t.Fatal(err)
		}
		_, err := Load(path)
		if err == nil || !strings.Contains(err.Error(), path) {
			t.Errorf("error = %v, want it to mention %s", err, path)
		}
	})
}

func TestLoad_JSONWithComments(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, JSONFileName)
	content := `{
  // installed on every clone
  "hooks": ["pre-commit", "pre-push"],
  "copy": [
    {"source": "assets", "exclude": ["*.tmp"], "overwrite": true},
  ],
}
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	m, err := Load(path)
	if err != nil {
		t.Fatalf("Load error = %v", err)
	}
	if len(m.Hooks) != 2 || m.Hooks[1] != "pre-push" {
		t.Errorf("Hooks = %v", m.Hooks)
	}
	if len(m.Copy) != 1 || !m.Copy[0].Overwrite || len(m.Copy[0].Exclude) != 1 {
		t.Errorf("Copy = %+v", m.Copy)
	}
}

func TestFind(t *testing.T) {
	dir := t.TempDir()
	if got, want := Find(dir), filepath.Join(dir, FileName); got != want {
		t.Errorf("Find with no manifest = %q, want %q", got, want)
	}

	jsonPath := filepath.Join(dir, JSONFileName)
	if err := os.WriteFile(jsonPath, []byte("{}"), 0o644); err != nil {
		t.Fatal(err)
	}
	if got := Find(dir); got != jsonPath {
		t.Errorf("Find = %q, want %q", got, jsonPath)
	}

	yamlPath := filepath.Join(dir, FileName)
	if err := os.WriteFile(yamlPath, []byte("hooks: [pre-commit]\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if got := Find(dir); got != yamlPath {
		t.Errorf("Find with both = %q, want %q", got, yamlPath)
	}
}
