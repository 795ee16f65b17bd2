// Package manifest reads the .hookkit.yml file that tells the install
// command which hooks to install and which assets to copy. A .hookkit.json
// file, comments and trailing commas allowed, is read the same way.
package manifest

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/gorewood/hookkit/internal/copier"
	"github.com/gorewood/hookkit/internal/setup"
)

// Manifest file names looked up in the caller directory, in order.
const (
	FileName     = ".hookkit.yml"
	JSONFileName = ".hookkit.json"
)

// Find returns the manifest path for dir: the first of FileName and
// JSONFileName that exists, or dir/FileName when neither does.
func Find(dir string) string {
	for _, name := range []string{FileName, JSONFileName} {
		path := filepath.Join(dir, name)
		if copier.Exists(path) {
			return path
		}
	}
	return filepath.Join(dir, FileName)
}

// Manifest describes one install run.
type Manifest struct {
	Hooks    []string    `yaml:"hooks"`
	Template string      `yaml:"template,omitempty"`
	Copy     []CopyEntry `yaml:"copy,omitempty"`

	// Dir is the directory the manifest was loaded from. Relative paths
	// in the manifest are resolved against it.
	Dir string `yaml:"-"`
}

// CopyEntry is one asset to stage into the project.
type CopyEntry struct {
	Source         string `yaml:"source"`
	Target         string `yaml:"target,omitempty"`
	copier.Options `yaml:",inline"`
}

// Default is the manifest used when none exists: install pre-commit only.
func Default(dir string) *Manifest {
	return &Manifest{
		Hooks: []string{string(setup.PreCommit)},
		Dir:   dir,
	}
}

// Load reads the manifest at path. A missing file yields Default for the
// file's directory.
func Load(path string) (*Manifest, error) {
	dir := filepath.Dir(path)

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(dir), nil
		}
		return nil, fmt.Errorf("reading manifest %s: %w", path, err)
	}

	switch filepath.Ext(path) {
	case ".json", ".jsonc":
		data = jsonc.ToJSON(data)
	}

	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("manifest %s: %w", path, err)
	}
	m.Dir = dir
	return m, nil
}

// Parse decodes manifest YAML. Unknown keys are rejected so typos surface.
func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&m); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("invalid manifest: %w", err)
	}
	if len(m.Hooks) == 0 {
		m.Hooks = []string{string(setup.PreCommit)}
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// Validate checks hook names and copy entries.
func (m *Manifest) Validate() error {
	if _, err := setup.ParseHookNames(m.Hooks); err != nil {
		return err
	}
	for i, entry := range m.Copy {
		if entry.Source == "" {
			return fmt.Errorf("copy[%d]: source is required", i)
		}
	}
	return nil
}

// HookNames returns the validated hook list.
func (m *Manifest) HookNames() ([]setup.HookName, error) {
	return setup.ParseHookNames(m.Hooks)
}

// TemplatePath returns the template override as an absolute path, or "".
func (m *Manifest) TemplatePath() string {
	if m.Template == "" {
		return ""
	}
	if filepath.IsAbs(m.Template) {
		return m.Template
	}
	return filepath.Join(m.Dir, m.Template)
}
