package setup

import (
	"os"
	"path/filepath"

	"github.com/gorewood/hookkit/internal/output"
)

// Template sources reported by LoadTemplate.
const (
	SourceBundled = "bundled"
	SourceGlobal  = "global"
	SourceProject = "project"
)

// Template is the hook script that gets installed.
type Template struct {
	Content []byte
	Source  string
	Path    string // empty for the bundled template
}

// LoadTemplate resolves the hook script.
// Resolution order: explicit override path → <configDir>/hooks/pre-commit → bundled.
//
// A missing or unreadable override is an error since the user asked for it;
// a missing global template silently falls through to the bundled one.
func LoadTemplate(override, configDir string) (Template, error) {
	if override != "" {
		content, err := os.ReadFile(override)
		if err != nil {
			return Template{}, output.NewUserErrorWithCause("cannot read hook template "+override, err)
		}
		return Template{Content: content, Source: SourceProject, Path: override}, nil
	}

	if configDir != "" {
		path := filepath.Join(configDir, "hooks", string(PreCommit))
		if content, err := os.ReadFile(path); err == nil {
			return Template{Content: content, Source: SourceGlobal, Path: path}, nil
		}
	}

	return Template{Content: BundledTemplate(), Source: SourceBundled}, nil
}
