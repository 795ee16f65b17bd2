// Package copier copies files and directory trees into place.
package copier

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	ignore "github.com/sabhiram/go-gitignore"

	"github.com/gorewood/hookkit/internal/output"
)

// Default modes before the process umask is applied by the kernel.
const (
	FileMode fs.FileMode = 0o666
	DirMode  fs.FileMode = 0o777
)

// ErrTargetExists is the cause of the conflict error returned when a copy
// target already exists and Options.Overwrite is false.
var ErrTargetExists = errors.New("target already exists")

// Options controls a copy.
type Options struct {
	// Overwrite replaces existing target files. When false an existing
	// target is left untouched and reported as a conflict.
	Overwrite bool `yaml:"overwrite" json:"overwrite,omitempty"`
	// Exclude holds gitignore-style patterns matched against paths
	// relative to the copy source. Matching files and directories are skipped.
	Exclude []string `yaml:"exclude" json:"exclude,omitempty"`
}

// IsDir reports whether path is a directory. Any stat failure, including a
// missing path, reports false.
func IsDir(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// Exists reports whether anything is present at path.
func Exists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}

// MkdirAll creates path and any missing ancestors with DirMode. An existing
// directory is left alone. Only a missing parent triggers the recursive
// create-and-retry; other failures are returned.
func MkdirAll(path string) error {
	if IsDir(path) {
		return nil
	}

	err := os.Mkdir(path, DirMode)
	if err == nil {
		return nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return output.NewSystemErrorWithCause("failed to create directory "+path, err)
	}

	parent := filepath.Dir(path)
	if parent == path {
		return output.NewSystemErrorWithCause("failed to create directory "+path, err)
	}
	if err := MkdirAll(parent); err != nil {
		return err
	}
	return MkdirAll(path)
}

// Copy copies source to target. A directory source is copied recursively,
// creating target directories as needed; a file source is written to target.
//
// Entries are visited in directory-listing order. Conflicts on individual
// files do not stop a tree copy: every other entry is still copied and the
// conflicts are returned joined. A fatal error (an unreadable source file)
// stops the copy immediately; see output.IsFatal.
func Copy(source, target string, opts Options) error {
	c := &treeCopy{root: source, opts: opts}
	if len(opts.Exclude) > 0 {
		c.ignore = ignore.CompileIgnoreLines(opts.Exclude...)
	}
	return c.copy(source, target)
}

type treeCopy struct {
	root   string
	opts   Options
	ignore *ignore.GitIgnore
}

func (c *treeCopy) copy(source, target string) error {
	if c.excluded(source) {
		return nil
	}
	if IsDir(source) {
		return c.copyDirectory(source, target)
	}
	return c.copyFile(source, target)
}

func (c *treeCopy) excluded(path string) bool {
	if c.ignore == nil || path == c.root {
		return false
	}
	rel, err := filepath.Rel(c.root, path)
	if err != nil {
		return false
	}
	rel = filepath.ToSlash(rel)
	if IsDir(path) {
		// Directory-only patterns ("build/") need the trailing slash.
		return c.ignore.MatchesPath(rel) || c.ignore.MatchesPath(rel+"/")
	}
	return c.ignore.MatchesPath(rel)
}

func (c *treeCopy) copyDirectory(source, target string) error {
	if err := MkdirAll(target); err != nil {
		return err
	}

	entries, err := os.ReadDir(source)
	if err != nil {
		return output.NewSystemErrorWithCause("failed to read directory "+source, err)
	}

	var conflicts []error
	for _, entry := range entries {
		err := c.copy(filepath.Join(source, entry.Name()), filepath.Join(target, entry.Name()))
		if err == nil {
			continue
		}
		if errors.Is(err, ErrTargetExists) && !output.IsFatal(err) {
			conflicts = append(conflicts, err)
			continue
		}
		return errors.Join(append(conflicts, err)...)
	}
	return errors.Join(conflicts...)
}

func (c *treeCopy) copyFile(source, target string) error {
	if err := MkdirAll(filepath.Dir(target)); err != nil {
		return err
	}

	if Exists(target) && !c.opts.Overwrite {
		return output.NewConflictError(target+" already exists", ErrTargetExists)
	}

	content, err := os.ReadFile(source)
	if err != nil {
		return output.NewFatalErrorWithCause("cannot read copy source "+source, err)
	}

	// #nosec G306 -- copied assets keep the default umask-masked mode
	if err := os.WriteFile(target, content, FileMode); err != nil {
		return output.NewSystemErrorWithCause("failed to write "+target, err)
	}
	return nil
}
