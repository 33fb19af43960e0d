package project

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// Spec identifies the project to create.
type Spec struct {
	Name string
	Root string // absolute path of the project folder
}

// NewSpec validates name and resolves it against baseDir.
func NewSpec(baseDir, name string) (Spec, error) {
	if name == "" {
		return Spec{}, ErrMissingName
	}
	if name == "." || name == ".." || strings.ContainsAny(name, `/\`) || name != filepath.Base(name) {
		return Spec{}, &InvalidNameError{Name: name}
	}

	base, err := filepath.Abs(baseDir)
	if err != nil {
		return Spec{}, err
	}
	return Spec{Name: name, Root: filepath.Join(base, name)}, nil
}

// CheckTarget returns a *TargetExistsError if s.Root is present in fs.
func CheckTarget(fs afero.Fs, s Spec) error {
	_, err := fs.Stat(s.Root)
	if err == nil {
		return &TargetExistsError{Path: s.Root}
	}
	if !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (s Spec) path(rel string) string {
	return filepath.Join(s.Root, filepath.FromSlash(rel))
}
