package pkgmanager

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// PackageManager creates a manifest in a directory and installs packages
// into it. Both operations block until the underlying tool exits.
type PackageManager interface {
	// InitManifest writes a default package.json into dir without prompting.
	InitManifest(ctx context.Context, dir string) error
	// Install adds packages to dir. dev marks them as development-only.
	Install(ctx context.Context, dir string, packages []string, dev bool) error
}

// ToolError reports that the package manager ran but exited non-zero.
// The tool's own stderr has already been shown to the user.
type ToolError struct {
	Bin      string
	Args     []string
	ExitCode int
}

func (e *ToolError) Error() string {
	return fmt.Sprintf("%s %s exited with status %d", e.Bin, strings.Join(e.Args, " "), e.ExitCode)
}

// NotFoundError reports that the package manager executable is not on PATH.
type NotFoundError struct {
	Bin string
	Err error
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("package manager %q not found: %v", e.Bin, e.Err)
}

func (e *NotFoundError) Unwrap() error { return e.Err }

// Resolve locates bin on PATH. Paths containing a separator are checked
// directly by exec.LookPath.
func Resolve(bin string) (string, error) {
	path, err := exec.LookPath(bin)
	if err != nil {
		return "", &NotFoundError{Bin: bin, Err: err}
	}
	return path, nil
}
