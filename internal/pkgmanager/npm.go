package pkgmanager

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// DefaultBin is the executable used when Npm.Bin is empty.
const DefaultBin = "npm"

// Npm runs the npm CLI.
type Npm struct {
	// Bin is the executable name or path; defaults to "npm".
	Bin string

	// Stdin, Stdout and Stderr are handed to the child process unchanged.
	// They default to the current process streams.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewNpm returns an Npm that runs bin with the process's own streams.
func NewNpm(bin string) *Npm {
	return &Npm{Bin: bin}
}

// InitManifest runs `npm init -y` in dir.
func (n *Npm) InitManifest(ctx context.Context, dir string) error {
	return n.run(ctx, dir, "init", "-y")
}

// Install runs `npm install [-D] <packages...> --silent` in dir.
// An empty package list is a no-op.
func (n *Npm) Install(ctx context.Context, dir string, packages []string, dev bool) error {
	if len(packages) == 0 {
		return nil
	}
	args := []string{"install"}
	if dev {
		args = append(args, "-D")
	}
	args = append(args, packages...)
	args = append(args, "--silent")
	return n.run(ctx, dir, args...)
}

// Version runs `npm --version` and parses the output.
func (n *Npm) Version(ctx context.Context) (*semver.Version, error) {
	bin, err := Resolve(n.bin())
	if err != nil {
		return nil, err
	}

	var stdout bytes.Buffer
	cmd := exec.CommandContext(ctx, bin, "--version")
	cmd.Stdout = &stdout
	cmd.Stderr = n.stderr()
	if err := cmd.Run(); err != nil {
		return nil, n.wrapRunErr(err, []string{"--version"})
	}

	raw := strings.TrimSpace(stdout.String())
	v, err := semver.NewVersion(raw)
	if err != nil {
		return nil, fmt.Errorf("parsing %s version %q: %w", n.bin(), raw, err)
	}
	return v, nil
}

// String returns the executable name, for messages.
func (n *Npm) String() string { return n.bin() }

func (n *Npm) run(ctx context.Context, dir string, args ...string) error {
	bin, err := Resolve(n.bin())
	if err != nil {
		return err
	}

	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Dir = dir
	cmd.Stdin = n.Stdin
	if cmd.Stdin == nil {
		cmd.Stdin = os.Stdin
	}
	cmd.Stdout = n.Stdout
	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}
	cmd.Stderr = n.stderr()

	if err := cmd.Run(); err != nil {
		return n.wrapRunErr(err, args)
	}
	return nil
}

func (n *Npm) wrapRunErr(err error, args []string) error {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return &ToolError{Bin: n.bin(), Args: args, ExitCode: exitErr.ExitCode()}
	}
	return fmt.Errorf("running %s %s: %w", n.bin(), strings.Join(args, " "), err)
}

func (n *Npm) bin() string {
	if n.Bin == "" {
		return DefaultBin
	}
	return n.Bin
}

func (n *Npm) stderr() io.Writer {
	if n.Stderr == nil {
		return os.Stderr
	}
	return n.Stderr
}

// CheckVersion returns an error unless v satisfies constraint
// (e.g. ">= 7.0.0").
func CheckVersion(v *semver.Version, constraint string) error {
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return fmt.Errorf("invalid version constraint %q: %w", constraint, err)
	}
	if !c.Check(v) {
		return fmt.Errorf("version %s does not satisfy %q", v, constraint)
	}
	return nil
}
