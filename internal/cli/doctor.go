package cli

import (
	"context"
	"fmt"
	"io"
	"os/exec"

	"github.com/Masterminds/semver/v3"
	"github.com/ali98nadhum/node-setup/internal/config"
	"github.com/ali98nadhum/node-setup/internal/pkgmanager"
	"github.com/ali98nadhum/node-setup/internal/project"
	"github.com/ali98nadhum/node-setup/internal/ui"
	"github.com/spf13/cobra"
)

// versioner is implemented by package managers that can report their version.
type versioner interface {
	Version(ctx context.Context) (*semver.Version, error)
}

func newDoctorCommand(deps Deps) *cobra.Command {
	var projectDir string

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check that npm and node are usable",
		Long: `Check that the configured npm executable is on PATH and satisfies the
minimum version, and that node is installed.

With --project, also check that an existing project still has the layout,
package.json scripts and config.env keys this tool generates.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			problems := checkTools(cmd.Context(), out, deps)

			if projectDir != "" {
				n, err := checkProject(out, deps, projectDir)
				if err != nil {
					return err
				}
				problems += n
			}

			if problems > 0 {
				return fmt.Errorf("doctor found %d problem(s)", problems)
			}
			ui.Success(out, "All checks passed.")
			return nil
		},
	}

	cmd.Flags().StringVar(&projectDir, "project", "", "Verify a generated project folder")
	return cmd
}

func checkTools(ctx context.Context, out io.Writer, deps Deps) int {
	problems := 0

	var v versioner
	if deps.PackageManager != nil {
		v, _ = deps.PackageManager.(versioner)
	} else {
		v = pkgmanager.NewNpm(config.NpmBin())
	}

	if v == nil {
		ui.Item(out, "package manager: version check not supported")
	} else {
		version, err := v.Version(ctx)
		if err == nil {
			err = pkgmanager.CheckVersion(version, config.MinNpmVersion())
		}
		if err != nil {
			ui.Warning(out, "npm: %v", err)
			problems++
		} else {
			ui.Item(out, "npm %s", version)
		}
	}

	// node is only needed to run the generated project.
	if path, err := exec.LookPath("node"); err != nil {
		ui.Warning(out, "node not found on PATH; install Node.js to run the project")
	} else {
		ui.Item(out, "node %s", path)
	}

	return problems
}

func checkProject(out io.Writer, deps Deps, dir string) (int, error) {
	root, err := resolvePath(deps, dir)
	if err != nil {
		return 0, err
	}

	report, err := project.Verify(deps.fs(), root)
	if err != nil {
		return 0, err
	}

	for _, p := range report.Missing {
		ui.Warning(out, "missing %s", p)
	}
	for _, p := range report.Problems {
		ui.Warning(out, "%s", p)
	}
	if report.OK() {
		ui.Item(out, "project %s", root)
	}
	return len(report.Missing) + len(report.Problems), nil
}
