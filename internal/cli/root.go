package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ali98nadhum/node-setup/internal/branding"
	"github.com/ali98nadhum/node-setup/internal/config"
	"github.com/ali98nadhum/node-setup/internal/logging"
	"github.com/ali98nadhum/node-setup/internal/pkgmanager"
	"github.com/ali98nadhum/node-setup/internal/project"
	"github.com/ali98nadhum/node-setup/internal/ui"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var (
	buildVersion = "dev"
	buildCommit  = "unknown"
	buildDate    = "unknown"
)

// Deps are the collaborators the commands run against.
type Deps struct {
	FS afero.Fs

	// PackageManager defaults to npm as configured in config.yaml.
	PackageManager pkgmanager.PackageManager

	// BaseDir is where new projects are created; defaults to the working directory.
	BaseDir string
}

// NewRootCommand builds the command tree.
func NewRootCommand(deps Deps) *cobra.Command {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:   branding.CLIName() + " <project-name>",
		Short: branding.Description(),
		Long: branding.DisplayName() + ` creates a new Express + MongoDB project folder, installs its
dependencies with npm, lays out src/ with starter files and adds start/dev
scripts to package.json.

Example:
  ` + branding.CLIName() + ` my-project`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.Load()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			name := ""
			if len(args) == 1 {
				name = args[0]
			}
			return runCreate(cmd, deps, name, verbose)
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log each step to stderr")

	rootCmd.AddCommand(newDoctorCommand(deps))
	rootCmd.AddCommand(newConfigCommand())
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}

func runCreate(cmd *cobra.Command, deps Deps, name string, verbose bool) error {
	if name == "" {
		return fmt.Errorf("%w: %s my-project", project.ErrMissingName, branding.CLIName())
	}

	baseDir, err := resolveBaseDir(deps)
	if err != nil {
		return err
	}
	spec, err := project.NewSpec(baseDir, name)
	if err != nil {
		return err
	}

	fs := deps.fs()
	if err := project.CheckTarget(fs, spec); err != nil {
		return err
	}

	pm := deps.PackageManager
	if pm == nil {
		npm := pkgmanager.NewNpm(config.NpmBin())
		npm.Stdin = cmd.InOrStdin()
		npm.Stdout = cmd.OutOrStdout()
		npm.Stderr = cmd.ErrOrStderr()
		// Fail before creating anything if npm cannot be found.
		if _, err := pkgmanager.Resolve(npm.String()); err != nil {
			return err
		}
		pm = npm
	}

	out := cmd.OutOrStdout()
	m := &project.Materializer{
		FS:             fs,
		PackageManager: pm,
		Out:            out,
		Logger:         logging.New(cmd.ErrOrStderr(), verbose),
	}

	result, err := m.Materialize(cmd.Context(), spec)
	if err != nil {
		return err
	}

	for _, w := range result.Warnings {
		ui.Warning(cmd.ErrOrStderr(), "%s", w)
	}

	fmt.Fprintln(out)
	ui.Success(out, "Node.js project setup completed successfully!")
	fmt.Fprintln(out, "\nNext steps:")
	fmt.Fprintf(out, "  1. cd %s\n", spec.Name)
	fmt.Fprintf(out, "  2. Set MONGO_URI in %s\n", project.EnvFile)
	fmt.Fprintln(out, "  3. npm run dev")
	return nil
}

func resolveBaseDir(deps Deps) (string, error) {
	if deps.BaseDir != "" {
		return deps.BaseDir, nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getting current directory: %w", err)
	}
	return cwd, nil
}

func resolvePath(deps Deps, p string) (string, error) {
	if filepath.IsAbs(p) {
		return p, nil
	}
	base, err := resolveBaseDir(deps)
	if err != nil {
		return "", err
	}
	return filepath.Join(base, p), nil
}

func (d Deps) fs() afero.Fs {
	if d.FS == nil {
		return afero.NewOsFs()
	}
	return d.FS
}

// Execute runs the CLI against the real filesystem and npm. Errors are
// printed to stderr before being returned.
func Execute(ctx context.Context, version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	rootCmd := NewRootCommand(Deps{FS: afero.NewOsFs()})
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		ui.Error(rootCmd.ErrOrStderr(), err)
		return err
	}
	return nil
}
