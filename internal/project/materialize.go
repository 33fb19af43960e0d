package project

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/ali98nadhum/node-setup/internal/logging"
	"github.com/ali98nadhum/node-setup/internal/manifest"
	"github.com/ali98nadhum/node-setup/internal/pkgmanager"
	"github.com/ali98nadhum/node-setup/internal/ui"
	"github.com/spf13/afero"
)

// Materializer creates projects. FS and PackageManager must point at the
// same storage: the package manager writes package.json, FS patches it.
type Materializer struct {
	FS             afero.Fs
	PackageManager pkgmanager.PackageManager

	// Out receives progress lines; nil discards them.
	Out    io.Writer
	Logger *slog.Logger
}

// Result holds the outcome of a successful materialization.
type Result struct {
	Root        string
	Directories []string
	Files       []string
	Warnings    []string
}

// Materialize runs every step in order and stops at the first failure.
// Nothing is rolled back on failure.
func (m *Materializer) Materialize(ctx context.Context, s Spec) (*Result, error) {
	if s.Name == "" {
		return nil, ErrMissingName
	}
	if err := CheckTarget(m.FS, s); err != nil {
		return nil, err
	}

	out := m.out()
	log := m.logger().With("root", s.Root)
	result := &Result{Root: s.Root}

	if err := m.FS.Mkdir(s.Root, 0755); err != nil {
		return nil, stepErr(StepCreateRoot, err)
	}
	ui.Step(out, "Created project folder: %s", s.Name)
	log.Debug("created project root")

	ui.Step(out, "Initializing package.json...")
	if err := m.PackageManager.InitManifest(ctx, s.Root); err != nil {
		return nil, stepErr(StepInitManifest, err)
	}

	ui.Step(out, "Installing dependencies...")
	log.Debug("installing", "packages", runtimeDependencies)
	if err := m.PackageManager.Install(ctx, s.Root, RuntimeDependencies(), false); err != nil {
		return nil, stepErr(StepInstall, err)
	}
	log.Debug("installing", "packages", devDependencies, "dev", true)
	if err := m.PackageManager.Install(ctx, s.Root, DevDependencies(), true); err != nil {
		return nil, stepErr(StepInstallDev, err)
	}

	for _, dir := range directoryPlan {
		if err := m.FS.MkdirAll(s.path(dir), 0755); err != nil {
			return nil, stepErr(StepDirectories, err)
		}
		result.Directories = append(result.Directories, dir)
		ui.Item(out, "Created folder: %s", dir)
	}

	files, err := Files()
	if err != nil {
		return nil, stepErr(StepFiles, err)
	}
	for _, f := range files {
		if err := afero.WriteFile(m.FS, s.path(f.Path), f.Content, 0644); err != nil {
			return nil, stepErr(StepFiles, err)
		}
		result.Files = append(result.Files, f.Path)
		ui.Item(out, "Created file: %s", f.Path)
	}

	patched, err := manifest.Patch(m.FS, s.path(manifest.FileName), ProjectScripts)
	if err != nil {
		return nil, stepErr(StepManifest, err)
	}
	ui.Step(out, "Updated %s with scripts", manifest.FileName)
	result.Warnings = append(result.Warnings, validateManifest(patched)...)

	for _, aux := range []FileTemplate{
		{Path: GitignoreFile, Content: []byte(GitignoreContent)},
		{Path: EnvFile, Content: []byte(EnvContent)},
	} {
		if err := afero.WriteFile(m.FS, s.path(aux.Path), aux.Content, 0644); err != nil {
			return nil, stepErr(StepAuxFiles, err)
		}
		result.Files = append(result.Files, aux.Path)
	}
	ui.Step(out, "Created %s and %s files", GitignoreFile, EnvFile)

	log.Debug("project ready", "files", len(result.Files), "warnings", len(result.Warnings))
	return result, nil
}

// validateManifest turns schema findings into warnings.
func validateManifest(data []byte) []string {
	res, err := manifest.Validate(data)
	if err != nil {
		return []string{fmt.Sprintf("could not validate %s: %v", manifest.FileName, err)}
	}
	var warnings []string
	for _, issue := range res.Issues {
		warnings = append(warnings, manifest.FileName+": "+issue.String())
	}
	return warnings
}

func (m *Materializer) out() io.Writer {
	if m.Out == nil {
		return io.Discard
	}
	return m.Out
}

func (m *Materializer) logger() *slog.Logger {
	if m.Logger == nil {
		return logging.Discard()
	}
	return m.Logger
}
