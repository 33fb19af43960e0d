package cli

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoctor_ProjectCheckPasses(t *testing.T) {
	deps, _ := memDeps(t)
	_, _, err := runCLI(t, deps, "demo")
	require.NoError(t, err)

	stdout, _, err := runCLI(t, deps, "doctor", "--project", "demo")
	require.NoError(t, err)
	assert.Contains(t, stdout, "version check not supported")
	assert.Contains(t, stdout, "project /work/demo")
	assert.Contains(t, stdout, "All checks passed.")
}

func TestDoctor_ProjectCheckFindsProblems(t *testing.T) {
	deps, _ := memDeps(t)
	_, _, err := runCLI(t, deps, "demo")
	require.NoError(t, err)
	require.NoError(t, deps.FS.Remove("/work/demo/config.env"))

	stdout, _, err := runCLI(t, deps, "doctor", "--project", "/work/demo")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "doctor found 1 problem(s)")
	assert.Contains(t, stdout, "missing config.env")
}

func TestDoctor_ProjectFolderMissing(t *testing.T) {
	deps, _ := memDeps(t)

	_, _, err := runCLI(t, deps, "doctor", "--project", "nope")
	assert.Error(t, err)
}

func TestDoctor_NpmVersion(t *testing.T) {
	isolateConfig(t)
	t.Setenv("SETUP_NODE_NPM_BIN", writeFakeNpm(t))

	deps := Deps{FS: afero.NewMemMapFs(), BaseDir: "/work"}

	stdout, _, err := runCLI(t, deps, "doctor")
	require.NoError(t, err)
	assert.Contains(t, stdout, "npm 10.2.4")
}

func TestDoctor_NpmTooOld(t *testing.T) {
	isolateConfig(t)
	t.Setenv("SETUP_NODE_NPM_BIN", writeFakeNpm(t))
	t.Setenv("SETUP_NODE_MIN_NPM_VERSION", ">= 11.0.0")

	stdout, _, err := runCLI(t, Deps{FS: afero.NewMemMapFs()}, "doctor")
	require.Error(t, err)
	assert.Contains(t, stdout, "does not satisfy")
}

func TestDoctor_NpmMissing(t *testing.T) {
	isolateConfig(t)
	t.Setenv("SETUP_NODE_NPM_BIN", filepath.Join(t.TempDir(), "npm"))

	stdout, _, err := runCLI(t, Deps{FS: afero.NewMemMapFs()}, "doctor")
	require.Error(t, err)
	assert.Contains(t, stdout, "not found")
}
