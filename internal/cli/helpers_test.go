package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/ali98nadhum/node-setup/internal/pkgmanager"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

// isolateConfig points the config directory at a temp dir and resets viper.
func isolateConfig(t *testing.T) string {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	t.Setenv("SETUP_NODE_HOME", dir)
	return dir
}

func memDeps(t *testing.T) (Deps, *pkgmanager.MockPackageManager) {
	t.Helper()
	isolateConfig(t)

	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/work", 0755))
	pm := pkgmanager.NewMockPackageManager(fs)
	return Deps{FS: fs, PackageManager: pm, BaseDir: "/work"}, pm
}

func runCLI(t *testing.T, deps Deps, args ...string) (string, string, error) {
	t.Helper()
	cmd := NewRootCommand(deps)

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

// writeFakeNpm installs a shell script standing in for npm. `init` writes a
// minimal package.json into the working directory; `install` is logged.
func writeFakeNpm(t *testing.T) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell script fake requires a POSIX shell")
	}

	script := `#!/bin/sh
case "$1" in
  --version)
    echo "10.2.4"
    ;;
  init)
    printf '{\n  "name": "%s",\n  "version": "1.0.0",\n  "scripts": {\n    "test": "exit 1"\n  },\n  "license": "ISC"\n}\n' "$(basename "$PWD")" > package.json
    ;;
  install)
    echo "$@" >> ../install.log
    ;;
esac
`
	path := filepath.Join(t.TempDir(), "npm")
	require.NoError(t, os.WriteFile(path, []byte(script), 0755))
	return path
}
