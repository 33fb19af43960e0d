package project

import (
	"os"
	"strings"
	"testing"

	"github.com/ali98nadhum/node-setup/internal/pkgmanager"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

const baseDir = "/work"

// newTestMaterializer returns a Materializer over an in-memory filesystem
// with a mock package manager writing into the same filesystem.
func newTestMaterializer(t *testing.T) (*Materializer, *pkgmanager.MockPackageManager) {
	t.Helper()
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll(baseDir, 0755))

	pm := pkgmanager.NewMockPackageManager(fs)
	return &Materializer{FS: fs, PackageManager: pm}, pm
}

func demoSpec(t *testing.T) Spec {
	t.Helper()
	s, err := NewSpec(baseDir, "demo")
	require.NoError(t, err)
	return s
}

func readFile(t *testing.T, fs afero.Fs, path string) string {
	t.Helper()
	data, err := afero.ReadFile(fs, path)
	require.NoError(t, err)
	return string(data)
}

// listTree returns every path under root, relative and slash-separated.
func listTree(t *testing.T, fs afero.Fs, root string) []string {
	t.Helper()
	var paths []string
	err := afero.Walk(fs, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if path == root {
			return nil
		}
		rel := strings.TrimPrefix(path, root+"/")
		if info.IsDir() {
			rel += "/"
		}
		paths = append(paths, rel)
		return nil
	})
	require.NoError(t, err)
	return paths
}

// failingFs fails OpenFile for any path ending in suffix.
type failingFs struct {
	afero.Fs
	suffix string
}

func (f *failingFs) OpenFile(name string, flag int, perm os.FileMode) (afero.File, error) {
	if strings.HasSuffix(name, f.suffix) {
		return nil, &os.PathError{Op: "open", Path: name, Err: os.ErrPermission}
	}
	return f.Fs.OpenFile(name, flag, perm)
}
