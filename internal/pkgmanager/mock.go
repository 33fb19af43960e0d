package pkgmanager

import (
	"context"
	"fmt"
	"path/filepath"
	"slices"

	"github.com/spf13/afero"
)

// Operations recorded by Mock.
const (
	OpInit       = "init"
	OpInstall    = "install"
	OpInstallDev = "install-dev"
)

// MockCall is one recorded PackageManager invocation.
type MockCall struct {
	Op       string
	Dir      string
	Packages []string
}

// MockPackageManager is an in-memory PackageManager for tests.
type MockPackageManager struct {
	// FS receives the package.json written by InitManifest. When nil,
	// InitManifest writes nothing.
	FS afero.Fs

	// Manifest overrides the generated package.json content.
	Manifest []byte

	// FailOn makes the call with this Op return a ToolError.
	FailOn string

	Calls []MockCall
}

// NewMockPackageManager returns a mock that writes manifests into fs.
func NewMockPackageManager(fs afero.Fs) *MockPackageManager {
	return &MockPackageManager{FS: fs}
}

// InitManifest records the call and writes an npm-style package.json.
func (m *MockPackageManager) InitManifest(_ context.Context, dir string) error {
	m.Calls = append(m.Calls, MockCall{Op: OpInit, Dir: dir})
	if m.FailOn == OpInit {
		return &ToolError{Bin: "mock", Args: []string{"init", "-y"}, ExitCode: 1}
	}
	if m.FS == nil {
		return nil
	}

	content := m.Manifest
	if content == nil {
		content = DefaultManifest(filepath.Base(dir))
	}
	return afero.WriteFile(m.FS, filepath.Join(dir, "package.json"), content, 0644)
}

// Install records the call.
func (m *MockPackageManager) Install(_ context.Context, dir string, packages []string, dev bool) error {
	op := OpInstall
	if dev {
		op = OpInstallDev
	}
	m.Calls = append(m.Calls, MockCall{Op: op, Dir: dir, Packages: slices.Clone(packages)})
	if m.FailOn == op {
		return &ToolError{Bin: "mock", Args: append([]string{"install"}, packages...), ExitCode: 1}
	}
	return nil
}

// Ops returns the recorded operation names in call order.
func (m *MockPackageManager) Ops() []string {
	ops := make([]string, len(m.Calls))
	for i, c := range m.Calls {
		ops[i] = c.Op
	}
	return ops
}

// DefaultManifest mirrors what `npm init -y` writes for a directory named name.
func DefaultManifest(name string) []byte {
	return []byte(fmt.Sprintf(`{
  "name": %q,
  "version": "1.0.0",
  "description": "",
  "main": "index.js",
  "scripts": {
    "test": "echo \"Error: no test specified\" && exit 1"
  },
  "keywords": [],
  "author": "",
  "license": "ISC"
}
`, name))
}
