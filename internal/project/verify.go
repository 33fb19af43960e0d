package project

import (
	"bytes"
	"fmt"

	"github.com/ali98nadhum/node-setup/internal/manifest"
	"github.com/joho/godotenv"
	"github.com/spf13/afero"
)

// Report lists what Verify found wrong with an existing project.
type Report struct {
	Root     string
	Missing  []string // relative paths that do not exist or have the wrong kind
	Problems []string // content issues in files that do exist
}

// OK reports whether the project matches the expected layout.
func (r *Report) OK() bool {
	return len(r.Missing) == 0 && len(r.Problems) == 0
}

// Verify inspects root without modifying it. The error return is for
// failures to read the project; layout findings go in the report.
func Verify(fs afero.Fs, root string) (*Report, error) {
	s := Spec{Root: root}
	report := &Report{Root: root}

	info, err := fs.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("reading project folder: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", root)
	}

	for _, dir := range directoryPlan {
		if ok, _ := afero.IsDir(fs, s.path(dir)); !ok {
			report.Missing = append(report.Missing, dir+"/")
		}
	}

	for _, p := range append(append([]string{}, fileOrder...), GitignoreFile, EnvFile, manifest.FileName) {
		if ok, _ := afero.Exists(fs, s.path(p)); !ok {
			report.Missing = append(report.Missing, p)
		}
	}

	if data, err := afero.ReadFile(fs, s.path(EnvFile)); err == nil {
		report.Problems = append(report.Problems, checkEnv(data)...)
	}

	if data, err := afero.ReadFile(fs, s.path(manifest.FileName)); err == nil {
		report.Problems = append(report.Problems, checkManifest(data)...)
	}

	return report, nil
}

func checkEnv(data []byte) []string {
	env, err := godotenv.Parse(bytes.NewReader(data))
	if err != nil {
		return []string{fmt.Sprintf("%s: %v", EnvFile, err)}
	}
	var problems []string
	for _, key := range RequiredEnvKeys {
		if _, ok := env[key]; !ok {
			problems = append(problems, fmt.Sprintf("%s: %s is not set", EnvFile, key))
		}
	}
	return problems
}

func checkManifest(data []byte) []string {
	problems := validateManifest(data)

	scripts := manifest.ScriptsOf(data)
	if scripts["start"] != ProjectScripts.Start {
		problems = append(problems, fmt.Sprintf("%s: scripts.start is %q, want %q", manifest.FileName, scripts["start"], ProjectScripts.Start))
	}
	if scripts["dev"] != ProjectScripts.Dev {
		problems = append(problems, fmt.Sprintf("%s: scripts.dev is %q, want %q", manifest.FileName, scripts["dev"], ProjectScripts.Dev))
	}
	return problems
}
