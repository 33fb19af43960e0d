package project

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"slices"

	"github.com/ali98nadhum/node-setup/internal/manifest"
)

//go:embed all:templates
var templateFS embed.FS

const templatesRoot = "templates"

// FileTemplate is one file written verbatim into a new project.
type FileTemplate struct {
	Path    string // slash-separated, relative to the project root
	Content []byte
}

var directoryPlan = []string{
	"src",
	"src/config",
	"src/controllers",
	"src/middlewares",
	"src/models",
	"src/routes",
	"src/utils",
}

// fileOrder is the write order for the embedded templates.
var fileOrder = []string{
	"src/config/db.js",
	"src/controllers/.gitKeep",
	"src/middlewares/.gitkeep",
	"src/models/.gitkeep",
	"src/routes/.gitkeep",
	"src/utils/.gitkeep",
	"src/index.js",
}

var (
	runtimeDependencies = []string{"express", "cors", "dotenv", "mongoose"}
	devDependencies     = []string{"nodemon"}
)

// ProjectScripts is merged into package.json, replacing any existing scripts.
var ProjectScripts = manifest.Scripts{
	Start: "node src/index.js",
	Dev:   "nodemon src/index.js",
}

// Auxiliary files written after the manifest is patched.
const (
	GitignoreFile    = ".gitignore"
	GitignoreContent = "node_modules/\n.env\n"

	EnvFile    = "config.env"
	EnvContent = "PORT=5000\nMONGO_URI=your_mongodb_connection_string\n"
)

// RequiredEnvKeys must be defined in EnvFile.
var RequiredEnvKeys = []string{"PORT", "MONGO_URI"}

// DirectoryPlan returns the folders created inside every project, parents first.
func DirectoryPlan() []string {
	return slices.Clone(directoryPlan)
}

// RuntimeDependencies returns the packages installed as regular dependencies.
func RuntimeDependencies() []string {
	return slices.Clone(runtimeDependencies)
}

// DevDependencies returns the packages installed as development dependencies.
func DevDependencies() []string {
	return slices.Clone(devDependencies)
}

// Files returns the file templates in write order.
func Files() ([]FileTemplate, error) {
	out := make([]FileTemplate, 0, len(fileOrder))
	for _, p := range fileOrder {
		content, err := fs.ReadFile(templateFS, path.Join(templatesRoot, p))
		if err != nil {
			return nil, fmt.Errorf("reading template %s: %w", p, err)
		}
		out = append(out, FileTemplate{Path: p, Content: content})
	}
	return out, nil
}
