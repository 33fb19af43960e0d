// Package cli defines the Cobra command tree for the setup-node CLI. The
// root command creates a project; doctor, config and version are helpers.
// Commands only parse arguments and format output; the work happens in
// internal/project and internal/pkgmanager.
package cli
