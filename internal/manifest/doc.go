// Package manifest reads, patches and validates the package.json produced
// by the package manager. Patching rewrites a single top-level key and keeps
// every other key in its original position.
package manifest
