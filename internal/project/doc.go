// Package project turns a project name into an Express + MongoDB starter
// project on disk. It creates the root folder, delegates manifest creation
// and dependency installation to a package manager, lays out the src/ tree
// from embedded templates, injects run scripts into package.json and writes
// the .gitignore and config.env files.
//
// All paths are derived from an explicit root; the process working
// directory is never changed.
package project
