// Package config manages user-level settings stored at ~/.setup-node/config.yaml.
// Settings cover how the package manager is located and which minimum npm
// version the doctor command accepts. Environment variables with the
// SETUP_NODE_ prefix override the file.
package config
