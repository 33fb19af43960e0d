package branding

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmbeddedValues(t *testing.T) {
	assert.Equal(t, "setup-node", CLIName())
	assert.Equal(t, ".setup-node", HomeDir())
	assert.Equal(t, "SETUP_NODE", EnvPrefix())
	assert.NotEmpty(t, Description())
}

func TestEnvVar(t *testing.T) {
	assert.Equal(t, "SETUP_NODE_NPM_BIN", EnvVar("npm_bin"))
	assert.Equal(t, "SETUP_NODE_HOME", EnvVar("HOME"))
}
