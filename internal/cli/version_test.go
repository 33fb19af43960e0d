package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersion(t *testing.T) {
	isolateConfig(t)
	buildVersion, buildCommit, buildDate = "1.2.3", "abc123", "2026-10-01"
	t.Cleanup(func() { buildVersion, buildCommit, buildDate = "dev", "unknown", "unknown" })

	stdout, _, err := runCLI(t, Deps{}, "version")
	require.NoError(t, err)
	assert.Equal(t, "setup-node version 1.2.3 (commit: abc123, built: 2026-10-01)\n", stdout)

	stdout, _, err = runCLI(t, Deps{}, "version", "--short")
	require.NoError(t, err)
	assert.Equal(t, "1.2.3\n", stdout)

	stdout, _, err = runCLI(t, Deps{}, "version", "--json")
	require.NoError(t, err)
	var info map[string]string
	require.NoError(t, json.Unmarshal([]byte(stdout), &info))
	assert.Equal(t, "abc123", info["commit"])
}
