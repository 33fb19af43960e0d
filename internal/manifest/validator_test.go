package manifest

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_PatchedManifest(t *testing.T) {
	out, err := SetScripts([]byte(npmInitOutput), projectScripts)
	require.NoError(t, err)

	result, err := Validate(out)
	require.NoError(t, err)
	assert.True(t, result.Valid, "issues: %v", result.Issues)
}

func TestValidate_UnpatchedManifestMissesScripts(t *testing.T) {
	result, err := Validate([]byte(npmInitOutput))
	require.NoError(t, err)
	require.False(t, result.Valid)

	require.Len(t, result.Issues, 1)
	assert.Equal(t, "required", result.Issues[0].Keyword)
	assert.Contains(t, result.Issues[0].Message, "scripts")
}

func TestValidate_WrongTypes(t *testing.T) {
	result, err := Validate([]byte(`{"name": 3, "version": "1.0.0", "scripts": {"start": "a", "dev": "b"}}`))
	require.NoError(t, err)
	require.False(t, result.Valid)
	require.NotEmpty(t, result.Issues)
	assert.Equal(t, "/name", result.Issues[0].Path)
	assert.Equal(t, "type", result.Issues[0].Keyword)
}

func TestValidate_InvalidJSON(t *testing.T) {
	_, err := Validate([]byte(`{`))
	assert.Error(t, err)
}

func TestValidateFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	_, err := ValidateFile(fs, "/missing/package.json")
	assert.Error(t, err)

	out, err := SetScripts([]byte(npmInitOutput), projectScripts)
	require.NoError(t, err)
	require.NoError(t, afero.WriteFile(fs, "/p/package.json", out, 0644))

	result, err := ValidateFile(fs, "/p/package.json")
	require.NoError(t, err)
	assert.True(t, result.Valid)
}

func TestValidationIssueString(t *testing.T) {
	assert.Equal(t, "/name: bad", ValidationIssue{Path: "/name", Message: "bad"}.String())
	assert.Equal(t, "bad", ValidationIssue{Message: "bad"}.String())
}
