package project

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSpec(t *testing.T) {
	s, err := NewSpec("/work", "demo")
	require.NoError(t, err)
	assert.Equal(t, Spec{Name: "demo", Root: "/work/demo"}, s)
}

func TestNewSpec_RelativeBaseIsResolved(t *testing.T) {
	s, err := NewSpec(".", "demo")
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(s.Root))
	assert.Equal(t, "demo", filepath.Base(s.Root))
}

func TestNewSpec_Errors(t *testing.T) {
	_, err := NewSpec("/work", "")
	assert.ErrorIs(t, err, ErrMissingName)

	for _, name := range []string{".", "..", "a/b", `a\b`, "../escape"} {
		t.Run(name, func(t *testing.T) {
			_, err := NewSpec("/work", name)
			var invalid *InvalidNameError
			assert.True(t, errors.As(err, &invalid), "got %v", err)
		})
	}
}

func TestCheckTarget(t *testing.T) {
	fs := afero.NewMemMapFs()
	s := Spec{Name: "demo", Root: "/work/demo"}

	assert.NoError(t, CheckTarget(fs, s))

	require.NoError(t, afero.WriteFile(fs, "/work/demo", []byte("a file counts too"), 0644))
	var exists *TargetExistsError
	assert.True(t, errors.As(CheckTarget(fs, s), &exists))
}
