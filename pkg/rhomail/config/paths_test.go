package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultConfigPathEnvOverride(t *testing.T) {
	t.Setenv("RHOMAIL_CONFIG", "/tmp/custom/rhomail.yaml")
	require.Equal(t, "/tmp/custom/rhomail.yaml", DefaultConfigPath())
}

func TestDefaultConfigPath(t *testing.T) {
	t.Setenv("RHOMAIL_CONFIG", "")
	path := DefaultConfigPath()
	require.True(t, filepath.IsAbs(path))
	require.Equal(t, "config.yaml", filepath.Base(path))
	require.Contains(t, path, "rhomail")
}
