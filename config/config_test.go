package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad_EmbeddedDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, 1000.0, cfg.Anneal.T0)
	require.Equal(t, 0.90, cfg.Anneal.Alpha)
	require.Equal(t, 5, cfg.Detail.WindowSize)
	require.Equal(t, 10, cfg.Detail.MaxIterations)
}

func TestLoad_OverlayPartialFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "override.yaml")
	require.NoError(t, os.WriteFile(path, []byte("anneal:\n  t0: 500\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 500.0, cfg.Anneal.T0)
	// fields not present in the override file keep the embedded default
	require.Equal(t, 0.90, cfg.Anneal.Alpha)
	require.Equal(t, 5, cfg.Detail.WindowSize)
}

func TestLoad_MissingFileErrors(t *testing.T) {
	_, err := Load("/nonexistent/path/to/config.yaml")
	require.Error(t, err)
}
