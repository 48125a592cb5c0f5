package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/obadx/quran-transcript/config"
)

func TestLoad_MissingFileFallsBackToDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	require.NoError(t, err)
	require.Equal(t, 4, cfg.Moshaf.MaddAaredLen)
}

func TestLoad_YAMLOverridesDefault(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tajweed.yaml")
	require.NoError(t, os.WriteFile(path, []byte("madd_aared_len: 6\ndata_dir: /tmp/quran-data\n"), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, 6, cfg.Moshaf.MaddAaredLen)
	require.Equal(t, "/tmp/quran-data", cfg.DataDir)
}
