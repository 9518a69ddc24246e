package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "Town, County, Region, Country", cfg.Extract.PlaceFormat)
	assert.Equal(t, 1, cfg.Extract.Workers)
	assert.True(t, cfg.Extract.KeepSources)
	assert.True(t, cfg.Extract.KeepMedia)
	assert.False(t, cfg.Log.JSON)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lineage.toml")
	content := `
[extract]
place_format = "Town, Country"
workers = 4
keep_media = false

[log]
json = true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "Town, Country", cfg.Extract.PlaceFormat)
	assert.Equal(t, 4, cfg.Extract.Workers)
	assert.False(t, cfg.Extract.KeepMedia)
	// Unset keys keep their defaults
	assert.True(t, cfg.Extract.KeepSources)
	assert.True(t, cfg.Log.JSON)
}

func TestLoadFromFileMissing(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)
}

func TestLoadCachesAndReset(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	first, err := Load()
	require.NoError(t, err)
	second, err := Load()
	require.NoError(t, err)
	assert.Same(t, first, second)

	Reset()
	third, err := Load()
	require.NoError(t, err)
	assert.NotSame(t, first, third)
}
