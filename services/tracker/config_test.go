package tracker

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "config.json5"))
	require.NoError(t, err)
	require.Equal(t, DefaultConfig().DataDir, cfg.DataDir)
	require.Equal(t, DefaultConfig().Port, cfg.Port)
	require.NotEmpty(t, cfg.States)
	require.Len(t, cfg.Years, 7)
}

func TestLoadConfigBackfillsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json5")
	err := os.WriteFile(path, []byte(`{
		// only override the data directory
		data_dir: "/tmp/elections",
	}`), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, "/tmp/elections", cfg.DataDir)
	require.Equal(t, 4000, cfg.Port)
	require.Equal(t, 2.0, cfg.Scrape.RequestDelay)
	require.Equal(t, 3, cfg.Scrape.MaxRetries)
}

func TestLoadConfigExplicitZerosBackfilled(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json5")
	err := os.WriteFile(path, []byte(`{
		port: 0,
		scrape: {request_delay: 0},
	}`), 0644)
	require.NoError(t, err)

	// explicit zeros read back as the defaults, the delay is mandatory
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, 4000, cfg.Port)
	require.Equal(t, 2.0, cfg.Scrape.RequestDelay)
}

func TestLoadConfigInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json5")
	require.NoError(t, os.WriteFile(path, []byte(`{data_dir: `), 0644))

	_, err := LoadConfig(path)
	require.Error(t, err)
}

func TestDefaultConfigYears(t *testing.T) {
	years := DefaultConfig().Years
	require.Len(t, years, 7)
	for i := 1; i < len(years); i++ {
		require.Equal(t, years[i-1]+1, years[i])
	}
}
