package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	// An explicitly named but missing file is an error; defaults apply only
	// when no path is given.
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "https://www.ndbc.noaa.gov", cfg.NDBC.BaseURL)
	assert.Equal(t, "data", cfg.Output.Dir)
	assert.Equal(t, "parquet", cfg.Output.Format)
	assert.Equal(t, 4, cfg.Fetch.Workers)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
ndbc:
  request_timeout: 5s
output:
  format: csv
  dir: out
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "csv", cfg.Output.Format)
	assert.Equal(t, "out", cfg.Output.Dir)
	assert.Equal(t, "5s", cfg.NDBC.RequestTimeout.String())
}

func TestValidateRejectsBadFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output:\n  format: xlsx\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
