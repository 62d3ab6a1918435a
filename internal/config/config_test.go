package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Listen)
	assert.Equal(t, "yahoo", cfg.DataSource.Source)
	assert.Equal(t, 0.05, cfg.Analysis.RiskFreeRate)
	assert.Equal(t, 365, cfg.Analysis.WindowDays)
	assert.Equal(t, 10, cfg.Analysis.GridSize)
	assert.Equal(t, time.Hour, cfg.Cache.TTL)
	assert.NoError(t, cfg.Validate())
}

func TestLoadFileAndEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  listen: ":9090"
data_source:
  source: cryptocompare
  api_key: file-key
analysis:
  risk_free_rate: 0.03
`), 0644))

	t.Setenv("DATA_SOURCE", "mock")
	t.Setenv("RISK_FREE_RATE", "0.02")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Listen)
	assert.Equal(t, "mock", cfg.DataSource.Source, "env wins over file")
	assert.Equal(t, "file-key", cfg.DataSource.APIKey)
	assert.Equal(t, 0.02, cfg.Analysis.RiskFreeRate)
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"unknown source", func(c *Config) { c.DataSource.Source = "bloomberg" }},
		{"negative rate", func(c *Config) { c.Analysis.RiskFreeRate = -0.01 }},
		{"tiny window", func(c *Config) { c.Analysis.WindowDays = 1 }},
		{"tiny grid", func(c *Config) { c.Analysis.GridSize = 1 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
			require.NoError(t, err)
			tc.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
