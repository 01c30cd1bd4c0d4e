package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, Default(), *cfg)
	assert.Equal(t, "Movies rating & review data", cfg.Source.Sheet)
	assert.Equal(t, "charts", cfg.Output.ChartsDir)
}

func TestLoad_FileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "moviereport.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
source:
  path: data/movies.xlsx
output:
  mode: report
server:
  addr: ":9090"
  read_timeout: 5s
logging:
  level: debug
`), 0644))

	t.Setenv("MOVIEREPORT_SERVER_ADDR", ":7070")
	t.Setenv("MOVIEREPORT_OUTPUT_CHARTS_DIR", "out/charts")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "data/movies.xlsx", cfg.Source.Path)
	assert.Equal(t, "Movies rating & review data", cfg.Source.Sheet)
	assert.Equal(t, "report", cfg.Output.Mode)
	assert.Equal(t, "out/charts", cfg.Output.ChartsDir)
	assert.Equal(t, ":7070", cfg.Server.Addr)
	assert.Equal(t, 5*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoad_Invalid(t *testing.T) {
	t.Setenv("MOVIEREPORT_OUTPUT_MODE", "verbose")

	_, err := Load("")
	assert.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"empty source", func(c *Config) { c.Source.Path = "" }, true},
		{"bad level", func(c *Config) { c.Logging.Level = "loud" }, true},
		{"bad format", func(c *Config) { c.Logging.Format = "xml" }, true},
		{"negative timeout", func(c *Config) { c.Server.ReadTimeout = -time.Second }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
