package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "development", cfg.Server.Mode)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Empty(t, cfg.Dataset.Path)
	assert.Equal(t, "https://courses.coolstuff.work/course/", cfg.Links.BaseURL)
	assert.Equal(t, 256, cfg.Cache.QuerySize)
	assert.Zero(t, cfg.Cache.StatsTTL)
	assert.False(t, cfg.IsProduction())
}

func TestLoadConfig_FileThenEnv(t *testing.T) {
	path := writeConfig(t, `
server:
  port: "9090"
  mode: release
logging:
  level: debug
  format: text
dataset:
  path: /srv/electives.yaml
cache:
  query_size: 32
  stats_ttl: 10m
`)

	t.Setenv("SERVER_PORT", "7070")
	t.Setenv("CACHE_STATS_TTL", "90s")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "7070", cfg.Server.Port)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
	assert.Equal(t, "/srv/electives.yaml", cfg.Dataset.Path)
	assert.Equal(t, 32, cfg.Cache.QuerySize)
	assert.Equal(t, 90*time.Second, cfg.Cache.StatsTTL)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
		env  map[string]string
	}{
		{name: "bad yaml", body: "server: [oops"},
		{name: "bad log level", body: "logging:\n  level: loud\n"},
		{name: "bad format", body: "logging:\n  format: xml\n"},
		{name: "relative base url", body: "links:\n  base_url: /course/\n"},
		{name: "zero query cache", body: "cache:\n  query_size: 0\n"},
		{name: "non numeric port", body: "server:\n  port: http\n"},
		{name: "bad env int", body: "", env: map[string]string{"CACHE_QUERY_SIZE": "lots"}},
		{name: "bad env duration", body: "", env: map[string]string{"CACHE_STATS_TTL": "soon"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := LoadConfig(writeConfig(t, tt.body))
			assert.Error(t, err)
		})
	}
}

func TestProcessStructFields(t *testing.T) {
	var target struct {
		Name    string        `env:"NAME"`
		Count   int           `env:"COUNT"`
		Enabled bool          `env:"ENABLED"`
		Ratio   float64       `env:"RATIO"`
		Wait    time.Duration `env:"WAIT"`
		Nested  struct {
			Value string `env:"NESTED_VALUE"`
		}
		Untagged string
	}

	env := map[string]string{
		"NAME":         "electives",
		"COUNT":        "3",
		"ENABLED":      "true",
		"RATIO":        "0.5",
		"WAIT":         "2s",
		"NESTED_VALUE": "inner",
	}
	lookup := func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}

	require.NoError(t, processStructFields(&target, lookup))
	assert.Equal(t, "electives", target.Name)
	assert.Equal(t, 3, target.Count)
	assert.True(t, target.Enabled)
	assert.Equal(t, 0.5, target.Ratio)
	assert.Equal(t, 2*time.Second, target.Wait)
	assert.Equal(t, "inner", target.Nested.Value)
	assert.Empty(t, target.Untagged)

	env["ENABLED"] = "maybe"
	assert.Error(t, processStructFields(&target, lookup))
}

func TestGetEnv(t *testing.T) {
	t.Setenv("ELECTIVES_TEST_KEY", "set")
	assert.Equal(t, "set", GetEnv("ELECTIVES_TEST_KEY", "default"))
	assert.Equal(t, "default", GetEnv("ELECTIVES_TEST_MISSING", "default"))
}
