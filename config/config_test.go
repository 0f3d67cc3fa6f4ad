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

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, "server:\n  port: 9090\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "light", cfg.Server.DefaultTheme)
	assert.Equal(t, "data/members.json", cfg.Sources.Members)
	assert.Equal(t, 30*time.Second, cfg.Sources.Timeout)
	assert.Equal(t, "weatherData", cfg.Weather.CacheKey)
	assert.Equal(t, 10*time.Minute, cfg.Weather.Freshness)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "chamber.db", cfg.Database.DSN)
	assert.Equal(t, 4, cfg.Spotlight.Count)
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := writeConfig(t, `
sources:
  members: data/members.json
weather:
  freshness_minutes: 5
spotlight:
  seed: 7
`)
	t.Setenv("CHAMBER_MEMBERS_SOURCE", "https://example.com/members.json")
	t.Setenv("CHAMBER_SPOTLIGHT_SEED", "42")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://example.com/members.json", cfg.Sources.Members)
	assert.Equal(t, uint64(42), cfg.Spotlight.Seed)
	assert.Equal(t, 5*time.Minute, cfg.Weather.Freshness)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestApplyDefaults_UnknownThemeFallsBackToLight(t *testing.T) {
	cfg := &Config{Server: ServerConfig{DefaultTheme: "neon"}}
	cfg.ApplyDefaults()
	assert.Equal(t, "light", cfg.Server.DefaultTheme)
}
