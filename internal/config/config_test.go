package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644), "failed to write test config")
	return path
}

func TestLoad_Valid(t *testing.T) {
	path := writeConfig(t, `
[arr]
kind = "Sonarr"
host = "http://sonarr:8989/"
api_key = "secret"
timeout = "5s"
requests_per_second = 2.5
breaker_failures = -1

[log]
level = "debug"
format = "json"

[history]
path = "/var/lib/arrhook/history.db"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "sonarr", cfg.Arr.Kind)
	assert.Equal(t, "http://sonarr:8989/", cfg.Arr.Host)
	assert.Equal(t, "secret", cfg.Arr.APIKey)
	assert.Equal(t, 5*time.Second, cfg.Arr.Timeout)
	assert.Equal(t, 2.5, cfg.Arr.RequestsPerSecond)
	assert.Equal(t, -1, cfg.Arr.BreakerFailures)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "/var/lib/arrhook/history.db", cfg.History.Path)
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, `
[arr]
kind = "radarr"
host = "http://radarr:7878"
api_key = "secret"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, DefaultTimeout, cfg.Arr.Timeout)
	assert.Equal(t, DefaultCacheTTL, cfg.Arr.CacheTTL)
	assert.Equal(t, DefaultBreakerFailures, cfg.Arr.BreakerFailures)
	assert.Equal(t, DefaultBreakerCooldown, cfg.Arr.BreakerCooldown)
	assert.Zero(t, cfg.Arr.RequestsPerSecond)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Empty(t, cfg.History.Path)
}

func TestLoad_EnvSubstitution(t *testing.T) {
	t.Setenv("ARRHOOK_TEST_API_KEY", "from-env")
	path := writeConfig(t, `
[arr]
kind = "radarr"
host = "${ARRHOOK_TEST_HOST:-http://localhost:7878}"
api_key = "${ARRHOOK_TEST_API_KEY}"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Arr.APIKey)
	assert.Equal(t, "http://localhost:7878", cfg.Arr.Host)
}

func TestLoad_MissingEnvVar(t *testing.T) {
	path := writeConfig(t, `
[arr]
kind = "radarr"
host = "http://localhost"
api_key = "${ARRHOOK_TEST_MISSING_KEY_98765}"
`)

	_, err := Load(path)
	require.Error(t, err)

	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, []string{"ARRHOOK_TEST_MISSING_KEY_98765"}, cfgErr.Missing)
	assert.Equal(t, path, cfgErr.Path)
}

func TestLoad_ValidationError(t *testing.T) {
	path := writeConfig(t, `
[arr]
kind = "lidarr"
host = "http://localhost"
api_key = "secret"
`)

	_, err := Load(path)
	require.Error(t, err)

	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.True(t, containsError(cfgErr.Errors, "arr.kind"), "expected arr.kind error, got %v", cfgErr.Errors)
}

func TestLoad_SyntaxError(t *testing.T) {
	path := writeConfig(t, "[arr\nkind = ")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config")
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadWithoutValidation_AllowsIncomplete(t *testing.T) {
	path := writeConfig(t, `
[log]
level = "warn"
`)

	cfg, err := LoadWithoutValidation(path)
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.NotEmpty(t, cfg.Validate())
}

func TestConfig_Apply(t *testing.T) {
	cfg := Default()
	cfg.Arr.Kind = "radarr"
	cfg.Arr.Host = "http://file-host"
	cfg.Arr.APIKey = "file-key"

	cfg.Apply(Overrides{Kind: " SONARR ", APIKey: "flag-key", LogLevel: "debug"})

	assert.Equal(t, "sonarr", cfg.Arr.Kind)
	assert.Equal(t, "http://file-host", cfg.Arr.Host, "empty override keeps file value")
	assert.Equal(t, "flag-key", cfg.Arr.APIKey)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Empty(t, cfg.Validate())
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, DefaultTimeout, cfg.Arr.Timeout)
	assert.Equal(t, DefaultLogLevel, cfg.Log.Level)
	assert.Equal(t, DefaultLogFormat, cfg.Log.Format)
}
