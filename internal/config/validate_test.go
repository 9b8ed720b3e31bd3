// internal/config/validate_test.go
package config

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validConfig() *Config {
	cfg := Default()
	cfg.Arr.Kind = "radarr"
	cfg.Arr.Host = "http://localhost:7878"
	cfg.Arr.APIKey = "key"
	cfg.Arr.Timeout = time.Second
	return cfg
}

func TestValidate_Valid(t *testing.T) {
	assert.Empty(t, validConfig().Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{name: "unknown kind", mutate: func(c *Config) { c.Arr.Kind = "lidarr" }, field: "arr.kind"},
		{name: "empty kind", mutate: func(c *Config) { c.Arr.Kind = "" }, field: "arr.kind"},
		{name: "missing host", mutate: func(c *Config) { c.Arr.Host = "" }, field: "arr.host"},
		{name: "host without scheme", mutate: func(c *Config) { c.Arr.Host = "localhost:7878" }, field: "arr.host"},
		{name: "ftp host", mutate: func(c *Config) { c.Arr.Host = "ftp://localhost" }, field: "arr.host"},
		{name: "missing api key", mutate: func(c *Config) { c.Arr.APIKey = "" }, field: "arr.api_key"},
		{name: "negative timeout", mutate: func(c *Config) { c.Arr.Timeout = -time.Second }, field: "arr.timeout"},
		{name: "negative rate", mutate: func(c *Config) { c.Arr.RequestsPerSecond = -1 }, field: "arr.requests_per_second"},
		{name: "negative cache ttl", mutate: func(c *Config) { c.Arr.CacheTTL = -time.Minute }, field: "arr.cache_ttl"},
		{name: "bad breaker failures", mutate: func(c *Config) { c.Arr.BreakerFailures = -2 }, field: "arr.breaker_failures"},
		{name: "bad log level", mutate: func(c *Config) { c.Log.Level = "verbose" }, field: "log.level"},
		{name: "bad log format", mutate: func(c *Config) { c.Log.Format = "xml" }, field: "log.format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			errs := cfg.Validate()
			assert.True(t, containsError(errs, tt.field), "expected %s error, got %v", tt.field, errs)
		})
	}
}

func TestValidate_ReportsAll(t *testing.T) {
	cfg := &Config{}
	errs := cfg.Validate()
	assert.True(t, containsError(errs, "arr.kind"))
	assert.True(t, containsError(errs, "arr.host"))
	assert.True(t, containsError(errs, "arr.api_key"))
	assert.True(t, containsError(errs, "log.level"))
}

// Helper functions to check for errors containing specific strings
func containsError(errs []string, substr string) bool {
	for _, e := range errs {
		if strings.Contains(e, substr) {
			return true
		}
	}
	return false
}
