// Package config handles TOML configuration loading with environment variable substitution.
package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// Defaults applied by Load.
const (
	DefaultTimeout         = 30 * time.Second
	DefaultCacheTTL        = 10 * time.Minute
	DefaultBreakerFailures = 5
	DefaultBreakerCooldown = 30 * time.Second
	DefaultLogLevel        = "info"
	DefaultLogFormat       = "text"
)

// Config is the root configuration structure.
type Config struct {
	Arr     ArrConfig     `toml:"arr"`
	Log     LogConfig     `toml:"log"`
	History HistoryConfig `toml:"history"`
}

// ArrConfig selects the organizer backend and how to reach it.
type ArrConfig struct {
	Kind    string        `toml:"kind"` // radarr or sonarr
	Host    string        `toml:"host"`
	APIKey  string        `toml:"api_key"`
	Timeout time.Duration `toml:"timeout"`

	// Batch protection. RequestsPerSecond 0 is unlimited; BreakerFailures
	// -1 disables the circuit breaker.
	RequestsPerSecond float64       `toml:"requests_per_second"`
	CacheTTL          time.Duration `toml:"cache_ttl"`
	BreakerFailures   int           `toml:"breaker_failures"`
	BreakerCooldown   time.Duration `toml:"breaker_cooldown"`
}

type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // text or json
}

// HistoryConfig enables the run journal when Path is set.
type HistoryConfig struct {
	Path string `toml:"path"`
}

// Overrides are command-line values that win over the file. Empty fields
// leave the file value alone.
type Overrides struct {
	Kind     string
	Host     string
	APIKey   string
	LogLevel string
}

// Default returns a config with only defaults set, for runs without a file.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads, substitutes, parses and validates the configuration file.
func Load(path string) (*Config, error) {
	cfg, err := LoadWithoutValidation(path)
	if err != nil {
		return nil, err
	}
	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, &ConfigError{Path: path, Errors: errs}
	}
	return cfg, nil
}

// LoadWithoutValidation reads and parses the configuration file, failing
// only on I/O, syntax or unresolved environment variables. Callers that
// merge flags afterwards validate the result themselves.
func LoadWithoutValidation(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	content, missing := substituteEnvVars(string(data))
	if len(missing) > 0 {
		return nil, &ConfigError{Path: path, Missing: missing}
	}

	var cfg Config
	if _, err := toml.Decode(content, &cfg); err != nil {
		var perr toml.ParseError
		if errors.As(err, &perr) {
			return nil, fmt.Errorf("parsing config %s: %s", path, perr.ErrorWithPosition())
		}
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Arr.Timeout == 0 {
		c.Arr.Timeout = DefaultTimeout
	}
	if c.Arr.CacheTTL == 0 {
		c.Arr.CacheTTL = DefaultCacheTTL
	}
	if c.Arr.BreakerFailures == 0 {
		c.Arr.BreakerFailures = DefaultBreakerFailures
	}
	if c.Arr.BreakerCooldown == 0 {
		c.Arr.BreakerCooldown = DefaultBreakerCooldown
	}
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
	if c.Log.Format == "" {
		c.Log.Format = DefaultLogFormat
	}
	c.Arr.Kind = strings.ToLower(strings.TrimSpace(c.Arr.Kind))
}

// Apply merges command-line overrides into the config.
func (c *Config) Apply(o Overrides) {
	if o.Kind != "" {
		c.Arr.Kind = strings.ToLower(strings.TrimSpace(o.Kind))
	}
	if o.Host != "" {
		c.Arr.Host = o.Host
	}
	if o.APIKey != "" {
		c.Arr.APIKey = o.APIKey
	}
	if o.LogLevel != "" {
		c.Log.Level = o.LogLevel
	}
}

// envVarPattern matches ${VAR}, ${VAR:-default} and ${VAR:?message}.
var envVarPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)(?:(:-|:\?)([^}]*))?\}`)

// substituteEnvVars replaces environment references in content. Unresolved
// references are left in place and reported in missing; a ${VAR:?msg}
// reference reports "VAR: msg". Empty values count as unset for the :- and
// :? forms.
func substituteEnvVars(content string) (string, []string) {
	var missing []string
	result := envVarPattern.ReplaceAllStringFunc(content, func(match string) string {
		parts := envVarPattern.FindStringSubmatch(match)
		name, op, arg := parts[1], parts[2], parts[3]
		value, ok := os.LookupEnv(name)

		switch op {
		case ":-":
			if !ok || value == "" {
				return arg
			}
			return value
		case ":?":
			if !ok || value == "" {
				missing = append(missing, fmt.Sprintf("%s: %s", name, arg))
				return match
			}
			return value
		default:
			if !ok {
				missing = append(missing, name)
				return match
			}
			return value
		}
	})
	return result, missing
}
