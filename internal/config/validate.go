// internal/config/validate.go
package config

import (
	"fmt"
	"net/url"
)

var validLogLevels = map[string]bool{
	"debug": true, "info": true, "warn": true, "error": true,
}

var validLogFormats = map[string]bool{
	"text": true, "json": true,
}

var validKinds = map[string]bool{
	"radarr": true, "sonarr": true,
}

// Validate checks the configuration for errors.
// Returns a slice of error messages (empty if valid).
func (c *Config) Validate() []string {
	var errs []string

	// Organizer
	if !validKinds[c.Arr.Kind] {
		errs = append(errs, fmt.Sprintf("arr.kind: must be one of radarr, sonarr; got %q", c.Arr.Kind))
	}
	if c.Arr.Host == "" {
		errs = append(errs, "arr.host: required")
	} else if u, err := url.Parse(c.Arr.Host); err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		errs = append(errs, fmt.Sprintf("arr.host: must be an http or https URL, got %q", c.Arr.Host))
	}
	if c.Arr.APIKey == "" {
		errs = append(errs, "arr.api_key: required")
	}
	if c.Arr.Timeout < 0 {
		errs = append(errs, fmt.Sprintf("arr.timeout: must be positive, got %s", c.Arr.Timeout))
	}

	if c.Arr.RequestsPerSecond < 0 {
		errs = append(errs, fmt.Sprintf("arr.requests_per_second: must not be negative, got %g", c.Arr.RequestsPerSecond))
	}
	if c.Arr.CacheTTL < 0 {
		errs = append(errs, fmt.Sprintf("arr.cache_ttl: must be positive, got %s", c.Arr.CacheTTL))
	}
	if c.Arr.BreakerFailures < -1 {
		errs = append(errs, fmt.Sprintf("arr.breaker_failures: must be -1 (disabled) or positive, got %d", c.Arr.BreakerFailures))
	}

	// Logging
	if !validLogLevels[c.Log.Level] {
		errs = append(errs, fmt.Sprintf("log.level: must be one of debug, info, warn, error; got %q", c.Log.Level))
	}
	if !validLogFormats[c.Log.Format] {
		errs = append(errs, fmt.Sprintf("log.format: must be one of text, json; got %q", c.Log.Format))
	}

	return errs
}
