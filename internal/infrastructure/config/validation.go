package config

import (
	"fmt"
	"net/url"
	"strings"
)

// validateConfig collects every invalid value into one error.
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateLogging(config)...)
	validationErrors = append(validationErrors, validateBackoff(config)...)
	validationErrors = append(validationErrors, validateFetchers(config)...)
	validationErrors = append(validationErrors, validateServer(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	return nil
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	switch config.Logging.Level {
	case "trace", "debug", "info", "warn", "error":
	default:
		validationErrors = append(validationErrors, fmt.Sprintf(
			"logging.level must be one of: trace, debug, info, warn, error (got: %s)", config.Logging.Level))
	}
	switch config.Logging.Format {
	case "console", "json":
	default:
		validationErrors = append(validationErrors, fmt.Sprintf(
			"logging.format must be one of: console, json (got: %s)", config.Logging.Format))
	}
	return validationErrors
}

func validateBackoff(config *Config) []string {
	var validationErrors []string
	table := config.Suggestions.BackoffTable
	for i, d := range table {
		if d <= 0 {
			validationErrors = append(validationErrors, fmt.Sprintf("suggestions.backoff_table[%d] must be positive", i))
			continue
		}
		if i > 0 && d < table[i-1] {
			validationErrors = append(validationErrors, fmt.Sprintf(
				"suggestions.backoff_table must be ascending (%s follows %s)", d, table[i-1]))
		}
	}
	if config.Suggestions.FetchTimeout < 0 {
		validationErrors = append(validationErrors, "suggestions.fetch_timeout must be non-negative")
	}
	return validationErrors
}

func validateFetchers(config *Config) []string {
	var validationErrors []string
	f := config.Suggestions.Fetchers

	if f.SameSite.MinTabs < 1 {
		validationErrors = append(validationErrors, "suggestions.fetchers.same_site.min_tabs must be at least 1")
	}
	if f.Stale.MinTabs < 1 {
		validationErrors = append(validationErrors, "suggestions.fetchers.stale.min_tabs must be at least 1")
	}
	if f.Stale.MaxAge <= 0 {
		validationErrors = append(validationErrors, "suggestions.fetchers.stale.max_age must be positive")
	}
	if f.Remote.Timeout <= 0 {
		validationErrors = append(validationErrors, "suggestions.fetchers.remote.timeout must be positive")
	}
	if f.Remote.Enabled {
		u, err := url.Parse(f.Remote.Endpoint)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			validationErrors = append(validationErrors, fmt.Sprintf(
				"suggestions.fetchers.remote.endpoint must be an http(s) URL (got: %q)", f.Remote.Endpoint))
		}
	}
	return validationErrors
}

func validateServer(config *Config) []string {
	if config.Server.Addr == "" {
		return []string{"server.addr cannot be empty"}
	}
	return nil
}
