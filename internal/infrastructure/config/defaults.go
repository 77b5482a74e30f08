package config

import "time"

const (
	defaultLogLevel  = "info"
	defaultLogFormat = "console"

	defaultSameSiteMinTabs = 2
	defaultStaleMaxAge     = 72 * time.Hour
	defaultStaleMinTabs    = 3
	defaultRemoteTimeout   = 2 * time.Second
	defaultServerAddr      = "127.0.0.1:7878"
	defaultRemoteEndpoint  = "http://" + defaultServerAddr + "/v1/suggestions"
)

// DefaultBackoffTable escalates from one minute to ten days.
func DefaultBackoffTable() []time.Duration {
	return []time.Duration{
		time.Minute,
		30 * time.Minute,
		time.Hour,
		2 * time.Hour,
		12 * time.Hour,
		24 * time.Hour,
		48 * time.Hour,
		7 * 24 * time.Hour,
		10 * 24 * time.Hour,
	}
}

// DefaultConfig returns the configuration used when no file overrides it.
func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
		Suggestions: SuggestionsConfig{
			BackoffTable: DefaultBackoffTable(),
			Fetchers: FetchersConfig{
				Duplicates: DuplicatesFetcherConfig{Enabled: true},
				SameSite: SameSiteFetcherConfig{
					Enabled: true,
					MinTabs: defaultSameSiteMinTabs,
				},
				Stale: StaleFetcherConfig{
					Enabled: true,
					MaxAge:  defaultStaleMaxAge,
					MinTabs: defaultStaleMinTabs,
				},
				Remote: RemoteFetcherConfig{
					Enabled:  false,
					Endpoint: defaultRemoteEndpoint,
					Timeout:  defaultRemoteTimeout,
				},
			},
		},
		Server: ServerConfig{Addr: defaultServerAddr},
	}
}
