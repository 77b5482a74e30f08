package config

import (
	"time"

	"github.com/invopop/jsonschema"
)

// Config represents the complete configuration for tabsuggest.
type Config struct {
	Logging     LoggingConfig     `mapstructure:"logging" yaml:"logging" toml:"logging"`
	Database    DatabaseConfig    `mapstructure:"database" yaml:"database" toml:"database"`
	Suggestions SuggestionsConfig `mapstructure:"suggestions" yaml:"suggestions" toml:"suggestions"`
	Server      ServerConfig      `mapstructure:"server" yaml:"server" toml:"server"`
}

// LoggingConfig controls zerolog output.
type LoggingConfig struct {
	// Level is one of trace, debug, info, warn, error.
	Level string `mapstructure:"level" yaml:"level" toml:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error"`
	// Format is console or json.
	Format string `mapstructure:"format" yaml:"format" toml:"format" jsonschema:"enum=console,enum=json"`
}

// DatabaseConfig locates the SQLite database. Empty uses the XDG data dir.
type DatabaseConfig struct {
	Path string `mapstructure:"path" yaml:"path" toml:"path"`
}

// SuggestionsConfig tunes the suggestion engine.
type SuggestionsConfig struct {
	// BackoffTable lists the waits applied after consecutive ignored
	// suggestions, in ascending order. The last entry repeats.
	BackoffTable []time.Duration `mapstructure:"backoff_table" yaml:"backoff_table" toml:"backoff_table"`
	// FetchTimeout publishes partial results when fetchers take longer.
	// Zero waits for every fetcher.
	FetchTimeout time.Duration  `mapstructure:"fetch_timeout" yaml:"fetch_timeout" toml:"fetch_timeout"`
	Fetchers     FetchersConfig `mapstructure:"fetchers" yaml:"fetchers" toml:"fetchers"`
}

// FetchersConfig holds per-source settings. Enabled flags are hot-reloaded.
type FetchersConfig struct {
	Duplicates DuplicatesFetcherConfig `mapstructure:"duplicates" yaml:"duplicates" toml:"duplicates"`
	SameSite   SameSiteFetcherConfig   `mapstructure:"same_site" yaml:"same_site" toml:"same_site"`
	Stale      StaleFetcherConfig      `mapstructure:"stale" yaml:"stale" toml:"stale"`
	Remote     RemoteFetcherConfig     `mapstructure:"remote" yaml:"remote" toml:"remote"`
}

// DuplicatesFetcherConfig configures the duplicate URL source.
type DuplicatesFetcherConfig struct {
	Enabled bool `mapstructure:"enabled" yaml:"enabled" toml:"enabled"`
}

// SameSiteFetcherConfig configures grouping of ungrouped tabs by host.
type SameSiteFetcherConfig struct {
	Enabled bool `mapstructure:"enabled" yaml:"enabled" toml:"enabled"`
	MinTabs int  `mapstructure:"min_tabs" yaml:"min_tabs" toml:"min_tabs" jsonschema:"minimum=1"`
}

// StaleFetcherConfig configures closing of old tabs.
type StaleFetcherConfig struct {
	Enabled bool          `mapstructure:"enabled" yaml:"enabled" toml:"enabled"`
	MaxAge  time.Duration `mapstructure:"max_age" yaml:"max_age" toml:"max_age"`
	MinTabs int           `mapstructure:"min_tabs" yaml:"min_tabs" toml:"min_tabs" jsonschema:"minimum=1"`
}

// RemoteFetcherConfig points at a suggestion server.
type RemoteFetcherConfig struct {
	Enabled  bool          `mapstructure:"enabled" yaml:"enabled" toml:"enabled"`
	Endpoint string        `mapstructure:"endpoint" yaml:"endpoint" toml:"endpoint"`
	Timeout  time.Duration `mapstructure:"timeout" yaml:"timeout" toml:"timeout"`
}

// ServerConfig configures `tabsuggest serve`.
type ServerConfig struct {
	Addr string `mapstructure:"addr" yaml:"addr" toml:"addr"`
}

// JSONSchema reflects the configuration schema. Durations are written as
// Go duration strings ("30m", "1h30m") in the TOML file.
func JSONSchema() *jsonschema.Schema {
	r := &jsonschema.Reflector{
		FieldNameTag:              "toml",
		AllowAdditionalProperties: false,
		Mapper:                    durationMapper,
	}
	schema := r.Reflect(&Config{})
	schema.ID = "https://github.com/bnema/tabsuggest/config.schema.json"
	schema.Title = "tabsuggest configuration"
	schema.Description = "Configuration schema for the tabsuggest suggestion engine"
	return schema
}
