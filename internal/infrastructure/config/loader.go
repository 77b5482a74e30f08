package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/spf13/viper"
)

const envPrefix = "TABSUGGEST"

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config     *Config
	viper      *viper.Viper
	configFile string
	mu         sync.RWMutex
	callbacks  []func(*Config)
	watching   bool
}

// NewManager creates a manager reading config.toml from the XDG config
// directory (or the current directory during development).
func NewManager() (*Manager, error) {
	configFile, err := GetConfigFile()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
	}
	return NewManagerForFile(configFile)
}

// NewManagerForFile creates a manager bound to an explicit TOML file.
// The file is created with defaults on first Load if it does not exist.
func NewManagerForFile(configFile string) (*Manager, error) {
	if configFile == "" {
		return nil, fmt.Errorf("config file path cannot be empty")
	}

	v := viper.New()
	v.SetConfigFile(configFile)
	v.SetConfigType("toml")

	// TABSUGGEST_SUGGESTIONS_FETCHERS_STALE_MAX_AGE overrides
	// suggestions.fetchers.stale.max_age, and so on.
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Short names shared with logging.NewFromEnv.
	if err := v.BindEnv("logging.level", envPrefix+"_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind %s_LOG_LEVEL: %w", envPrefix, err)
	}
	if err := v.BindEnv("logging.format", envPrefix+"_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind %s_LOG_FORMAT: %w", envPrefix, err)
	}
	if err := v.BindEnv("database.path", envPrefix+"_DB"); err != nil {
		return nil, fmt.Errorf("failed to bind %s_DB: %w", envPrefix, err)
	}

	return &Manager{
		viper:      v,
		configFile: configFile,
		callbacks:  make([]func(*Config), 0),
	}, nil
}

// Load loads the configuration from file and environment variables.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	config, err := m.build()
	if err != nil {
		return err
	}
	m.config = config
	return nil
}

func (m *Manager) readConfigFile() error {
	if _, statErr := os.Stat(m.configFile); errors.Is(statErr, os.ErrNotExist) {
		if createErr := m.createDefaultConfig(); createErr != nil {
			return fmt.Errorf(
				"failed to create default config at %s: %w\nTry creating the directory manually or check permissions",
				m.configFile,
				createErr,
			)
		}
	}
	if err := m.viper.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", m.configFile, err)
	}
	return nil
}

// build unmarshals, completes and validates the current viper state.
func (m *Manager) build() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.configFile,
			err,
		)
	}
	if err := ensureDatabasePath(config); err != nil {
		return nil, err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return config, nil
}

func ensureDatabasePath(config *Config) error {
	if config.Database.Path != "" {
		return nil
	}
	dbPath, err := GetDatabaseFile()
	if err != nil {
		return fmt.Errorf("failed to get database path: %w", err)
	}
	config.Database.Path = dbPath
	return nil
}

func normalizeConfig(config *Config) {
	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	if config.Logging.Level == "" {
		config.Logging.Level = defaultLogLevel
	}
	config.Logging.Format = strings.ToLower(strings.TrimSpace(config.Logging.Format))
	if config.Logging.Format == "" {
		config.Logging.Format = defaultLogFormat
	}
	config.Suggestions.Fetchers.Remote.Endpoint = strings.TrimSpace(config.Suggestions.Fetchers.Remote.Endpoint)
	config.Server.Addr = strings.TrimSpace(config.Server.Addr)
	if len(config.Suggestions.BackoffTable) == 0 {
		config.Suggestions.BackoffTable = DefaultBackoffTable()
	}
}

// Get returns a copy of the current configuration.
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	configCopy := *m.config
	configCopy.Suggestions.BackoffTable = append([]time.Duration(nil), m.config.Suggestions.BackoffTable...)
	return &configCopy
}

// GetConfigFile returns the path to the configuration file.
func (m *Manager) GetConfigFile() string {
	return m.configFile
}

func (m *Manager) createDefaultConfig() error {
	if err := os.MkdirAll(filepath.Dir(m.configFile), dirPerm); err != nil {
		return err
	}
	if err := m.viper.SafeWriteConfigAs(m.configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return os.Chmod(m.configFile, filePerm)
}

// setDefaults sets default configuration values in Viper. Durations are
// stored as strings so the generated file stays readable.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	// Database.Path is resolved in Load.
	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)

	m.setSuggestionDefaults(defaults)

	m.viper.SetDefault("server.addr", defaults.Server.Addr)
}

func (m *Manager) setSuggestionDefaults(defaults *Config) {
	s := defaults.Suggestions
	table := make([]string, len(s.BackoffTable))
	for i, d := range s.BackoffTable {
		table[i] = d.String()
	}
	m.viper.SetDefault("suggestions.backoff_table", table)
	m.viper.SetDefault("suggestions.fetch_timeout", s.FetchTimeout.String())

	f := s.Fetchers
	m.viper.SetDefault("suggestions.fetchers.duplicates.enabled", f.Duplicates.Enabled)
	m.viper.SetDefault("suggestions.fetchers.same_site.enabled", f.SameSite.Enabled)
	m.viper.SetDefault("suggestions.fetchers.same_site.min_tabs", f.SameSite.MinTabs)
	m.viper.SetDefault("suggestions.fetchers.stale.enabled", f.Stale.Enabled)
	m.viper.SetDefault("suggestions.fetchers.stale.max_age", f.Stale.MaxAge.String())
	m.viper.SetDefault("suggestions.fetchers.stale.min_tabs", f.Stale.MinTabs)
	m.viper.SetDefault("suggestions.fetchers.remote.enabled", f.Remote.Enabled)
	m.viper.SetDefault("suggestions.fetchers.remote.endpoint", f.Remote.Endpoint)
	m.viper.SetDefault("suggestions.fetchers.remote.timeout", f.Remote.Timeout.String())
}
