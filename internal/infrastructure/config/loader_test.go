package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetDefaults(t *testing.T) {
	mgr := &Manager{viper: viper.New()}
	mgr.setDefaults()

	assert.Equal(t, "info", mgr.viper.GetString("logging.level"))
	assert.True(t, mgr.viper.GetBool("suggestions.fetchers.duplicates.enabled"))
	assert.False(t, mgr.viper.GetBool("suggestions.fetchers.remote.enabled"))
	assert.Equal(t, 72*time.Hour, mgr.viper.GetDuration("suggestions.fetchers.stale.max_age"))
	assert.Len(t, mgr.viper.GetStringSlice("suggestions.backoff_table"), 9)
}

func TestLoad_CreatesDefaultFile(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	mgr, err := NewManagerForFile(path)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	_, err = os.Stat(path)
	require.NoError(t, err, "default config file is written on first load")

	cfg := mgr.Get()
	assert.Equal(t, DefaultBackoffTable(), cfg.Suggestions.BackoffTable)
	assert.Equal(t, time.Duration(0), cfg.Suggestions.FetchTimeout)
	assert.Equal(t, 2*time.Second, cfg.Suggestions.Fetchers.Remote.Timeout)
	assert.Equal(t, "tabsuggest.sqlite", filepath.Base(cfg.Database.Path))
}

func TestLoad_ReadsFileValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[logging]
level = "DEBUG"

[database]
path = "/tmp/custom.sqlite"

[suggestions]
backoff_table = ["10s", "1m", "1h"]
fetch_timeout = "750ms"

[suggestions.fetchers.same_site]
enabled = false
min_tabs = 4

[suggestions.fetchers.remote]
enabled = true
endpoint = "http://localhost:9000/v1/suggestions"
`), 0o600))

	mgr, err := NewManagerForFile(path)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "/tmp/custom.sqlite", cfg.Database.Path)
	assert.Equal(t, []time.Duration{10 * time.Second, time.Minute, time.Hour}, cfg.Suggestions.BackoffTable)
	assert.Equal(t, 750*time.Millisecond, cfg.Suggestions.FetchTimeout)
	assert.False(t, cfg.Suggestions.Fetchers.SameSite.Enabled)
	assert.Equal(t, 4, cfg.Suggestions.Fetchers.SameSite.MinTabs)
	assert.True(t, cfg.Suggestions.Fetchers.Duplicates.Enabled, "unset keys keep defaults")
	assert.True(t, cfg.Suggestions.Fetchers.Remote.Enabled)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[database]\npath = \"/tmp/x.sqlite\"\n"), 0o600))

	t.Setenv("TABSUGGEST_LOG_LEVEL", "warn")
	t.Setenv("TABSUGGEST_SUGGESTIONS_FETCHERS_STALE_MIN_TABS", "5")
	t.Setenv("TABSUGGEST_DB", "/tmp/from-env.sqlite")

	mgr, err := NewManagerForFile(path)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, 5, cfg.Suggestions.Fetchers.Stale.MinTabs)
	assert.Equal(t, "/tmp/from-env.sqlite", cfg.Database.Path)
}

func TestLoad_InvalidFileFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[suggestions]\nbackoff_table = [\"1h\", \"1m\"]\n"), 0o600))

	mgr, err := NewManagerForFile(path)
	require.NoError(t, err)

	err = mgr.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ascending")
}

func TestGet_ReturnsCopy(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[database]\npath = \"/tmp/x.sqlite\"\n"), 0o600))
	mgr, err := NewManagerForFile(path)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	cfg.Suggestions.BackoffTable[0] = time.Hour
	cfg.Server.Addr = "changed"

	again := mgr.Get()
	assert.Equal(t, time.Minute, again.Suggestions.BackoffTable[0])
	assert.Equal(t, defaultServerAddr, again.Server.Addr)
}

func TestNewManager_UsesXDGConfigHome(t *testing.T) {
	t.Setenv("ENV", "")
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	mgr, err := NewManager()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "tabsuggest", "config.toml"), mgr.GetConfigFile())
}

func TestNewManagerForFile_RequiresPath(t *testing.T) {
	_, err := NewManagerForFile("")
	assert.Error(t, err)
}
