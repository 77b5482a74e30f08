package config

import (
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestReload_NotifiesCallbacks(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	writeConfig(t, path, "[database]\npath = \"/tmp/x.sqlite\"\n")

	mgr, err := NewManagerForFile(path)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	var got atomic.Pointer[Config]
	mgr.OnConfigChange(func(c *Config) { got.Store(c) })

	writeConfig(t, path, "[database]\npath = \"/tmp/x.sqlite\"\n[suggestions.fetchers.stale]\nenabled = false\n")
	require.NoError(t, mgr.Reload())

	require.NotNil(t, got.Load())
	assert.False(t, got.Load().Suggestions.Fetchers.Stale.Enabled)
	assert.False(t, mgr.Get().Suggestions.Fetchers.Stale.Enabled)
}

func TestReload_InvalidKeepsPrevious(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	writeConfig(t, path, "[database]\npath = \"/tmp/x.sqlite\"\n")

	mgr, err := NewManagerForFile(path)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	called := false
	mgr.OnConfigChange(func(*Config) { called = true })

	writeConfig(t, path, "[logging]\nlevel = \"loud\"\n")
	assert.Error(t, mgr.Reload())
	assert.False(t, called)
	assert.Equal(t, "info", mgr.Get().Logging.Level)
}

func TestWatch_ReloadsOnFileChange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	writeConfig(t, path, "[database]\npath = \"/tmp/x.sqlite\"\n")

	mgr, err := NewManagerForFile(path)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	var disabled atomic.Bool
	mgr.OnConfigChange(func(c *Config) {
		disabled.Store(!c.Suggestions.Fetchers.Duplicates.Enabled)
	})
	require.NoError(t, mgr.Watch())
	require.NoError(t, mgr.Watch(), "second Watch is a no-op")

	writeConfig(t, path, "[database]\npath = \"/tmp/x.sqlite\"\n[suggestions.fetchers.duplicates]\nenabled = false\n")

	require.Eventually(t, disabled.Load, 5*time.Second, 20*time.Millisecond)
}
