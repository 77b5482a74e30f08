package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/tabsuggest/internal/domain/entity"
	"github.com/bnema/tabsuggest/internal/infrastructure/config"
)

func writeConfig(t *testing.T, dir string, sameSite bool) string {
	t.Helper()
	path := filepath.Join(dir, "config.toml")
	body := fmt.Sprintf(`[logging]
level = "error"

[database]
path = %q

[suggestions]
backoff_table = ["1m", "1h"]

[suggestions.fetchers.same_site]
enabled = %t
`, filepath.Join(dir, "data", "tabsuggest.sqlite"), sameSite)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func newTestApp(t *testing.T) (*App, string) {
	t.Helper()
	dir := t.TempDir()
	path := writeConfig(t, dir, true)
	app, err := NewApp(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close() })
	return app, dir
}

func TestNewApp_LoadsConfigAndDefersDatabase(t *testing.T) {
	app, dir := newTestApp(t)

	assert.Equal(t, "error", app.Config.Logging.Level)
	assert.Equal(t, entity.BackoffTable(app.Config.Suggestions.BackoffTable), app.Backoff.Table())
	assert.Len(t, app.Backoff.Table(), 2)
	assert.Equal(t, filepath.Join(dir, "data", "tabsuggest.sqlite"), app.DatabasePath())
	assert.NotNil(t, app.Ctx())

	_, err := os.Stat(app.DatabasePath())
	assert.True(t, os.IsNotExist(err), "database must not be created before first use")
}

func TestNewApp_BackoffPersistsInDatabase(t *testing.T) {
	app, _ := newTestApp(t)
	ctx := app.Ctx()

	app.Backoff.RecordDismissal(ctx)
	state, err := app.Backoff.State(ctx)
	require.NoError(t, err)
	assert.True(t, state.HasHistory())
	assert.Equal(t, int64(1), state.StageIndex)
	assert.FileExists(t, app.DatabasePath())

	require.NoError(t, app.Backoff.Reset(ctx))
	state, err = app.Backoff.State(ctx)
	require.NoError(t, err)
	assert.False(t, state.HasHistory())
}

func TestNewApp_RecordsAcceptedFeedback(t *testing.T) {
	app, _ := newTestApp(t)
	ctx := app.Ctx()

	fb := entity.Feedback{
		Suggestion: entity.Suggestion{
			Action:       entity.SuggestionActionClose,
			ProviderID:   "duplicates",
			AffectedTabs: []entity.TabInfo{{ID: 1}, {ID: 2}, {ID: 3}},
		},
		Response:       entity.FeedbackAccepted,
		SelectedTabIDs: []entity.TabID{1, 2},
	}
	require.NoError(t, app.RecordFeedback.Execute(ctx, fb))

	summary, err := app.RecordFeedback.Summary(ctx)
	require.NoError(t, err)
	require.Len(t, summary, 1)
	assert.Equal(t, 1, summary[0].Accepted)
	assert.InDelta(t, 1.0, summary[0].AverageDelta, 0.001)
}

func TestApp_EphemeralUseCasesLeaveDatabaseAlone(t *testing.T) {
	app, _ := newTestApp(t)
	backoff, record := app.EphemeralUseCases()

	require.NoError(t, record.Execute(app.Ctx(), entity.Feedback{Response: entity.FeedbackNotConsidered}))
	assert.True(t, backoff.IsActive(app.Ctx()))

	_, err := os.Stat(app.DatabasePath())
	assert.True(t, os.IsNotExist(err))
}

func TestApp_ConfigReloadTogglesFetchers(t *testing.T) {
	app, dir := newTestApp(t)
	app.ConfigManager.OnConfigChange(func(cfg *config.Config) {
		app.Fetchers.Apply(app.Ctx(), cfg.Suggestions.Fetchers)
	})
	require.True(t, app.Fetchers.SameSite.IsEnabled())

	writeConfig(t, dir, false)
	require.NoError(t, app.ConfigManager.Reload())

	assert.False(t, app.Fetchers.SameSite.IsEnabled())
	assert.True(t, app.Fetchers.Duplicates.IsEnabled())
}

func TestNewApp_InvalidConfig(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[suggestions]\nbackoff_table = [\"1h\", \"1m\"]\n"), 0o600))

	_, err := NewApp(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load config")
}
