// Package cli wires the tabsuggest engine for command-line use.
package cli

import (
	"context"
	"fmt"

	"github.com/bnema/tabsuggest/internal/application/usecase"
	"github.com/bnema/tabsuggest/internal/cli/styles"
	"github.com/bnema/tabsuggest/internal/domain/build"
	"github.com/bnema/tabsuggest/internal/domain/entity"
	"github.com/bnema/tabsuggest/internal/domain/repository"
	"github.com/bnema/tabsuggest/internal/infrastructure/config"
	"github.com/bnema/tabsuggest/internal/infrastructure/persistence/memory"
	"github.com/bnema/tabsuggest/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/tabsuggest/internal/logging"
)

// App holds CLI dependencies.
type App struct {
	Config        *config.Config
	ConfigManager *config.Manager
	Theme         *styles.Theme
	BuildInfo     build.Info

	// The database is opened on first use so commands that never touch
	// it (config, version) do not create it.
	db          *sqlite.LazyDB
	Preferences repository.PreferenceRepository
	Feedback    repository.FeedbackRepository

	// Use cases
	Backoff        *usecase.SuggestionBackoffUseCase
	RecordFeedback *usecase.RecordFeedbackUseCase

	Fetchers *FetcherSet

	// Context with logger
	ctx context.Context
}

// NewApp loads configuration from configFile (the XDG location when empty)
// and builds all dependencies.
func NewApp(configFile string) (*App, error) {
	var (
		mgr *config.Manager
		err error
	)
	if configFile == "" {
		mgr, err = config.NewManager()
	} else {
		mgr, err = config.NewManagerForFile(configFile)
	}
	if err != nil {
		return nil, fmt.Errorf("create config manager: %w", err)
	}
	if err := mgr.Load(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	cfg := mgr.Get()

	logger := logging.NewFromConfigValues(cfg.Logging.Level, cfg.Logging.Format)
	ctx := logging.WithContext(context.Background(), logger)

	db := sqlite.NewLazyDB(cfg.Database.Path)
	prefs := sqlite.NewLazyPreferenceRepository(db)
	feedback := sqlite.NewLazyFeedbackRepository(db)
	backoff, record := newSuggestionUseCases(cfg, prefs, feedback)

	logger.Debug().
		Str("config", mgr.GetConfigFile()).
		Str("db_path", cfg.Database.Path).
		Msg("cli initialized")

	return &App{
		Config:         cfg,
		ConfigManager:  mgr,
		Theme:          styles.NewTheme(),
		db:             db,
		Preferences:    prefs,
		Feedback:       feedback,
		Backoff:        backoff,
		RecordFeedback: record,
		Fetchers:       NewFetcherSet(cfg.Suggestions.Fetchers, nil),
		ctx:            ctx,
	}, nil
}

// EphemeralUseCases returns backoff and feedback use cases backed by
// memory only, leaving the persisted state untouched.
func (a *App) EphemeralUseCases() (*usecase.SuggestionBackoffUseCase, *usecase.RecordFeedbackUseCase) {
	return newSuggestionUseCases(a.Config, memory.NewPreferenceRepository(), nil)
}

func newSuggestionUseCases(
	cfg *config.Config,
	prefs repository.PreferenceRepository,
	feedback repository.FeedbackRepository,
) (*usecase.SuggestionBackoffUseCase, *usecase.RecordFeedbackUseCase) {
	backoff := usecase.NewSuggestionBackoffUseCase(prefs, entity.BackoffTable(cfg.Suggestions.BackoffTable), nil)
	return backoff, usecase.NewRecordFeedbackUseCase(backoff, feedback, nil)
}

// WatchConfig hot-reloads fetcher toggles whenever the config file changes.
func (a *App) WatchConfig() error {
	a.ConfigManager.OnConfigChange(func(cfg *config.Config) {
		a.Fetchers.Apply(a.ctx, cfg.Suggestions.Fetchers)
	})
	if err := a.ConfigManager.Watch(); err != nil {
		return fmt.Errorf("watch config: %w", err)
	}
	return nil
}

// Close releases all resources.
func (a *App) Close() error {
	if a.db != nil {
		return a.db.Close()
	}
	return nil
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// DatabasePath returns where the database lives (or will be created).
func (a *App) DatabasePath() string {
	return a.db.Path()
}
