package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/bnema/tabsuggest/internal/application/port"
	"github.com/bnema/tabsuggest/internal/infrastructure/config"
	"github.com/bnema/tabsuggest/internal/infrastructure/fetcher"
	"github.com/bnema/tabsuggest/internal/infrastructure/suggestion"
	"github.com/bnema/tabsuggest/internal/logging"
)

// FetcherSet holds the configured suggestion sources so config reloads
// can toggle them in place.
type FetcherSet struct {
	Duplicates *fetcher.Local
	SameSite   *fetcher.Local
	Stale      *fetcher.Local
	Remote     *fetcher.Remote
}

// NewFetcherSet builds every source from config. now may be nil.
func NewFetcherSet(cfg config.FetchersConfig, now func() time.Time) *FetcherSet {
	return &FetcherSet{
		Duplicates: fetcher.NewDuplicatesFetcher(cfg.Duplicates.Enabled),
		SameSite:   fetcher.NewSameSiteFetcher(cfg.SameSite.Enabled, cfg.SameSite.MinTabs),
		Stale:      fetcher.NewStaleFetcher(cfg.Stale.Enabled, cfg.Stale.MaxAge, cfg.Stale.MinTabs, now),
		Remote:     fetcher.NewRemoteFetcher(cfg.Remote.Enabled, cfg.Remote.Endpoint, cfg.Remote.Timeout),
	}
}

// Apply copies the enable flags from cfg. Other fields take effect on restart.
func (s *FetcherSet) Apply(ctx context.Context, cfg config.FetchersConfig) {
	s.Duplicates.SetEnabled(cfg.Duplicates.Enabled)
	s.SameSite.SetEnabled(cfg.SameSite.Enabled)
	s.Stale.SetEnabled(cfg.Stale.Enabled)
	s.Remote.SetEnabled(cfg.Remote.Enabled)

	logging.FromContext(ctx).Info().
		Bool(fetcher.DuplicatesID, cfg.Duplicates.Enabled).
		Bool(fetcher.SameSiteID, cfg.SameSite.Enabled).
		Bool(fetcher.StaleID, cfg.Stale.Enabled).
		Bool(fetcher.RemoteID, cfg.Remote.Enabled).
		Msg("fetcher toggles applied")
}

// SetEnabled toggles one fetcher by ID.
func (s *FetcherSet) SetEnabled(id string, enabled bool) error {
	switch id {
	case fetcher.DuplicatesID:
		s.Duplicates.SetEnabled(enabled)
	case fetcher.SameSiteID:
		s.SameSite.SetEnabled(enabled)
	case fetcher.StaleID:
		s.Stale.SetEnabled(enabled)
	case fetcher.RemoteID:
		s.Remote.SetEnabled(enabled)
	default:
		return fmt.Errorf("unknown fetcher %q", id)
	}
	return nil
}

// Local returns the in-process heuristics.
func (s *FetcherSet) Local() []port.Fetcher {
	return []port.Fetcher{s.Duplicates, s.SameSite, s.Stale}
}

// All returns the local heuristics followed by the remote client.
func (s *FetcherSet) All() []port.Fetcher {
	return append(s.Local(), s.Remote)
}

// Registry returns a registry over the local sources, plus the remote one
// when includeRemote is set. The serve command leaves it out so a server
// never calls itself.
func (s *FetcherSet) Registry(ctx context.Context, includeRemote bool) *suggestion.FetcherRegistry {
	if includeRemote {
		return suggestion.NewFetcherRegistry(ctx, s.All()...)
	}
	return suggestion.NewFetcherRegistry(ctx, s.Local()...)
}
