package suggestion

import (
	"context"
	"fmt"
	"sync"

	"github.com/bnema/tabsuggest/internal/application/port"
	"github.com/bnema/tabsuggest/internal/logging"
)

// FetcherRegistry holds the suggestion sources.
type FetcherRegistry struct {
	mu       sync.RWMutex
	fetchers []port.Fetcher
}

// NewFetcherRegistry creates a registry with the given fetchers.
// Nil fetchers and duplicate IDs are skipped with a warning.
func NewFetcherRegistry(ctx context.Context, fetchers ...port.Fetcher) *FetcherRegistry {
	r := &FetcherRegistry{}
	for _, f := range fetchers {
		if err := r.Register(f); err != nil {
			logging.FromContext(ctx).Warn().Err(err).Msg("skipping fetcher")
		}
	}
	return r
}

// Register adds a fetcher. IDs must be unique.
func (r *FetcherRegistry) Register(f port.Fetcher) error {
	if f == nil {
		return fmt.Errorf("fetcher is required")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.fetchers {
		if existing.ID() == f.ID() {
			return fmt.Errorf("fetcher %q already registered", f.ID())
		}
	}
	r.fetchers = append(r.fetchers, f)
	return nil
}

// All returns every registered fetcher in registration order.
func (r *FetcherRegistry) All() []port.Fetcher {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]port.Fetcher, len(r.fetchers))
	copy(out, r.fetchers)
	return out
}

// Enabled asks every fetcher whether it is enabled right now.
// A fetcher whose IsEnabled panics is treated as disabled.
func (r *FetcherRegistry) Enabled(ctx context.Context) []port.Fetcher {
	all := r.All()
	out := make([]port.Fetcher, 0, len(all))
	for _, f := range all {
		if isEnabled(ctx, f) {
			out = append(out, f)
		}
	}
	return out
}

func isEnabled(ctx context.Context, f port.Fetcher) (enabled bool) {
	defer func() {
		if r := recover(); r != nil {
			logging.FromContext(ctx).Error().
				Str("fetcher", f.ID()).
				Interface("panic", r).
				Msg("fetcher IsEnabled panicked, skipping")
			enabled = false
		}
	}()
	return f.IsEnabled()
}
