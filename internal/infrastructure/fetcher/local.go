// Package fetcher provides the suggestion sources shipped with tabsuggest:
// simple local heuristics and a client for a remote suggestion server.
package fetcher

import (
	"context"
	"sync/atomic"

	"github.com/bnema/tabsuggest/internal/application/port"
	"github.com/bnema/tabsuggest/internal/domain/entity"
	"github.com/bnema/tabsuggest/internal/logging"
)

// Fetcher IDs, also used as Suggestion.ProviderID.
const (
	DuplicatesID = "duplicates"
	SameSiteID   = "same_site"
	StaleID      = "stale"
	RemoteID     = "remote"
)

// Heuristic computes suggestions for a snapshot without blocking.
type Heuristic func(ctx context.Context, snapshot *entity.ContextSnapshot) []entity.Suggestion

// Local runs a Heuristic synchronously and reports its result.
type Local struct {
	id        string
	enabled   atomic.Bool
	heuristic Heuristic
}

var _ port.Fetcher = (*Local)(nil)

// NewLocal wraps a heuristic as a fetcher.
func NewLocal(id string, enabled bool, heuristic Heuristic) *Local {
	f := &Local{id: id, heuristic: heuristic}
	f.enabled.Store(enabled)
	return f
}

func (f *Local) ID() string { return f.id }

func (f *Local) IsEnabled() bool { return f.enabled.Load() }

// SetEnabled flips the fetcher on or off for subsequent cycles.
func (f *Local) SetEnabled(enabled bool) { f.enabled.Store(enabled) }

func (f *Local) Fetch(ctx context.Context, snapshot *entity.ContextSnapshot, onResult port.FetchCallback) {
	result := entity.FetchResult{Snapshot: snapshot, Suggestions: []entity.Suggestion{}}
	if ctx.Err() != nil || snapshot == nil {
		onResult(result)
		return
	}
	result.Suggestions = f.heuristic(ctx, snapshot)
	if result.Suggestions == nil {
		result.Suggestions = []entity.Suggestion{}
	}
	logging.FromContext(ctx).Trace().
		Int("suggestions", len(result.Suggestions)).
		Msg("local heuristic finished")
	onResult(result)
}

// visibleTabs drops incognito tabs, which are never suggested.
func visibleTabs(tabs []entity.TabInfo) []entity.TabInfo {
	out := make([]entity.TabInfo, 0, len(tabs))
	for _, t := range tabs {
		if !t.IsIncognito {
			out = append(out, t)
		}
	}
	return out
}
