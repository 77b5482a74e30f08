package fetcher

import (
	"context"
	"time"

	"github.com/bnema/tabsuggest/internal/domain/entity"
)

// NewStaleFetcher suggests closing tabs opened longer than maxAge ago.
// now may be nil.
func NewStaleFetcher(enabled bool, maxAge time.Duration, minTabs int, now func() time.Time) *Local {
	return NewLocal(StaleID, enabled, Stale(maxAge, minTabs, now))
}

// Stale returns one CLOSE suggestion when at least minTabs tabs are older
// than maxAge. Tabs without a creation timestamp are never stale.
func Stale(maxAge time.Duration, minTabs int, now func() time.Time) Heuristic {
	if now == nil {
		now = time.Now
	}
	return func(_ context.Context, snapshot *entity.ContextSnapshot) []entity.Suggestion {
		cutoff := now().Add(-maxAge).UnixMilli()

		var old []entity.TabInfo
		for _, t := range visibleTabs(snapshot.AllTabs()) {
			if t.TimestampMillis > 0 && t.TimestampMillis < cutoff {
				old = append(old, t)
			}
		}
		if len(old) == 0 || len(old) < minTabs {
			return nil
		}
		return []entity.Suggestion{{
			AffectedTabs: old,
			Action:       entity.SuggestionActionClose,
			ProviderID:   StaleID,
		}}
	}
}
