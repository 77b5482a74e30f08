package fetcher

import (
	"context"

	"github.com/bnema/tabsuggest/internal/domain/entity"
	"github.com/bnema/tabsuggest/internal/domain/url"
)

// NewDuplicatesFetcher suggests closing every extra copy of a page that is
// open more than once. The first copy in tab order is kept.
func NewDuplicatesFetcher(enabled bool) *Local {
	return NewLocal(DuplicatesID, enabled, Duplicates)
}

// Duplicates returns at most one CLOSE suggestion listing redundant copies.
func Duplicates(_ context.Context, snapshot *entity.ContextSnapshot) []entity.Suggestion {
	seen := make(map[string]struct{})
	var extras []entity.TabInfo
	for _, t := range visibleTabs(snapshot.AllTabs()) {
		if t.URL == "" {
			continue
		}
		key := url.Canonical(t.URL)
		if _, ok := seen[key]; ok {
			extras = append(extras, t)
			continue
		}
		seen[key] = struct{}{}
	}
	if len(extras) == 0 {
		return nil
	}
	return []entity.Suggestion{{
		AffectedTabs: extras,
		Action:       entity.SuggestionActionClose,
		ProviderID:   DuplicatesID,
	}}
}
