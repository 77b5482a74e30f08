package fetcher

import (
	"context"

	"github.com/bnema/tabsuggest/internal/domain/entity"
	"github.com/bnema/tabsuggest/internal/domain/url"
)

// NewSameSiteFetcher suggests grouping ungrouped tabs that share a host.
func NewSameSiteFetcher(enabled bool, minTabs int) *Local {
	return NewLocal(SameSiteID, enabled, SameSite(minTabs))
}

// SameSite builds one GROUP suggestion per host with at least minTabs
// ungrouped web tabs, in order of first appearance.
func SameSite(minTabs int) Heuristic {
	if minTabs < 1 {
		minTabs = 1
	}
	return func(_ context.Context, snapshot *entity.ContextSnapshot) []entity.Suggestion {
		var hosts []string
		byHost := make(map[string][]entity.TabInfo)
		for _, t := range visibleTabs(snapshot.UngroupedTabs) {
			if !url.IsWeb(t.URL) {
				continue
			}
			host := url.ExtractDomain(t.URL)
			if _, ok := byHost[host]; !ok {
				hosts = append(hosts, host)
			}
			byHost[host] = append(byHost[host], t)
		}

		var out []entity.Suggestion
		for _, host := range hosts {
			tabs := byHost[host]
			if len(tabs) < minTabs {
				continue
			}
			out = append(out, entity.Suggestion{
				AffectedTabs: tabs,
				Action:       entity.SuggestionActionGroup,
				ProviderID:   SameSiteID,
			})
		}
		return out
	}
}
