// Package suggestserver exposes suggestion fetchers over HTTP so that a
// remote fetcher in another process can use them.
package suggestserver

import "github.com/bnema/tabsuggest/internal/domain/entity"

// SuggestionsPath is the route serving POST suggestion requests.
const SuggestionsPath = "/v1/suggestions"

// SuggestRequest is the body of a suggestion request.
type SuggestRequest struct {
	Snapshot entity.ContextSnapshot `json:"snapshot"`
}

// SuggestResponse lists every suggestion the server's fetchers produced,
// unfiltered. Aggregation stays with the caller.
type SuggestResponse struct {
	Suggestions []entity.Suggestion `json:"suggestions"`
	Fetchers    []string            `json:"fetchers,omitempty"`
}

// ErrorResponse is returned with any non-2xx status.
type ErrorResponse struct {
	Error string `json:"error"`
}
