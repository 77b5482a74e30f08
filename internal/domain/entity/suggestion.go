package entity

import "time"

// SuggestionAction is what a suggestion proposes to do with its tabs.
type SuggestionAction string

const (
	SuggestionActionClose SuggestionAction = "close"
	SuggestionActionGroup SuggestionAction = "group"
)

// Minimum number of affected tabs for a suggestion to be shown.
const (
	MinCloseSuggestionTabs = 3
	MinGroupSuggestionTabs = 1
)

// Suggestion proposes closing or grouping a set of tabs.
type Suggestion struct {
	AffectedTabs []TabInfo        `json:"affected_tabs"`
	Action       SuggestionAction `json:"action"`
	ProviderID   string           `json:"provider_id"`
}

// IsValid reports whether the suggestion is worth presenting.
func (s Suggestion) IsValid() bool {
	switch s.Action {
	case SuggestionActionClose:
		return len(s.AffectedTabs) >= MinCloseSuggestionTabs
	case SuggestionActionGroup:
		return len(s.AffectedTabs) >= MinGroupSuggestionTabs
	default:
		return false
	}
}

// AffectedTabIDs returns the ids of the affected tabs in order.
func (s Suggestion) AffectedTabIDs() []TabID {
	ids := make([]TabID, len(s.AffectedTabs))
	for i, t := range s.AffectedTabs {
		ids[i] = t.ID
	}
	return ids
}

// FetchResult is what one fetcher produced for one snapshot.
type FetchResult struct {
	Snapshot    *ContextSnapshot `json:"-"`
	Suggestions []Suggestion     `json:"suggestions"`
}

// FeedbackResponse is the user's reaction to a suggestion.
type FeedbackResponse string

const (
	FeedbackAccepted      FeedbackResponse = "accepted"
	FeedbackDismissed     FeedbackResponse = "dismissed"
	FeedbackNotConsidered FeedbackResponse = "not_considered"
)

// Valid reports whether r is a known response.
func (r FeedbackResponse) Valid() bool {
	switch r {
	case FeedbackAccepted, FeedbackDismissed, FeedbackNotConsidered:
		return true
	}
	return false
}

// Feedback is produced by the UI once per suggestion shown.
type Feedback struct {
	Suggestion     Suggestion
	Response       FeedbackResponse
	SelectedTabIDs []TabID
}

// SelectionDelta counts tabs the user added to or removed from the
// suggestion before accepting it (symmetric difference of the id sets).
func (f Feedback) SelectionDelta() int {
	suggested := make(map[TabID]struct{}, len(f.Suggestion.AffectedTabs))
	for _, t := range f.Suggestion.AffectedTabs {
		suggested[t.ID] = struct{}{}
	}
	selected := make(map[TabID]struct{}, len(f.SelectedTabIDs))
	for _, id := range f.SelectedTabIDs {
		selected[id] = struct{}{}
	}

	delta := 0
	for id := range selected {
		if _, ok := suggested[id]; !ok {
			delta++
		}
	}
	for id := range suggested {
		if _, ok := selected[id]; !ok {
			delta++
		}
	}
	return delta
}

// FeedbackRecord is the persisted outcome of an accepted suggestion.
type FeedbackRecord struct {
	ID             int64
	Action         SuggestionAction
	ProviderID     string
	Response       FeedbackResponse
	AffectedCount  int
	SelectionDelta int
	RecordedAt     time.Time
}

// FeedbackSummary aggregates records per action and provider.
type FeedbackSummary struct {
	Action       SuggestionAction
	ProviderID   string
	Accepted     int
	AverageDelta float64
}
