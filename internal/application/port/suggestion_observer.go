package port

import "github.com/bnema/tabsuggest/internal/domain/entity"

// FeedbackCallback reports the user's reaction to one published suggestion.
type FeedbackCallback func(feedback entity.Feedback)

// SuggestionObserver is notified when suggestions are published or
// become stale. Implemented by whatever renders suggestions.
type SuggestionObserver interface {
	OnNewSuggestion(suggestions []entity.Suggestion, onFeedback FeedbackCallback)
	OnSuggestionInvalidated()
}
