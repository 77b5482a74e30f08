package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/bnema/tabsuggest/internal/domain/entity"
	"github.com/bnema/tabsuggest/internal/domain/repository"
	"github.com/bnema/tabsuggest/internal/logging"
)

// DismissalRecorder is the part of the backoff gate feedback needs.
type DismissalRecorder interface {
	RecordDismissal(ctx context.Context)
}

// RecordFeedbackUseCase applies the user's reaction to a suggestion.
type RecordFeedbackUseCase struct {
	backoff      DismissalRecorder
	feedbackRepo repository.FeedbackRepository
	now          func() time.Time
}

// NewRecordFeedbackUseCase creates a new RecordFeedbackUseCase.
// feedbackRepo may be nil, in which case acceptance quality is only logged.
func NewRecordFeedbackUseCase(
	backoff DismissalRecorder,
	feedbackRepo repository.FeedbackRepository,
	now func() time.Time,
) *RecordFeedbackUseCase {
	if now == nil {
		now = time.Now
	}
	return &RecordFeedbackUseCase{
		backoff:      backoff,
		feedbackRepo: feedbackRepo,
		now:          now,
	}
}

// Execute handles one feedback event.
// Only suggestions the user never looked at extend the backoff; explicit
// dismissals are free. Accepted suggestions record how much the user
// edited the tab selection.
func (uc *RecordFeedbackUseCase) Execute(ctx context.Context, fb entity.Feedback) error {
	log := logging.FromContext(ctx)

	switch fb.Response {
	case entity.FeedbackNotConsidered:
		uc.backoff.RecordDismissal(ctx)
		return nil
	case entity.FeedbackDismissed:
		log.Debug().
			Str("action", string(fb.Suggestion.Action)).
			Str("provider", fb.Suggestion.ProviderID).
			Msg("suggestion dismissed")
		return nil
	case entity.FeedbackAccepted:
	default:
		return fmt.Errorf("unknown feedback response %q", fb.Response)
	}

	delta := fb.SelectionDelta()
	log.Info().
		Str("action", string(fb.Suggestion.Action)).
		Str("provider", fb.Suggestion.ProviderID).
		Int("affected", len(fb.Suggestion.AffectedTabs)).
		Int("selection_delta", delta).
		Msg("suggestion accepted")

	if uc.feedbackRepo == nil {
		return nil
	}
	record := &entity.FeedbackRecord{
		Action:         fb.Suggestion.Action,
		ProviderID:     fb.Suggestion.ProviderID,
		Response:       fb.Response,
		AffectedCount:  len(fb.Suggestion.AffectedTabs),
		SelectionDelta: delta,
		RecordedAt:     uc.now(),
	}
	if err := uc.feedbackRepo.Save(ctx, record); err != nil {
		return fmt.Errorf("save feedback: %w", err)
	}
	return nil
}

// Summary returns acceptance statistics per action and provider.
func (uc *RecordFeedbackUseCase) Summary(ctx context.Context) ([]entity.FeedbackSummary, error) {
	if uc.feedbackRepo == nil {
		return nil, nil
	}
	return uc.feedbackRepo.Summary(ctx)
}
