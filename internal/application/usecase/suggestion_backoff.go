package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/bnema/tabsuggest/internal/domain/entity"
	"github.com/bnema/tabsuggest/internal/domain/repository"
	"github.com/bnema/tabsuggest/internal/logging"
)

// Preference keys for the persisted backoff state.
const (
	BackoffKeyPrefix      = "tab_suggestions.backoff."
	BackoffKeyLastEventMs = BackoffKeyPrefix + "last_event_ms"
	BackoffKeyRemainingMs = BackoffKeyPrefix + "remaining_ms"
	BackoffKeyStageIndex  = BackoffKeyPrefix + "stage_index"
)

// SuggestionBackoffUseCase decides whether suggestions may be fetched,
// escalating a persisted wait each time the user ignores suggestions.
//
// Every method does its read-modify-write under one mutex: context changes
// and feedback arrive on different goroutines.
type SuggestionBackoffUseCase struct {
	prefs repository.PreferenceRepository
	table entity.BackoffTable
	now   func() time.Time

	mu sync.Mutex
}

// NewSuggestionBackoffUseCase creates the backoff gate. A nil clock uses time.Now
// and an empty table falls back to entity.DefaultBackoffTable.
func NewSuggestionBackoffUseCase(
	prefs repository.PreferenceRepository,
	table entity.BackoffTable,
	now func() time.Time,
) *SuggestionBackoffUseCase {
	if len(table) == 0 {
		table = entity.DefaultBackoffTable
	}
	if now == nil {
		now = time.Now
	}
	return &SuggestionBackoffUseCase{
		prefs: prefs,
		table: table,
		now:   now,
	}
}

// IsActive reports whether the backoff window is still open. Each call
// consumes the wall-clock time elapsed since the previous call.
func (uc *SuggestionBackoffUseCase) IsActive(ctx context.Context) bool {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	log := logging.FromContext(ctx)

	state, err := uc.load(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("backoff state unreadable, treating as no backoff")
		return false
	}
	if !state.HasHistory() {
		return false
	}

	nowMs := uc.now().UnixMilli()
	elapsed := nowMs - *state.LastEventTimestamp
	remaining := state.RemainingBackoffMs - elapsed

	if err := uc.prefs.SetInts(ctx, map[string]int64{
		BackoffKeyRemainingMs: remaining,
		BackoffKeyLastEventMs: nowMs,
	}); err != nil {
		log.Warn().Err(err).Msg("failed to persist backoff state")
	}

	active := remaining > 0
	log.Debug().
		Int64("remaining_ms", remaining).
		Int64("elapsed_ms", elapsed).
		Bool("active", active).
		Msg("backoff checked")
	return active
}

// RecordDismissal opens a new backoff window sized by the current stage
// and escalates the stage for next time.
func (uc *SuggestionBackoffUseCase) RecordDismissal(ctx context.Context) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	log := logging.FromContext(ctx)

	stage, _, err := uc.prefs.GetInt(ctx, BackoffKeyStageIndex)
	if err != nil {
		log.Warn().Err(err).Msg("backoff stage unreadable, restarting from first stage")
		stage = 0
	}
	clamped := uc.table.ClampStage(stage)
	duration := uc.table.DurationAt(int64(clamped))

	if err := uc.prefs.SetInts(ctx, map[string]int64{
		BackoffKeyRemainingMs: duration.Milliseconds(),
		BackoffKeyStageIndex:  max(stage, 0) + 1,
		BackoffKeyLastEventMs: uc.now().UnixMilli(),
	}); err != nil {
		log.Warn().Err(err).Msg("failed to persist dismissal")
		return
	}

	log.Info().
		Int("stage", clamped).
		Dur("backoff", duration).
		Msg("suggestions backed off after dismissal")
}

// State returns the persisted backoff state without consuming elapsed time.
func (uc *SuggestionBackoffUseCase) State(ctx context.Context) (entity.BackoffState, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.load(ctx)
}

// Reset clears every persisted backoff field.
func (uc *SuggestionBackoffUseCase) Reset(ctx context.Context) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.prefs.DeletePrefix(ctx, BackoffKeyPrefix)
}

// Table returns the configured stage durations.
func (uc *SuggestionBackoffUseCase) Table() entity.BackoffTable {
	return uc.table
}

func (uc *SuggestionBackoffUseCase) load(ctx context.Context) (entity.BackoffState, error) {
	var state entity.BackoffState

	last, ok, err := uc.prefs.GetInt(ctx, BackoffKeyLastEventMs)
	if err != nil {
		return entity.BackoffState{}, err
	}
	if ok {
		state.LastEventTimestamp = &last
	}
	if state.RemainingBackoffMs, _, err = uc.prefs.GetInt(ctx, BackoffKeyRemainingMs); err != nil {
		return entity.BackoffState{}, err
	}
	if state.StageIndex, _, err = uc.prefs.GetInt(ctx, BackoffKeyStageIndex); err != nil {
		return entity.BackoffState{}, err
	}
	return state, nil
}
