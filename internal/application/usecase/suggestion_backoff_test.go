package usecase_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/bnema/tabsuggest/internal/application/usecase"
	"github.com/bnema/tabsuggest/internal/domain/entity"
	repomocks "github.com/bnema/tabsuggest/internal/domain/repository/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSuggestionBackoff_NeverDismissed_IsInactive(t *testing.T) {
	ctx := testContext()
	prefs := newMemPrefs()
	uc := usecase.NewSuggestionBackoffUseCase(prefs, nil, newFakeClock().Now)

	assert.False(t, uc.IsActive(ctx))
	assert.Empty(t, prefs.values, "checking without history must not write state")
}

func TestSuggestionBackoff_ActiveAfterDismissal_ExpiresAfterDuration(t *testing.T) {
	ctx := testContext()
	clock := newFakeClock()
	table := entity.BackoffTable{time.Minute, 30 * time.Minute}
	uc := usecase.NewSuggestionBackoffUseCase(newMemPrefs(), table, clock.Now)

	uc.RecordDismissal(ctx)
	assert.True(t, uc.IsActive(ctx))

	clock.Advance(59 * time.Second)
	assert.True(t, uc.IsActive(ctx))

	clock.Advance(time.Second)
	assert.False(t, uc.IsActive(ctx))
}

func TestSuggestionBackoff_ElapsedTimeIsConsumedAcrossChecks(t *testing.T) {
	ctx := testContext()
	clock := newFakeClock()
	prefs := newMemPrefs()
	uc := usecase.NewSuggestionBackoffUseCase(prefs, entity.BackoffTable{10 * time.Second}, clock.Now)

	uc.RecordDismissal(ctx)
	clock.Advance(4 * time.Second)
	require.True(t, uc.IsActive(ctx))

	state, err := uc.State(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(6000), state.RemainingBackoffMs)
	require.NotNil(t, state.LastEventTimestamp)
	assert.Equal(t, clock.Now().UnixMilli(), *state.LastEventTimestamp)

	clock.Advance(6 * time.Second)
	assert.False(t, uc.IsActive(ctx))
}

func TestSuggestionBackoff_DurationsEscalateAndCap(t *testing.T) {
	ctx := testContext()
	clock := newFakeClock()
	prefs := newMemPrefs()
	table := entity.BackoffTable{time.Minute, time.Hour, 2 * time.Hour}
	uc := usecase.NewSuggestionBackoffUseCase(prefs, table, clock.Now)

	var previous int64
	var durations []int64
	for i := 0; i < 5; i++ {
		uc.RecordDismissal(ctx)
		state, err := uc.State(ctx)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, state.RemainingBackoffMs, previous)
		previous = state.RemainingBackoffMs
		durations = append(durations, state.RemainingBackoffMs)
	}

	assert.Equal(t, []int64{
		time.Minute.Milliseconds(),
		time.Hour.Milliseconds(),
		(2 * time.Hour).Milliseconds(),
		(2 * time.Hour).Milliseconds(),
		(2 * time.Hour).Milliseconds(),
	}, durations)

	// Stage is written unclamped and clamped on read.
	stage, ok, err := prefs.GetInt(ctx, usecase.BackoffKeyStageIndex)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, int64(5), stage)
}

func TestSuggestionBackoff_CorruptStage_IsClamped(t *testing.T) {
	ctx := testContext()
	prefs := newMemPrefs()
	prefs.values[usecase.BackoffKeyStageIndex] = -7
	table := entity.BackoffTable{time.Minute, time.Hour}
	uc := usecase.NewSuggestionBackoffUseCase(prefs, table, newFakeClock().Now)

	uc.RecordDismissal(ctx)

	assert.Equal(t, time.Minute.Milliseconds(), prefs.values[usecase.BackoffKeyRemainingMs])
	assert.Equal(t, int64(1), prefs.values[usecase.BackoffKeyStageIndex])
}

func TestSuggestionBackoff_StorageError_TreatedAsNoBackoff(t *testing.T) {
	ctx := testContext()
	prefs := repomocks.NewMockPreferenceRepository(t)
	prefs.EXPECT().GetInt(mock.Anything, usecase.BackoffKeyLastEventMs).
		Return(int64(0), false, errors.New("disk I/O error"))

	uc := usecase.NewSuggestionBackoffUseCase(prefs, nil, nil)
	assert.False(t, uc.IsActive(ctx))
}

func TestSuggestionBackoff_RecordDismissal_WriteErrorIsSwallowed(t *testing.T) {
	ctx := testContext()
	prefs := repomocks.NewMockPreferenceRepository(t)
	prefs.EXPECT().GetInt(mock.Anything, usecase.BackoffKeyStageIndex).Return(int64(2), true, nil)
	prefs.EXPECT().SetInts(mock.Anything, mock.Anything).
		Run(func(_ context.Context, values map[string]int64) {
			assert.Equal(t, int64(3), values[usecase.BackoffKeyStageIndex])
			assert.Equal(t, time.Hour.Milliseconds(), values[usecase.BackoffKeyRemainingMs])
		}).
		Return(errors.New("readonly database"))

	uc := usecase.NewSuggestionBackoffUseCase(prefs, entity.DefaultBackoffTable, nil)
	assert.NotPanics(t, func() { uc.RecordDismissal(ctx) })
}

func TestSuggestionBackoff_Reset(t *testing.T) {
	ctx := testContext()
	prefs := newMemPrefs()
	prefs.values["unrelated"] = 1
	uc := usecase.NewSuggestionBackoffUseCase(prefs, nil, newFakeClock().Now)

	uc.RecordDismissal(ctx)
	require.True(t, uc.IsActive(ctx))
	require.NoError(t, uc.Reset(ctx))

	assert.False(t, uc.IsActive(ctx))
	assert.Equal(t, map[string]int64{"unrelated": 1}, prefs.values)
}

func TestSuggestionBackoff_ConcurrentCallsAreSerialised(t *testing.T) {
	ctx := testContext()
	prefs := newMemPrefs()
	uc := usecase.NewSuggestionBackoffUseCase(prefs, entity.DefaultBackoffTable, newFakeClock().Now)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			uc.RecordDismissal(ctx)
		}()
		go func() {
			defer wg.Done()
			uc.IsActive(ctx)
		}()
	}
	wg.Wait()

	state, err := uc.State(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(20), state.StageIndex)
}

func TestSuggestionBackoff_StageKeepsCountingPastTableEnd(t *testing.T) {
	ctx := testContext()
	prefs := newMemPrefs()
	prefs.values[usecase.BackoffKeyStageIndex] = 9
	table := entity.BackoffTable{time.Minute, time.Hour}
	uc := usecase.NewSuggestionBackoffUseCase(prefs, table, newFakeClock().Now)

	uc.RecordDismissal(ctx)

	assert.Equal(t, time.Hour.Milliseconds(), prefs.values[usecase.BackoffKeyRemainingMs])
	assert.Equal(t, int64(10), prefs.values[usecase.BackoffKeyStageIndex])
}
