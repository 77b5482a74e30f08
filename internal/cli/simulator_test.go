package cli

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/tabsuggest/internal/application/usecase"
	"github.com/bnema/tabsuggest/internal/domain/entity"
	"github.com/bnema/tabsuggest/internal/infrastructure/fetcher"
	"github.com/bnema/tabsuggest/internal/infrastructure/persistence/memory"
	"github.com/bnema/tabsuggest/internal/infrastructure/suggestion"
	"github.com/bnema/tabsuggest/internal/logging"
)

func testContext() context.Context {
	return logging.WithContext(context.Background(), zerolog.Nop())
}

type eventLog struct {
	mu     sync.Mutex
	events []SimulationEvent
}

func (l *eventLog) add(ev SimulationEvent) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.events = append(l.events, ev)
}

func (l *eventLog) kinds(step int) []SimulationEventKind {
	l.mu.Lock()
	defer l.mu.Unlock()
	var out []SimulationEventKind
	for _, ev := range l.events {
		if ev.Step == step {
			out = append(out, ev.Kind)
		}
	}
	return out
}

func (l *eventLog) lastPublished() []entity.Suggestion {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i := len(l.events) - 1; i >= 0; i-- {
		if l.events[i].Kind == EventPublished {
			return l.events[i].Suggestions
		}
	}
	return nil
}

func newTestSimulator(backoff *usecase.SuggestionBackoffUseCase) (*Simulator, *eventLog) {
	log := &eventLog{}
	registry := suggestion.NewFetcherRegistry(testContext(), fetcher.NewDuplicatesFetcher(true))
	var (
		gate     suggestion.BackoffGate
		feedback suggestion.FeedbackHandler
	)
	if backoff != nil {
		gate = backoff
		feedback = usecase.NewRecordFeedbackUseCase(backoff, nil, nil)
	}
	return NewSimulator(registry, gate, feedback, suggestion.Options{}, log.add), log
}

func duplicateTabs() []Step {
	return []Step{
		{Open: &OpenStep{ID: 1, URL: "https://go.dev"}},
		{Open: &OpenStep{ID: 2, URL: "https://go.dev/"}},
		{Open: &OpenStep{ID: 3, URL: "https://www.go.dev"}},
		{Open: &OpenStep{ID: 4, URL: "https://go.dev/#top"}},
	}
}

func TestSimulator_PublishesAndAppliesAcceptedClose(t *testing.T) {
	sim, log := newTestSimulator(nil)
	steps := append(duplicateTabs(), Step{Feedback: &FeedbackStep{Index: 0, Response: entity.FeedbackAccepted}})

	require.NoError(t, sim.Run(testContext(), &Scenario{Settle: time.Second, Steps: steps}))

	assert.Equal(t, []SimulationEventKind{EventStep, EventPublished}, log.kinds(1))
	assert.Equal(t, []SimulationEventKind{EventStep, EventInvalidated, EventPublished}, log.kinds(2))

	// The fourth copy makes three extras, enough for a CLOSE suggestion.
	kinds := log.kinds(4)
	require.Contains(t, kinds, EventPublished)

	feedbackKinds := log.kinds(5)
	require.NotEmpty(t, feedbackKinds)
	assert.Equal(t, EventFeedback, feedbackKinds[1])

	// Accepting closed tabs 2, 3 and 4.
	tabs := sim.Model().Tabs()
	require.Len(t, tabs, 1)
	assert.Equal(t, entity.TabID(1), tabs[0].ID)
	assert.Empty(t, log.lastPublished())
}

func TestSimulator_DuplicateSuggestionContents(t *testing.T) {
	sim, _ := newTestSimulator(nil)

	require.NoError(t, sim.Run(testContext(), &Scenario{Settle: time.Second, Steps: duplicateTabs()}))

	latest := sim.Latest()
	require.Len(t, latest, 1)
	assert.Equal(t, entity.SuggestionActionClose, latest[0].Action)
	assert.Equal(t, fetcher.DuplicatesID, latest[0].ProviderID)
	assert.ElementsMatch(t, []entity.TabID{2, 3, 4}, latest[0].AffectedTabIDs())
}

func TestSimulator_NotConsideredBacksOff(t *testing.T) {
	backoff := usecase.NewSuggestionBackoffUseCase(memory.NewPreferenceRepository(), entity.BackoffTable{time.Hour}, nil)
	sim, log := newTestSimulator(backoff)

	steps := append(duplicateTabs(),
		Step{Feedback: &FeedbackStep{Index: 0, Response: entity.FeedbackNotConsidered}},
		Step{Open: &OpenStep{ID: 5, URL: "https://example.test"}},
	)
	require.NoError(t, sim.Run(testContext(), &Scenario{Settle: time.Second, Steps: steps}))

	// No cycle runs while backed off, so nothing is invalidated either.
	assert.Equal(t, []SimulationEventKind{EventStep}, log.kinds(6))
	assert.True(t, backoff.IsActive(testContext()))
	assert.Len(t, sim.Model().Tabs(), 5)
}

func TestSimulator_FeedbackWithoutSuggestionsFails(t *testing.T) {
	sim, _ := newTestSimulator(nil)
	steps := []Step{{Feedback: &FeedbackStep{Index: 0, Response: entity.FeedbackDismissed}}}

	err := sim.Run(testContext(), &Scenario{Settle: time.Second, Steps: steps})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "step 1")
}

func TestSimulator_FeedbackIndexOutOfRange(t *testing.T) {
	sim, _ := newTestSimulator(nil)
	steps := append(duplicateTabs(), Step{Feedback: &FeedbackStep{Index: 3, Response: entity.FeedbackDismissed}})

	err := sim.Run(testContext(), &Scenario{Settle: time.Second, Steps: steps})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "suggestion 3 not shown")
}

func TestSimulator_UnknownTabFails(t *testing.T) {
	sim, _ := newTestSimulator(nil)
	steps := []Step{{Move: &MoveStep{ID: 9, To: 0}}}

	err := sim.Run(testContext(), &Scenario{Steps: steps})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "move tab 9")
}

func TestSimulator_CancelledContext(t *testing.T) {
	sim, _ := newTestSimulator(nil)
	ctx, cancel := context.WithCancel(testContext())
	cancel()

	err := sim.Run(ctx, &Scenario{Steps: duplicateTabs()})
	assert.ErrorIs(t, err, context.Canceled)
}
