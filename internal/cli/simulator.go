package cli

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/bnema/tabsuggest/internal/application/port"
	"github.com/bnema/tabsuggest/internal/domain/entity"
	"github.com/bnema/tabsuggest/internal/infrastructure/suggestion"
	"github.com/bnema/tabsuggest/internal/infrastructure/tabmodel"
	"github.com/bnema/tabsuggest/internal/logging"
)

// SimulationEventKind tells what a SimulationEvent reports.
type SimulationEventKind string

const (
	EventStep        SimulationEventKind = "step"
	EventPublished   SimulationEventKind = "published"
	EventInvalidated SimulationEventKind = "invalidated"
	EventFeedback    SimulationEventKind = "feedback"
	EventUnsettled   SimulationEventKind = "unsettled"
)

// SimulationEvent is emitted for every step and every orchestrator
// notification during a run.
type SimulationEvent struct {
	Kind        SimulationEventKind
	Step        int
	Description string
	Suggestions []entity.Suggestion
	Feedback    entity.Feedback
}

const idlePoll = 5 * time.Millisecond

// Simulator drives an in-memory tab model through a Scenario and reports
// what the suggestion engine publishes.
type Simulator struct {
	model   *tabmodel.Model
	watcher *suggestion.ContextWatcher
	orch    *suggestion.Orchestrator
	now     func() time.Time

	emitMu sync.Mutex
	emit   func(SimulationEvent)

	mu      sync.Mutex
	step    int
	latest  []entity.Suggestion
	respond port.FeedbackCallback
}

var _ port.SuggestionObserver = (*Simulator)(nil)

// NewSimulator wires a fresh tab model, watcher and orchestrator.
// backoff and feedback may be nil.
func NewSimulator(
	registry *suggestion.FetcherRegistry,
	backoff suggestion.BackoffGate,
	feedback suggestion.FeedbackHandler,
	opts suggestion.Options,
	emit func(SimulationEvent),
) *Simulator {
	s := &Simulator{
		model: tabmodel.New(),
		now:   time.Now,
		emit:  emit,
	}
	s.watcher = suggestion.NewContextWatcher(s.model, func(reason suggestion.ChangeReason) {
		s.orch.OnContextChanged(reason)
	})
	s.orch = suggestion.NewOrchestrator(s.watcher, registry, backoff, feedback, opts)
	return s
}

// Run replays every step, waiting up to sc.Settle after each one for the
// resulting cycle to publish.
func (s *Simulator) Run(ctx context.Context, sc *Scenario) error {
	ctx = logging.WithComponent(ctx, "simulator")
	unsubscribe := s.orch.Subscribe(s)
	defer unsubscribe()
	s.orch.Start(ctx)
	defer s.orch.Stop()
	s.watcher.Start()
	defer s.watcher.Destroy()

	settle := sc.Settle
	if settle <= 0 {
		settle = defaultSettle
	}

	for i, step := range sc.Steps {
		if err := ctx.Err(); err != nil {
			return err
		}
		n := i + 1
		s.mu.Lock()
		s.step = n
		s.mu.Unlock()

		s.send(SimulationEvent{Kind: EventStep, Step: n, Description: step.Describe()})
		if err := s.apply(ctx, step); err != nil {
			return fmt.Errorf("step %d (%s): %w", n, step.Describe(), err)
		}
		if err := s.settle(ctx, settle); err != nil {
			if !errors.Is(err, context.DeadlineExceeded) {
				return err
			}
			s.send(SimulationEvent{Kind: EventUnsettled, Step: n, Description: "fetchers still running after " + settle.String()})
		}
	}
	return nil
}

// Latest returns the suggestions currently shown.
func (s *Simulator) Latest() []entity.Suggestion {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.latest)
}

// Model exposes the simulated tab model.
func (s *Simulator) Model() *tabmodel.Model {
	return s.model
}

func (s *Simulator) apply(ctx context.Context, step Step) error {
	if id, ok := step.TabID(); ok {
		ctx = logging.WithTabID(ctx, int64(id))
	}
	logging.FromContext(ctx).Debug().Str("step", step.Describe()).Msg("applying scenario step")

	switch {
	case step.Open != nil:
		input := tabmodel.OpenTabInput{
			ID:          step.Open.ID,
			URL:         step.Open.URL,
			Title:       step.Open.Title,
			ReferrerURL: step.Open.Referrer,
			OpenerID:    step.Open.Opener,
			Incognito:   step.Open.Incognito,
		}
		if step.Open.Age > 0 {
			input.CreatedAt = s.now().Add(-step.Open.Age)
		}
		_, err := s.model.Open(input)
		return err
	case step.Move != nil:
		return s.model.Move(step.Move.ID, step.Move.To)
	case step.Paint != nil:
		return s.model.Paint(step.Paint.ID, step.Paint.URL, step.Paint.Title)
	case step.Close != nil:
		return s.model.Close(*step.Close)
	case step.Feedback != nil:
		return s.giveFeedback(step.Feedback)
	case step.Wait != nil:
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(*step.Wait):
			return nil
		}
	}
	return errors.New("empty step")
}

// giveFeedback answers a shown suggestion the way a UI would. Accepted
// CLOSE suggestions also close the selected tabs.
func (s *Simulator) giveFeedback(step *FeedbackStep) error {
	s.mu.Lock()
	latest, respond := s.latest, s.respond
	s.mu.Unlock()

	if respond == nil {
		return errors.New("no suggestions are shown")
	}
	if step.Index >= len(latest) {
		return fmt.Errorf("suggestion %d not shown, only %d available", step.Index, len(latest))
	}

	sg := latest[step.Index]
	selected := step.Select
	if selected == nil && step.Response == entity.FeedbackAccepted {
		selected = sg.AffectedTabIDs()
	}
	fb := entity.Feedback{Suggestion: sg, Response: step.Response, SelectedTabIDs: selected}
	respond(fb)
	s.send(SimulationEvent{Kind: EventFeedback, Step: s.currentStep(), Feedback: fb})

	if fb.Response != entity.FeedbackAccepted || sg.Action != entity.SuggestionActionClose {
		return nil
	}
	var errs []error
	for _, id := range selected {
		if err := s.model.Close(id); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (s *Simulator) settle(ctx context.Context, timeout time.Duration) error {
	s.orch.Sync()
	waitCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	return s.orch.WaitIdle(waitCtx, idlePoll)
}

// OnNewSuggestion implements port.SuggestionObserver.
func (s *Simulator) OnNewSuggestion(suggestions []entity.Suggestion, respond port.FeedbackCallback) {
	s.mu.Lock()
	s.latest = slices.Clone(suggestions)
	s.respond = respond
	s.mu.Unlock()
	s.send(SimulationEvent{Kind: EventPublished, Step: s.currentStep(), Suggestions: suggestions})
}

// OnSuggestionInvalidated implements port.SuggestionObserver.
func (s *Simulator) OnSuggestionInvalidated() {
	s.mu.Lock()
	s.latest = nil
	s.respond = nil
	s.mu.Unlock()
	s.send(SimulationEvent{Kind: EventInvalidated, Step: s.currentStep()})
}

func (s *Simulator) currentStep() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.step
}

func (s *Simulator) send(ev SimulationEvent) {
	if s.emit == nil {
		return
	}
	s.emitMu.Lock()
	defer s.emitMu.Unlock()
	s.emit(ev)
}
