package suggestion

import (
	"context"
	"runtime/debug"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sourcegraph/conc/panics"

	"github.com/bnema/tabsuggest/internal/application/port"
	"github.com/bnema/tabsuggest/internal/application/usecase"
	"github.com/bnema/tabsuggest/internal/domain/entity"
	"github.com/bnema/tabsuggest/internal/logging"
)

const defaultInboxSize = 64

// BackoffGate reports whether fetching is currently throttled.
type BackoffGate interface {
	IsActive(ctx context.Context) bool
}

// FeedbackHandler consumes user feedback on published suggestions.
type FeedbackHandler interface {
	Execute(ctx context.Context, feedback entity.Feedback) error
}

// Options tunes an Orchestrator.
type Options struct {
	// FetchTimeout completes a cycle with whatever it gathered once it has
	// been pending this long. Zero waits for every fetcher.
	FetchTimeout time.Duration
	// Shuffle orders the aggregate; nil uses math/rand/v2.
	Shuffle usecase.Shuffler
	// InboxSize bounds queued messages; zero uses a default.
	InboxSize int
}

// Orchestrator runs suggestion cycles. All cycle state is owned by a
// single goroutine; fetchers and callers talk to it through its inbox.
type Orchestrator struct {
	provider port.ContextProvider
	registry *FetcherRegistry
	backoff  BackoffGate
	feedback FeedbackHandler
	opts     Options

	inbox   chan message
	done    chan struct{}
	stopped chan struct{}

	lifecycleMu sync.Mutex
	ctx         context.Context
	running     bool
	stopOnce    sync.Once

	obsMu     sync.Mutex
	observers []subscription
	nextObsID uint64

	// Owned by the run loop.
	current *cycle
	cached  *cachedResult
}

type subscription struct {
	id       uint64
	observer port.SuggestionObserver
}

type cycle struct {
	id        string
	snapshot  *entity.ContextSnapshot
	remaining int
	collected []entity.Suggestion
	startedAt time.Time
	cancel    context.CancelFunc
	timer     *time.Timer
}

type cachedResult struct {
	snapshot    *entity.ContextSnapshot
	suggestions []entity.Suggestion
}

type message interface{ isMessage() }

type contextChangedMsg struct{ reason ChangeReason }

type fetchDoneMsg struct {
	cycleID   string
	fetcherID string
	result    entity.FetchResult
}

type cycleTimeoutMsg struct{ cycleID string }

type syncMsg struct{ done chan struct{} }

type latestMsg struct{ reply chan []entity.Suggestion }

type pendingMsg struct{ reply chan bool }

func (contextChangedMsg) isMessage() {}
func (fetchDoneMsg) isMessage()      {}
func (cycleTimeoutMsg) isMessage()   {}
func (syncMsg) isMessage()           {}
func (latestMsg) isMessage()         {}
func (pendingMsg) isMessage()        {}

// NewOrchestrator creates an orchestrator. backoff and feedback may be nil.
func NewOrchestrator(
	provider port.ContextProvider,
	registry *FetcherRegistry,
	backoff BackoffGate,
	feedback FeedbackHandler,
	opts Options,
) *Orchestrator {
	size := opts.InboxSize
	if size <= 0 {
		size = defaultInboxSize
	}
	if registry == nil {
		registry = NewFetcherRegistry(context.Background())
	}
	return &Orchestrator{
		provider: provider,
		registry: registry,
		backoff:  backoff,
		feedback: feedback,
		opts:     opts,
		inbox:    make(chan message, size),
		done:     make(chan struct{}),
		stopped:  make(chan struct{}),
		ctx:      context.Background(),
	}
}

// Start launches the run loop. The context carries the logger and bounds
// every fetch; cancelling it stops the orchestrator.
func (o *Orchestrator) Start(ctx context.Context) {
	o.lifecycleMu.Lock()
	defer o.lifecycleMu.Unlock()
	if o.running {
		return
	}
	select {
	case <-o.done:
		return
	default:
	}
	o.running = true
	o.ctx = logging.WithComponent(ctx, "suggestions")

	go o.run(o.ctx)
	go func() {
		select {
		case <-ctx.Done():
			o.Stop()
		case <-o.done:
		}
	}()
	logging.FromContext(o.ctx).Debug().Int("fetchers", len(o.registry.All())).Msg("suggestion orchestrator started")
}

// Stop ends the run loop and cancels the in-flight cycle. Idempotent.
func (o *Orchestrator) Stop() {
	o.stopOnce.Do(func() {
		close(o.done)
	})
	o.lifecycleMu.Lock()
	running := o.running
	o.lifecycleMu.Unlock()
	if running {
		<-o.stopped
	}
}

// Subscribe registers an observer and returns a function removing it.
// Observers run on the run loop. They may call the feedback callback they
// are handed, but not Sync, Latest, Pending or WaitIdle.
func (o *Orchestrator) Subscribe(observer port.SuggestionObserver) (unsubscribe func()) {
	o.obsMu.Lock()
	o.nextObsID++
	id := o.nextObsID
	o.observers = append(o.observers, subscription{id: id, observer: observer})
	o.obsMu.Unlock()

	return func() {
		o.obsMu.Lock()
		defer o.obsMu.Unlock()
		o.observers = slices.DeleteFunc(o.observers, func(s subscription) bool {
			return s.id == id
		})
	}
}

// OnContextChanged schedules a new suggestion cycle.
func (o *Orchestrator) OnContextChanged(reason ChangeReason) {
	o.post(contextChangedMsg{reason: reason})
}

// OnFeedback applies user feedback. It runs on the caller's goroutine;
// the backoff gate serialises its own state.
func (o *Orchestrator) OnFeedback(fb entity.Feedback) {
	if o.feedback == nil {
		return
	}
	ctx := o.baseContext()
	if err := o.feedback.Execute(ctx, fb); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Str("response", string(fb.Response)).Msg("failed to record feedback")
	}
}

// Sync blocks until every message queued before the call is handled.
// It must not be called from an observer callback: the run loop is
// waiting on that callback and would never handle the request.
func (o *Orchestrator) Sync() {
	if !o.isRunning() {
		return
	}
	done := make(chan struct{})
	if !o.post(syncMsg{done: done}) {
		return
	}
	select {
	case <-done:
	case <-o.stopped:
	}
}

// Latest returns the last published aggregate, or nil if none is cached.
// Like Sync, it deadlocks when called from an observer callback.
func (o *Orchestrator) Latest() []entity.Suggestion {
	if !o.isRunning() {
		return nil
	}
	reply := make(chan []entity.Suggestion, 1)
	if !o.post(latestMsg{reply: reply}) {
		return nil
	}
	select {
	case s := <-reply:
		return s
	case <-o.stopped:
		return nil
	}
}

// Pending reports whether a cycle is waiting on fetchers.
// Like Sync, it deadlocks when called from an observer callback.
func (o *Orchestrator) Pending() bool {
	if !o.isRunning() {
		return false
	}
	reply := make(chan bool, 1)
	if !o.post(pendingMsg{reply: reply}) {
		return false
	}
	select {
	case p := <-reply:
		return p
	case <-o.stopped:
		return false
	}
}

// WaitIdle polls until no cycle is pending. Observers have been notified
// of everything published by the time it returns nil. It polls Pending,
// so it must not be called from an observer callback either.
func (o *Orchestrator) WaitIdle(ctx context.Context, poll time.Duration) error {
	ticker := time.NewTicker(poll)
	defer ticker.Stop()
	for o.Pending() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
	return nil
}

func (o *Orchestrator) isRunning() bool {
	o.lifecycleMu.Lock()
	defer o.lifecycleMu.Unlock()
	return o.running
}

func (o *Orchestrator) baseContext() context.Context {
	o.lifecycleMu.Lock()
	defer o.lifecycleMu.Unlock()
	return o.ctx
}

// post delivers m to the run loop. It returns false once stopped.
func (o *Orchestrator) post(m message) bool {
	select {
	case <-o.done:
		return false
	default:
	}
	select {
	case o.inbox <- m:
		return true
	case <-o.done:
		return false
	}
}

func (o *Orchestrator) run(ctx context.Context) {
	defer close(o.stopped)
	for {
		select {
		case <-o.done:
			o.abandonCycle()
			logging.FromContext(ctx).Debug().Msg("suggestion orchestrator stopped")
			return
		case m := <-o.inbox:
			o.handle(ctx, m)
		}
	}
}

func (o *Orchestrator) handle(ctx context.Context, m message) {
	switch msg := m.(type) {
	case contextChangedMsg:
		o.handleContextChanged(ctx, msg.reason)
	case fetchDoneMsg:
		o.handleFetchDone(ctx, msg)
	case cycleTimeoutMsg:
		o.handleTimeout(ctx, msg.cycleID)
	case syncMsg:
		close(msg.done)
	case latestMsg:
		if o.cached == nil {
			msg.reply <- nil
			return
		}
		msg.reply <- slices.Clone(o.cached.suggestions)
	case pendingMsg:
		msg.reply <- o.current != nil
	}
}

func (o *Orchestrator) handleContextChanged(ctx context.Context, reason ChangeReason) {
	log := logging.FromContext(ctx)

	if o.backoff != nil && o.backoff.IsActive(ctx) {
		log.Debug().Str("reason", string(reason)).Msg("suggestions backed off, skipping fetch")
		return
	}

	snapshot := o.provider.CurrentContext()
	if snapshot == nil {
		snapshot = &entity.ContextSnapshot{}
	}

	// Every change refetches; only a different tab set makes the shown
	// suggestions stale.
	if o.cached != nil && !o.cached.snapshot.Equal(snapshot) {
		o.cached = nil
		o.notifyInvalidated(ctx)
	}

	o.abandonCycle()

	fetchers := o.registry.Enabled(ctx)
	c := &cycle{
		id:        uuid.NewString(),
		snapshot:  snapshot,
		remaining: len(fetchers),
		startedAt: time.Now(),
	}
	o.current = c

	log.Debug().
		Str("cycle_id", c.id).
		Str("reason", string(reason)).
		Int("tabs", snapshot.TabCount()).
		Int("fetchers", len(fetchers)).
		Msg("starting suggestion cycle")

	if len(fetchers) == 0 {
		o.completeCycle(ctx, c)
		return
	}

	cycleCtx, cancel := context.WithCancel(logging.WithCycleID(ctx, c.id))
	c.cancel = cancel
	if o.opts.FetchTimeout > 0 {
		id := c.id
		c.timer = time.AfterFunc(o.opts.FetchTimeout, func() {
			o.post(cycleTimeoutMsg{cycleID: id})
		})
	}
	for _, f := range fetchers {
		o.dispatch(cycleCtx, c.id, snapshot, f)
	}
}

// dispatch runs one fetcher on its own goroutine. The result callback is
// delivered at most once, and a panicking fetcher reports an empty result
// so the cycle can still complete.
func (o *Orchestrator) dispatch(ctx context.Context, cycleID string, snapshot *entity.ContextSnapshot, f port.Fetcher) {
	fetcherID := f.ID()
	ctx = logging.WithFetcherID(ctx, fetcherID)

	var once sync.Once
	report := func(result entity.FetchResult) {
		delivered := false
		once.Do(func() {
			delivered = true
			if result.Snapshot == nil {
				result.Snapshot = snapshot
			}
			o.post(fetchDoneMsg{cycleID: cycleID, fetcherID: fetcherID, result: result})
		})
		if !delivered {
			logging.FromContext(ctx).Warn().Msg("fetcher reported more than once, ignoring")
		}
	}

	go func() {
		if r := panics.Try(func() { f.Fetch(ctx, snapshot, report) }); r != nil {
			logging.FromContext(ctx).Error().
				Err(r.AsError()).
				Msg("fetcher panicked, treating as empty result")
			report(entity.FetchResult{Snapshot: snapshot})
		}
	}()
}

func (o *Orchestrator) handleFetchDone(ctx context.Context, msg fetchDoneMsg) {
	log := logging.FromContext(ctx)
	c := o.current

	if c == nil || c.id != msg.cycleID || !msg.result.Snapshot.Equal(c.snapshot) {
		log.Debug().
			Str("cycle_id", msg.cycleID).
			Str("fetcher", msg.fetcherID).
			Msg("discarding result for superseded cycle")
		return
	}

	c.collected = append(c.collected, msg.result.Suggestions...)
	c.remaining--

	log.Debug().
		Str("cycle_id", c.id).
		Str("fetcher", msg.fetcherID).
		Int("suggestions", len(msg.result.Suggestions)).
		Int("remaining", c.remaining).
		Msg("fetcher completed")

	if c.remaining > 0 {
		return
	}
	o.completeCycle(ctx, c)
}

func (o *Orchestrator) handleTimeout(ctx context.Context, cycleID string) {
	c := o.current
	if c == nil || c.id != cycleID {
		return
	}
	logging.FromContext(ctx).Warn().
		Str("cycle_id", c.id).
		Int("pending_fetchers", c.remaining).
		Dur("timeout", o.opts.FetchTimeout).
		Msg("suggestion cycle timed out, publishing partial results")
	o.completeCycle(ctx, c)
}

func (o *Orchestrator) completeCycle(ctx context.Context, c *cycle) {
	c.release()
	o.current = nil

	aggregated := usecase.AggregateSuggestions(c.collected, o.opts.Shuffle)
	o.cached = &cachedResult{snapshot: c.snapshot, suggestions: aggregated}

	logging.FromContext(ctx).Info().
		Str("cycle_id", c.id).
		Int("collected", len(c.collected)).
		Int("published", len(aggregated)).
		Dur("elapsed", time.Since(c.startedAt)).
		Msg("suggestions published")

	o.notifyNew(ctx, aggregated)
}

// abandonCycle drops the in-flight cycle, signalling its fetchers.
func (o *Orchestrator) abandonCycle() {
	if o.current == nil {
		return
	}
	o.current.release()
	o.current = nil
}

func (c *cycle) release() {
	if c.timer != nil {
		c.timer.Stop()
	}
	if c.cancel != nil {
		c.cancel()
	}
}

func (o *Orchestrator) snapshotObservers() []subscription {
	o.obsMu.Lock()
	defer o.obsMu.Unlock()
	return slices.Clone(o.observers)
}

func (o *Orchestrator) notifyNew(ctx context.Context, suggestions []entity.Suggestion) {
	for _, sub := range o.snapshotObservers() {
		own := slices.Clone(suggestions)
		o.safeNotify(ctx, func() { sub.observer.OnNewSuggestion(own, o.OnFeedback) })
	}
}

func (o *Orchestrator) notifyInvalidated(ctx context.Context) {
	for _, sub := range o.snapshotObservers() {
		o.safeNotify(ctx, sub.observer.OnSuggestionInvalidated)
	}
}

// safeNotify calls an observer, recovering panics so one observer cannot
// stop delivery to the others or kill the run loop.
func (o *Orchestrator) safeNotify(ctx context.Context, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			logging.FromContext(ctx).Error().
				Interface("panic", r).
				Bytes("stack", debug.Stack()).
				Msg("suggestion observer panicked")
		}
	}()
	fn()
}
