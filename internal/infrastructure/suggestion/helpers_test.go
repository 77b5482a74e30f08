package suggestion

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/bnema/tabsuggest/internal/application/port"
	"github.com/bnema/tabsuggest/internal/domain/entity"
	"github.com/bnema/tabsuggest/internal/logging"
)

func testContext() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

// settableProvider is a ContextProvider whose snapshot tests set directly.
type settableProvider struct {
	mu   sync.Mutex
	snap *entity.ContextSnapshot
}

func (p *settableProvider) Set(s *entity.ContextSnapshot) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.snap = s
}

func (p *settableProvider) CurrentContext() *entity.ContextSnapshot {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.snap
}

func snapshotOf(ids ...entity.TabID) *entity.ContextSnapshot {
	s := &entity.ContextSnapshot{}
	for _, id := range ids {
		s.UngroupedTabs = append(s.UngroupedTabs, entity.TabInfo{ID: id, URL: "https://example.test"})
	}
	return s
}

// fetchCall is one pending Fetch a test completes by hand.
type fetchCall struct {
	ctx      context.Context
	snapshot *entity.ContextSnapshot
	respond  port.FetchCallback
}

// manualFetcher queues calls so tests decide when and how they complete.
type manualFetcher struct {
	id       string
	disabled atomic.Bool
	calls    chan fetchCall
}

func newManualFetcher(id string) *manualFetcher {
	return &manualFetcher{id: id, calls: make(chan fetchCall, 16)}
}

func (f *manualFetcher) ID() string      { return f.id }
func (f *manualFetcher) IsEnabled() bool { return !f.disabled.Load() }
func (f *manualFetcher) Fetch(ctx context.Context, s *entity.ContextSnapshot, cb port.FetchCallback) {
	f.calls <- fetchCall{ctx: ctx, snapshot: s, respond: cb}
}

// funcFetcher answers synchronously with whatever fn returns.
type funcFetcher struct {
	id    string
	fn    func(*entity.ContextSnapshot) []entity.Suggestion
	count atomic.Int32
}

func (f *funcFetcher) ID() string      { return f.id }
func (f *funcFetcher) IsEnabled() bool { return true }
func (f *funcFetcher) Fetch(_ context.Context, s *entity.ContextSnapshot, cb port.FetchCallback) {
	f.count.Add(1)
	cb(entity.FetchResult{Snapshot: s, Suggestions: f.fn(s)})
}

// recordingObserver records every notification.
type recordingObserver struct {
	mu            sync.Mutex
	published     [][]entity.Suggestion
	callbacks     []port.FeedbackCallback
	invalidations int
	events        []string
}

func (o *recordingObserver) OnNewSuggestion(s []entity.Suggestion, cb port.FeedbackCallback) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.published = append(o.published, s)
	o.callbacks = append(o.callbacks, cb)
	o.events = append(o.events, "new")
}

func (o *recordingObserver) OnSuggestionInvalidated() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.invalidations++
	o.events = append(o.events, "invalidated")
}

func (o *recordingObserver) publishedCount() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.published)
}

func (o *recordingObserver) last() ([]entity.Suggestion, port.FeedbackCallback) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if len(o.published) == 0 {
		return nil, nil
	}
	return o.published[len(o.published)-1], o.callbacks[len(o.callbacks)-1]
}

func (o *recordingObserver) eventLog() []string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]string(nil), o.events...)
}

type staticGate struct{ active atomic.Bool }

func (g *staticGate) IsActive(context.Context) bool { return g.active.Load() }

func closeAll(s *entity.ContextSnapshot) []entity.Suggestion {
	return []entity.Suggestion{{
		Action:       entity.SuggestionActionClose,
		ProviderID:   "all",
		AffectedTabs: s.AllTabs(),
	}}
}
