// Package suggestion runs the tab suggestion engine: it watches the tab
// model, fans context snapshots out to suggestion fetchers and publishes
// the aggregated result to observers.
package suggestion

import (
	"sync"

	"github.com/bnema/tabsuggest/internal/application/port"
	"github.com/bnema/tabsuggest/internal/domain/entity"
)

// ChangeReason names the tab model notification behind a context change.
type ChangeReason string

const (
	ReasonTabAdded   ChangeReason = "tab_added"
	ReasonTabMoved   ChangeReason = "tab_moved"
	ReasonTabClosed  ChangeReason = "tab_closed"
	ReasonFirstPaint ChangeReason = "first_paint"
)

// ContextWatcher turns tab model notifications into context change events.
// Each notification rebuilds the snapshot and fires onChange exactly once,
// in the order notifications arrive.
type ContextWatcher struct {
	model    port.TabModel
	onChange func(ChangeReason)

	mu        sync.Mutex
	started   bool
	destroyed bool
	latest    *entity.ContextSnapshot

	// dispatchMu serialises snapshot+callback pairs.
	dispatchMu sync.Mutex
}

// NewContextWatcher creates a watcher. Call Start to begin observing.
func NewContextWatcher(model port.TabModel, onChange func(ChangeReason)) *ContextWatcher {
	return &ContextWatcher{
		model:    model,
		onChange: onChange,
	}
}

// Start registers with the tab model. It is a no-op once started or destroyed.
func (w *ContextWatcher) Start() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.started || w.destroyed {
		return
	}
	w.started = true
	w.model.AddObserver(w)
}

// Destroy unregisters from the tab model. Safe to call repeatedly and
// before Start; no event fires afterwards.
func (w *ContextWatcher) Destroy() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.destroyed {
		return
	}
	w.destroyed = true
	if w.started {
		w.model.RemoveObserver(w)
	}
}

// CurrentContext implements port.ContextProvider. It returns the snapshot
// built for the latest notification, or builds one from the model.
func (w *ContextWatcher) CurrentContext() *entity.ContextSnapshot {
	w.mu.Lock()
	latest := w.latest
	w.mu.Unlock()
	if latest != nil {
		return latest
	}
	return entity.SnapshotFromTabs(w.model.Tabs())
}

// TabAdded implements port.TabModelObserver.
func (w *ContextWatcher) TabAdded(entity.Tab) { w.changed(ReasonTabAdded) }

// TabMoved implements port.TabModelObserver.
func (w *ContextWatcher) TabMoved(entity.Tab, int, int) { w.changed(ReasonTabMoved) }

// TabClosed implements port.TabModelObserver.
func (w *ContextWatcher) TabClosed(entity.TabID, bool) { w.changed(ReasonTabClosed) }

// FirstPaint implements port.TabModelObserver.
func (w *ContextWatcher) FirstPaint(entity.Tab) { w.changed(ReasonFirstPaint) }

func (w *ContextWatcher) changed(reason ChangeReason) {
	w.dispatchMu.Lock()
	defer w.dispatchMu.Unlock()

	w.mu.Lock()
	if w.destroyed {
		w.mu.Unlock()
		return
	}
	w.mu.Unlock()

	snapshot := entity.SnapshotFromTabs(w.model.Tabs())

	w.mu.Lock()
	if w.destroyed {
		w.mu.Unlock()
		return
	}
	w.latest = snapshot
	w.mu.Unlock()

	if w.onChange != nil {
		w.onChange(reason)
	}
}
