// Package tabmodel provides an in-memory tab strip that emits the
// structural notifications the suggestion engine listens to.
package tabmodel

import (
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/bnema/tabsuggest/internal/application/port"
	"github.com/bnema/tabsuggest/internal/domain/entity"
)

// Model is a thread-safe port.TabModel backed by an entity.TabList.
// Observers are called synchronously, outside the model lock, in the
// order changes were applied.
type Model struct {
	mu        sync.Mutex
	tabs      *entity.TabList
	observers []port.TabModelObserver
	nextID    entity.TabID
	now       func() time.Time

	// notifyMu keeps notifications in mutation order across goroutines.
	notifyMu sync.Mutex
}

// New creates an empty model.
func New() *Model {
	return &Model{
		tabs:   entity.NewTabList(),
		nextID: 1,
		now:    time.Now,
	}
}

// Tabs implements port.TabModel.
func (m *Model) Tabs() []*entity.Tab {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.tabs.Clone()
}

// AddObserver implements port.TabModel.
func (m *Model) AddObserver(observer port.TabModelObserver) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.observers = append(m.observers, observer)
}

// RemoveObserver implements port.TabModel.
func (m *Model) RemoveObserver(observer port.TabModelObserver) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.observers = slices.DeleteFunc(m.observers, func(o port.TabModelObserver) bool {
		return o == observer
	})
}

// ObserverCount returns the number of registered observers.
func (m *Model) ObserverCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.observers)
}

// OpenTabInput describes a tab to open.
type OpenTabInput struct {
	ID          entity.TabID // Optional; assigned when zero
	URL         string
	Title       string
	ReferrerURL string
	OpenerID    entity.TabID // Tab this one was opened from; joins its group
	CreatedAt   time.Time    // Optional; now when zero
	Incognito   bool
}

// Open appends a tab and notifies TabAdded.
func (m *Model) Open(input OpenTabInput) (entity.Tab, error) {
	m.notifyMu.Lock()
	defer m.notifyMu.Unlock()

	m.mu.Lock()
	id := input.ID
	if id == 0 {
		id = m.nextID
	}
	if m.tabs.Find(id) != nil {
		m.mu.Unlock()
		return entity.Tab{}, fmt.Errorf("tab %d already exists", id)
	}

	var root entity.TabID
	if input.OpenerID != 0 {
		opener := m.tabs.Find(input.OpenerID)
		if opener == nil {
			m.mu.Unlock()
			return entity.Tab{}, fmt.Errorf("opener tab %d not found", input.OpenerID)
		}
		root = opener.Root()
	}
	if id >= m.nextID {
		m.nextID = id + 1
	}
	created := input.CreatedAt
	if created.IsZero() {
		created = m.now()
	}
	tab := &entity.Tab{
		ID:          id,
		URL:         input.URL,
		OriginalURL: input.URL,
		ReferrerURL: input.ReferrerURL,
		Title:       input.Title,
		CreatedAt:   created,
		IsIncognito: input.Incognito,
		RootID:      root,
	}
	m.tabs.Add(tab)
	snapshot := *tab
	observers := slices.Clone(m.observers)
	m.mu.Unlock()

	for _, o := range observers {
		o.TabAdded(snapshot)
	}
	return snapshot, nil
}

// Move repositions a tab and notifies TabMoved.
func (m *Model) Move(id entity.TabID, newIndex int) error {
	m.notifyMu.Lock()
	defer m.notifyMu.Unlock()

	m.mu.Lock()
	oldIndex, ok := m.tabs.Move(id, newIndex)
	if !ok {
		m.mu.Unlock()
		return fmt.Errorf("cannot move tab %d to %d", id, newIndex)
	}
	snapshot := *m.tabs.Find(id)
	observers := slices.Clone(m.observers)
	m.mu.Unlock()

	for _, o := range observers {
		o.TabMoved(snapshot, newIndex, oldIndex)
	}
	return nil
}

// Close removes a tab and notifies TabClosed.
func (m *Model) Close(id entity.TabID) error {
	m.notifyMu.Lock()
	defer m.notifyMu.Unlock()

	m.mu.Lock()
	tab, ok := m.tabs.Remove(id)
	if !ok {
		m.mu.Unlock()
		return fmt.Errorf("tab %d not found", id)
	}
	observers := slices.Clone(m.observers)
	m.mu.Unlock()

	for _, o := range observers {
		o.TabClosed(tab.ID, tab.IsIncognito)
	}
	return nil
}

// MarkClosing flags a tab as mid-close without removing it. No
// notification is sent: the tab simply drops out of later snapshots.
func (m *Model) MarkClosing(id entity.TabID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.tabs.MarkClosing(id) {
		return fmt.Errorf("tab %d not found", id)
	}
	return nil
}

// Paint records a tab's first rendered frame, optionally updating its
// URL and title, and notifies FirstPaint.
func (m *Model) Paint(id entity.TabID, url, title string) error {
	m.notifyMu.Lock()
	defer m.notifyMu.Unlock()

	m.mu.Lock()
	tab := m.tabs.Find(id)
	if tab == nil {
		m.mu.Unlock()
		return fmt.Errorf("tab %d not found", id)
	}
	if url != "" {
		tab.URL = url
	}
	if title != "" {
		tab.Title = title
	}
	snapshot := *tab
	observers := slices.Clone(m.observers)
	m.mu.Unlock()

	for _, o := range observers {
		o.FirstPaint(snapshot)
	}
	return nil
}
