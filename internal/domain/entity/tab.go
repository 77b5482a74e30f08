package entity

import "time"

// TabID uniquely identifies a tab.
type TabID int64

// Tab is the live, mutable state of a tab as held by the tab model.
// Suggestion code never sees it directly: it works on TabInfo copies.
type Tab struct {
	ID          TabID
	URL         string
	OriginalURL string // URL the tab was first opened with, before redirects
	ReferrerURL string
	Title       string
	CreatedAt   time.Time
	IsIncognito bool
	// RootID links related tabs (opened from one another). Zero means the
	// tab is its own root.
	RootID   TabID
	Position int  // Position in the tab strip (0-indexed)
	Closing  bool // Set while a close animation/undo window is pending
}

// Root returns the identifier used to group this tab with its relatives.
func (t *Tab) Root() TabID {
	if t.RootID == 0 {
		return t.ID
	}
	return t.RootID
}

// Info returns the immutable view of the tab used in snapshots.
func (t *Tab) Info() TabInfo {
	var ts int64
	if !t.CreatedAt.IsZero() {
		ts = t.CreatedAt.UnixMilli()
	}
	return TabInfo{
		ID:              t.ID,
		URL:             t.URL,
		OriginalURL:     t.OriginalURL,
		ReferrerURL:     t.ReferrerURL,
		Title:           t.Title,
		TimestampMillis: ts,
		IsIncognito:     t.IsIncognito,
	}
}

// TabList manages an ordered collection of tabs.
type TabList struct {
	Tabs []*Tab
}

// NewTabList creates an empty tab list.
func NewTabList() *TabList {
	return &TabList{
		Tabs: make([]*Tab, 0),
	}
}

// Add appends a tab to the list.
func (tl *TabList) Add(tab *Tab) {
	tab.Position = len(tl.Tabs)
	tl.Tabs = append(tl.Tabs, tab)
}

// Remove removes a tab by ID and reindexes positions.
func (tl *TabList) Remove(id TabID) (*Tab, bool) {
	for i, tab := range tl.Tabs {
		if tab.ID == id {
			tl.Tabs = append(tl.Tabs[:i], tl.Tabs[i+1:]...)
			for j := i; j < len(tl.Tabs); j++ {
				tl.Tabs[j].Position = j
			}
			return tab, true
		}
	}
	return nil, false
}

// Find returns a tab by ID.
func (tl *TabList) Find(id TabID) *Tab {
	for _, tab := range tl.Tabs {
		if tab.ID == id {
			return tab
		}
	}
	return nil
}

// Count returns the number of tabs.
func (tl *TabList) Count() int {
	return len(tl.Tabs)
}

// MarkClosing flags a tab as being closed. Closing tabs stay in the list
// until removed but are left out of snapshots.
func (tl *TabList) MarkClosing(id TabID) bool {
	tab := tl.Find(id)
	if tab == nil {
		return false
	}
	tab.Closing = true
	return true
}

// Move moves a tab to a new position and returns its previous position.
func (tl *TabList) Move(id TabID, newPos int) (oldPos int, ok bool) {
	if newPos < 0 || newPos >= len(tl.Tabs) {
		return 0, false
	}
	var tab *Tab
	for i, t := range tl.Tabs {
		if t.ID == id {
			tab = t
			oldPos = i
			break
		}
	}
	if tab == nil {
		return 0, false
	}
	tl.Tabs = append(tl.Tabs[:oldPos], tl.Tabs[oldPos+1:]...)
	tl.Tabs = append(tl.Tabs[:newPos], append([]*Tab{tab}, tl.Tabs[newPos:]...)...)
	for i := range tl.Tabs {
		tl.Tabs[i].Position = i
	}
	return oldPos, true
}

// Clone returns a deep copy of the tabs, safe to hand to other goroutines.
func (tl *TabList) Clone() []*Tab {
	out := make([]*Tab, len(tl.Tabs))
	for i, t := range tl.Tabs {
		c := *t
		out[i] = &c
	}
	return out
}
