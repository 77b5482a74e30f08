package entity

// TabInfo is an immutable view of a tab at one instant.
// Two TabInfo values describe the same tab when ID and URL match.
type TabInfo struct {
	ID              TabID  `json:"id" yaml:"id"`
	URL             string `json:"url" yaml:"url"`
	OriginalURL     string `json:"original_url,omitempty" yaml:"original_url,omitempty"`
	ReferrerURL     string `json:"referrer_url,omitempty" yaml:"referrer_url,omitempty"`
	Title           string `json:"title,omitempty" yaml:"title,omitempty"`
	TimestampMillis int64  `json:"timestamp_ms,omitempty" yaml:"timestamp_ms,omitempty"`
	IsIncognito     bool   `json:"incognito,omitempty" yaml:"incognito,omitempty"`
}

// Equal reports whether both values identify the same tab at the same URL.
func (t TabInfo) Equal(other TabInfo) bool {
	return t.ID == other.ID && t.URL == other.URL
}

// TabGroup is a set of related tabs keyed by their common root.
type TabGroup struct {
	RootID TabID     `json:"root_id"`
	Tabs   []TabInfo `json:"tabs"`
}

// Equal compares root and member tabs in order.
func (g TabGroup) Equal(other TabGroup) bool {
	return g.RootID == other.RootID && tabsEqual(g.Tabs, other.Tabs)
}

// ContextSnapshot is the point-in-time view of open tabs used as the key
// for a suggestion cycle. A snapshot is never modified after creation.
type ContextSnapshot struct {
	UngroupedTabs []TabInfo  `json:"ungrouped_tabs"`
	Groups        []TabGroup `json:"groups"`
}

// Equal compares both sequences in order. A nil snapshot only equals nil.
func (s *ContextSnapshot) Equal(other *ContextSnapshot) bool {
	if s == nil || other == nil {
		return s == other
	}
	if s == other {
		return true
	}
	if !tabsEqual(s.UngroupedTabs, other.UngroupedTabs) {
		return false
	}
	if len(s.Groups) != len(other.Groups) {
		return false
	}
	for i := range s.Groups {
		if !s.Groups[i].Equal(other.Groups[i]) {
			return false
		}
	}
	return true
}

// TabCount returns the number of tabs across ungrouped tabs and groups.
func (s *ContextSnapshot) TabCount() int {
	if s == nil {
		return 0
	}
	n := len(s.UngroupedTabs)
	for _, g := range s.Groups {
		n += len(g.Tabs)
	}
	return n
}

// AllTabs returns ungrouped tabs followed by every group's members.
func (s *ContextSnapshot) AllTabs() []TabInfo {
	if s == nil {
		return nil
	}
	out := make([]TabInfo, 0, s.TabCount())
	out = append(out, s.UngroupedTabs...)
	for _, g := range s.Groups {
		out = append(out, g.Tabs...)
	}
	return out
}

// SnapshotFromTabs builds a snapshot from the tab model's current tabs.
// Closing tabs are left out. A tab sharing its root with another live tab
// goes into that root's group, otherwise it is ungrouped.
func SnapshotFromTabs(tabs []*Tab) *ContextSnapshot {
	live := make([]*Tab, 0, len(tabs))
	members := make(map[TabID]int)
	for _, t := range tabs {
		if t == nil || t.Closing {
			continue
		}
		live = append(live, t)
		members[t.Root()]++
	}

	snap := &ContextSnapshot{
		UngroupedTabs: []TabInfo{},
		Groups:        []TabGroup{},
	}
	groupIndex := make(map[TabID]int)
	for _, t := range live {
		root := t.Root()
		if members[root] < 2 {
			snap.UngroupedTabs = append(snap.UngroupedTabs, t.Info())
			continue
		}
		idx, ok := groupIndex[root]
		if !ok {
			idx = len(snap.Groups)
			groupIndex[root] = idx
			snap.Groups = append(snap.Groups, TabGroup{RootID: root})
		}
		snap.Groups[idx].Tabs = append(snap.Groups[idx].Tabs, t.Info())
	}
	return snap
}

func tabsEqual(a, b []TabInfo) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}
