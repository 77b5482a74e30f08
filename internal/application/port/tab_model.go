package port

import "github.com/bnema/tabsuggest/internal/domain/entity"

//go:generate mockgen -source=tab_model.go -destination=mocks/mock_tab_model.go -package=mocks

// TabModel is the browser's tab strip as seen by the suggestion engine.
// Implemented by the UI layer; the engine only reads tabs and listens.
type TabModel interface {
	// Tabs returns a copy of the current tabs in strip order.
	Tabs() []*entity.Tab
	// AddObserver registers for structural change notifications.
	AddObserver(observer TabModelObserver)
	// RemoveObserver unregisters a previously added observer.
	RemoveObserver(observer TabModelObserver)
}

// TabModelObserver receives structural tab changes.
type TabModelObserver interface {
	TabAdded(tab entity.Tab)
	TabMoved(tab entity.Tab, newIndex, oldIndex int)
	TabClosed(tabID entity.TabID, incognito bool)
	// FirstPaint fires when a tab renders its first frame, which is when
	// its URL and title become meaningful.
	FirstPaint(tab entity.Tab)
}

// ContextProvider returns the current tab context snapshot.
type ContextProvider interface {
	CurrentContext() *entity.ContextSnapshot
}
