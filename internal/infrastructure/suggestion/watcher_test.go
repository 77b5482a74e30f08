package suggestion

import (
	"testing"

	"github.com/bnema/tabsuggest/internal/application/port/mocks"
	"github.com/bnema/tabsuggest/internal/domain/entity"
	"github.com/bnema/tabsuggest/internal/infrastructure/tabmodel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestContextWatcher_StartRegistersOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	model := mocks.NewMockTabModel(ctrl)

	w := NewContextWatcher(model, nil)
	model.EXPECT().AddObserver(w).Times(1)

	w.Start()
	w.Start()
}

func TestContextWatcher_DestroyIsIdempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	model := mocks.NewMockTabModel(ctrl)

	w := NewContextWatcher(model, nil)
	model.EXPECT().AddObserver(w).Times(1)
	model.EXPECT().RemoveObserver(w).Times(1)

	w.Start()
	w.Destroy()
	w.Destroy()
}

func TestContextWatcher_DestroyWithoutStart(t *testing.T) {
	ctrl := gomock.NewController(t)
	model := mocks.NewMockTabModel(ctrl)

	w := NewContextWatcher(model, nil)
	w.Destroy()
	w.Destroy()
	w.Start() // no-op once destroyed
}

func TestContextWatcher_EachNotificationRaisesOneEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	model := mocks.NewMockTabModel(ctrl)
	tabs := []*entity.Tab{{ID: 1, URL: "https://a.test"}}
	model.EXPECT().Tabs().Return(tabs).Times(4)

	var reasons []ChangeReason
	w := NewContextWatcher(model, func(r ChangeReason) { reasons = append(reasons, r) })

	w.TabAdded(entity.Tab{ID: 1})
	w.TabMoved(entity.Tab{ID: 1}, 0, 0)
	w.FirstPaint(entity.Tab{ID: 1})
	w.TabClosed(2, false)

	assert.Equal(t, []ChangeReason{ReasonTabAdded, ReasonTabMoved, ReasonFirstPaint, ReasonTabClosed}, reasons)

	snap := w.CurrentContext()
	require.Len(t, snap.UngroupedTabs, 1)
	assert.Equal(t, entity.TabID(1), snap.UngroupedTabs[0].ID)
}

func TestContextWatcher_NoEventsAfterDestroy(t *testing.T) {
	model := tabmodel.New()
	calls := 0
	w := NewContextWatcher(model, func(ChangeReason) { calls++ })
	w.Start()

	_, err := model.Open(tabmodel.OpenTabInput{URL: "https://a.test"})
	require.NoError(t, err)
	assert.Equal(t, 1, calls)

	w.Destroy()
	assert.Zero(t, model.ObserverCount())

	_, err = model.Open(tabmodel.OpenTabInput{URL: "https://b.test"})
	require.NoError(t, err)
	w.TabAdded(entity.Tab{}) // direct call after destroy is ignored too
	assert.Equal(t, 1, calls)
}

func TestContextWatcher_CurrentContextBeforeAnyEvent(t *testing.T) {
	model := tabmodel.New()
	_, err := model.Open(tabmodel.OpenTabInput{URL: "https://a.test"})
	require.NoError(t, err)

	w := NewContextWatcher(model, nil)
	assert.Equal(t, 1, w.CurrentContext().TabCount())
}
