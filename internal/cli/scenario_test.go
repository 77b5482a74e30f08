package cli

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/tabsuggest/internal/domain/entity"
)

const duplicatesScenario = `
name: duplicates
settle: 1s
fetchers:
  same_site: false
steps:
  - open: {id: 1, url: "https://go.dev", title: Go}
  - open: {id: 2, url: "https://go.dev/", opener: 1}
  - open: {id: 3, url: "https://www.go.dev", age: 96h}
  - move: {id: 3, to: 0}
  - paint: {id: 2, title: "Go again"}
  - close: 3
  - feedback: {index: 0, response: accepted, select: [2]}
  - wait: 10ms
`

func TestParseScenario(t *testing.T) {
	sc, err := ParseScenario([]byte(duplicatesScenario))
	require.NoError(t, err)

	assert.Equal(t, "duplicates", sc.Name)
	assert.Equal(t, time.Second, sc.Settle)
	assert.Equal(t, map[string]bool{"same_site": false}, sc.Fetchers)
	require.Len(t, sc.Steps, 8)

	open := sc.Steps[2].Open
	require.NotNil(t, open)
	assert.Equal(t, entity.TabID(3), open.ID)
	assert.Equal(t, 96*time.Hour, open.Age)
	assert.Equal(t, entity.TabID(1), sc.Steps[1].Open.Opener)

	require.NotNil(t, sc.Steps[5].Close)
	assert.Equal(t, entity.TabID(3), *sc.Steps[5].Close)

	fb := sc.Steps[6].Feedback
	require.NotNil(t, fb)
	assert.Equal(t, entity.FeedbackAccepted, fb.Response)
	assert.Equal(t, []entity.TabID{2}, fb.Select)

	require.NotNil(t, sc.Steps[7].Wait)
	assert.Equal(t, 10*time.Millisecond, *sc.Steps[7].Wait)
}

func TestParseScenario_DefaultSettle(t *testing.T) {
	sc, err := ParseScenario([]byte("steps:\n  - close: 1\n"))
	require.NoError(t, err)
	assert.Equal(t, defaultSettle, sc.Settle)
}

func TestParseScenario_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"no steps", "name: empty\n", "no steps"},
		{"two actions", "steps:\n  - close: 1\n    wait: 1s\n", "exactly one action"},
		{"no action", "steps:\n  - {}\n", "exactly one action"},
		{"open without url", "steps:\n  - open: {id: 1}\n", "url is required"},
		{"bad response", "steps:\n  - feedback: {index: 0, response: maybe}\n", "unknown response"},
		{"negative index", "steps:\n  - feedback: {index: -1, response: dismissed}\n", "index"},
		{"bad yaml", "steps: [", "parse scenario"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseScenario([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadScenario(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(duplicatesScenario), 0o600))

	sc, err := LoadScenario(path)
	require.NoError(t, err)
	assert.Len(t, sc.Steps, 8)

	_, err = LoadScenario(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestStep_Describe(t *testing.T) {
	id := entity.TabID(4)
	wait := 250 * time.Millisecond
	tests := []struct {
		step Step
		want string
	}{
		{Step{Open: &OpenStep{ID: 2, URL: "https://a.test", Opener: 1, Incognito: true}}, "open tab 2 https://a.test from 1 (incognito)"},
		{Step{Move: &MoveStep{ID: 2, To: 0}}, "move tab 2 to 0"},
		{Step{Paint: &PaintStep{ID: 2}}, "first paint of tab 2"},
		{Step{Close: &id}, "close tab 4"},
		{Step{Feedback: &FeedbackStep{Index: 1, Response: entity.FeedbackDismissed}}, "dismissed suggestion 1"},
		{Step{Wait: &wait}, "wait 250ms"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.step.Describe())
	}
}

func TestStep_TabID(t *testing.T) {
	closed := entity.TabID(7)
	wait := time.Second

	id, ok := Step{Close: &closed}.TabID()
	assert.True(t, ok)
	assert.Equal(t, entity.TabID(7), id)

	id, ok = Step{Move: &MoveStep{ID: 3, To: 0}}.TabID()
	assert.True(t, ok)
	assert.Equal(t, entity.TabID(3), id)

	_, ok = Step{Wait: &wait}.TabID()
	assert.False(t, ok)
}
