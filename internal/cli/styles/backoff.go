package styles

import (
	"fmt"
	"strings"
	"time"

	"github.com/bnema/tabsuggest/internal/domain/entity"
)

// BackoffRenderer renders the persisted suggestion backoff.
type BackoffRenderer struct {
	theme *Theme
}

// NewBackoffRenderer creates a new backoff renderer with the given theme.
func NewBackoffRenderer(theme *Theme) *BackoffRenderer {
	return &BackoffRenderer{theme: theme}
}

// RenderStatus renders the state as seen at now along with the stage table.
func (r *BackoffRenderer) RenderStatus(state entity.BackoffState, table entity.BackoffTable, now time.Time) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s %s\n\n", r.theme.Highlight.Render(IconPause), r.theme.Title.Render("Suggestion backoff")))

	keyStyle := r.theme.Subtle
	if !state.HasHistory() {
		b.WriteString("  ")
		b.WriteString(r.theme.SuccessStyle.Render(IconCheck + " no dismissals recorded"))
		b.WriteString("\n")
	} else {
		remaining := state.RemainingAt(now)
		status := r.theme.SuccessStyle.Render("inactive")
		if remaining > 0 {
			status = r.theme.WarningStyle.Render("active")
		}
		last := time.UnixMilli(*state.LastEventTimestamp)
		b.WriteString(fmt.Sprintf("  %s %s\n", keyStyle.Render("Status:   "), status))
		b.WriteString(fmt.Sprintf("  %s %s\n", keyStyle.Render("Remaining:"), r.theme.Normal.Render(HumanDuration(remaining))))
		b.WriteString(fmt.Sprintf("  %s %s\n", keyStyle.Render("Stage:    "), r.theme.Normal.Render(fmt.Sprintf("%d", state.StageIndex))))
		b.WriteString(fmt.Sprintf("  %s %s\n", keyStyle.Render("Updated:  "), r.theme.TimeBadge(last)))
	}

	b.WriteString("\n")
	b.WriteString(r.RenderTable(table, state.StageIndex))
	return b.String()
}

// RenderTable lists stage durations, marking the one the next dismissal uses.
func (r *BackoffRenderer) RenderTable(table entity.BackoffTable, nextStage int64) string {
	next := table.ClampStage(nextStage)
	parts := make([]string, len(table))
	for i, d := range table {
		if i == next {
			parts[i] = r.theme.AccentBadge(HumanDuration(d))
			continue
		}
		parts[i] = r.theme.Subtle.Render(HumanDuration(d))
	}
	return fmt.Sprintf("  %s %s", r.theme.Subtle.Render("Stages:"), strings.Join(parts, " "))
}

// RenderReset renders the reset confirmation.
func (r *BackoffRenderer) RenderReset() string {
	return fmt.Sprintf("%s %s", r.theme.SuccessStyle.Render(IconRestore), r.theme.Normal.Render("Backoff cleared"))
}

// RenderDismissed renders the outcome of a manual dismissal.
func (r *BackoffRenderer) RenderDismissed(state entity.BackoffState, now time.Time) string {
	return fmt.Sprintf("%s %s %s",
		r.theme.WarningStyle.Render(IconPause),
		r.theme.Normal.Render("Suggestions paused for"),
		r.theme.Highlight.Render(HumanDuration(state.RemainingAt(now))),
	)
}

// RenderError renders an error message.
func (r *BackoffRenderer) RenderError(err error) string {
	return fmt.Sprintf("%s %s", r.theme.ErrorStyle.Render(IconX), r.theme.ErrorStyle.Render(err.Error()))
}
