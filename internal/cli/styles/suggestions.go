package styles

import (
	"fmt"
	"strings"

	"github.com/bnema/tabsuggest/internal/domain/entity"
)

// maxListedTabs caps how many affected tabs are printed per suggestion.
const maxListedTabs = 5

// SuggestionRenderer renders published suggestions and simulation events.
type SuggestionRenderer struct {
	theme *Theme
}

// NewSuggestionRenderer creates a new suggestion renderer with the given theme.
func NewSuggestionRenderer(theme *Theme) *SuggestionRenderer {
	return &SuggestionRenderer{theme: theme}
}

// RenderPublished renders one aggregate published by the orchestrator.
func (r *SuggestionRenderer) RenderPublished(suggestions []entity.Suggestion) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s %s %s",
		r.theme.Highlight.Render(IconLightbulb),
		r.theme.Title.Render("Suggestions"),
		r.theme.CountBadge(len(suggestions), "suggestion"),
	))
	if len(suggestions) == 0 {
		b.WriteString("\n  ")
		b.WriteString(r.theme.Subtle.Render("nothing to suggest"))
		return b.String()
	}
	for i, s := range suggestions {
		b.WriteString("\n")
		b.WriteString(r.renderOne(i+1, s))
	}
	return b.String()
}

func (r *SuggestionRenderer) renderOne(n int, s entity.Suggestion) string {
	icon := IconGroup
	actionStyle := r.theme.SuccessStyle
	if s.Action == entity.SuggestionActionClose {
		icon = IconTrash
		actionStyle = r.theme.WarningStyle
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("  %s %s %s %s %s",
		r.theme.Subtle.Render(fmt.Sprintf("%d.", n)),
		actionStyle.Render(icon),
		actionStyle.Render(strings.ToUpper(string(s.Action))),
		r.theme.CountBadge(len(s.AffectedTabs), "tab"),
		r.theme.Subtle.Render("via "+s.ProviderID),
	))
	for i, tab := range s.AffectedTabs {
		if i == maxListedTabs {
			b.WriteString("\n      ")
			b.WriteString(r.theme.Subtle.Render(fmt.Sprintf("... and %d more", len(s.AffectedTabs)-maxListedTabs)))
			break
		}
		b.WriteString("\n      ")
		b.WriteString(r.renderTab(tab))
	}
	return b.String()
}

func (r *SuggestionRenderer) renderTab(tab entity.TabInfo) string {
	label := tab.Title
	if label == "" {
		label = tab.URL
	}
	line := fmt.Sprintf("%s %s",
		r.theme.Subtle.Render(fmt.Sprintf("#%d", tab.ID)),
		r.theme.Normal.Render(label),
	)
	if tab.Title != "" {
		line += " " + r.theme.Subtle.Render(tab.URL)
	}
	return line
}

// RenderInvalidated renders the notice that the previous aggregate is stale.
func (r *SuggestionRenderer) RenderInvalidated() string {
	return fmt.Sprintf("%s %s",
		r.theme.Subtle.Render(IconRestore),
		r.theme.Subtle.Render("Suggestions invalidated"),
	)
}

// RenderFeedback renders feedback sent back for a suggestion.
func (r *SuggestionRenderer) RenderFeedback(fb entity.Feedback) string {
	style := r.theme.Subtle
	switch fb.Response {
	case entity.FeedbackAccepted:
		style = r.theme.SuccessStyle
	case entity.FeedbackNotConsidered:
		style = r.theme.WarningStyle
	}
	return fmt.Sprintf("%s %s %s %s",
		style.Render(IconArrow),
		r.theme.Normal.Render("Feedback"),
		style.Render(string(fb.Response)),
		r.theme.Subtle.Render(fmt.Sprintf("%s from %s", fb.Suggestion.Action, fb.Suggestion.ProviderID)),
	)
}

// RenderStep renders one scenario step header.
func (r *SuggestionRenderer) RenderStep(n int, description string) string {
	return fmt.Sprintf("%s %s",
		r.theme.Subtitle.Render(fmt.Sprintf("[%d]", n)),
		r.theme.Normal.Render(description),
	)
}

// RenderError renders an error message.
func (r *SuggestionRenderer) RenderError(err error) string {
	return fmt.Sprintf("%s %s", r.theme.ErrorStyle.Render(IconX), r.theme.ErrorStyle.Render(err.Error()))
}
