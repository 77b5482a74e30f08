package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/tabsuggest/internal/infrastructure/config"
)

// ConfigRenderer renders config status messages with styled output.
type ConfigRenderer struct {
	theme *Theme
}

// NewConfigRenderer creates a new config renderer with the given theme.
func NewConfigRenderer(theme *Theme) *ConfigRenderer {
	return &ConfigRenderer{theme: theme}
}

// RenderPaths renders the config file and database locations.
func (r *ConfigRenderer) RenderPaths(configFile, databaseFile string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	pathStyle := r.theme.Subtle

	return fmt.Sprintf(
		"\n  %s Config   %s\n  %s Database %s\n",
		iconStyle.Render(IconConfig),
		pathStyle.Render(configFile),
		iconStyle.Render(IconDatabase),
		pathStyle.Render(databaseFile),
	)
}

// RenderFetchers renders which suggestion sources the config enables.
func (r *ConfigRenderer) RenderFetchers(cfg *config.Config) string {
	f := cfg.Suggestions.Fetchers
	rows := []struct {
		name    string
		enabled bool
		detail  string
	}{
		{"duplicates", f.Duplicates.Enabled, ""},
		{"same_site", f.SameSite.Enabled, fmt.Sprintf("min_tabs=%d", f.SameSite.MinTabs)},
		{"stale", f.Stale.Enabled, fmt.Sprintf("max_age=%s min_tabs=%d", HumanDuration(f.Stale.MaxAge), f.Stale.MinTabs)},
		{"remote", f.Remote.Enabled, f.Remote.Endpoint},
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("\n  %s\n", r.theme.Title.Render("Fetchers")))
	for _, row := range rows {
		mark := r.theme.Subtle.Render(IconX)
		name := r.theme.Subtle.Render(row.name)
		if row.enabled {
			mark = r.theme.SuccessStyle.Render(IconCheck)
			name = r.theme.Normal.Render(row.name)
		}
		sb.WriteString(fmt.Sprintf("    %s %-12s %s\n", mark, name, r.theme.Subtle.Render(row.detail)))
	}
	if cfg.Suggestions.FetchTimeout > 0 {
		sb.WriteString(fmt.Sprintf("\n  %s fetch timeout %s\n",
			r.theme.Subtle.Render(IconClock),
			r.theme.Normal.Render(HumanDuration(cfg.Suggestions.FetchTimeout)),
		))
	}
	return sb.String()
}

// RenderError renders an error message.
func (r *ConfigRenderer) RenderError(err error) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Error)
	return fmt.Sprintf("\n  %s %s\n", iconStyle.Render(IconX), r.theme.ErrorStyle.Render(err.Error()))
}
