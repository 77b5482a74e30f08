package styles

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/bnema/tabsuggest/internal/domain/entity"
)

// StatsRenderer renders accepted-suggestion statistics.
type StatsRenderer struct {
	theme *Theme
}

// NewStatsRenderer creates a new stats renderer with the given theme.
func NewStatsRenderer(theme *Theme) *StatsRenderer {
	return &StatsRenderer{theme: theme}
}

// RenderSummary renders one table row per action and provider.
func (r *StatsRenderer) RenderSummary(rows []entity.FeedbackSummary) string {
	title := fmt.Sprintf("%s %s", r.theme.Highlight.Render(IconChart), r.theme.Title.Render("Accepted suggestions"))
	if len(rows) == 0 {
		return title + "\n\n" + r.theme.Subtle.Render("No accepted suggestions recorded yet.")
	}

	total := 0
	data := make([][]string, 0, len(rows))
	for _, row := range rows {
		total += row.Accepted
		data = append(data, []string{
			string(row.Action),
			row.ProviderID,
			strconv.Itoa(row.Accepted),
			strconv.FormatFloat(row.AverageDelta, 'f', 2, 64),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(r.theme.Border)).
		Headers("ACTION", "PROVIDER", "ACCEPTED", "AVG EDITS").
		Rows(data...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return r.theme.TableHeader
			}
			if col >= 2 {
				return r.theme.TableCell.Align(lipgloss.Right)
			}
			return r.theme.TableCell
		})

	var b strings.Builder
	b.WriteString(title)
	b.WriteString("\n\n")
	b.WriteString(t.String())
	b.WriteString("\n")
	b.WriteString(r.theme.Subtle.Render(fmt.Sprintf("%d accepted in total", total)))
	return b.String()
}

// RenderError renders an error message.
func (r *StatsRenderer) RenderError(err error) string {
	return fmt.Sprintf("%s %s", r.theme.ErrorStyle.Render(IconX), r.theme.ErrorStyle.Render(err.Error()))
}
