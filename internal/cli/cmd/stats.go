package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/tabsuggest/internal/cli/styles"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show how often suggestions were accepted",
	Long: `Summarize accepted suggestions per action and source. AVG EDITS is the
mean number of tabs the user added to or removed from a suggestion before
accepting it.`,
	Args: cobra.NoArgs,
	RunE: runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	renderer := styles.NewStatsRenderer(app.Theme)
	summary, err := app.RecordFeedback.Summary(app.Ctx())
	if err != nil {
		fmt.Println(renderer.RenderError(err))
		return err
	}
	fmt.Println(renderer.RenderSummary(summary))
	return nil
}
