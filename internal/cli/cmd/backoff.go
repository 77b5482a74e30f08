package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/bnema/tabsuggest/internal/cli/styles"
)

var backoffCmd = &cobra.Command{
	Use:   "backoff",
	Short: "Inspect or change the suggestion backoff",
	Long: `Suggestions the user never looks at pause the engine for a while.
Each such dismissal moves to the next, longer stage of the backoff table.`,
}

var backoffStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the persisted backoff state",
	Args:  cobra.NoArgs,
	RunE:  runBackoffStatus,
}

var backoffResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear the backoff and restart from the first stage",
	Args:  cobra.NoArgs,
	RunE:  runBackoffReset,
}

var backoffDismissCmd = &cobra.Command{
	Use:   "dismiss",
	Short: "Record an ignored suggestion, as the UI would",
	Args:  cobra.NoArgs,
	RunE:  runBackoffDismiss,
}

func init() {
	rootCmd.AddCommand(backoffCmd)
	backoffCmd.AddCommand(backoffStatusCmd)
	backoffCmd.AddCommand(backoffResetCmd)
	backoffCmd.AddCommand(backoffDismissCmd)
}

func runBackoffStatus(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	renderer := styles.NewBackoffRenderer(app.Theme)
	state, err := app.Backoff.State(app.Ctx())
	if err != nil {
		fmt.Println(renderer.RenderError(err))
		return err
	}
	fmt.Println(renderer.RenderStatus(state, app.Backoff.Table(), time.Now()))
	return nil
}

func runBackoffReset(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	renderer := styles.NewBackoffRenderer(app.Theme)
	if err := app.Backoff.Reset(app.Ctx()); err != nil {
		fmt.Println(renderer.RenderError(err))
		return err
	}
	fmt.Println(renderer.RenderReset())
	return nil
}

func runBackoffDismiss(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	renderer := styles.NewBackoffRenderer(app.Theme)
	app.Backoff.RecordDismissal(app.Ctx())
	state, err := app.Backoff.State(app.Ctx())
	if err != nil {
		fmt.Println(renderer.RenderError(err))
		return err
	}
	fmt.Println(renderer.RenderDismissed(state, time.Now()))
	return nil
}
