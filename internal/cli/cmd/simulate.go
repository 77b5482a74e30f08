package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/bnema/tabsuggest/internal/cli"
	"github.com/bnema/tabsuggest/internal/cli/styles"
	"github.com/bnema/tabsuggest/internal/infrastructure/suggestion"
)

var (
	simulatePersist   bool
	simulateRemote    bool
	simulateNoShuffle bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate <scenario.yaml>",
	Short: "Replay a scripted tab session through the suggestion engine",
	Long: `Replay a YAML scenario of tab events and user feedback against an
in-memory tab model, printing every published suggestion and invalidation.

Backoff state lives in memory unless --persist is given.

Example scenario:
  name: duplicates
  fetchers:
    same_site: false
  steps:
    - open: {id: 1, url: "https://go.dev"}
    - open: {id: 2, url: "https://go.dev/"}
    - open: {id: 3, url: "https://www.go.dev"}
    - open: {id: 4, url: "https://go.dev/#top"}
    - feedback: {index: 0, response: accepted}`,
	Args: cobra.ExactArgs(1),
	RunE: runSimulate,
}

func init() {
	rootCmd.AddCommand(simulateCmd)
	simulateCmd.Flags().BoolVar(&simulatePersist, "persist", false, "read and write the persisted backoff state and feedback")
	simulateCmd.Flags().BoolVar(&simulateRemote, "remote", false, "include the remote fetcher")
	simulateCmd.Flags().BoolVar(&simulateNoShuffle, "no-shuffle", false, "publish suggestions in fetcher order")
}

func runSimulate(_ *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	sc, err := cli.LoadScenario(args[0])
	if err != nil {
		return err
	}
	for id, enabled := range sc.Fetchers {
		if err := app.Fetchers.SetEnabled(id, enabled); err != nil {
			return fmt.Errorf("scenario fetchers: %w", err)
		}
	}

	backoff, record := app.Backoff, app.RecordFeedback
	if !simulatePersist {
		backoff, record = app.EphemeralUseCases()
	}
	opts := suggestion.Options{FetchTimeout: app.Config.Suggestions.FetchTimeout}
	if simulateNoShuffle {
		opts.Shuffle = func(int, func(i, j int)) {}
	}

	renderer := styles.NewSuggestionRenderer(app.Theme)
	sim := cli.NewSimulator(app.Fetchers.Registry(app.Ctx(), simulateRemote), backoff, record, opts, func(ev cli.SimulationEvent) {
		fmt.Println(renderSimulationEvent(renderer, ev))
	})

	ctx, stop := signal.NotifyContext(app.Ctx(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := sim.Run(ctx, sc); err != nil {
		if ctx.Err() != nil {
			return nil
		}
		fmt.Println(renderer.RenderError(err))
		return err
	}
	return nil
}

func renderSimulationEvent(r *styles.SuggestionRenderer, ev cli.SimulationEvent) string {
	switch ev.Kind {
	case cli.EventStep:
		return "\n" + r.RenderStep(ev.Step, ev.Description)
	case cli.EventPublished:
		return r.RenderPublished(ev.Suggestions)
	case cli.EventInvalidated:
		return r.RenderInvalidated()
	case cli.EventFeedback:
		return r.RenderFeedback(ev.Feedback)
	default:
		return r.RenderError(fmt.Errorf("step %d: %s", ev.Step, ev.Description))
	}
}
