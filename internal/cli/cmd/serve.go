package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/bnema/tabsuggest/internal/infrastructure/suggestserver"
	"github.com/bnema/tabsuggest/internal/logging"
)

var (
	serveAddr    string
	serveNoWatch bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the local heuristics over HTTP",
	Long: `Run a suggestion server answering POST ` + suggestserver.SuggestionsPath + ` with the
suggestions of every enabled local source. Point another instance's remote
fetcher at it to share heuristics.

Fetcher enable flags are reloaded when the config file changes.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default: server.addr from config)")
	serveCmd.Flags().BoolVar(&serveNoWatch, "no-watch", false, "do not reload the config file on change")
}

func runServe(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	log := logging.FromContext(app.Ctx())

	addr := serveAddr
	if addr == "" {
		addr = app.Config.Server.Addr
	}

	if !serveNoWatch {
		if err := app.WatchConfig(); err != nil {
			log.Warn().Err(err).Msg("config hot reload disabled")
		}
	}

	ctx, stop := signal.NotifyContext(app.Ctx(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := suggestserver.New(ctx, app.Fetchers.Local(), suggestserver.Options{
		RequestTimeout: app.Config.Suggestions.FetchTimeout,
	})
	return srv.ListenAndServe(ctx, addr)
}
