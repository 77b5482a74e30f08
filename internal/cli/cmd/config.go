package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/tabsuggest/internal/cli/styles"
	"github.com/bnema/tabsuggest/internal/infrastructure/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect configuration",
	Long:  `Show where configuration and data live, and print the config schema.`,
}

var configStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show config and database paths and the enabled fetchers",
	Args:  cobra.NoArgs,
	RunE:  runConfigStatus,
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of config.toml",
	Long: `Print the JSON schema describing config.toml, for editor completion
and validation. Durations are Go duration strings such as "90s" or "1h30m".`,
	Args: cobra.NoArgs,
	RunE: runConfigSchema,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configStatusCmd)
	configCmd.AddCommand(configSchemaCmd)
}

func runConfigStatus(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	renderer := styles.NewConfigRenderer(app.Theme)
	fmt.Print(renderer.RenderPaths(app.ConfigManager.GetConfigFile(), app.DatabasePath()))
	fmt.Print(renderer.RenderFetchers(app.Config))
	return nil
}

func runConfigSchema(cmd *cobra.Command, _ []string) error {
	data, err := json.MarshalIndent(config.JSONSchema(), "", "  ")
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}
