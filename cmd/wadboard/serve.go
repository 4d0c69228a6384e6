package main

import (
	"fmt"
	"wadboard/internal/di"
	"wadboard/internal/structures"

	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the dashboard server",
	Long: `Start the dashboard server.

Settings come from the YAML config file when it exists, then from the
WADBOARD_* environment variables, then from built-in defaults.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringP("config", "c", "config.yaml", "path to config file")
	serveCmd.Flags().Bool("debug", false, "enable debug logging to the console")
}

func runServe(cmd *cobra.Command, _ []string) error {
	configPath, _ := cmd.Flags().GetString("config")
	debug, _ := cmd.Flags().GetBool("debug")

	app, err := di.InitApp(&structures.CliFlags{ConfigPath: configPath, DebugMode: debug})
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}
	return app.Run()
}
