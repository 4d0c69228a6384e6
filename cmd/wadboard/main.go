// Command wadboard serves the home-lab status dashboard.
//
// Usage:
//
//	wadboard serve -c config.yaml
//	wadboard version
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// set at build time via -ldflags "-X main.version=..."
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "wadboard",
	Short: "Self-hosted status dashboard with health checks and wake-on-LAN tasks",
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "wadboard %s\n  commit: %s\n  built:  %s\n", version, commit, date)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(serveCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
