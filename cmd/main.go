package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// rootOptions holds the persistent flags shared by every subcommand.
type rootOptions struct {
	configPath string
	dbPath     string
	logLevel   string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "smartfurnace",
		Short: "Kiln firing schedule engine",
		Long: `Smart Furnace stores kiln firing schedules and follows the active
firing cycle, reporting the target temperature at any moment.

Examples:
  # Run the HTTP API and background tracker
  smartfurnace serve

  # Import a schedule and start a firing
  smartfurnace schedules import bisque.yml
  smartfurnace start-cycle --schedule bisque

  # What should the kiln be at right now?
  smartfurnace current-temp --schedule bisque
`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "Path to config file (default configs/config.yml)")
	flags.StringVar(&opts.dbPath, "db", "", "SQLite database path (overrides db.path)")
	flags.StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(
		newServeCmd(opts),
		newStartCycleCmd(opts),
		newCurrentTempCmd(opts),
		newSchedulesCmd(opts),
		newCommandsCmd(opts),
	)
	return rootCmd
}

// @title        Smart Furnace API
// @version      1.0
// @description  Firing schedule storage, cycle tracking and target temperature evaluation.
// @BasePath     /
func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
