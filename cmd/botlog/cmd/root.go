package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "botlog",
	Short: "Utilities for the trading bot's activity log and trade store",
	Long: `Botlog works with the trading bot's append-only JSON activity log
and its SQLite trade store.

It provides tools for:
  - Importing completed trades from the log into the store (idempotent)
  - Initializing the store schema
  - Summarizing realized P&L by time window
  - Exporting the trades table as CSV`,
}

var (
	dbPath string
	debug  bool
)

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "trades.db", "path to the SQLite trade store")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
}
