package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quintale/botlog/config"
	"github.com/quintale/botlog/importer"
	"github.com/quintale/botlog/internal/logging"
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import completed trades from the activity log into the store",
	Long: `Read the bot's newline-delimited JSON activity log and copy every
completed-trade event (type TRADE or TRADE_EXECUTED) into the trades table.

The import is idempotent: trades already in the store are skipped, so
re-running over the same log adds nothing. Malformed lines and non-trade
entries are ignored.

Example:
  botlog import --log trading_bot.log --db trades.db`,
	RunE: runImport,
}

var (
	importLogPath    string
	importConfigPath string
)

func init() {
	rootCmd.AddCommand(importCmd)

	importCmd.Flags().StringVar(&importLogPath, "log", "trading_bot.log", "path to the bot's activity log")
	importCmd.Flags().StringVarP(&importConfigPath, "config", "f", "", "path to config file (overrides --log and --db)")
}

func runImport(cmd *cobra.Command, args []string) error {
	log := logging.New(debug)
	defer log.Sync()

	logPath, db := importLogPath, dbPath
	if importConfigPath != "" {
		cfg, err := config.LoadFromFile(importConfigPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		logPath, db = cfg.Importer.LogFile, cfg.Store.DBPath
	}

	imp := &importer.Importer{
		LogPath: logPath,
		DBPath:  db,
		Log:     log,
	}

	n, err := imp.Run()
	if err != nil {
		return err
	}

	fmt.Printf("Imported %d trades\n", n)
	return nil
}
