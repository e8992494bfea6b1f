package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/quintale/botlog/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show realized P&L by time window",
	Long: `Summarize the trade store: net P&L and trade counts for today, the
last 7 days, the last 30 days, and all time.

Example:
  botlog stats --db trades.db`,
	RunE: runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	ps, err := st.ProfitWindows(time.Now())
	if err != nil {
		return fmt.Errorf("query profit windows: %w", err)
	}

	sum, err := st.Summary(time.Time{})
	if err != nil {
		return fmt.Errorf("query summary: %w", err)
	}

	fmt.Printf("Today:    %+10.2f  (%d trades)\n", ps.Today.PnL, ps.Today.Trades)
	fmt.Printf("7 days:   %+10.2f  (%d trades)\n", ps.Week.PnL, ps.Week.Trades)
	fmt.Printf("30 days:  %+10.2f  (%d trades)\n", ps.Month.PnL, ps.Month.Trades)
	fmt.Printf("All time: %+10.2f  (%d trades, %d wins / %d losses)\n",
		ps.AllTime.PnL, ps.AllTime.Trades, sum.Wins, sum.Losses)
	return nil
}
