package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quintale/botlog/store"
)

var initdbCmd = &cobra.Command{
	Use:   "initdb",
	Short: "Create the trade store schema",
	Long: `Create the trades table and its indexes in the SQLite store.

The schema is idempotent; running initdb against an existing store leaves
its data untouched.

Example:
  botlog initdb --db trades.db`,
	RunE: runInitdb,
}

func init() {
	rootCmd.AddCommand(initdbCmd)
}

func runInitdb(cmd *cobra.Command, args []string) error {
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("init store: %w", err)
	}
	defer st.Close()

	fmt.Printf("Initialized trade store: %s\n", dbPath)
	return nil
}
