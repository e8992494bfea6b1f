package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/quintale/botlog/store"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the trades table as CSV",
	Long: `Dump every stored trade as CSV, oldest first. Writes to stdout
unless --out is given.

Example:
  botlog export --db trades.db --out trades.csv`,
	RunE: runExport,
}

var exportOut string

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output file (default stdout)")
}

func runExport(cmd *cobra.Command, args []string) error {
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	if exportOut == "" {
		if err := st.ExportCSV(os.Stdout); err != nil {
			return fmt.Errorf("export: %w", err)
		}
		return nil
	}

	f, err := os.Create(exportOut)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}

	if err := st.ExportCSV(f); err != nil {
		f.Close()
		return fmt.Errorf("export: %w", err)
	}
	// A failed close can mean unflushed rows, so it is an export failure.
	if err := f.Close(); err != nil {
		return fmt.Errorf("close output: %w", err)
	}

	fmt.Printf("Exported trades to %s\n", exportOut)
	return nil
}
