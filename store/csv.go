// store/csv.go
package store

import (
	"encoding/csv"
	"io"
	"strconv"
)

var csvHeader = []string{
	"trade_id", "timestamp", "symbol", "side", "exchange",
	"entry_price", "quantity", "pnl", "fees", "net_pnl", "status", "mode",
}

// ExportCSV writes every stored trade to w as CSV, oldest first. Absent
// optional fields become empty cells.
func (s *Store) ExportCSV(w io.Writer) error {
	rows, err := s.db.Query(`
		SELECT ` + tradeColumns + `
		FROM trades
		ORDER BY timestamp ASC`)
	if err != nil {
		return err
	}
	defer rows.Close()

	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}

	for rows.Next() {
		rec, err := scanTrade(rows)
		if err != nil {
			return err
		}
		if err := cw.Write([]string{
			rec.TradeID,
			rec.Timestamp,
			rec.Symbol,
			strp(rec.Side),
			strp(rec.Exchange),
			fp(rec.EntryPrice),
			fp(rec.Quantity),
			fp(rec.PnL),
			f(rec.Fees),
			fp(rec.NetPnL),
			rec.Status,
			rec.Mode,
		}); err != nil {
			return err
		}
	}
	if err := rows.Err(); err != nil {
		return err
	}

	cw.Flush()
	return cw.Error()
}

func f(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}

func fp(x *float64) string {
	if x == nil {
		return ""
	}
	return f(*x)
}

func strp(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
