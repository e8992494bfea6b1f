package store

import (
	"database/sql"
	"fmt"
	"time"
)

const tradeColumns = `trade_id, timestamp, symbol, side, exchange, entry_price, quantity, pnl, fees, net_pnl, status, mode`

// GetTrade returns a single trade by ID.
func (s *Store) GetTrade(tradeID string) (Trade, error) {
	row := s.db.QueryRow(`
		SELECT `+tradeColumns+`
		FROM trades
		WHERE trade_id = ?`, tradeID)

	rec, err := scanTrade(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return Trade{}, fmt.Errorf("trade %q not found", tradeID)
		}
		return Trade{}, err
	}
	return rec, nil
}

// ListRecent returns up to limit trades, newest first.
func (s *Store) ListRecent(limit int) ([]Trade, error) {
	rows, err := s.db.Query(`
		SELECT `+tradeColumns+`
		FROM trades
		ORDER BY timestamp DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Trade
	for rows.Next() {
		rec, err := scanTrade(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Count returns the total number of stored trades.
func (s *Store) Count() (int, error) {
	var n int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM trades`).Scan(&n)
	return n, err
}

// Summary aggregates trades whose timestamp is at or after since.
// A zero since covers the whole table.
type Summary struct {
	Trades int
	Wins   int
	Losses int
	NetPnL float64
	AvgPnL float64
}

func (s *Store) Summary(since time.Time) (Summary, error) {
	q := `
		SELECT
			COUNT(*),
			COALESCE(SUM(CASE WHEN net_pnl > 0 THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN net_pnl < 0 THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(net_pnl), 0),
			COALESCE(AVG(net_pnl), 0)
		FROM trades`

	var row *sql.Row
	if since.IsZero() {
		row = s.db.QueryRow(q)
	} else {
		// Timestamps are stored as RFC3339 text, so lexical comparison
		// matches chronological order.
		row = s.db.QueryRow(q+` WHERE timestamp >= ?`, since.UTC().Format(time.RFC3339))
	}

	var sum Summary
	err := row.Scan(&sum.Trades, &sum.Wins, &sum.Losses, &sum.NetPnL, &sum.AvgPnL)
	return sum, err
}

// Window is net P&L and trade count over one time span.
type Window struct {
	PnL    float64
	Trades int
}

// ProfitSummary buckets realized P&L the way the bot's profit tracker does.
type ProfitSummary struct {
	Today   Window
	Week    Window
	Month   Window
	AllTime Window
}

// ProfitWindows aggregates net P&L for today, the last 7 days, the last
// 30 days, and all time, relative to now.
func (s *Store) ProfitWindows(now time.Time) (ProfitSummary, error) {
	now = now.UTC()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	var ps ProfitSummary
	for _, b := range []struct {
		since time.Time
		w     *Window
	}{
		{midnight, &ps.Today},
		{now.AddDate(0, 0, -7), &ps.Week},
		{now.AddDate(0, 0, -30), &ps.Month},
		{time.Time{}, &ps.AllTime},
	} {
		sum, err := s.Summary(b.since)
		if err != nil {
			return ProfitSummary{}, err
		}
		b.w.PnL = sum.NetPnL
		b.w.Trades = sum.Trades
	}
	return ps, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTrade(sc scanner) (Trade, error) {
	var (
		rec        Trade
		side       sql.NullString
		exchange   sql.NullString
		entryPrice sql.NullFloat64
		quantity   sql.NullFloat64
		pnl        sql.NullFloat64
		netPnL     sql.NullFloat64
	)

	err := sc.Scan(
		&rec.TradeID,
		&rec.Timestamp,
		&rec.Symbol,
		&side,
		&exchange,
		&entryPrice,
		&quantity,
		&pnl,
		&rec.Fees,
		&netPnL,
		&rec.Status,
		&rec.Mode,
	)
	if err != nil {
		return Trade{}, err
	}

	if side.Valid {
		rec.Side = &side.String
	}
	if exchange.Valid {
		rec.Exchange = &exchange.String
	}
	if entryPrice.Valid {
		rec.EntryPrice = &entryPrice.Float64
	}
	if quantity.Valid {
		rec.Quantity = &quantity.Float64
	}
	if pnl.Valid {
		rec.PnL = &pnl.Float64
	}
	if netPnL.Valid {
		rec.NetPnL = &netPnL.Float64
	}
	return rec, nil
}
