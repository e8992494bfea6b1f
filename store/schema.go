// store/schema.go
package store

const Schema = `
CREATE TABLE IF NOT EXISTS trades (
	trade_id TEXT PRIMARY KEY,
	timestamp TEXT,
	symbol TEXT NOT NULL DEFAULT 'BTCUSDT',
	side TEXT,
	exchange TEXT,
	entry_price REAL,
	quantity REAL,
	pnl REAL,
	fees REAL NOT NULL DEFAULT 0,
	net_pnl REAL,
	status TEXT NOT NULL DEFAULT 'CLOSED',
	mode TEXT NOT NULL DEFAULT 'PAPER'
);

CREATE INDEX IF NOT EXISTS idx_trades_timestamp ON trades(timestamp);
CREATE INDEX IF NOT EXISTS idx_trades_mode ON trades(mode);
`
