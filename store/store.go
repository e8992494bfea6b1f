package store

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3"
)

// Trade is one persisted trade row. Pointer fields are columns the bot may
// omit; they round-trip as SQL NULL.
type Trade struct {
	TradeID    string
	Timestamp  string
	Symbol     string
	Side       *string
	Exchange   *string
	EntryPrice *float64
	Quantity   *float64
	PnL        *float64
	Fees       float64
	NetPnL     *float64
	Status     string
	Mode       string
}

type Store struct {
	db *sql.DB
}

// Open opens (or creates) the SQLite store at path and applies the schema.
// The schema is idempotent, so opening an already-initialized store is safe.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(Schema); err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

type execer interface {
	Exec(query string, args ...any) (sql.Result, error)
}

func insertTrade(e execer, t Trade) (bool, error) {
	res, err := e.Exec(`
		INSERT OR IGNORE INTO trades
		(trade_id, timestamp, symbol, side, exchange, entry_price, quantity, pnl, fees, net_pnl, status, mode)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.TradeID, t.Timestamp, t.Symbol, t.Side, t.Exchange,
		t.EntryPrice, t.Quantity, t.PnL, t.Fees, t.NetPnL, t.Status, t.Mode,
	)
	if err != nil {
		return false, err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// InsertTrade writes a trade keyed by trade_id. An existing row with the
// same key is left untouched (first write wins). Reports whether a row was
// actually added.
func (s *Store) InsertTrade(t Trade) (bool, error) {
	return insertTrade(s.db, t)
}

// Tx batches trade inserts into a single SQLite transaction so a whole
// import pass commits (or rolls back) as one unit.
type Tx struct {
	tx *sql.Tx
}

func (s *Store) Begin() (*Tx, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return nil, err
	}
	return &Tx{tx: tx}, nil
}

func (tx *Tx) InsertTrade(t Trade) (bool, error) {
	return insertTrade(tx.tx, t)
}

func (tx *Tx) Commit() error {
	return tx.tx.Commit()
}

// Rollback is a no-op after Commit, so it is safe to defer.
func (tx *Tx) Rollback() error {
	err := tx.tx.Rollback()
	if err == sql.ErrTxDone {
		return nil
	}
	return err
}

func (s *Store) Close() error {
	return s.db.Close()
}
