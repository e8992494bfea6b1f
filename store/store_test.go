package store

import (
	"database/sql"
	"path/filepath"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "trades.db")

	s, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	return s, path
}

func ptr[T any](v T) *T { return &v }

func sampleTrade(id string) Trade {
	return Trade{
		TradeID:    id,
		Timestamp:  "2026-08-27T10:00:00Z",
		Symbol:     "ETHUSDT",
		Side:       ptr("BUY"),
		Exchange:   ptr("Binance"),
		EntryPrice: ptr(100.0),
		Quantity:   ptr(1.5),
		PnL:        ptr(5.0),
		Fees:       0.25,
		NetPnL:     ptr(4.75),
		Status:     "CLOSED",
		Mode:       "PAPER",
	}
}

func TestOpenCreatesSchema(t *testing.T) {
	t.Parallel()

	s, path := newTestStore(t)
	assert.NoError(t, s.Close())

	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	var name string
	err = db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name='trades'`).Scan(&name)
	assert.NoError(t, err)
	assert.Equal(t, "trades", name)
}

func TestOpenIsIdempotent(t *testing.T) {
	t.Parallel()

	s, path := newTestStore(t)

	added, err := s.InsertTrade(sampleTrade("T1"))
	require.NoError(t, err)
	require.True(t, added)
	require.NoError(t, s.Close())

	// Reopening an initialized store must not disturb existing rows.
	s2, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s2.Close() })

	n, err := s2.Count()
	assert.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestInsertTradeRoundTrip(t *testing.T) {
	t.Parallel()

	s, _ := newTestStore(t)

	rec := sampleTrade("T1")
	added, err := s.InsertTrade(rec)
	require.NoError(t, err)
	assert.True(t, added)

	got, err := s.GetTrade("T1")
	require.NoError(t, err)
	assert.Equal(t, rec, got)
}

func TestInsertTradeFirstWriteWins(t *testing.T) {
	t.Parallel()

	s, _ := newTestStore(t)

	first := sampleTrade("T1")
	added, err := s.InsertTrade(first)
	require.NoError(t, err)
	require.True(t, added)

	second := sampleTrade("T1")
	second.Symbol = "SOLUSDT"
	second.PnL = ptr(-99.0)

	added, err = s.InsertTrade(second)
	require.NoError(t, err)
	assert.False(t, added)

	got, err := s.GetTrade("T1")
	require.NoError(t, err)
	assert.Equal(t, first, got, "existing row must never be overwritten")
}

func TestInsertTradeNullableFields(t *testing.T) {
	t.Parallel()

	s, _ := newTestStore(t)

	rec := Trade{
		TradeID:   "T2",
		Timestamp: "2026-08-27T11:00:00Z",
		Symbol:    "BTCUSDT",
		Fees:      0,
		Status:    "CLOSED",
		Mode:      "PAPER",
	}
	added, err := s.InsertTrade(rec)
	require.NoError(t, err)
	assert.True(t, added)

	got, err := s.GetTrade("T2")
	require.NoError(t, err)
	assert.Nil(t, got.Side)
	assert.Nil(t, got.Exchange)
	assert.Nil(t, got.EntryPrice)
	assert.Nil(t, got.Quantity)
	assert.Nil(t, got.PnL)
	assert.Nil(t, got.NetPnL)
}

func TestGetTradeNotFound(t *testing.T) {
	t.Parallel()

	s, _ := newTestStore(t)

	_, err := s.GetTrade("missing")
	assert.ErrorContains(t, err, `trade "missing" not found`)
}

func TestTxCommit(t *testing.T) {
	t.Parallel()

	s, _ := newTestStore(t)

	tx, err := s.Begin()
	require.NoError(t, err)

	added, err := tx.InsertTrade(sampleTrade("T1"))
	require.NoError(t, err)
	assert.True(t, added)

	added, err = tx.InsertTrade(sampleTrade("T1"))
	require.NoError(t, err)
	assert.False(t, added, "duplicate inside one transaction is a no-op")

	require.NoError(t, tx.Commit())
	assert.NoError(t, tx.Rollback(), "rollback after commit is a no-op")

	n, err := s.Count()
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestTxRollbackDiscards(t *testing.T) {
	t.Parallel()

	s, _ := newTestStore(t)

	tx, err := s.Begin()
	require.NoError(t, err)

	added, err := tx.InsertTrade(sampleTrade("T1"))
	require.NoError(t, err)
	require.True(t, added)
	require.NoError(t, tx.Rollback())

	n, err := s.Count()
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}
