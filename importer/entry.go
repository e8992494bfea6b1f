package importer

import (
	"github.com/quintale/botlog/pkg/id"
	"github.com/quintale/botlog/store"
)

// Log entry types that mark a completed trade. Everything else in the
// activity log (pings, signals, errors) is ignored.
const (
	TypeTrade         = "TRADE"
	TypeTradeExecuted = "TRADE_EXECUTED"
)

// Defaults substituted for fields the bot omits.
const (
	DefaultSymbol = "BTCUSDT"
	DefaultStatus = "CLOSED"
	DefaultMode   = "PAPER"
)

// Entry is one decoded line of the bot's activity log.
type Entry struct {
	Type      string    `json:"type"`
	Timestamp string    `json:"timestamp"`
	Data      TradeData `json:"data"`
}

// TradeData carries the trade attributes nested under "data". Pointer
// fields distinguish absent from zero; they stay NULL in the store.
type TradeData struct {
	TradeID    string   `json:"trade_id"`
	Symbol     string   `json:"symbol"`
	Side       *string  `json:"side"`
	Exchange   *string  `json:"exchange"`
	EntryPrice *float64 `json:"entry_price"`
	Quantity   *float64 `json:"quantity"`
	PnL        *float64 `json:"pnl"`
	Fees       *float64 `json:"fees"`
	NetPnL     *float64 `json:"net_pnl"`
	Status     string   `json:"status"`
	Mode       string   `json:"mode"`
}

// IsTrade reports whether the entry is one of the recognized
// trade-completion types.
func (e Entry) IsTrade() bool {
	return e.Type == TypeTrade || e.Type == TypeTradeExecuted
}

// Trade maps the entry onto a store row, resolving every default in one
// place. A record without a trade_id gets a synthetic IMPORT_<ulid> ID;
// a per-run counter would collide across repeated runs.
func (e Entry) Trade() store.Trade {
	t := store.Trade{
		TradeID:    e.Data.TradeID,
		Timestamp:  e.Timestamp,
		Symbol:     e.Data.Symbol,
		Side:       e.Data.Side,
		Exchange:   e.Data.Exchange,
		EntryPrice: e.Data.EntryPrice,
		Quantity:   e.Data.Quantity,
		PnL:        e.Data.PnL,
		NetPnL:     e.Data.NetPnL,
		Status:     e.Data.Status,
		Mode:       e.Data.Mode,
	}

	if t.TradeID == "" {
		t.TradeID = id.Import()
	}
	if t.Symbol == "" {
		t.Symbol = DefaultSymbol
	}
	if e.Data.Fees != nil {
		t.Fees = *e.Data.Fees
	}
	if t.Status == "" {
		t.Status = DefaultStatus
	}
	if t.Mode == "" {
		t.Mode = DefaultMode
	}
	return t
}
