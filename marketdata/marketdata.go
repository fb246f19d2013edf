// Package marketdata defines broker-agnostic market data types passed
// to strategy logic for signal generation. Brokers adapt their native
// feeds into these types; strategies consume Snapshot and stay
// independent of where the data came from.
package marketdata

import (
	"time"

	"github.com/yanun0323/decimal"
)

// Bar is one OHLCV bar. Prices are decimals so broker feeds round-trip
// without float drift.
type Bar struct {
	Timestamp time.Time       `json:"timestamp"`
	Open      decimal.Decimal `json:"open"`
	High      decimal.Decimal `json:"high"`
	Low       decimal.Decimal `json:"low"`
	Close     decimal.Decimal `json:"close"`
	Volume    int64           `json:"volume"`
}

// Snapshot is the market state handed to a strategy on each step: the
// current bar plus pre-calculated indicator values keyed by name
// (e.g. "RSI_2", "SMA_200").
type Snapshot interface {
	// Bar returns the current OHLCV bar.
	Bar() Bar

	// Indicators returns all pre-calculated indicator values.
	Indicators() map[string]decimal.Decimal

	// Indicator returns the named indicator value, reporting whether
	// it is present.
	Indicator(name string) (decimal.Decimal, bool)
}

// MapSnapshot is a Snapshot backed by a plain indicator map, the
// common shape for backtests where indicators are precomputed per bar.
type MapSnapshot struct {
	Current Bar                        `json:"bar"`
	Values  map[string]decimal.Decimal `json:"indicators"`
}

// NewMapSnapshot builds a snapshot from a bar and its indicators.
func NewMapSnapshot(bar Bar, indicators map[string]decimal.Decimal) *MapSnapshot {
	return &MapSnapshot{Current: bar, Values: indicators}
}

// Bar returns the current OHLCV bar.
func (s *MapSnapshot) Bar() Bar {
	return s.Current
}

// Indicators returns the indicator map. The map is shared, not copied;
// callers must not mutate it.
func (s *MapSnapshot) Indicators() map[string]decimal.Decimal {
	return s.Values
}

// Indicator returns the named indicator value.
func (s *MapSnapshot) Indicator(name string) (decimal.Decimal, bool) {
	v, ok := s.Values[name]
	return v, ok
}

var _ Snapshot = (*MapSnapshot)(nil)
