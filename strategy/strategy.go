// Package strategy defines the contracts trading strategies implement
// and helpers for patching their parameters from override strings.
package strategy

import (
	"context"

	"github.com/connorslab/tradecore/marketdata"
)

// Config is the base configuration shared by trading strategies.
type Config struct {
	// Name identifies the strategy, e.g. "RSI2".
	Name string `json:"name"`

	// Parameters holds the strategy's tunable values.
	Parameters map[string]any `json:"parameters"`

	// RiskManagement holds optional risk limits (max position size,
	// stop distances) interpreted by the execution layer.
	RiskManagement map[string]any `json:"risk_management,omitempty"`
}

// Strategy is the interface trading strategies implement. Init is
// called once with the first snapshot before stepping begins; Next is
// called once per bar.
type Strategy interface {
	Init(snapshot marketdata.Snapshot) error
	Next(ctx context.Context, snapshot marketdata.Snapshot) error
}
