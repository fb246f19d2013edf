package config

import (
	"fmt"
	"os"
	"sync"
)

// EnvDefaultMarket names the environment variable that selects the
// default market configuration.
const EnvDefaultMarket = "TRADECORE_BACKTEST_CONFIG"

// BacktestConfig describes backtesting in a specific market.
type BacktestConfig struct {
	// Name identifies the market, e.g. "america".
	Name string `toml:"name" json:"name"`

	// TickerSuffix is appended to symbols for this market's data
	// provider, e.g. ".SA" for B3 listings.
	TickerSuffix string `toml:"ticker_suffix" json:"ticker_suffix"`

	// Cash is the starting capital for a backtest run.
	Cash float64 `toml:"cash" json:"cash"`

	// UTCOffset is the market's standard-time offset from UTC in
	// hours.
	UTCOffset int `toml:"utc_offset" json:"utc_offset"`
}

// Manager holds the available market configurations.
//
// The built-in markets are registered at construction; LoadFile can
// add to or override them from a TOML file. Reads and writes are safe
// for concurrent use.
type Manager struct {
	mu          sync.RWMutex
	configs     map[string]BacktestConfig
	order       []string
	defaultName string
}

// NewManager returns a Manager populated with the built-in market
// configurations. The default market comes from the
// TRADECORE_BACKTEST_CONFIG environment variable, or "america" when
// unset.
func NewManager() *Manager {
	m := &Manager{
		configs:     make(map[string]BacktestConfig),
		defaultName: "america",
	}
	if name := os.Getenv(EnvDefaultMarket); name != "" {
		m.defaultName = name
	}

	// Offsets are standard time; DST is the caller's concern.
	builtins := []BacktestConfig{
		{Name: "brazil", TickerSuffix: ".SA", Cash: 1_000, UTCOffset: -3},
		{Name: "australia", TickerSuffix: ".AX", Cash: 1_000, UTCOffset: 10},
		{Name: "america", TickerSuffix: "", Cash: 1_000, UTCOffset: -5},
		{Name: "crypto", TickerSuffix: "", Cash: 10_000, UTCOffset: 0},
	}
	for _, cfg := range builtins {
		m.set(cfg)
	}
	return m
}

// Market returns the configuration registered under name.
func (m *Manager) Market(name string) (BacktestConfig, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	cfg, ok := m.configs[name]
	if !ok {
		return BacktestConfig{}, &UnknownMarketError{
			Name:      name,
			Available: append([]string(nil), m.order...),
		}
	}
	return cfg, nil
}

// Default returns the configuration for the default market.
func (m *Manager) Default() (BacktestConfig, error) {
	m.mu.RLock()
	name := m.defaultName
	m.mu.RUnlock()
	return m.Market(name)
}

// DefaultName returns the name of the default market.
func (m *Manager) DefaultName() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.defaultName
}

// SetDefault changes the default market. The name must be registered.
func (m *Manager) SetDefault(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.configs[name]; !ok {
		return &UnknownMarketError{
			Name:      name,
			Available: append([]string(nil), m.order...),
		}
	}
	m.defaultName = name
	return nil
}

// List returns the registered market names in registration order.
func (m *Manager) List() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]string(nil), m.order...)
}

// Add registers or replaces a market configuration.
func (m *Manager) Add(cfg BacktestConfig) error {
	if cfg.Name == "" {
		return fmt.Errorf("market configuration has no name")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.set(cfg)
	return nil
}

// set stores cfg, appending to the order index for new names. Callers
// hold m.mu.
func (m *Manager) set(cfg BacktestConfig) {
	if _, exists := m.configs[cfg.Name]; !exists {
		m.order = append(m.order, cfg.Name)
	}
	m.configs[cfg.Name] = cfg
}
