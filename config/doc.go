// Package config manages backtest market configurations.
//
// A Manager carries the built-in market configs (brazil, australia,
// america, crypto) and any markets added or overridden from a TOML
// file. The default market is selected by the TRADECORE_BACKTEST_CONFIG
// environment variable, falling back to "america".
//
// A Watcher can observe the market file for live reloads:
//
//	mgr := config.NewManager()
//	if err := mgr.LoadFile("markets.toml"); err != nil { ... }
//	w, err := config.NewWatcher("markets.toml", func() {
//		_ = mgr.LoadFile("markets.toml")
//	})
package config
