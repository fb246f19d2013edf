package config

import (
	"fmt"
	"os"
	"sort"

	"github.com/pelletier/go-toml/v2"
)

// marketFile is the on-disk shape of a market configuration file:
//
//	default = "japan"
//
//	[markets.japan]
//	ticker_suffix = ".T"
//	cash = 1000
//	utc_offset = 9
type marketFile struct {
	Default string                    `toml:"default"`
	Markets map[string]BacktestConfig `toml:"markets"`
}

// LoadFile merges market configurations from a TOML file into the
// manager. Entries add new markets or replace built-ins of the same
// name; a "default" key switches the default market. A missing file is
// not an error, so callers can always point at an optional user file.
func (m *Manager) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading market file %s: %w", path, err)
	}

	var file marketFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return &ParseError{Path: path, Message: err.Error(), Err: err}
	}

	// Sorted so repeated loads register new markets in a stable order.
	names := make([]string, 0, len(file.Markets))
	for name := range file.Markets {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		cfg := file.Markets[name]
		cfg.Name = name
		if err := m.Add(cfg); err != nil {
			return fmt.Errorf("market %q in %s: %w", name, path, err)
		}
	}

	if file.Default != "" {
		if err := m.SetDefault(file.Default); err != nil {
			return fmt.Errorf("default market in %s: %w", path, err)
		}
	}
	return nil
}
