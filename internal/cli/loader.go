package cli

import (
	"os"

	"github.com/diaglab/insumo/internal/simulate"
)

// loadSimulation resolves the simulation config: the --config flag wins,
// then the INSUMO_CONFIG environment variable, then the built-in
// baseline profile. Flag overrides for days and seed are applied last.
func loadSimulation(path string, days int, seed int64) (simulate.Config, error) {
	if path == "" {
		path = os.Getenv("INSUMO_CONFIG")
	}

	cfg := simulate.DefaultConfig()
	if path != "" {
		loaded, err := simulate.LoadConfig(path)
		if err != nil {
			return simulate.Config{}, err
		}
		cfg = loaded
	}

	if days > 0 {
		cfg.Days = days
	}
	if seed != 0 {
		cfg.Seed = seed
	}

	return cfg, nil
}
