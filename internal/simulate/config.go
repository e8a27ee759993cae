// Package simulate generates sample consumption data for a diagnostics
// facility. It sits outside the core: it is one possible driver-side
// source of records, reproducing the facility's consumption profile
// with a seeded random generator so runs are repeatable.
package simulate

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// dateLayout is the calendar-date format used in config files.
const dateLayout = "2006-01-02"

// Config describes a simulation: which items exist, how many days of
// consumption to generate, and how randomness is seeded.
type Config struct {
	// Name identifies this simulation profile.
	Name string `yaml:"name"`

	// Days is the number of consecutive days to simulate.
	Days int `yaml:"days"`

	// Seed seeds the random generator. Zero means derive a seed from
	// the current time (non-repeatable runs).
	Seed int64 `yaml:"seed,omitempty"`

	// StartDate is the first consumption date, formatted YYYY-MM-DD.
	StartDate string `yaml:"start_date"`

	// Items is the catalog of item names consumption is drawn from.
	Items []string `yaml:"items"`

	// ShelfLife bounds how long after consumption an item expires.
	ShelfLife ShelfLife `yaml:"shelf_life"`
}

// ShelfLife bounds the generated expiry offset, in days after the
// consumption date.
type ShelfLife struct {
	MinDays int `yaml:"min_days"`
	MaxDays int `yaml:"max_days"`
}

// DefaultConfig returns the built-in simulation profile: the standard
// diagnostics catalog over ten days.
func DefaultConfig() Config {
	return Config{
		Name:      "baseline",
		Days:      10,
		StartDate: "2025-08-20",
		Items: []string{
			"Seringa 5ml",
			"Agulha Descartável",
			"Luva de Procedimento (Par)",
			"Reagente A",
			"Reagente B",
			"Tubo de Coleta (EDTA)",
			"Gaze Estéril",
		},
		ShelfLife: ShelfLife{MinDays: 30, MaxDays: 365},
	}
}

// LoadConfig reads and parses a simulation config YAML file.
// Returns an error if the file doesn't exist, is malformed, contains
// unknown fields (typos), or fails validation.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	// Strict field validation catches typos like "item:" vs "items:".
	var cfg Config
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// validate checks that required fields are present and consistent.
func (c Config) validate() error {
	if c.Name == "" {
		return fmt.Errorf("name is required")
	}

	if c.Days <= 0 {
		return fmt.Errorf("days must be positive, got %d", c.Days)
	}

	if len(c.Items) == 0 {
		return fmt.Errorf("items list is required and must be non-empty")
	}
	for i, item := range c.Items {
		if item == "" {
			return fmt.Errorf("items[%d]: item name must be non-empty", i)
		}
	}

	if _, err := time.Parse(dateLayout, c.StartDate); err != nil {
		return fmt.Errorf("start_date must be formatted %s: %w", dateLayout, err)
	}

	if c.ShelfLife.MinDays <= 0 {
		return fmt.Errorf("shelf_life.min_days must be positive, got %d", c.ShelfLife.MinDays)
	}
	if c.ShelfLife.MaxDays < c.ShelfLife.MinDays {
		return fmt.Errorf("shelf_life.max_days (%d) must be >= min_days (%d)",
			c.ShelfLife.MaxDays, c.ShelfLife.MinDays)
	}

	return nil
}

// start returns the parsed start date. Callers run validate first.
func (c Config) start() time.Time {
	t, _ := time.Parse(dateLayout, c.StartDate)
	return t
}
