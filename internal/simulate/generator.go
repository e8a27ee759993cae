package simulate

import (
	"math/rand"
	"sort"
	"time"

	"github.com/diaglab/insumo/internal/ledger"
)

// maxQuantity is the largest per-event consumption the facility logs.
const maxQuantity = 100

// Generate produces Days * len(Items) consumption records drawn from
// the config's catalog: random item, quantity in [1, maxQuantity],
// consumption date within the simulated window, expiry between
// ShelfLife.MinDays and MaxDays after consumption.
//
// The result is sorted chronologically by consumption date (stable, so
// same-day events keep generation order) — the queue is fed in
// chronological order downstream. A non-zero Seed makes the output
// fully reproducible.
func Generate(cfg Config) ([]ledger.Record, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	start := cfg.start()
	spread := cfg.ShelfLife.MaxDays - cfg.ShelfLife.MinDays + 1

	n := cfg.Days * len(cfg.Items)
	records := make([]ledger.Record, 0, n)
	for i := 0; i < n; i++ {
		consumed := start.AddDate(0, 0, rng.Intn(cfg.Days))
		shelf := cfg.ShelfLife.MinDays + rng.Intn(spread)

		records = append(records, ledger.Record{
			Item:       cfg.Items[rng.Intn(len(cfg.Items))],
			Quantity:   1 + rng.Intn(maxQuantity),
			ConsumedOn: consumed,
			ExpiresOn:  consumed.AddDate(0, 0, shelf),
		})
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].ConsumedOn.Before(records[j].ConsumedOn)
	})

	return records, nil
}
