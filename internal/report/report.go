// Package report builds the two consumption reports the facility runs:
// ranking by consumed quantity (ABC-style impact reporting) and ranking
// by expiration date (first-expire-first-out prioritization). Rendering
// is deterministic so report output can be golden-tested.
package report

import (
	"io"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/diaglab/insumo/internal/ledger"
)

// printer formats report lines with locale-aware numbers.
var printer = message.NewPrinter(language.English)

// TopConsumed returns the n highest-quantity records, highest first.
// n <= 0 or n beyond the input length means "all records".
func TopConsumed(records []ledger.Record, n int) ([]ledger.Record, error) {
	sorted, err := ledger.MergeSort(records, ledger.KeyQuantity)
	if err != nil {
		return nil, err
	}

	// The sort is ascending; the report reads it in descending order.
	desc := make([]ledger.Record, len(sorted))
	for i, r := range sorted {
		desc[len(sorted)-1-i] = r
	}

	return clip(desc, n), nil
}

// ExpiryOutlook returns the n earliest-expiring records, soonest first.
// n <= 0 or n beyond the input length means "all records".
func ExpiryOutlook(records []ledger.Record, n int) ([]ledger.Record, error) {
	sorted, err := ledger.QuickSort(records, ledger.KeyExpiresOn)
	if err != nil {
		return nil, err
	}
	return clip(sorted, n), nil
}

// clip bounds records to its first n elements.
func clip(records []ledger.Record, n int) []ledger.Record {
	if n <= 0 || n > len(records) {
		return records
	}
	return records[:n]
}

// RenderTopConsumed writes the quantity ranking as text, one line per
// record in the order given (callers pass TopConsumed output).
func RenderTopConsumed(w io.Writer, records []ledger.Record) error {
	if _, err := printer.Fprintf(w, "Top consumed items:\n"); err != nil {
		return err
	}
	for i, r := range records {
		if _, err := printer.Fprintf(w, "  %d. %s: %d units\n", i+1, r.Item, r.Quantity); err != nil {
			return err
		}
	}
	return nil
}

// RenderExpiryOutlook writes the expiry ranking as text, one line per
// record in the order given (callers pass ExpiryOutlook output).
func RenderExpiryOutlook(w io.Writer, records []ledger.Record) error {
	if _, err := printer.Fprintf(w, "Earliest expiring items:\n"); err != nil {
		return err
	}
	for i, r := range records {
		if _, err := printer.Fprintf(w, "  %d. %s: expires %s\n", i+1, r.Item, r.ExpiresOn.Format("2006-01-02")); err != nil {
			return err
		}
	}
	return nil
}
