package ledger

import "time"

// Record is a single consumption event: one item consumed on one date.
//
// Records are value objects. No component in this package mutates a
// Record after construction; containers and algorithms only read fields
// or relocate whole values. There is no total order on Records —
// ordering and equality are defined only through the Key a given
// operation uses.
//
// ExpiresOn is expected to be on or after ConsumedOn for the record to
// be meaningful. The package does not enforce this; it is a caller
// responsibility.
type Record struct {
	// Item is the item name, non-empty, the key for item-centric
	// queries. Matching is exact and case-sensitive.
	Item string `json:"item"`

	// Quantity is the number of units consumed, non-negative.
	Quantity int `json:"quantity"`

	// ConsumedOn is the calendar date of consumption.
	ConsumedOn time.Time `json:"consumed_on"`

	// ExpiresOn is the date after which the item is unusable.
	ExpiresOn time.Time `json:"expires_on"`
}

// Key selects the Record field a sort operation orders by.
//
// Modeling the key as an enumeration (rather than a field-name string)
// moves most invalid-key mistakes to compile time; the remaining case —
// an out-of-range Key value — surfaces as a *KeyError.
type Key int

const (
	// KeyItem orders by item name (lexicographic, byte-wise).
	KeyItem Key = iota + 1
	// KeyQuantity orders by units consumed.
	KeyQuantity
	// KeyExpiresOn orders by expiration date.
	KeyExpiresOn
)

// String returns the field name the key selects.
func (k Key) String() string {
	switch k {
	case KeyItem:
		return "item"
	case KeyQuantity:
		return "quantity"
	case KeyExpiresOn:
		return "expires_on"
	default:
		return "invalid"
	}
}

// valid reports whether k is one of the declared key constants.
func (k Key) valid() bool {
	return k >= KeyItem && k <= KeyExpiresOn
}

// less reports whether a orders strictly before b under k.
// Callers must have checked valid first.
func (k Key) less(a, b Record) bool {
	switch k {
	case KeyItem:
		return a.Item < b.Item
	case KeyQuantity:
		return a.Quantity < b.Quantity
	case KeyExpiresOn:
		return a.ExpiresOn.Before(b.ExpiresOn)
	default:
		return false
	}
}
