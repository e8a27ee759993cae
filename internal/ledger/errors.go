package ledger

import (
	"errors"
	"fmt"
)

// KeyError reports a sort called with a Key value outside the declared
// constants. It is the one hard fault in this package: empty containers
// and missing search matches are normal absence-of-value outcomes, but
// an unknown key is a programming mistake in the caller.
type KeyError struct {
	// Key is the offending selector value.
	Key Key
}

// Error implements the error interface.
func (e *KeyError) Error() string {
	return fmt.Sprintf("invalid sort key %d: must be KeyItem, KeyQuantity, or KeyExpiresOn", int(e.Key))
}

// NewKeyError creates a KeyError for the given selector value.
func NewKeyError(key Key) *KeyError {
	return &KeyError{Key: key}
}

// IsKeyError returns true if the error is an invalid-key fault.
// Uses errors.As to handle wrapped errors.
func IsKeyError(err error) bool {
	var ke *KeyError
	return errors.As(err, &ke)
}
