package cipher

import (
	"github.com/hexbee-net/errors"
)

// ErrEmptyKey is returned by NewKey when the key material is empty.
const ErrEmptyKey = errors.Error("key must not be empty")

// Key is the non-empty byte sequence a substitution cipher repeats over its
// input.
type Key []byte

// NewKey copies data into a Key. Empty key material is rejected: a cipher
// cannot cycle over zero bytes.
func NewKey(data []byte) (Key, error) {
	if len(data) == 0 {
		return nil, ErrEmptyKey
	}

	key := make(Key, len(data))
	copy(key, data)

	return key, nil
}
