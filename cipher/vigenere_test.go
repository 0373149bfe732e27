package cipher

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tj/assert"
)

func TestNewKey(t *testing.T) {
	_, err := NewKey(nil)
	assert.EqualError(t, err, ErrEmptyKey.Error())

	_, err = NewKey([]byte{})
	assert.EqualError(t, err, ErrEmptyKey.Error())

	material := []byte{0x01, 0x02, 0x03}
	key, err := NewKey(material)
	require.NoError(t, err)

	// The key must not alias the caller's buffer.
	material[0] = 0xFF
	assert.Equal(t, Key{0x01, 0x02, 0x03}, key)
}

func TestVigenere_RoundTrip(t *testing.T) {
	key, err := NewKey([]byte("key"))
	require.NoError(t, err)

	v := NewVigenere(key)
	msg := []byte("attack at dawn")

	encoded := v.Encode(msg)
	assert.NotEqual(t, msg, encoded)
	assert.Equal(t, msg, v.Decode(encoded))
}

func TestVigenere_Wrapping(t *testing.T) {
	key, err := NewKey([]byte{0xFF})
	require.NoError(t, err)

	v := NewVigenere(key)

	encoded := v.Encode([]byte{0x01, 0x00})
	assert.Equal(t, []byte{0x00, 0xFF}, encoded)
	assert.Equal(t, []byte{0x01, 0x00}, v.Decode(encoded))
}

func TestVigenere_KeyLongerThanMessage(t *testing.T) {
	key, err := NewKey([]byte("a long key that outlives the message"))
	require.NoError(t, err)

	v := NewVigenere(key)
	msg := []byte("hi")

	assert.Equal(t, msg, v.Decode(v.Encode(msg)))
}
