package armor_test

import (
	"testing"

	"github.com/hexbee-net/errors"
	"github.com/stretchr/testify/require"
	"github.com/tj/assert"

	"github.com/hexbee-net/armor"
	"github.com/hexbee-net/armor/cipher"
	"github.com/hexbee-net/armor/compression"
	"github.com/hexbee-net/armor/ecc"
)

// tag is a Transform that appends a marker byte, used to observe stage order.
type tag struct {
	marker byte
}

func (t tag) Encode(data []byte) []byte {
	return append(append([]byte{}, data...), t.marker)
}

func (t tag) Decode(data []byte) []byte {
	return append([]byte{}, data[:len(data)-1]...)
}

type failing struct {
	err error
}

func (f failing) Encode([]byte) ([]byte, error) { return nil, f.err }
func (f failing) Decode([]byte) ([]byte, error) { return nil, f.err }

func TestLift(t *testing.T) {
	key, err := cipher.NewKey([]byte("key"))
	require.NoError(t, err)

	c := armor.Lift(cipher.NewVigenere(key))

	msg := []byte("attack at dawn")

	encoded, err := c.Encode(msg)
	require.NoError(t, err)

	decoded, err := c.Decode(encoded)
	require.NoError(t, err)
	assert.Equal(t, msg, decoded)
}

func TestPipeline_StageOrder(t *testing.T) {
	p := armor.Pipeline{armor.Lift(tag{'a'}), armor.Lift(tag{'b'})}

	encoded, err := p.Encode([]byte("x"))
	require.NoError(t, err)
	assert.Equal(t, []byte("xab"), encoded)

	decoded, err := p.Decode(encoded)
	require.NoError(t, err)
	assert.Equal(t, []byte("x"), decoded)
}

func TestPipeline_Empty(t *testing.T) {
	p := armor.Pipeline{}

	out, err := p.Encode([]byte("unchanged"))
	require.NoError(t, err)
	assert.Equal(t, []byte("unchanged"), out)
}

func TestPipeline_ErrorPropagation(t *testing.T) {
	boom := errors.New("stage failed")
	p := armor.Pipeline{armor.Lift(tag{'a'}), failing{err: boom}}

	_, err := p.Encode([]byte("x"))
	assert.EqualError(t, errors.Cause(err), boom.Error())

	_, err = p.Decode([]byte("x"))
	assert.EqualError(t, errors.Cause(err), boom.Error())
}

func TestPipeline_CompressCipherProtect(t *testing.T) {
	key, err := cipher.NewKey([]byte("hexbee"))
	require.NoError(t, err)

	h, err := ecc.New(4, 8)
	require.NoError(t, err)

	p := armor.Pipeline{
		compression.GZip{},
		armor.Lift(cipher.NewVigenere(key)),
		h,
	}

	msg := []byte("the quick brown fox jumps over the lazy dog")

	encoded, err := p.Encode(msg)
	require.NoError(t, err)

	decoded, err := p.Decode(encoded)
	require.NoError(t, err)
	assert.Equal(t, msg, decoded)
}
