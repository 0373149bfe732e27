package ecc

import (
	"testing"

	"github.com/tj/assert"
)

func TestBitSeq_Append(t *testing.T) {
	s := newBitSeq(10)

	for _, bit := range []bool{true, false, false, true, false, true, true, false, true, true} {
		s.append(bit)
	}

	assert.Equal(t, 10, s.len())
	assert.Equal(t, []byte{0b10010110, 0b11000000}, s.bytes())
}

func TestBitSeq_FromBytes(t *testing.T) {
	s := bitSeqFromBytes([]byte{0b10010110, 0b11000000})

	assert.Equal(t, 16, s.len())

	expected := []bool{true, false, false, true, false, true, true, false, true, true}
	for pos, bit := range expected {
		assert.Equal(t, bit, s.bit(pos), "bit %d", pos)
	}
}
