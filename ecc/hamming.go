package ecc

import (
	"math/bits"

	"github.com/hexbee-net/errors"
)

const (
	// ErrMessageTooLarge is returned by Encode when the message length does
	// not fit the size field. The error carries the maximum and actual sizes.
	ErrMessageTooLarge = errors.Error("message does not fit the size field")

	// ErrMalformed is returned by Decode when the input is not a whole
	// number of blocks.
	ErrMalformed = errors.Error("encoded stream is not a whole number of blocks")

	// ErrUncorrectableBlock is returned by Decode when a block holds two or
	// more corrupted bits. The error carries the index of the block.
	ErrUncorrectableBlock = errors.Error("block has more than one corrupted bit")

	// ErrTruncated is returned by Decode when the size field declares more
	// bytes than the payload can hold.
	ErrTruncated = errors.Error("declared message size exceeds the decoded payload")

	errBlockTooSmall    = errors.Error("block log size must be at least 3")
	errSizeFieldTooThin = errors.Error("size field must be at least 2 bits")
)

// Hamming is a single-error-correcting, double-error-detecting block code.
// A message is split into blocks of 2^blockLogSize bits; within a block,
// position 0 holds the overall parity and every power-of-two position holds
// one parity group, so each block carries 2^blockLogSize-blockLogSize-1
// payload bits. One corrupted bit per block is silently repaired on decode,
// two are detected and reported. Three or more can go unnoticed, so the
// block size is a trade-off: larger blocks waste less space on parity but
// are more likely to collect more than two errors each.
//
// The first sizeFieldBits payload bits carry the message length in bytes,
// which caps the encodable input at 2^sizeFieldBits-1 bytes.
//
// Blocks are not transmitted one after the other: the encoded stream emits
// bit 0 of every block, then bit 1 of every block, and so on. A burst of up
// to block-count consecutive corrupted bits therefore lands on distinct
// blocks and stays correctable.
type Hamming struct {
	blockLogSize  int
	sizeFieldBits int
}

// DecodeStats reports what the error correction had to repair during a
// single decode.
type DecodeStats struct {
	CorrectedBlocks int
}

// New returns a codec with blocks of 2^blockLogSize bits and a message-size
// prefix of sizeFieldBits bits. Blocks below 8 bits cannot hold a single
// payload bit next to the parity scaffolding, and a size field below 2 bits
// cannot express a useful length, so those configurations are rejected.
func New(blockLogSize, sizeFieldBits int) (*Hamming, error) {
	if blockLogSize < 3 {
		return nil, errors.WithFields(errBlockTooSmall,
			errors.Fields{
				"block-log-size": blockLogSize,
			})
	}

	if sizeFieldBits < 2 {
		return nil, errors.WithFields(errSizeFieldTooThin,
			errors.Fields{
				"size-field-bits": sizeFieldBits,
			})
	}

	return &Hamming{
		blockLogSize:  blockLogSize,
		sizeFieldBits: sizeFieldBits,
	}, nil
}

// Encode protects data with the block code and returns the interleaved,
// byte-packed stream. It fails only when data is longer than the size field
// can express.
func (h *Hamming) Encode(data []byte) ([]byte, error) {
	maxSize := 1<<uint(h.sizeFieldBits) - 1
	if len(data) > maxSize {
		return nil, errors.WithFields(ErrMessageTooLarge,
			errors.Fields{
				"max-size": maxSize,
				"size":     len(data),
			})
	}

	blockBits := 1 << uint(h.blockLogSize)
	payloadBits := blockBits - h.blockLogSize - 1
	blockCount := (h.sizeFieldBits + len(data)*8 + payloadBits - 1) / payloadBits

	// The logical payload is the size field followed by the message bits,
	// most significant bit first, zero-padded to fill the last block.
	payload := make([]bool, blockCount*payloadBits)
	for i := 0; i < h.sizeFieldBits; i++ {
		payload[i] = len(data)&(1<<uint(h.sizeFieldBits-1-i)) != 0
	}

	for i, b := range data {
		for j := 0; j < 8; j++ {
			payload[h.sizeFieldBits+i*8+j] = b&(1<<uint(7-j)) != 0
		}
	}

	blocks := make([][]bool, blockCount)
	for i := range blocks {
		blocks[i] = h.buildBlock(payload[i*payloadBits : (i+1)*payloadBits])
	}

	// Interleave position-major: every block's bit 0, then every block's
	// bit 1, and so on.
	out := newBitSeq(blockCount * blockBits)

	for pos := 0; pos < blockBits; pos++ {
		for _, block := range blocks {
			out.append(block[pos])
		}
	}

	return out.bytes(), nil
}

// Decode reverses Encode, transparently repairing up to one corrupted bit
// per block. See DecodeWithStats for the failure modes.
func (h *Hamming) Decode(encoded []byte) ([]byte, error) {
	out, _, err := h.DecodeWithStats(encoded)

	return out, err
}

// DecodeWithStats is Decode plus a count of the blocks that needed repair,
// for callers that want corruption telemetry even on successful decodes.
//
// It fails with ErrMalformed when the input is empty or not a whole number
// of blocks, with ErrUncorrectableBlock when a block carries two or more
// corrupted bits, and with ErrTruncated when the size field of a corrected
// stream declares more bytes than the payload holds.
func (h *Hamming) DecodeWithStats(encoded []byte) ([]byte, DecodeStats, error) {
	var stats DecodeStats

	blockBits := 1 << uint(h.blockLogSize)
	payloadBits := blockBits - h.blockLogSize - 1

	in := bitSeqFromBytes(encoded)

	// Block sizes are powers of two no smaller than a byte, so a valid
	// stream is an exact multiple of the block size with no padding bytes.
	blockCount := in.len() / blockBits
	if blockCount == 0 || in.len()%blockBits != 0 {
		return nil, stats, errors.WithFields(ErrMalformed,
			errors.Fields{
				"bits":       in.len(),
				"block-bits": blockBits,
			})
	}

	// The size field can span blocks when it is wider than one block's
	// payload; a stream without room for it cannot be framed at all.
	if blockCount*payloadBits < h.sizeFieldBits {
		return nil, stats, errors.WithFields(ErrMalformed,
			errors.Fields{
				"payload-bits":    blockCount * payloadBits,
				"size-field-bits": h.sizeFieldBits,
			})
	}

	// Undo the position-major interleaving: bit pos of block j sits at
	// stream position pos*blockCount+j.
	blocks := make([][]bool, blockCount)
	for j := range blocks {
		blocks[j] = make([]bool, blockBits)
	}

	for pos := 0; pos < blockBits; pos++ {
		for j := 0; j < blockCount; j++ {
			blocks[j][pos] = in.bit(pos*blockCount + j)
		}
	}

	payload := make([]bool, 0, blockCount*payloadBits)

	for j, block := range blocks {
		repaired, err := h.verifyBlock(block)
		if err != nil {
			return nil, stats, errors.WithFields(err,
				errors.Fields{
					"block": j,
				})
		}

		if repaired {
			stats.CorrectedBlocks++
		}

		for pos := 0; pos < blockBits; pos++ {
			if bits.OnesCount(uint(pos)) > 1 {
				payload = append(payload, block[pos])
			}
		}
	}

	size := 0
	for i := 0; i < h.sizeFieldBits; i++ {
		size <<= 1
		if payload[i] {
			size |= 1
		}
	}

	if size*8 > len(payload)-h.sizeFieldBits {
		return nil, stats, errors.WithFields(ErrTruncated,
			errors.Fields{
				"declared-size": size,
				"payload-bits":  len(payload) - h.sizeFieldBits,
			})
	}

	out := make([]byte, size)
	for i := range out {
		var b byte
		for j := 0; j < 8; j++ {
			b <<= 1
			if payload[h.sizeFieldBits+i*8+j] {
				b |= 1
			}
		}

		out[i] = b
	}

	return out, stats, nil
}

// buildBlock lays one payload chunk into a fresh block and sets its parity
// bits. Payload bits go to the non-parity positions in increasing order;
// missing bits in the last chunk stay zero.
func (h *Hamming) buildBlock(payload []bool) []bool {
	blockBits := 1 << uint(h.blockLogSize)
	block := make([]bool, blockBits)

	next := 0

	for pos := 0; pos < blockBits; pos++ {
		if bits.OnesCount(uint(pos)) > 1 {
			block[pos] = payload[next]
			next++
		}
	}

	// Each parity group reduces the positions that share its bit. The group
	// includes the parity position itself, but that slot is still zero here,
	// so storing the result keeps the full group at even parity.
	for i := 0; i < h.blockLogSize; i++ {
		mask := 1 << uint(i)
		block[mask] = xorGroup(block, mask)
	}

	// The overall parity covers the whole block, parity bits included.
	block[0] = xorAll(block)

	return block
}

// verifyBlock checks one de-interleaved block and repairs it in place when
// possible. It reports whether a bit was flipped back.
func (h *Hamming) verifyBlock(block []bool) (repaired bool, err error) {
	syndrome := 0

	for i := 0; i < h.blockLogSize; i++ {
		mask := 1 << uint(i)
		if xorGroup(block, mask) {
			syndrome |= mask
		}
	}

	overall := xorAll(block)

	switch {
	case !overall && syndrome == 0:
		return false, nil

	case overall:
		// A single flipped bit: the syndrome points at it, and a zero
		// syndrome means the overall-parity bit itself took the hit.
		block[syndrome] = !block[syndrome]

		return true, nil

	default:
		// Even overall parity with mismatched groups: two bits flipped,
		// their location cannot be recovered.
		return false, ErrUncorrectableBlock
	}
}

// xorGroup reduces the bits whose position has every bit of mask set.
func xorGroup(block []bool, mask int) bool {
	parity := false

	for pos, bit := range block {
		if pos&mask == mask && bit {
			parity = !parity
		}
	}

	return parity
}

func xorAll(block []bool) bool {
	parity := false

	for _, bit := range block {
		if bit {
			parity = !parity
		}
	}

	return parity
}
