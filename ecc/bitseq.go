package ecc

// bitSeq accumulates single bits and packs them into bytes, most significant
// bit first. The last byte is zero-padded until enough bits are appended to
// fill it, which matches the wire layout: padding past the final block is
// always zero.
type bitSeq struct {
	data  []byte
	count int
}

func newBitSeq(capacity int) *bitSeq {
	return &bitSeq{data: make([]byte, 0, (capacity+7)/8)}
}

func bitSeqFromBytes(data []byte) *bitSeq {
	return &bitSeq{data: data, count: len(data) * 8}
}

func (s *bitSeq) append(bit bool) {
	if s.count%8 == 0 {
		s.data = append(s.data, 0)
	}

	if bit {
		s.data[s.count/8] |= 1 << uint(7-s.count%8)
	}

	s.count++
}

func (s *bitSeq) bit(pos int) bool {
	return s.data[pos/8]&(1<<uint(7-pos%8)) != 0
}

func (s *bitSeq) len() int {
	return s.count
}

func (s *bitSeq) bytes() []byte {
	return s.data
}
