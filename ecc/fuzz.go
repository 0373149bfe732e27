// +build gofuzz

package ecc

func Fuzz(data []byte) int {
	h, err := New(4, 8)
	if err != nil {
		panic(err)
	}

	if _, err := h.Decode(data); err != nil {
		return 0
	}

	return 1
}
