package cipher

// Vigenere is a byte-wise substitution cipher: every input byte gets the
// next byte of the repeating key added to it, with wrapping arithmetic.
// Both directions always succeed, so Vigenere satisfies armor.Transform and
// composes with fallible stages through armor.Lift.
type Vigenere struct {
	key Key
}

func NewVigenere(key Key) *Vigenere {
	return &Vigenere{key: key}
}

// Key returns the key the cipher was built with.
func (v *Vigenere) Key() Key {
	return v.key
}

func (v *Vigenere) Encode(data []byte) []byte {
	out := make([]byte, len(data))

	for i, b := range data {
		out[i] = b + v.key[i%len(v.key)]
	}

	return out
}

func (v *Vigenere) Decode(data []byte) []byte {
	out := make([]byte, len(data))

	for i, b := range data {
		out[i] = b - v.key[i%len(v.key)]
	}

	return out
}
