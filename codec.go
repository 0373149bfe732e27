package armor

// Codec is a reversible block transform: Encode turns a byte sequence into
// its transmitted form, Decode recovers the original. Either direction can
// fail; implementations document when.
type Codec interface {
	Encode(data []byte) ([]byte, error)
	Decode(data []byte) ([]byte, error)
}

// Transform is the total counterpart of Codec for algorithms that succeed on
// every input, like a substitution cipher. Use Lift to compose a Transform
// with Codec-based stages.
type Transform interface {
	Encode(data []byte) []byte
	Decode(data []byte) []byte
}

// Lift adapts a Transform to the Codec interface by wrapping its results in
// a success value.
func Lift(t Transform) Codec {
	return lifted{t: t}
}

type lifted struct {
	t Transform
}

func (l lifted) Encode(data []byte) ([]byte, error) {
	return l.t.Encode(data), nil
}

func (l lifted) Decode(data []byte) ([]byte, error) {
	return l.t.Decode(data), nil
}

// Pipeline chains codecs into a single one. Encode runs the stages in order,
// Decode in reverse order, so a pipeline of {compression, cipher, ecc}
// compresses first and error-protects last. The first stage to fail aborts
// the whole run with its error. An empty pipeline is the identity.
type Pipeline []Codec

func (p Pipeline) Encode(data []byte) ([]byte, error) {
	var err error

	for _, c := range p {
		if data, err = c.Encode(data); err != nil {
			return nil, err
		}
	}

	return data, nil
}

func (p Pipeline) Decode(data []byte) ([]byte, error) {
	var err error

	for i := len(p) - 1; i >= 0; i-- {
		if data, err = p[i].Decode(data); err != nil {
			return nil, err
		}
	}

	return data, nil
}
