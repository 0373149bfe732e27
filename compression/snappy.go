package compression

import (
	"github.com/golang/snappy"
	"github.com/hexbee-net/errors"
)

type Snappy struct {
}

func (c Snappy) Encode(data []byte) ([]byte, error) {
	return snappy.Encode(nil, data), nil
}

func (c Snappy) Decode(data []byte) ([]byte, error) {
	out, err := snappy.Decode(nil, data)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decompress snappy data")
	}

	return out, nil
}
