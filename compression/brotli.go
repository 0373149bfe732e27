package compression

import (
	"bytes"
	"io/ioutil"

	"github.com/andybalholm/brotli"
	"github.com/hexbee-net/errors"
)

type Brotli struct {
}

func (c Brotli) Encode(data []byte) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := brotli.NewWriter(buf)

	if _, err := w.Write(data); err != nil {
		return nil, err
	}

	if err := w.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func (c Brotli) Decode(data []byte) ([]byte, error) {
	out, err := ioutil.ReadAll(brotli.NewReader(bytes.NewReader(data)))
	if err != nil {
		return nil, errors.Wrap(err, "failed to decompress brotli data")
	}

	return out, nil
}
