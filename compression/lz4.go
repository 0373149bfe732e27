package compression //nolint:dupl // it's easier to duplicate the algorithm wrappers

import (
	"bytes"
	"io/ioutil"

	"github.com/hexbee-net/errors"
	"github.com/pierrec/lz4"
)

type LZ4 struct {
}

func (c LZ4) Encode(data []byte) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := lz4.NewWriter(buf)

	if _, err := w.Write(data); err != nil {
		return nil, err
	}

	if err := w.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func (c LZ4) Decode(data []byte) ([]byte, error) {
	out, err := ioutil.ReadAll(lz4.NewReader(bytes.NewReader(data)))
	if err != nil {
		return nil, errors.Wrap(err, "failed to decompress lz4 data")
	}

	return out, nil
}
