package compression

import (
	"bytes"
	"io/ioutil"

	"github.com/hexbee-net/errors"
	"github.com/klauspost/compress/zstd"
)

type ZStd struct {
}

func (c ZStd) Encode(data []byte) ([]byte, error) {
	buf := &bytes.Buffer{}

	w, err := zstd.NewWriter(buf)
	if err != nil {
		return nil, err
	}

	if _, err := w.Write(data); err != nil {
		return nil, err
	}

	if err := w.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func (c ZStd) Decode(data []byte) ([]byte, error) {
	r, err := zstd.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrap(err, "failed to decompress zstd data")
	}
	defer r.Close()

	out, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decompress zstd data")
	}

	return out, nil
}
