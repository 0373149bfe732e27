package compression

import (
	"bytes"
	"compress/gzip"
	"io/ioutil"

	"github.com/hexbee-net/errors"
)

type GZip struct {
}

func (c GZip) Encode(data []byte) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := gzip.NewWriter(buf)

	if _, err := w.Write(data); err != nil {
		return nil, err
	}

	if err := w.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func (c GZip) Decode(data []byte) ([]byte, error) {
	r, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrap(err, "failed to decompress gzip data")
	}

	out, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decompress gzip data")
	}

	return out, r.Close()
}
