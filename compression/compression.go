// Package compression wraps block compressors in the armor.Codec interface
// so they can run as a pipeline stage ahead of a cipher or an
// error-correction code: Encode compresses, Decode decompresses.
package compression

import (
	"github.com/hexbee-net/errors"

	"github.com/hexbee-net/armor"
)

// ErrUnknownCodec is returned by ByName for unregistered codec names.
const ErrUnknownCodec = errors.Error("unknown compression codec")

// ByName returns the compression codec registered under name, one of
// "snappy", "gzip", "zstd", "brotli" or "lz4".
func ByName(name string) (armor.Codec, error) {
	switch name {
	case "snappy":
		return Snappy{}, nil
	case "gzip":
		return GZip{}, nil
	case "zstd":
		return ZStd{}, nil
	case "brotli":
		return Brotli{}, nil
	case "lz4":
		return LZ4{}, nil
	default:
		return nil, errors.WithFields(ErrUnknownCodec,
			errors.Fields{
				"name": name,
			})
	}
}
