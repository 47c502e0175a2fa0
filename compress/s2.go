package compress

import (
	"fmt"

	"github.com/klauspost/compress/s2"

	"github.com/arloliu/compkey/format"
)

// S2Codec compresses with S2, a Snappy-compatible format tuned for speed.
type S2Codec struct{}

var (
	_ Codec             = S2Codec{}
	_ SizedDecompressor = S2Codec{}
)

// NewS2Codec creates an S2 codec.
func NewS2Codec() S2Codec {
	return S2Codec{}
}

func (S2Codec) Type() format.CompressionType { return format.CompressionS2 }

// Compress compresses data in the S2 block format.
func (S2Codec) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Encode(nil, data), nil
}

// Decompress decompresses an S2 block.
func (S2Codec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Decode(nil, data)
}

// DecompressSize decompresses an S2 block after checking its embedded length
// against size, so a corrupt header cannot force a large allocation.
func (c S2Codec) DecompressSize(data []byte, size int) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	n, err := s2.DecodedLen(data)
	if err != nil {
		return nil, err
	}
	if n != size {
		return nil, fmt.Errorf("s2 block holds %d bytes, expected %d", n, size)
	}

	return s2.Decode(make([]byte, size), data)
}
