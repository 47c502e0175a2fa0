package compress

import (
	"errors"
	"fmt"
	"sync"

	"github.com/pierrec/lz4/v4"

	"github.com/arloliu/compkey/format"
)

// lz4CompressorPool pools lz4.Compressor instances, which keep a hash table between calls.
var lz4CompressorPool = sync.Pool{
	New: func() any {
		return &lz4.Compressor{}
	},
}

// maxLZ4Output bounds the adaptive buffer used when the raw size is unknown.
const maxLZ4Output = 128 * 1024 * 1024

// maxLZ4Ratio is the largest expansion an LZ4 block can encode: each extra
// match length byte adds at most 255 output bytes.
const maxLZ4Ratio = 255

// LZ4Codec compresses with the LZ4 block format. Blocks do not record their
// decompressed size.
type LZ4Codec struct{}

var (
	_ Codec             = LZ4Codec{}
	_ SizedDecompressor = LZ4Codec{}
)

// NewLZ4Codec creates an LZ4 codec.
func NewLZ4Codec() LZ4Codec {
	return LZ4Codec{}
}

func (LZ4Codec) Type() format.CompressionType { return format.CompressionLZ4 }

// Compress compresses data into a single LZ4 block.
//
// Returns:
//   - []byte: compressed block (nil if input is empty)
//   - error: compression error if any
func (LZ4Codec) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}
	dst := make([]byte, lz4.CompressBlockBound(len(data)))

	lc, _ := lz4CompressorPool.Get().(*lz4.Compressor)
	defer lz4CompressorPool.Put(lc)

	n, err := lc.CompressBlock(data, dst)
	if err != nil {
		return nil, err
	}

	return dst[:n], nil
}

// Decompress decompresses a block of unknown size.
//
// The buffer starts at 4x the compressed size and doubles on
// lz4.ErrInvalidSourceShortBuffer, up to 128MB.
func (LZ4Codec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	for bufSize := len(data) * 4; bufSize <= maxLZ4Output; bufSize *= 2 {
		buf := make([]byte, bufSize)
		n, err := lz4.UncompressBlock(data, buf)
		if err == nil {
			return buf[:n], nil
		}
		if !errors.Is(err, lz4.ErrInvalidSourceShortBuffer) {
			return nil, err
		}
	}

	return nil, lz4.ErrInvalidSourceShortBuffer
}

// DecompressSize decompresses a block into a buffer of exactly size bytes.
//
// A size the block could not possibly expand to is rejected before the buffer is
// allocated, so a corrupt header cannot force a large allocation.
func (LZ4Codec) DecompressSize(data []byte, size int) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}
	if uint64(size) > uint64(len(data))*maxLZ4Ratio { //nolint:gosec
		return nil, fmt.Errorf("lz4 block of %d bytes cannot hold %d bytes", len(data), size)
	}

	buf := make([]byte, size)
	n, err := lz4.UncompressBlock(data, buf)
	if err != nil {
		return nil, err
	}

	return buf[:n], nil
}
