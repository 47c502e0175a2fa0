package compress

import "github.com/arloliu/compkey/format"

// zstdLevel is the compression level shared by both Zstandard backends.
const zstdLevel = 3

// ZstdCodec compresses with Zstandard. It gives the smallest snapshots of the
// built-in codecs and is the key set default.
//
// The pure Go klauspost/compress backend is used unless the module is built with
// cgo and the gozstd tag, which switches to the libzstd binding.
type ZstdCodec struct{}

var (
	_ Codec             = ZstdCodec{}
	_ SizedDecompressor = ZstdCodec{}
)

// NewZstdCodec creates a Zstandard codec.
func NewZstdCodec() ZstdCodec {
	return ZstdCodec{}
}

func (ZstdCodec) Type() format.CompressionType { return format.CompressionZstd }
