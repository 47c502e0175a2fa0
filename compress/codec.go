package compress

import (
	"fmt"

	"github.com/arloliu/compkey/errs"
	"github.com/arloliu/compkey/format"
)

// Compressor compresses a key set snapshot payload.
//
// Memory management:
//   - The returned slice is owned by the caller, except for the no-op codec which returns data itself
//   - The input slice is not modified
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores a payload produced by the matching Compressor.
//
// Error conditions:
//   - corrupted input
//   - input produced by a different algorithm
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// SizedDecompressor is implemented by codecs that can decompress into a buffer of a
// known size. Snapshot readers know the raw payload size from the header and use it
// to bound the output.
type SizedDecompressor interface {
	DecompressSize(data []byte, size int) ([]byte, error)
}

// Codec combines both directions and reports the algorithm it implements.
type Codec interface {
	Compressor
	Decompressor
	Type() format.CompressionType
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCodec(),
	format.CompressionZstd: NewZstdCodec(),
	format.CompressionS2:   NewS2Codec(),
	format.CompressionLZ4:  NewLZ4Codec(),
}

// GetCodec retrieves the built-in Codec for the specified compression type.
//
// Parameters:
//   - compressionType: None, Zstd, S2 or LZ4
//
// Returns:
//   - Codec: shared codec instance, safe for concurrent use
//   - error: errs.ErrValidation for an unknown compression type
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("%w: unsupported compression type %s", errs.ErrValidation, compressionType)
}

// DecompressSize decompresses data with codec and checks that the result is exactly
// size bytes long, using the codec's sized path when it has one.
func DecompressSize(codec Decompressor, data []byte, size int) ([]byte, error) {
	var (
		out []byte
		err error
	)
	if sd, ok := codec.(SizedDecompressor); ok {
		out, err = sd.DecompressSize(data, size)
	} else {
		out, err = codec.Decompress(data)
	}
	if err != nil {
		return nil, err
	}
	if len(out) != size {
		return nil, fmt.Errorf("decompressed %d bytes, expected %d", len(out), size)
	}

	return out, nil
}
