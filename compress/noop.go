package compress

import "github.com/arloliu/compkey/format"

// NoOpCodec stores payloads uncompressed.
//
// Both directions return the input slice itself without copying. Callers must not
// modify the input while the result is in use.
type NoOpCodec struct{}

var _ Codec = NoOpCodec{}

// NewNoOpCodec creates the pass-through codec.
func NewNoOpCodec() NoOpCodec {
	return NoOpCodec{}
}

func (NoOpCodec) Type() format.CompressionType { return format.CompressionNone }

// Compress returns data unchanged.
func (NoOpCodec) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns data unchanged.
func (NoOpCodec) Decompress(data []byte) ([]byte, error) {
	return data, nil
}
