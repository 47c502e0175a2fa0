// Package compress provides the codecs used for key set snapshot payloads.
//
// A snapshot payload is a run of length-prefixed composite keys. Sorted keys share
// long prefixes (tenant, table, partition components) so general-purpose compression
// works well on them. The algorithm is recorded in the snapshot header as a
// format.CompressionType:
//   - None: payload stored as-is
//   - Zstd: best ratio, the default
//   - S2: fast, Snappy compatible
//   - LZ4: fastest decompression
//
// # Usage
//
//	codec, err := compress.GetCodec(format.CompressionS2)
//	compressed, err := codec.Compress(payload)
//	raw, err := compress.DecompressSize(codec, compressed, len(payload))
//
// DecompressSize takes the raw size recorded in the header and fails if the output
// does not match it. Codecs that implement SizedDecompressor use the size to
// allocate the output once.
//
// # Zstandard backends
//
// The default build uses github.com/klauspost/compress/zstd with pooled encoders
// and decoders. Building with cgo and the gozstd tag switches to
// github.com/valyala/gozstd:
//
//	go build -tags gozstd ./...
//
// Both backends produce standard Zstandard frames and read each other's output.
//
// # Thread Safety
//
// All codecs are stateless values and safe for concurrent use.
package compress
