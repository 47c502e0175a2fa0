// Package endian provides the byte order used by every fixed-width field in compkey.
//
// Composite keys and snapshot headers are always big-endian so that the encoded
// form is identical on every platform. EndianEngine combines binary.ByteOrder and
// binary.AppendByteOrder so encoders can append directly to a growing buffer:
//
//	engine := endian.GetBigEndianEngine()
//	buf = engine.AppendUint64(buf, uint64(v))
//
// All functions and methods in this package are safe for concurrent use.
package endian

import "encoding/binary"

// EndianEngine combines ByteOrder and AppendByteOrder interfaces from encoding/binary
// into a single interface for convenient byte order operations.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetBigEndianEngine returns the big-endian engine used by the composite key format.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// AppendUint16Length appends n as a big-endian uint16 length prefix.
// The caller guarantees n fits in 16 bits.
func AppendUint16Length(buf []byte, n int) []byte {
	return binary.BigEndian.AppendUint16(buf, uint16(n)) //nolint:gosec
}

// Uint16Length reads a big-endian uint16 length prefix from b.
func Uint16Length(b []byte) int {
	return int(binary.BigEndian.Uint16(b))
}
