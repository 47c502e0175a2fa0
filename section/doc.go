// Package section defines the fixed binary headers used by compkey.
//
// Two layouts live here: the 4-byte header that starts every composite key, and the
// 24-byte header of a key set snapshot. Both are validated strictly; a header that does
// not match is rejected with errs.ErrValidation and never reinterpreted.
//
// # Composite Key Layout
//
//	Offset | Field      | Value
//	-------|------------|---------------------------------------
//	0-2    | magic      | 'C' 'M' 'P'
//	3      | version    | 1
//	4..    | components | zero or more [tag][len?][payload]
//	last   | stop       | 0x00
//
// Variable-length components (ASCII, UTF8, Bytes) carry a big-endian uint16 length,
// so a single payload holds at most MaxVariableLength bytes.
//
// # Snapshot Layout
//
//	Bytes  | Field       | Type   | Description
//	-------|-------------|--------|----------------------------------
//	0-2    | Magic       | [3]byte| 'C' 'K' 'S'
//	3      | Version     | uint8  | 1
//	4      | Compression | uint8  | format.CompressionType
//	5-7    | Reserved    | [3]byte| zero
//	8-11   | KeyCount    | uint32 | number of keys
//	12-15  | RawSize     | uint32 | uncompressed payload size
//	16-23  | Checksum    | uint64 | xxHash64 of the uncompressed payload
//
// The payload that follows is compressed with the codec named in the header and holds
// each key as uvarint(len) followed by the key bytes, in comparator order.
package section
