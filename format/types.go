// Package format defines the closed enumerations shared by the composite key encoding
// and the key set snapshot format.
package format

type (
	// Tag is the one-byte discriminator written before every component.
	Tag uint8
	// CompressionType selects the codec used for key set snapshot payloads.
	CompressionType uint8
)

// Component tags. The numeric order is the ordering used when two components of
// different types meet at the same position, so new tags go at the end.
const (
	TagStop         Tag = 0x00 // TagStop terminates every frozen composite.
	TagMatchMinimum Tag = 0x01 // TagMatchMinimum sorts below every real component.
	TagBool         Tag = 0x02 // TagBool is a 1-byte boolean.
	TagLong         Tag = 0x03 // TagLong is a big-endian signed 64-bit integer.
	TagDouble       Tag = 0x04 // TagDouble is a big-endian IEEE-754 float64.
	TagTimeUUID     Tag = 0x05 // TagTimeUUID is a version 1 UUID, ordered by its timestamp.
	TagLexicalUUID  Tag = 0x06 // TagLexicalUUID is any other UUID, ordered by its 128-bit value.
	TagASCII        Tag = 0x07 // TagASCII is length-prefixed US-ASCII text.
	TagUTF8         Tag = 0x08 // TagUTF8 is length-prefixed UTF-8 text.
	TagBytes        Tag = 0x09 // TagBytes is a length-prefixed raw byte string.
	TagMatchMaximum Tag = 0xFF // TagMatchMaximum sorts above every real component.
)

const (
	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

// IsKnown reports whether t is a tag this version of the format can decode.
func (t Tag) IsKnown() bool {
	return t <= TagBytes || t == TagMatchMaximum
}

// IsPlaceholder reports whether t is one of the range-bound sentinels.
func (t Tag) IsPlaceholder() bool {
	return t == TagMatchMinimum || t == TagMatchMaximum
}

// IsVariable reports whether components of this tag carry a 2-byte length prefix.
func (t Tag) IsVariable() bool {
	return t == TagASCII || t == TagUTF8 || t == TagBytes
}

// FixedSize returns the payload size of a fixed-length tag. Variable-length and
// zero-payload tags return 0.
func (t Tag) FixedSize() int {
	switch t {
	case TagBool:
		return 1
	case TagLong, TagDouble:
		return 8
	case TagTimeUUID, TagLexicalUUID:
		return 16
	default:
		return 0
	}
}

func (t Tag) String() string {
	switch t {
	case TagStop:
		return "Stop"
	case TagMatchMinimum:
		return "MatchMinimum"
	case TagBool:
		return "Bool"
	case TagLong:
		return "Long"
	case TagDouble:
		return "Double"
	case TagTimeUUID:
		return "TimeUUID"
	case TagLexicalUUID:
		return "LexicalUUID"
	case TagASCII:
		return "ASCII"
	case TagUTF8:
		return "UTF8"
	case TagBytes:
		return "Bytes"
	case TagMatchMaximum:
		return "MatchMaximum"
	default:
		return "Unknown"
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}
