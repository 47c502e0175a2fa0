package composite

import (
	"math"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/arloliu/compkey/endian"
	"github.com/arloliu/compkey/errs"
	"github.com/arloliu/compkey/format"
	"github.com/arloliu/compkey/section"
)

// span locates the component starting at off.
//
// Returns:
//   - tag: the component tag
//   - start, end: payload bounds, data[start:end]
//   - error: errs.ErrDecode for an unknown tag, a payload past the end of data or
//     invalid UTF-8 in a UTF8 payload
func span(data []byte, off int) (format.Tag, int, int, error) {
	tag := format.Tag(data[off])
	if !tag.IsKnown() {
		return tag, 0, 0, errs.Dataf(errs.ErrDecode, data, off, "unknown component tag 0x%02x", uint8(tag))
	}

	start := off + 1
	n := tag.FixedSize()
	if tag.IsVariable() {
		if start+section.LengthPrefixSize > len(data) {
			return tag, 0, 0, errs.Dataf(errs.ErrDecode, data, off, "truncated %s length prefix", tag)
		}
		n = endian.Uint16Length(data[start:])
		start += section.LengthPrefixSize
	}

	end := start + n
	if end > len(data) {
		return tag, 0, 0, errs.Dataf(errs.ErrDecode, data, off, "%s payload of %d bytes exceeds remaining %d", tag, n, len(data)-start)
	}
	if tag == format.TagUTF8 && !utf8.Valid(data[start:end]) {
		return tag, 0, 0, errs.Dataf(errs.ErrDecode, data, off, "invalid UTF-8 in %s payload", tag)
	}

	return tag, start, end, nil
}

// decodePayload builds the Value for a payload located by span.
func decodePayload(tag format.Tag, payload []byte) Value {
	engine := endian.GetBigEndianEngine()

	switch tag {
	case format.TagBool:
		return Bool(payload[0] != 0)
	case format.TagLong:
		return Long(engine.Uint64(payload)) //nolint:gosec
	case format.TagDouble:
		return Double(math.Float64frombits(engine.Uint64(payload)))
	case format.TagTimeUUID:
		return TimeUUID(uuid.UUID(payload))
	case format.TagLexicalUUID:
		return LexicalUUID(uuid.UUID(payload))
	case format.TagASCII:
		return ASCII(payload)
	case format.TagUTF8:
		return UTF8(payload)
	case format.TagBytes:
		b := make(Bytes, len(payload))
		copy(b, payload)

		return b
	case format.TagMatchMinimum:
		return MatchMinimum
	case format.TagMatchMaximum:
		return MatchMaximum
	default:
		// span rejects everything else before we get here
		panic("composite: decodePayload called with tag " + tag.String())
	}
}

// appendValue appends the encoded component for v to buf.
//
// Returns:
//   - []byte: buf with the component appended
//   - error: errs.ErrOversizeValue if a variable-length payload exceeds 65535 bytes
func appendValue(buf []byte, v Value) ([]byte, error) {
	engine := endian.GetBigEndianEngine()

	switch x := v.(type) {
	case Bool:
		b := byte(0)
		if x {
			b = 1
		}

		return append(buf, byte(format.TagBool), b), nil
	case Long:
		buf = append(buf, byte(format.TagLong))
		return engine.AppendUint64(buf, uint64(x)), nil //nolint:gosec
	case Double:
		buf = append(buf, byte(format.TagDouble))
		return engine.AppendUint64(buf, math.Float64bits(float64(x))), nil
	case TimeUUID:
		buf = append(buf, byte(format.TagTimeUUID))
		return append(buf, x[:]...), nil
	case LexicalUUID:
		buf = append(buf, byte(format.TagLexicalUUID))
		return append(buf, x[:]...), nil
	case ASCII:
		return appendVariable(buf, format.TagASCII, string(x))
	case UTF8:
		return appendVariable(buf, format.TagUTF8, string(x))
	case Bytes:
		return appendVariable(buf, format.TagBytes, string(x))
	case Placeholder:
		return append(buf, byte(x)), nil
	default:
		return buf, errs.ErrUnsupportedValue
	}
}

func appendVariable(buf []byte, tag format.Tag, payload string) ([]byte, error) {
	if len(payload) > section.MaxVariableLength {
		return buf, errs.ErrOversizeValue
	}

	buf = append(buf, byte(tag))
	buf = endian.AppendUint16Length(buf, len(payload))

	return append(buf, payload...), nil
}

// encodedSize returns the number of bytes appendValue writes for v.
func encodedSize(v Value) int {
	switch x := v.(type) {
	case ASCII:
		return 1 + section.LengthPrefixSize + len(x)
	case UTF8:
		return 1 + section.LengthPrefixSize + len(x)
	case Bytes:
		return 1 + section.LengthPrefixSize + len(x)
	default:
		return 1 + v.Tag().FixedSize()
	}
}
