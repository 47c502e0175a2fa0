package composite

import (
	"bytes"
	"cmp"
	"math"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/arloliu/compkey/endian"
	"github.com/arloliu/compkey/errs"
	"github.com/arloliu/compkey/format"
	"github.com/arloliu/compkey/section"
)

// Compare orders two encoded keys component by component.
//
// Both buffers are walked in lockstep without building decoded values. An empty
// buffer sorts below any non-empty one and equals another empty buffer. When the
// tags at a position differ the lower tag sorts first, except that a key which has
// ended sorts above a MatchMinimum on the other side.
//
// Returns:
//   - int: -1, 0 or 1
//   - error: errs.ErrValidation for a bad header, errs.ErrDecode for a malformed component
func Compare(a, b []byte) (int, error) {
	if err := Validate(a); err != nil {
		return 0, err
	}
	if err := Validate(b); err != nil {
		return 0, err
	}

	switch {
	case len(a) == 0 && len(b) == 0:
		return 0, nil
	case len(a) == 0:
		return -1, nil
	case len(b) == 0:
		return 1, nil
	}

	offA, offB := section.CompositeHeaderSize, section.CompositeHeaderSize
	for {
		tagA, tagB := tagAt(a, offA), tagAt(b, offB)

		if tagA != tagB {
			if !tagA.IsKnown() {
				return 0, errs.Dataf(errs.ErrDecode, a, offA, "unknown component tag 0x%02x", uint8(tagA))
			}
			if !tagB.IsKnown() {
				return 0, errs.Dataf(errs.ErrDecode, b, offB, "unknown component tag 0x%02x", uint8(tagB))
			}

			return compareTags(tagA, tagB), nil
		}
		if tagA == format.TagStop {
			return 0, nil
		}

		_, startA, endA, err := span(a, offA)
		if err != nil {
			return 0, err
		}
		_, startB, endB, err := span(b, offB)
		if err != nil {
			return 0, err
		}

		if c := comparePayload(tagA, a[startA:endA], b[startB:endB]); c != 0 {
			return c, nil
		}
		offA, offB = endA, endB
	}
}

// MustCompare is Compare for keys already known to be well formed, such as the
// output of Builder.Freeze. It panics on malformed input.
func MustCompare(a, b []byte) int {
	c, err := Compare(a, b)
	if err != nil {
		panic(err)
	}

	return c
}

// tagAt returns the tag at off, treating the end of data as a stop marker.
func tagAt(data []byte, off int) format.Tag {
	if off >= len(data) {
		return format.TagStop
	}

	return format.Tag(data[off])
}

// compareTags orders two different tags at the same position.
func compareTags(a, b format.Tag) int {
	switch {
	case a == format.TagStop && b == format.TagMatchMinimum:
		return 1
	case a == format.TagMatchMinimum && b == format.TagStop:
		return -1
	case a < b:
		return -1
	default:
		return 1
	}
}

// comparePayload applies the ordering rule of tag to two payloads.
func comparePayload(tag format.Tag, a, b []byte) int {
	engine := endian.GetBigEndianEngine()

	switch tag {
	case format.TagBool:
		return compareBool(a[0] != 0, b[0] != 0)
	case format.TagLong:
		return cmp.Compare(int64(engine.Uint64(a)), int64(engine.Uint64(b))) //nolint:gosec
	case format.TagDouble:
		return compareDouble(math.Float64frombits(engine.Uint64(a)), math.Float64frombits(engine.Uint64(b)))
	case format.TagTimeUUID:
		return compareTimeUUID(a, b)
	case format.TagLexicalUUID:
		return compareLexicalUUID(a, b)
	case format.TagASCII, format.TagBytes:
		return bytes.Compare(a, b)
	case format.TagUTF8:
		return compareUTF16(a, b)
	default:
		// placeholders carry no payload, equal tags mean equal components
		return 0
	}
}

func compareBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case b:
		return -1
	default:
		return 1
	}
}

// compareDouble is a total order over float64: -0 sorts below +0 and NaN sorts
// above +Inf and equal to every other NaN.
func compareDouble(a, b float64) int {
	if a < b {
		return -1
	}
	if a > b {
		return 1
	}

	return cmp.Compare(doubleBits(a), doubleBits(b))
}

func doubleBits(f float64) int64 {
	if math.IsNaN(f) {
		return 0x7ff8000000000000
	}

	return int64(math.Float64bits(f)) //nolint:gosec
}

// compareLexicalUUID compares the most and then least significant halves as
// signed 64-bit integers.
func compareLexicalUUID(a, b []byte) int {
	engine := endian.GetBigEndianEngine()
	if c := cmp.Compare(int64(engine.Uint64(a[:8])), int64(engine.Uint64(b[:8]))); c != 0 { //nolint:gosec
		return c
	}

	return cmp.Compare(int64(engine.Uint64(a[8:16])), int64(engine.Uint64(b[8:16]))) //nolint:gosec
}

// compareTimeUUID orders version 1 UUIDs by timestamp, falling back to the raw
// bytes so that distinct UUIDs with the same timestamp still have a total order.
func compareTimeUUID(a, b []byte) int {
	if c := cmp.Compare(uuidTimestamp(a), uuidTimestamp(b)); c != 0 {
		return c
	}

	return bytes.Compare(a[:16], b[:16])
}

// uuidTimestamp reassembles the 60-bit timestamp of a version 1 UUID from its
// time_hi (low 12 bits of bytes 6-7), time_mid (bytes 4-5) and time_low (bytes 0-3).
func uuidTimestamp(u []byte) uint64 {
	return uint64(u[6]&0x0f)<<56 |
		uint64(u[7])<<48 |
		uint64(u[4])<<40 |
		uint64(u[5])<<32 |
		uint64(u[0])<<24 |
		uint64(u[1])<<16 |
		uint64(u[2])<<8 |
		uint64(u[3])
}

// compareUTF16 orders UTF-8 text by the UTF-16 code units of the decoded strings.
//
// This differs from byte order for supplementary characters: U+10000 and above
// encode to surrogates 0xD800-0xDFFF and so sort below U+E000-U+FFFF.
func compareUTF16(a, b []byte) int {
	for len(a) > 0 && len(b) > 0 {
		ra, na := utf8.DecodeRune(a)
		rb, nb := utf8.DecodeRune(b)
		a, b = a[na:], b[nb:]
		if ra == rb {
			continue
		}

		ha, la := utf16Units(ra)
		hb, lb := utf16Units(rb)
		if ha != hb {
			return cmp.Compare(ha, hb)
		}
		// same high surrogate; both runes are supplementary
		return cmp.Compare(la, lb)
	}

	switch {
	case len(a) > 0:
		return 1
	case len(b) > 0:
		return -1
	default:
		return 0
	}
}

// utf16Units returns the first and second UTF-16 code unit of r. For runes in the
// basic multilingual plane the second unit is zero.
func utf16Units(r rune) (uint16, uint16) {
	if r1, r2 := utf16.EncodeRune(r); r1 != utf8.RuneError {
		return uint16(r1), uint16(r2) //nolint:gosec
	}

	return uint16(r), 0 //nolint:gosec
}
