package composite

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"math"
	"strconv"

	"github.com/google/uuid"

	"github.com/arloliu/compkey/errs"
	"github.com/arloliu/compkey/format"
)

// Value is one typed component of a composite key.
//
// The set of implementations is closed: Bool, Long, Double, TimeUUID, LexicalUUID,
// ASCII, UTF8, Bytes and Placeholder. Code that switches over a Value can rely on
// these being the only cases.
type Value interface {
	// Tag returns the component tag this value is encoded with.
	Tag() format.Tag
	// String returns the textual form used by Render.
	String() string

	isValue()
}

type (
	// Bool is encoded as a single byte, false < true.
	Bool bool
	// Long is a signed 64-bit integer.
	Long int64
	// Double is an IEEE-754 float64.
	Double float64
	// TimeUUID is a version 1 UUID, ordered by its embedded timestamp.
	TimeUUID uuid.UUID
	// LexicalUUID is a UUID ordered by its 128-bit value.
	LexicalUUID uuid.UUID
	// ASCII is US-ASCII text ordered by unsigned bytes.
	ASCII string
	// UTF8 is Unicode text ordered by its UTF-16 code units.
	UTF8 string
	// Bytes is a raw byte string ordered by unsigned bytes.
	Bytes []byte
	// Placeholder is a range-bound sentinel; see MatchMinimum and MatchMaximum.
	Placeholder format.Tag
)

const (
	// MatchMinimum sorts below every real component at its position, and below the
	// end of a shorter key. Append it last to build an inclusive lower scan bound.
	MatchMinimum = Placeholder(format.TagMatchMinimum)
	// MatchMaximum sorts above every component at its position. Append it last to
	// build an exclusive upper scan bound.
	MatchMaximum = Placeholder(format.TagMatchMaximum)
)

var (
	_ Value = Bool(false)
	_ Value = Long(0)
	_ Value = Double(0)
	_ Value = TimeUUID{}
	_ Value = LexicalUUID{}
	_ Value = ASCII("")
	_ Value = UTF8("")
	_ Value = Bytes(nil)
	_ Value = MatchMinimum
)

func (Bool) Tag() format.Tag        { return format.TagBool }
func (Long) Tag() format.Tag        { return format.TagLong }
func (Double) Tag() format.Tag      { return format.TagDouble }
func (TimeUUID) Tag() format.Tag    { return format.TagTimeUUID }
func (LexicalUUID) Tag() format.Tag { return format.TagLexicalUUID }
func (ASCII) Tag() format.Tag       { return format.TagASCII }
func (UTF8) Tag() format.Tag        { return format.TagUTF8 }
func (Bytes) Tag() format.Tag       { return format.TagBytes }
func (p Placeholder) Tag() format.Tag {
	return format.Tag(p)
}

func (Bool) isValue()        {}
func (Long) isValue()        {}
func (Double) isValue()      {}
func (TimeUUID) isValue()    {}
func (LexicalUUID) isValue() {}
func (ASCII) isValue()       {}
func (UTF8) isValue()        {}
func (Bytes) isValue()       {}
func (Placeholder) isValue() {}

func (v Bool) String() string        { return strconv.FormatBool(bool(v)) }
func (v Long) String() string        { return strconv.FormatInt(int64(v), 10) }
func (v Double) String() string      { return strconv.FormatFloat(float64(v), 'g', -1, 64) }
func (v TimeUUID) String() string    { return uuid.UUID(v).String() }
func (v LexicalUUID) String() string { return uuid.UUID(v).String() }
func (v ASCII) String() string       { return string(v) }
func (v UTF8) String() string        { return string(v) }
func (v Bytes) String() string       { return hex.EncodeToString(v) }

func (p Placeholder) String() string {
	return format.Tag(p).String()
}

// ValueOf converts a native Go value into a Value.
//
// Conversions:
//   - bool → Bool
//   - int, int8, int16, int32, int64, uint8, uint16, uint32 → Long
//   - uint, uint64 → Long when the value fits in int64
//   - float32, float64 → Double
//   - string → UTF8
//   - []byte → Bytes
//   - uuid.UUID → TimeUUID for version 1, LexicalUUID otherwise
//   - any Value → itself
//
// Returns:
//   - Value: the converted value
//   - error: errs.ErrUnsupportedValue for any other type
func ValueOf(v any) (Value, error) {
	switch x := v.(type) {
	case Value:
		if p, ok := x.(Placeholder); ok && !format.Tag(p).IsPlaceholder() {
			return nil, fmt.Errorf("%w: placeholder with tag %s", errs.ErrUnsupportedValue, format.Tag(p))
		}

		return x, nil
	case bool:
		return Bool(x), nil
	case int:
		return Long(x), nil
	case int8:
		return Long(x), nil
	case int16:
		return Long(x), nil
	case int32:
		return Long(x), nil
	case int64:
		return Long(x), nil
	case uint8:
		return Long(x), nil
	case uint16:
		return Long(x), nil
	case uint32:
		return Long(x), nil
	case uint:
		if uint64(x) > math.MaxInt64 {
			return nil, fmt.Errorf("%w: uint %d overflows int64", errs.ErrUnsupportedValue, x)
		}

		return Long(x), nil //nolint:gosec
	case uint64:
		if x > math.MaxInt64 {
			return nil, fmt.Errorf("%w: uint64 %d overflows int64", errs.ErrUnsupportedValue, x)
		}

		return Long(x), nil //nolint:gosec
	case float32:
		return Double(x), nil
	case float64:
		return Double(x), nil
	case string:
		return UTF8(x), nil
	case []byte:
		return Bytes(x), nil
	case uuid.UUID:
		return UUIDValue(x), nil
	default:
		return nil, fmt.Errorf("%w: %T", errs.ErrUnsupportedValue, v)
	}
}

// UUIDValue classifies u by its version field: version 1 UUIDs carry a timestamp
// and become TimeUUID, all others become LexicalUUID.
func UUIDValue(u uuid.UUID) Value {
	if u.Version() == 1 {
		return TimeUUID(u)
	}

	return LexicalUUID(u)
}

// Equal reports whether a and b are the same value. Values of different types are
// never equal, even when their textual forms match.
func Equal(a, b Value) bool {
	switch x := a.(type) {
	case Bytes:
		y, ok := b.(Bytes)
		return ok && bytes.Equal(x, y)
	case Double:
		y, ok := b.(Double)
		return ok && compareDouble(float64(x), float64(y)) == 0
	default:
		return a == b
	}
}
