package composite

import (
	"bytes"
	"iter"

	"github.com/arloliu/compkey/internal/hash"
)

// Composite is a frozen, immutable composite key.
//
// The zero value is the empty composite: no header, no components, sorting below
// every non-empty key. Composites are safe to share between goroutines.
type Composite struct {
	data []byte
}

// Encode builds and freezes a composite from native Go values in one call.
// See ValueOf for the accepted types.
func Encode(values ...any) (Composite, error) {
	b, err := NewBuilder()
	if err != nil {
		return Composite{}, err
	}

	return b.AppendAll(values...).Freeze()
}

// FromBytes wraps an encoded key after checking its header and every component.
// The slice is not copied; the caller must not modify it afterwards.
//
// Returns:
//   - Composite: the wrapped key
//   - error: errs.ErrValidation for a bad header, errs.ErrDecode for a malformed component
func FromBytes(data []byte) (Composite, error) {
	if err := Verify(data); err != nil {
		return Composite{}, err
	}
	if len(data) == 0 {
		return Composite{}, nil
	}

	return Composite{data: data}, nil
}

// Bytes returns the encoded key. The returned slice must not be modified.
func (c Composite) Bytes() []byte {
	return c.data
}

// IsEmpty reports whether the composite has no components.
func (c Composite) IsEmpty() bool {
	return c.Len() == 0
}

// Len returns the number of components, placeholders included.
func (c Composite) Len() int {
	n, _ := Count(c.data)
	return n
}

// Values decodes every component.
func (c Composite) Values() []Value {
	values, _ := Decode(c.data)
	return values
}

// All returns a lazy iterator over the components.
func (c Composite) All() iter.Seq[Value] {
	return func(yield func(Value) bool) {
		for v, err := range All(c.data) {
			if err != nil || !yield(v) {
				return
			}
		}
	}
}

// Contains reports whether any component equals v.
func (c Composite) Contains(v Value) bool {
	for el := range c.All() {
		if Equal(el, v) {
			return true
		}
	}

	return false
}

// Compare orders c against other with the composite comparator.
func (c Composite) Compare(other Composite) int {
	return MustCompare(c.data, other.data)
}

// Equal reports whether both composites have identical encodings.
func (c Composite) Equal(other Composite) bool {
	return bytes.Equal(c.data, other.data)
}

// Hash returns the xxHash64 of the encoded key.
func (c Composite) Hash() uint64 {
	return hash.Sum(c.data)
}

// String renders the components separated by commas.
func (c Composite) String() string {
	s, _ := Render(c.data)
	return s
}
