package composite

import (
	"iter"
	"strings"

	"github.com/arloliu/compkey/format"
	"github.com/arloliu/compkey/section"
)

// Validate checks the header of an encoded key.
//
// An empty buffer is valid: it is the "no bound" key and decodes to nothing.
//
// Returns:
//   - error: errs.ErrValidation if a non-empty buffer has a short or mismatched header
func Validate(data []byte) error {
	if len(data) == 0 {
		return nil
	}
	_, err := section.ParseCompositeHeader(data)

	return err
}

// Verify checks the header and walks every component up to the stop marker.
func Verify(data []byte) error {
	d, err := NewDecoder(data)
	if err != nil {
		return err
	}
	for {
		ok, err := d.Skip()
		if err != nil || !ok {
			return err
		}
	}
}

// Decoder is a forward-only cursor over the components of an encoded key.
//
// Note: Decoder is NOT thread-safe and NOT reusable; create one per pass.
type Decoder struct {
	data []byte
	off  int
	err  error
}

// NewDecoder validates the header of data and positions the cursor on the first component.
func NewDecoder(data []byte) (*Decoder, error) {
	if err := Validate(data); err != nil {
		return nil, err
	}

	d := &Decoder{data: data, off: len(data)}
	if len(data) > 0 {
		d.off = section.CompositeHeaderSize
	}

	return d, nil
}

// Next decodes the component under the cursor and advances past it.
//
// Returns:
//   - Value: the decoded component
//   - bool: false once the stop marker or the end of data is reached
//   - error: errs.ErrDecode for an unknown tag or truncated payload; sticky
func (d *Decoder) Next() (Value, bool, error) {
	tag, start, end, ok := d.advance()
	if !ok {
		return nil, false, d.err
	}

	return decodePayload(tag, d.data[start:end]), true, nil
}

// Skip advances past the component under the cursor without decoding it.
func (d *Decoder) Skip() (bool, error) {
	_, _, _, ok := d.advance()
	return ok, d.err
}

// Offset returns the byte offset of the cursor.
func (d *Decoder) Offset() int {
	return d.off
}

func (d *Decoder) advance() (format.Tag, int, int, bool) {
	if d.err != nil || d.off >= len(d.data) || format.Tag(d.data[d.off]) == format.TagStop {
		return 0, 0, 0, false
	}

	tag, start, end, err := span(d.data, d.off)
	if err != nil {
		d.err = err
		return 0, 0, 0, false
	}
	d.off = end

	return tag, start, end, true
}

// All returns a lazy iterator over the components of data.
//
// Every call starts a fresh cursor at the beginning of data. A malformed header or
// component is yielded once as an error, after which iteration stops.
func All(data []byte) iter.Seq2[Value, error] {
	return func(yield func(Value, error) bool) {
		d, err := NewDecoder(data)
		if err != nil {
			yield(nil, err)
			return
		}
		for {
			v, ok, err := d.Next()
			if err != nil {
				yield(nil, err)
				return
			}
			if !ok || !yield(v, nil) {
				return
			}
		}
	}
}

// Decode drains All into a slice. There is no partial result: on error the
// returned slice is nil.
func Decode(data []byte) ([]Value, error) {
	var values []Value
	for v, err := range All(data) {
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}

	return values, nil
}

// Count returns the number of components in data without decoding them.
func Count(data []byte) (int, error) {
	d, err := NewDecoder(data)
	if err != nil {
		return 0, err
	}

	n := 0
	for {
		ok, err := d.Skip()
		if err != nil {
			return 0, err
		}
		if !ok {
			return n, nil
		}
		n++
	}
}

// Render joins the textual form of every component with commas.
// Bytes render as lowercase hex.
func Render(data []byte) (string, error) {
	var sb strings.Builder
	i := 0
	for v, err := range All(data) {
		if err != nil {
			return "", err
		}
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(v.String())
		i++
	}

	return sb.String(), nil
}
