package section

import "github.com/arloliu/compkey/errs"

// CompositeHeader is the 4-byte prefix of a composite key.
type CompositeHeader struct {
	Magic   [3]byte // byte offset 0-2
	Version uint8   // byte offset 3
}

// NewCompositeHeader returns the header written by this version of the format.
func NewCompositeHeader() CompositeHeader {
	return CompositeHeader{
		Magic:   [3]byte{MagicComposite0, MagicComposite1, MagicComposite2},
		Version: CompositeVersion,
	}
}

// AppendTo appends the serialized header to buf.
func (h CompositeHeader) AppendTo(buf []byte) []byte {
	return append(buf, h.Magic[0], h.Magic[1], h.Magic[2], h.Version)
}

// Bytes serializes the header into a new slice.
func (h CompositeHeader) Bytes() []byte {
	return h.AppendTo(make([]byte, 0, CompositeHeaderSize))
}

// Validate checks the magic and version against the values this package understands.
func (h CompositeHeader) Validate() error {
	return h.validate(h.Bytes())
}

// validate reports failures against data, the buffer the header was read from.
func (h CompositeHeader) validate(data []byte) error {
	want := NewCompositeHeader()
	for i := range h.Magic {
		if h.Magic[i] != want.Magic[i] {
			return errs.Dataf(errs.ErrValidation, data, i, "not a composite key (magic byte %d is 0x%02x, expected 0x%02x)", i, h.Magic[i], want.Magic[i])
		}
	}
	if h.Version != want.Version {
		return errs.Dataf(errs.ErrValidation, data, 3, "unsupported composite version %d, expected %d", h.Version, want.Version)
	}

	return nil
}

// ParseCompositeHeader reads and validates the header at the start of data.
//
// Parameters:
//   - data: encoded composite key (must be at least CompositeHeaderSize bytes)
//
// Returns:
//   - CompositeHeader: parsed header
//   - error: errs.ErrValidation if data is too short or the magic or version is wrong
func ParseCompositeHeader(data []byte) (CompositeHeader, error) {
	if len(data) < CompositeHeaderSize {
		return CompositeHeader{}, errs.Dataf(errs.ErrValidation, data, 0, "composite key shorter than %d-byte header", CompositeHeaderSize)
	}

	h := CompositeHeader{
		Magic:   [3]byte{data[0], data[1], data[2]},
		Version: data[3],
	}
	if err := h.validate(data); err != nil {
		return CompositeHeader{}, err
	}

	return h, nil
}
