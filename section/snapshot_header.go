package section

import (
	"github.com/arloliu/compkey/endian"
	"github.com/arloliu/compkey/errs"
	"github.com/arloliu/compkey/format"
)

// SnapshotHeader is the fixed 24-byte header of a key set snapshot.
// All multi-byte fields are big-endian.
type SnapshotHeader struct {
	Magic       [3]byte                // byte offset 0-2
	Version     uint8                  // byte offset 3
	Compression format.CompressionType // byte offset 4
	Reserved    [3]byte                // byte offset 5-7, must be zero
	KeyCount    uint32                 // byte offset 8-11
	RawSize     uint32                 // byte offset 12-15, uncompressed payload size
	Checksum    uint64                 // byte offset 16-23, xxHash64 of the uncompressed payload
}

// NewSnapshotHeader creates a header for a snapshot compressed with the given codec.
// KeyCount, RawSize and Checksum are filled in once the payload is built.
func NewSnapshotHeader(compression format.CompressionType) *SnapshotHeader {
	return &SnapshotHeader{
		Magic:       [3]byte{MagicSnapshot0, MagicSnapshot1, MagicSnapshot2},
		Version:     SnapshotVersion,
		Compression: compression,
	}
}

// Bytes serializes the header into a new SnapshotHeaderSize slice.
func (h *SnapshotHeader) Bytes() []byte {
	b := make([]byte, SnapshotHeaderSize)
	engine := endian.GetBigEndianEngine()

	copy(b[0:3], h.Magic[:])
	b[3] = h.Version
	b[4] = byte(h.Compression)
	copy(b[5:8], h.Reserved[:])
	engine.PutUint32(b[8:12], h.KeyCount)
	engine.PutUint32(b[12:16], h.RawSize)
	engine.PutUint64(b[16:24], h.Checksum)

	return b
}

// Parse parses the header from a byte slice.
//
// Parameters:
//   - data: byte slice starting with the header (at least 24 bytes)
//
// Returns:
//   - error: errs.ErrValidation for short data, wrong magic or version, unknown
//     compression or non-zero reserved bytes
func (h *SnapshotHeader) Parse(data []byte) error {
	if len(data) < SnapshotHeaderSize {
		return errs.Dataf(errs.ErrValidation, data, 0, "snapshot shorter than %d-byte header", SnapshotHeaderSize)
	}

	engine := endian.GetBigEndianEngine()

	copy(h.Magic[:], data[0:3])
	h.Version = data[3]
	h.Compression = format.CompressionType(data[4])
	copy(h.Reserved[:], data[5:8])
	h.KeyCount = engine.Uint32(data[8:12])
	h.RawSize = engine.Uint32(data[12:16])
	h.Checksum = engine.Uint64(data[16:24])

	return h.validate(data)
}

func (h *SnapshotHeader) validate(data []byte) error {
	if h.Magic != [3]byte{MagicSnapshot0, MagicSnapshot1, MagicSnapshot2} {
		return errs.Dataf(errs.ErrValidation, data, 0, "not a key set snapshot")
	}
	if h.Version != SnapshotVersion {
		return errs.Dataf(errs.ErrValidation, data, 3, "unsupported snapshot version %d, expected %d", h.Version, SnapshotVersion)
	}
	if h.Compression.String() == "Unknown" {
		return errs.Dataf(errs.ErrValidation, data, 4, "unknown compression type 0x%02x", uint8(h.Compression))
	}
	if h.Reserved != [3]byte{} {
		return errs.Dataf(errs.ErrValidation, data, 5, "reserved bytes must be zero")
	}

	return nil
}

// ParseSnapshotHeader parses a SnapshotHeader from the start of data.
func ParseSnapshotHeader(data []byte) (SnapshotHeader, error) {
	h := SnapshotHeader{}
	if err := h.Parse(data); err != nil {
		return SnapshotHeader{}, err
	}

	return h, nil
}
