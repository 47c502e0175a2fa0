package section

import (
	"testing"

	"github.com/arloliu/compkey/errs"
	"github.com/arloliu/compkey/format"
	"github.com/stretchr/testify/require"
)

func TestSnapshotHeader_RoundTrip(t *testing.T) {
	h := NewSnapshotHeader(format.CompressionLZ4)
	h.KeyCount = 42
	h.RawSize = 1234
	h.Checksum = 0x0102030405060708

	data := h.Bytes()
	require.Len(t, data, SnapshotHeaderSize)
	require.Equal(t, []byte{'C', 'K', 'S', 1, byte(format.CompressionLZ4), 0, 0, 0}, data[:8])
	require.Equal(t, []byte{1, 2, 3, 4, 5, 6, 7, 8}, data[16:24])

	parsed, err := ParseSnapshotHeader(data)
	require.NoError(t, err)
	require.Equal(t, *h, parsed)
}

func TestSnapshotHeader_ParseErrors(t *testing.T) {
	valid := NewSnapshotHeader(format.CompressionZstd).Bytes()

	corrupt := func(off int, b byte) []byte {
		data := append([]byte(nil), valid...)
		data[off] = b

		return data
	}

	tests := []struct {
		name string
		data []byte
	}{
		{"TooShort", valid[:SnapshotHeaderSize-1]},
		{"BadMagic", corrupt(1, 'X')},
		{"BadVersion", corrupt(3, 9)},
		{"UnknownCompression", corrupt(4, 0x7f)},
		{"ReservedNotZero", corrupt(6, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var h SnapshotHeader
			require.ErrorIs(t, h.Parse(tt.data), errs.ErrValidation)
		})
	}
}
