package composite

import (
	"errors"
	"math"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/compkey/errs"
	"github.com/arloliu/compkey/section"
)

var header = []byte{section.MagicComposite0, section.MagicComposite1, section.MagicComposite2, section.CompositeVersion}

func withHeader(body ...byte) []byte {
	return append(append([]byte{}, header...), body...)
}

func TestDecode_RoundTrip(t *testing.T) {
	u := uuid.MustParse("f81d4fae-7dec-11d0-a765-00a0c91e6bf6")

	values := []Value{
		Bool(false),
		Long(math.MinInt64),
		Long(math.MaxInt64),
		Double(math.Inf(-1)),
		Double(math.Copysign(0, -1)),
		Double(3.25),
		TimeUUID(u),
		LexicalUUID(u),
		ASCII("ascii"),
		UTF8("日本語 \U0001F600"),
		Bytes{0x00, 0xff},
		MatchMaximum,
	}

	b, err := NewBuilder()
	require.NoError(t, err)
	for _, v := range values {
		b.AppendValue(v)
	}
	key, err := b.Freeze()
	require.NoError(t, err)

	decoded, err := Decode(key.Bytes())
	require.NoError(t, err)
	require.Equal(t, values, decoded)
	require.True(t, math.Signbit(float64(decoded[4].(Double))))

	n, err := Count(key.Bytes())
	require.NoError(t, err)
	require.Equal(t, len(values), n)
}

func TestDecode_NaN(t *testing.T) {
	key, err := Encode(math.NaN())
	require.NoError(t, err)

	values, err := Decode(key.Bytes())
	require.NoError(t, err)
	require.Len(t, values, 1)
	require.True(t, math.IsNaN(float64(values[0].(Double))))
	require.True(t, Equal(values[0], Double(math.NaN())))
}

func TestDecode_BytesAreCopied(t *testing.T) {
	data := withHeader(0x09, 0x00, 0x02, 0xaa, 0xbb, 0x00)

	values, err := Decode(data)
	require.NoError(t, err)

	data[7] = 0x11
	require.Equal(t, Bytes{0xaa, 0xbb}, values[0])
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		data    []byte
		wantErr error
	}{
		{"empty", nil, nil},
		{"header only", withHeader(), nil},
		{"header and stop", withHeader(0x00), nil},
		{"too short", []byte{'C', 'M', 'P'}, errs.ErrValidation},
		{"bad magic", []byte{'X', 'M', 'P', 0x01, 0x00}, errs.ErrValidation},
		{"bad version", []byte{'C', 'M', 'P', 0x02, 0x00}, errs.ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.data)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)

			_, err = Decode(tt.data)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestDecode_Empty(t *testing.T) {
	for _, data := range [][]byte{nil, withHeader(), withHeader(0x00)} {
		values, err := Decode(data)
		require.NoError(t, err)
		require.Empty(t, values)

		n, err := Count(data)
		require.NoError(t, err)
		require.Equal(t, 0, n)
	}
}

func TestDecode_Malformed(t *testing.T) {
	tests := []struct {
		name    string
		data    []byte
		wantOff int
	}{
		{"unknown tag", withHeader(0x42), 4},
		{"unknown tag after component", withHeader(0x02, 0x01, 0x42), 6},
		{"truncated long", withHeader(0x03, 0x00, 0x00), 4},
		{"truncated uuid", withHeader(0x05, 0x01, 0x02, 0x03), 4},
		{"truncated length prefix", withHeader(0x08, 0x00), 4},
		{"payload past end", withHeader(0x08, 0x00, 0x05, 'h'), 4},
		{"missing bool payload", withHeader(0x02), 4},
		{"invalid utf8", withHeader(0x08, 0x00, 0x01, 0xff, 0x00), 4},
		{"invalid utf8 after component", withHeader(0x02, 0x01, 0x08, 0x00, 0x02, 0xc3, 0x28, 0x00), 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.data)
			require.ErrorIs(t, err, errs.ErrDecode)

			var de *errs.DataError
			require.True(t, errors.As(err, &de))
			require.Equal(t, tt.wantOff, de.Off)

			_, err = Count(tt.data)
			require.ErrorIs(t, err, errs.ErrDecode)
			require.ErrorIs(t, Verify(tt.data), errs.ErrDecode)

			_, err = FromBytes(tt.data)
			require.ErrorIs(t, err, errs.ErrDecode)
		})
	}
}

func TestDecode_StopsAtStopMarker(t *testing.T) {
	// trailing bytes after the stop marker are not part of the key
	data := withHeader(0x02, 0x01, 0x00, 0x42, 0x42)

	values, err := Decode(data)
	require.NoError(t, err)
	require.Equal(t, []Value{Bool(true)}, values)
}

func TestDecode_MissingStopMarker(t *testing.T) {
	data := withHeader(0x03, 0, 0, 0, 0, 0, 0, 0, 0x07)

	values, err := Decode(data)
	require.NoError(t, err)
	require.Equal(t, []Value{Long(7)}, values)
}

func TestAll(t *testing.T) {
	key, err := Encode("a", "b", "c")
	require.NoError(t, err)

	t.Run("early stop", func(t *testing.T) {
		var got []Value
		for v, err := range All(key.Bytes()) {
			require.NoError(t, err)
			got = append(got, v)
			if len(got) == 2 {
				break
			}
		}
		require.Equal(t, []Value{UTF8("a"), UTF8("b")}, got)
	})

	t.Run("restartable", func(t *testing.T) {
		seq := All(key.Bytes())
		for range 2 {
			var got []Value
			for v, err := range seq {
				require.NoError(t, err)
				got = append(got, v)
			}
			require.Equal(t, []Value{UTF8("a"), UTF8("b"), UTF8("c")}, got)
		}
	})

	t.Run("error yielded once", func(t *testing.T) {
		errCount, valCount := 0, 0
		for v, err := range All(withHeader(0x02, 0x00, 0x42, 0x02, 0x01)) {
			if err != nil {
				errCount++
				require.Nil(t, v)
				continue
			}
			valCount++
		}
		require.Equal(t, 1, errCount)
		require.Equal(t, 1, valCount)
	})
}

func TestDecoder(t *testing.T) {
	key, err := Encode(int64(1), "two", true)
	require.NoError(t, err)

	d, err := NewDecoder(key.Bytes())
	require.NoError(t, err)
	require.Equal(t, section.CompositeHeaderSize, d.Offset())

	v, ok, err := d.Next()
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, Long(1), v)
	require.Equal(t, section.CompositeHeaderSize+9, d.Offset())

	ok, err = d.Skip()
	require.NoError(t, err)
	require.True(t, ok)

	v, ok, err = d.Next()
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, Bool(true), v)

	v, ok, err = d.Next()
	require.NoError(t, err)
	require.False(t, ok)
	require.Nil(t, v)

	// sticky end
	_, ok, err = d.Next()
	require.NoError(t, err)
	require.False(t, ok)

	_, err = NewDecoder([]byte{'b', 'a', 'd'})
	require.ErrorIs(t, err, errs.ErrValidation)
}

func TestDecoder_StickyError(t *testing.T) {
	d, err := NewDecoder(withHeader(0x42, 0x02, 0x01))
	require.NoError(t, err)

	_, ok, err := d.Next()
	require.ErrorIs(t, err, errs.ErrDecode)
	require.False(t, ok)

	_, ok, err = d.Next()
	require.ErrorIs(t, err, errs.ErrDecode)
	require.False(t, ok)
}

func TestRender(t *testing.T) {
	tests := []struct {
		name   string
		values []any
		want   string
	}{
		{"empty", nil, ""},
		{"mixed", []any{"smith", []byte{0xde, 0xad}, int64(7), true}, "smith,dead,7,true"},
		{"double", []any{1.5, -0.25}, "1.5,-0.25"},
		{"bytes are zero padded", []any{[]byte{0x01, 0x0a}}, "010a"},
		{"placeholder", []any{int64(256), MatchMinimum}, "256,MatchMinimum"},
		{"uuid", []any{uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")}, "6ba7b810-9dad-11d1-80b4-00c04fd430c8"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, err := Encode(tt.values...)
			require.NoError(t, err)

			got, err := Render(key.Bytes())
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
			require.Equal(t, tt.want, key.String())
		})
	}

	_, err := Render(withHeader(0x42))
	require.ErrorIs(t, err, errs.ErrDecode)
}
