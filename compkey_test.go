package compkey

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/compkey/composite"
	"github.com/arloliu/compkey/errs"
	"github.com/arloliu/compkey/format"
	"github.com/arloliu/compkey/keyset"
)

func TestEncodeDecode(t *testing.T) {
	key, err := Encode("smith", "bob", int64(1000))
	require.NoError(t, err)

	values, err := Decode(key.Bytes())
	require.NoError(t, err)
	require.Equal(t, []composite.Value{composite.UTF8("smith"), composite.UTF8("bob"), composite.Long(1000)}, values)

	var fromAll []composite.Value
	for v, err := range All(key.Bytes()) {
		require.NoError(t, err)
		fromAll = append(fromAll, v)
	}
	require.Equal(t, values, fromAll)

	s, err := Render(key.Bytes())
	require.NoError(t, err)
	require.Equal(t, "smith,bob,1000", s)
}

func TestNewBuilder(t *testing.T) {
	b, err := NewBuilder(composite.WithStrictASCII(true))
	require.NoError(t, err)

	key, err := b.AppendLong(256).AppendMatchMinimum().Freeze()
	require.NoError(t, err)

	other, err := Encode(int64(256), int64(0))
	require.NoError(t, err)

	c, err := Compare(key.Bytes(), other.Bytes())
	require.NoError(t, err)
	require.Equal(t, -1, c)
}

func TestCompare(t *testing.T) {
	a, err := Encode("smith", "bob", int64(1000))
	require.NoError(t, err)
	b, err := Encode("hello", int64(256))
	require.NoError(t, err)

	c, err := Compare(a.Bytes(), b.Bytes())
	require.NoError(t, err)
	require.Equal(t, 1, c)

	_, err = Compare([]byte("bad"), a.Bytes())
	require.ErrorIs(t, err, errs.ErrValidation)
}

func TestValidate(t *testing.T) {
	require.NoError(t, Validate(nil))
	require.ErrorIs(t, Validate([]byte("CMP\x02")), errs.ErrValidation)
}

func TestBounds(t *testing.T) {
	lo, err := LowerBound("alpha")
	require.NoError(t, err)
	hi, err := UpperBound("alpha")
	require.NoError(t, err)

	key, err := Encode("alpha")
	require.NoError(t, err)
	withMax, err := Encode("alpha", MatchMaximum)
	require.NoError(t, err)
	withMin, err := Encode("alpha", MatchMinimum)
	require.NoError(t, err)

	require.True(t, withMax.Equal(hi))
	require.True(t, withMin.Equal(lo))
	require.Equal(t, -1, lo.Compare(key))
	require.Equal(t, -1, key.Compare(hi))
}

func TestNewKeySet(t *testing.T) {
	set, err := NewKeySet(keyset.WithCompression(format.CompressionS2))
	require.NoError(t, err)

	_, err = set.Add("b")
	require.NoError(t, err)
	_, err = set.Add("a")
	require.NoError(t, err)

	minKey, ok := set.Min()
	require.True(t, ok)
	require.Equal(t, "a", minKey.String())
}
