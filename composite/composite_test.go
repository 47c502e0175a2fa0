package composite

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/compkey/errs"
	"github.com/arloliu/compkey/internal/hash"
)

func TestComposite_Accessors(t *testing.T) {
	key, err := Encode("smith", "bob", int64(1000))
	require.NoError(t, err)

	require.False(t, key.IsEmpty())
	require.Equal(t, 3, key.Len())
	require.Equal(t, []Value{UTF8("smith"), UTF8("bob"), Long(1000)}, key.Values())
	require.Equal(t, "smith,bob,1000", key.String())
	require.Equal(t, hash.Sum(key.Bytes()), key.Hash())

	require.True(t, key.Contains(UTF8("bob")))
	require.True(t, key.Contains(Long(1000)))
	require.False(t, key.Contains(ASCII("bob")))
	require.False(t, key.Contains(Long(1001)))

	var got []Value
	for v := range key.All() {
		got = append(got, v)
		break
	}
	require.Equal(t, []Value{UTF8("smith")}, got)
}

func TestComposite_Zero(t *testing.T) {
	var key Composite

	require.True(t, key.IsEmpty())
	require.Equal(t, 0, key.Len())
	require.Empty(t, key.Values())
	require.Empty(t, key.String())

	other, err := Encode(false)
	require.NoError(t, err)
	require.Equal(t, -1, key.Compare(other))
	require.Equal(t, 1, other.Compare(key))
	require.Equal(t, 0, key.Compare(Composite{}))
}

func TestComposite_CompareAndEqual(t *testing.T) {
	a, err := Encode("hello", int64(256))
	require.NoError(t, err)
	b, err := Encode("hello", int64(256))
	require.NoError(t, err)
	c, err := Encode("smith")
	require.NoError(t, err)

	require.True(t, a.Equal(b))
	require.Equal(t, a.Hash(), b.Hash())
	require.Equal(t, 0, a.Compare(b))
	require.Equal(t, -1, a.Compare(c))
	require.False(t, a.Equal(c))
}

func TestFromBytes(t *testing.T) {
	key, err := Encode(int64(5), "x")
	require.NoError(t, err)

	wrapped, err := FromBytes(key.Bytes())
	require.NoError(t, err)
	require.True(t, wrapped.Equal(key))

	empty, err := FromBytes(nil)
	require.NoError(t, err)
	require.True(t, empty.IsEmpty())

	headerOnly, err := FromBytes(withHeader())
	require.NoError(t, err)
	require.True(t, headerOnly.IsEmpty())

	_, err = FromBytes([]byte("no"))
	require.ErrorIs(t, err, errs.ErrValidation)
}

func TestBounds(t *testing.T) {
	lower, err := LowerBound("smith")
	require.NoError(t, err)
	require.Equal(t, []Value{UTF8("smith"), MatchMinimum}, lower.Values())

	upper, err := UpperBound("smith")
	require.NoError(t, err)
	require.Equal(t, []Value{UTF8("smith"), MatchMaximum}, upper.Values())

	lo, hi, err := Bounds("smith")
	require.NoError(t, err)
	require.True(t, lo.Equal(lower))
	require.True(t, hi.Equal(upper))

	// an empty prefix brackets every non-empty key
	lo, hi, err = Bounds()
	require.NoError(t, err)
	key, err := Encode(true)
	require.NoError(t, err)
	require.Equal(t, -1, lo.Compare(key))
	require.Equal(t, 1, hi.Compare(key))

	_, _, err = Bounds(struct{}{})
	require.ErrorIs(t, err, errs.ErrUnsupportedValue)
}

func TestComposite_ConcurrentUse(t *testing.T) {
	keys := make([]Composite, 0, 64)
	for i := range 64 {
		key, err := Encode("tenant", int64(i))
		require.NoError(t, err)
		keys = append(keys, key)
	}

	var wg sync.WaitGroup
	for w := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 1; i < len(keys); i++ {
				if keys[i-1].Compare(keys[i]) != -1 {
					t.Errorf("worker %d: keys %d and %d out of order", w, i-1, i)
				}
			}
		}()
	}
	wg.Wait()
}
