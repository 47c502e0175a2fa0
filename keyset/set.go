package keyset

import (
	"iter"
	"sync"

	"github.com/google/btree"

	"github.com/arloliu/compkey/composite"
	"github.com/arloliu/compkey/internal/options"
)

// Set is an ordered set of composite keys.
//
// Keys are kept in composite order. Keys that compare equal are the same member even
// when their encodings differ, such as a key with and without its stop marker; the
// most recent insert wins.
//
// Set is safe for concurrent use. Iterators run over a copy-on-write snapshot taken
// when iteration starts, so the set may be modified while iterating.
type Set struct {
	mu   sync.RWMutex
	tree *btree.BTreeG[composite.Composite]
	cfg  config
}

func less(a, b composite.Composite) bool {
	return composite.MustCompare(a.Bytes(), b.Bytes()) < 0
}

// New creates an empty set.
//
// Parameters:
//   - opts: optional configuration (WithDegree, WithCompression)
//
// Returns:
//   - *Set: the empty set
//   - error: invalid option value
func New(opts ...Option) (*Set, error) {
	cfg := defaultConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	return &Set{
		tree: btree.NewG(cfg.degree, less),
		cfg:  cfg,
	}, nil
}

// Insert adds key to the set and reports whether it was not already present.
func (s *Set) Insert(key composite.Composite) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, replaced := s.tree.ReplaceOrInsert(key)

	return !replaced
}

// InsertBytes verifies an encoded key and adds it to the set.
//
// Returns:
//   - bool: true if the key was not already present
//   - error: errs.ErrValidation or errs.ErrDecode for a malformed key
func (s *Set) InsertBytes(data []byte) (bool, error) {
	key, err := composite.FromBytes(data)
	if err != nil {
		return false, err
	}

	return s.Insert(key), nil
}

// Add encodes values into a key and adds it to the set.
func (s *Set) Add(values ...any) (bool, error) {
	key, err := composite.Encode(values...)
	if err != nil {
		return false, err
	}

	return s.Insert(key), nil
}

// Delete removes key and reports whether it was present.
func (s *Set) Delete(key composite.Composite) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.tree.Delete(key)

	return ok
}

// Has reports whether key is in the set.
func (s *Set) Has(key composite.Composite) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.tree.Has(key)
}

// Len returns the number of keys.
func (s *Set) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.tree.Len()
}

// Clear removes every key.
func (s *Set) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tree.Clear(false)
}

// Min returns the smallest key, or false if the set is empty.
func (s *Set) Min() (composite.Composite, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.tree.Min()
}

// Max returns the largest key, or false if the set is empty.
func (s *Set) Max() (composite.Composite, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.tree.Max()
}

// Ascend returns an iterator over every key in ascending order.
func (s *Set) Ascend() iter.Seq[composite.Composite] {
	return func(yield func(composite.Composite) bool) {
		s.snapshot().Ascend(yield)
	}
}

// Descend returns an iterator over every key in descending order.
func (s *Set) Descend() iter.Seq[composite.Composite] {
	return func(yield func(composite.Composite) bool) {
		s.snapshot().Descend(yield)
	}
}

// Range returns an iterator over the keys k with lower <= k < upper.
func (s *Set) Range(lower, upper composite.Composite) iter.Seq[composite.Composite] {
	return func(yield func(composite.Composite) bool) {
		s.snapshot().AscendRange(lower, upper, yield)
	}
}

// ScanPrefix returns an iterator over every key whose leading components equal prefix.
//
// The scan runs from prefix + MatchMinimum up to, but excluding, prefix + MatchMaximum.
// An empty prefix scans the whole set, including the empty key, which sorts below
// every bound.
//
// Returns:
//   - iter.Seq[composite.Composite]: keys in ascending order
//   - error: errs.ErrUnsupportedValue if a prefix value cannot be encoded
func (s *Set) ScanPrefix(prefix ...any) (iter.Seq[composite.Composite], error) {
	if len(prefix) == 0 {
		return s.Ascend(), nil
	}

	lower, upper, err := composite.Bounds(prefix...)
	if err != nil {
		return nil, err
	}

	return s.Range(lower, upper), nil
}

// Keys returns every key in ascending order.
func (s *Set) Keys() []composite.Composite {
	tree := s.snapshot()
	keys := make([]composite.Composite, 0, tree.Len())
	tree.Ascend(func(k composite.Composite) bool {
		keys = append(keys, k)
		return true
	})

	return keys
}

// snapshot returns a lazy copy-on-write clone of the tree. Clone writes to the
// original's node ownership, so it takes the write lock.
func (s *Set) snapshot() *btree.BTreeG[composite.Composite] {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.tree.Clone()
}
