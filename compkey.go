// Package compkey encodes multi-part keys into byte strings whose composite order
// matches the order of their components, for storage engines that sort keys with a
// pluggable comparator.
//
// A key is a sequence of typed components: booleans, 64-bit integers, doubles, time
// and lexical UUIDs, ASCII and UTF-8 text, and raw bytes. Two placeholder components,
// MatchMinimum and MatchMaximum, bracket every key that starts with a given prefix
// and are used to build range scan bounds.
//
// # Basic Usage
//
//	import "github.com/arloliu/compkey"
//
//	key, err := compkey.Encode("smith", "bob", int64(1000))
//	if err != nil {
//	    return err
//	}
//
//	other, _ := compkey.Encode("hello", int64(256))
//	c, _ := compkey.Compare(key.Bytes(), other.Bytes()) // 1: "smith" > "hello"
//
// Decoding:
//
//	for v, err := range compkey.All(key.Bytes()) {
//	    if err != nil {
//	        return err
//	    }
//	    fmt.Println(v.Tag(), v)
//	}
//
// Range bounds:
//
//	lo, _ := compkey.LowerBound("smith") // sorts before every "smith", ... key
//	hi, _ := compkey.UpperBound("smith") // sorts after every "smith", ... key
//
// # Package Structure
//
// This package provides top-level wrappers around the composite package, which holds
// the builder, decoder and comparator. The keyset package keeps keys in an ordered
// in-memory set with compressed snapshots.
package compkey

import (
	"iter"

	"github.com/arloliu/compkey/composite"
	"github.com/arloliu/compkey/keyset"
)

// Range-bound placeholders. See composite.MatchMinimum and composite.MatchMaximum.
const (
	MatchMinimum = composite.MatchMinimum
	MatchMaximum = composite.MatchMaximum
)

// Encode builds a frozen key from native Go values. See composite.ValueOf for the
// accepted types.
func Encode(values ...any) (composite.Composite, error) {
	return composite.Encode(values...)
}

// NewBuilder creates an incremental key builder.
func NewBuilder(opts ...composite.BuilderOption) (*composite.Builder, error) {
	return composite.NewBuilder(opts...)
}

// Decode returns every component of an encoded key.
func Decode(data []byte) ([]composite.Value, error) {
	return composite.Decode(data)
}

// All returns a lazy iterator over the components of an encoded key.
func All(data []byte) iter.Seq2[composite.Value, error] {
	return composite.All(data)
}

// Validate checks the header of an encoded key. An empty buffer is valid.
func Validate(data []byte) error {
	return composite.Validate(data)
}

// Compare orders two encoded keys, returning -1, 0 or 1.
func Compare(a, b []byte) (int, error) {
	return composite.Compare(a, b)
}

// Render returns the components of an encoded key joined by commas.
func Render(data []byte) (string, error) {
	return composite.Render(data)
}

// LowerBound returns prefix followed by MatchMinimum.
func LowerBound(prefix ...any) (composite.Composite, error) {
	return composite.LowerBound(prefix...)
}

// UpperBound returns prefix followed by MatchMaximum.
func UpperBound(prefix ...any) (composite.Composite, error) {
	return composite.UpperBound(prefix...)
}

// NewKeySet creates an empty ordered key set.
func NewKeySet(opts ...keyset.Option) (*keyset.Set, error) {
	return keyset.New(opts...)
}
