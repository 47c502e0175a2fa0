package composite

// ComparerName identifies the composite ordering to storage engines that persist
// the name of the comparator a database was created with.
const ComparerName = "compkey.CompositeType"

// Comparer adapts Compare to the Name/Compare shape expected by sorted key-value
// stores that accept a pluggable comparator.
//
// Keys handed to Comparer must be well formed; Compare panics otherwise.
type Comparer struct{}

// Name returns ComparerName.
func (Comparer) Name() string {
	return ComparerName
}

// Compare orders a and b, returning -1, 0 or 1.
func (Comparer) Compare(a, b []byte) int {
	return MustCompare(a, b)
}

// Less reports whether a sorts strictly before b.
func (Comparer) Less(a, b []byte) bool {
	return MustCompare(a, b) < 0
}
