package composite

// LowerBound encodes prefix followed by MatchMinimum.
//
// The result sorts below every key that starts with prefix, including prefix itself,
// and above every key whose components before it sort lower. Use it as the
// inclusive start of a range scan.
func LowerBound(prefix ...any) (Composite, error) {
	b, err := NewBuilder()
	if err != nil {
		return Composite{}, err
	}

	return b.AppendAll(prefix...).AppendMatchMinimum().Freeze()
}

// UpperBound encodes prefix followed by MatchMaximum.
//
// The result sorts above every key that starts with prefix. Use it as the exclusive
// end of a range scan.
func UpperBound(prefix ...any) (Composite, error) {
	b, err := NewBuilder()
	if err != nil {
		return Composite{}, err
	}

	return b.AppendAll(prefix...).AppendMatchMaximum().Freeze()
}

// Bounds returns LowerBound and UpperBound of prefix together.
func Bounds(prefix ...any) (lower Composite, upper Composite, err error) {
	if lower, err = LowerBound(prefix...); err != nil {
		return Composite{}, Composite{}, err
	}
	if upper, err = UpperBound(prefix...); err != nil {
		return Composite{}, Composite{}, err
	}

	return lower, upper, nil
}
