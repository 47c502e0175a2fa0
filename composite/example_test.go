package composite_test

import (
	"fmt"

	"github.com/arloliu/compkey/composite"
)

func ExampleEncode() {
	key, err := composite.Encode("smith", "bob", int64(1000))
	if err != nil {
		panic(err)
	}

	fmt.Printf("%x\n", key.Bytes())
	fmt.Println(key)
	// Output:
	// 434d5001080005736d697468080003626f620300000000000003e800
	// smith,bob,1000
}

func ExampleCompare() {
	a, _ := composite.Encode("smith", "bob", int64(1000))
	b, _ := composite.Encode("hello", int64(256))

	c, err := composite.Compare(a.Bytes(), b.Bytes())
	if err != nil {
		panic(err)
	}
	fmt.Println(c)
	// Output: 1
}

func ExampleLowerBound() {
	lo, _ := composite.LowerBound(int64(256))
	hi, _ := composite.UpperBound(int64(256))

	for _, v := range []any{int64(255), int64(256), []any{int64(256), "x"}, int64(257)} {
		var key composite.Composite
		if values, ok := v.([]any); ok {
			key, _ = composite.Encode(values...)
		} else {
			key, _ = composite.Encode(v)
		}
		inRange := lo.Compare(key) <= 0 && key.Compare(hi) < 0
		fmt.Printf("%s: %v\n", key, inRange)
	}
	// Output:
	// 255: false
	// 256: true
	// 256,x: true
	// 257: false
}

func ExampleBuilder() {
	b, err := composite.NewBuilder()
	if err != nil {
		panic(err)
	}

	key, err := b.AppendUTF8("orders").AppendLong(42).AppendMatchMaximum().Freeze()
	if err != nil {
		panic(err)
	}

	for v := range key.All() {
		fmt.Printf("%s %s\n", v.Tag(), v)
	}
	// Output:
	// UTF8 orders
	// Long 42
	// MatchMaximum MatchMaximum
}
