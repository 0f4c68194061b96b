package seq_test

import (
	"fmt"

	"github.com/kbukum/fnkit/seq"
)

func Example() {
	isEven := func(n int) bool { return n%2 == 0 }
	square := func(n int) int { return n * n }

	it := seq.Take(seq.Map(seq.Filter[int](seq.Range(1, 100), isEven), square), 3)
	fmt.Println(seq.Collect(it))
	// Output: [4 16 36]
}

func ExampleCompare() {
	fmt.Println(seq.Compare[int](seq.Of(1, 2), seq.Of(1, 3)))
	fmt.Println(seq.Compare[int](seq.Of(1, 2), seq.Of(1, 2, 3)))
	fmt.Println(seq.Compare[int](seq.Empty[int](), seq.Empty[int]()))
	// Output:
	// Less
	// Less
	// Equal
}
