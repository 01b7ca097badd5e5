package fib_test

import (
	"fmt"

	"github.com/katalvlaran/bugdrill/fib"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleFib
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Read off two positions in the sequence 0, 1, 1, 2, 3, 5, 8, 13,
//	21, 34, 55, … — the index selects the value at that position.
func ExampleFib() {
	fmt.Println(fib.Fib(6))
	fmt.Println(fib.Fib(10))
	// Output:
	// 8
	// 55
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleFib_base
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Non-positive indices are a defined base, not an error: every
//	n ≤ 0 yields 0.
func ExampleFib_base() {
	fmt.Println(fib.Fib(0), fib.Fib(-7))
	// Output:
	// 0 0
}
