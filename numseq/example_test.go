package numseq_test

import (
	"fmt"

	"github.com/katalvlaran/bugdrill/numseq"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleAverage
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Average a short batch of scores, then show the empty-batch sentinel.
//
// Contract on display:
//
//	Average([]) == 0 — a defined value, not an error or a panic.
func ExampleAverage() {
	fmt.Println(numseq.Average([]float64{1, 2, 3, 4, 5}))
	fmt.Println(numseq.Average(nil))
	// Output:
	// 3
	// 0
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleMax
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Pick the greatest reading from a sensor batch; an empty batch
//	reports "no value" through the comma-ok boolean, so a legitimate
//	negative maximum is never confused with "nothing there".
func ExampleMax() {
	if best, ok := numseq.Max([]float64{-5, -2, -10, -1}); ok {
		fmt.Println("max:", best)
	}
	if _, ok := numseq.Max(nil); !ok {
		fmt.Println("empty: no value")
	}
	// Output:
	// max: -1
	// empty: no value
}
