package drill_test

import (
	"os"

	"github.com/katalvlaran/bugdrill/drill"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleRun
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	The whole harness, exactly as cmd/bugdrill invokes it: every
//	built-in case in order, then the divider and the aggregate line.
func ExampleRun() {
	drill.Run(os.Stdout)
	// Output:
	// PASS  average([1 2 3 4 5]): 3 == 3
	// PASS  average([]): 0 == 0
	// PASS  max([1 5 3 9 2]): 9 == 9
	// PASS  max([]): none == none
	// PASS  palindrome("radar"): true == true
	// PASS  palindrome("Never odd or even"): true == true
	// PASS  vowels("hello world"): 3 == 3
	// PASS  fib(6): 8 == 8
	// PASS  fib(10): 55 == 55
	// ----------------------------------------
	// all passed (9/9)
}
