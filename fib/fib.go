package fib

// Fib returns the nth Fibonacci value, with F(0)=0 and F(1)=1.
// All n ≤ 0 map to 0. The index is the position in the sequence
// itself: Fib(6)=8, Fib(10)=55.
//
// Exact for n ≤ 92; larger n overflows int64.
func Fib(n int) int {
	if n <= 0 {
		return 0
	}

	// prev holds F(i-1), curr holds F(i); only the last two values live.
	prev, curr := 0, 1
	for i := 2; i <= n; i++ {
		prev, curr = curr, prev+curr
	}

	return curr
}
