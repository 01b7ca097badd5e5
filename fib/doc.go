// Package fib computes values of the Fibonacci sequence
// 0, 1, 1, 2, 3, 5, 8, 13, 21, …
//
// Definition:
//
//	F(0) = 0
//	F(1) = 1
//	F(n) = F(n−1) + F(n−2)   for n ≥ 2
//	F(n) = 0                 for n ≤ 0 (defined base, not an error)
//
// The computation is iterative with two rolling accumulators, so no
// recursion and no O(n) backing slice: only the last two values of the
// sequence are kept at any moment.
//
// Complexity: O(n) time, O(1) memory.
//
// Range: results are exact for n ≤ 92; beyond that F(n) overflows a
// 64-bit signed integer.
package fib
