// Package bugdrill is a compact practice ground of small, pure,
// stateless computations — the corrected reference for a classic
// "find the seeded bugs" exercise — paired with a verification
// harness that proves every contract holds.
//
// 🚀 What is bugdrill?
//
//	A tiny, dependency-light module that brings together:
//		• Numeric aggregation: arithmetic mean & maximum over float slices
//		• Text analysis: palindrome detection & vowel counting
//		• Sequence generation: iterative Fibonacci values
//		• A self-checking harness: fixed cases, pass/fail lines, one summary
//
// ✨ Why choose bugdrill?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Every function is pure: no shared state, no mutation of inputs
//   - Edge cases are contracts, not surprises: empty input, n ≤ 0,
//     all-negative sequences — each has a defined result
//   - Pure Go – no cgo, no hidden deps
//
// Everything is organized under four subpackages:
//
//	numseq/   — Average and Max over number sequences
//	textscan/ — IsPalindrome and CountVowels over text
//	fib/      — Fib, the nth Fibonacci value
//	drill/    — the verification harness behind cmd/bugdrill
//
// Quick taste:
//
//	numseq.Average([]float64{1, 2, 3, 4, 5}) // 3
//	textscan.IsPalindrome("Never odd or even") // true
//	fib.Fib(10) // 55
//
// Run the harness directly:
//
//	go run github.com/katalvlaran/bugdrill/cmd/bugdrill
package bugdrill
