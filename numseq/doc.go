// Package numseq provides numeric aggregation over sequences of
// float64 values: the arithmetic mean and the maximum element.
//
// What:
//
//   - Average: sum divided by count, full float64 precision, no rounding.
//   - Max: linear scan keeping a running best-so-far; ties keep the
//     earliest occurrence.
//
// Why:
//
//   - Summaries of measurement batches, scores, samples.
//   - A minimal, contract-first warm-up for edge-case reasoning.
//
// Edge cases (contracts, not errors):
//
//   - Average of an empty slice is 0 — a defined sentinel value.
//   - Max of an empty slice reports "no value" through its second
//     comma-ok result; 0 is never used as a stand-in, so legitimate
//     negative maxima stay unambiguous.
//
// Complexity:
//
//   - Average: O(n) time, O(1) memory.
//   - Max:     O(n) time, O(1) memory.
//
// Both functions are pure: inputs are never mutated and no state is
// shared between calls.
package numseq
