// Package drill is the verification harness: it runs every bugdrill
// function against a fixed table of sample inputs, compares each
// actual result to a hard-coded expected literal, and reports.
//
// What:
//
//   - A built-in, ordered case table covering numseq, textscan and fib
//     (the documented scenarios plus the empty-input boundaries).
//   - Run(w): evaluates all cases, writes one PASS/FAIL line per case
//     and an aggregate "all passed"/"some failed" line to w, and
//     returns a Summary for programmatic inspection.
//
// Comparison rules:
//
//   - Floating-point results use an absolute tolerance of 1e-9.
//   - Integers and booleans compare exactly.
//   - Max's empty-input case asserts on the comma-ok "no value"
//     signal, rendered as "none".
//
// The harness never halts early: a failing case is recorded and the
// next case still runs. There is no retry, no recovery, and no process
// exit code beyond the text itself.
package drill
