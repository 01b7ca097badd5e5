// Package textscan provides small text-analysis helpers: palindrome
// detection and vowel counting.
//
// What:
//
//   - IsPalindrome: lower-case the text, strip space characters, then
//     compare the result to its own rune-wise reversal.
//   - CountVowels: lower-case the text and count runes in {a,e,i,o,u}.
//
// Normalization rules (deliberately narrow):
//
//   - Case is ignored in both functions.
//   - IsPalindrome ignores spaces (U+0020) only; commas, hyphens and
//     other punctuation are kept and compared as-is.
//   - CountVowels recognizes exactly a, e, i, o, u — no 'y', no
//     accented vowels; digits and punctuation contribute zero.
//
// Edge cases:
//
//   - Empty text and single-rune text are palindromes (trivially equal
//     to their own reversal).
//   - CountVowels of empty text is 0.
//
// Complexity: O(n) time, O(n) memory for the normalized copies.
//
// Both functions are pure and never mutate shared state.
package textscan
