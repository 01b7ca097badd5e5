package textscan

import "strings"

// vowels is the recognized vowel set: no 'y', no accented letters.
const vowels = "aeiou"

// IsPalindrome reports whether text reads the same forwards and
// backwards once lower-cased and with space characters removed.
// Punctuation other than spaces is kept and must mirror too.
//
// Empty text and single-rune text are palindromes by definition.
func IsPalindrome(text string) bool {
	norm := strings.ReplaceAll(strings.ToLower(text), " ", "")

	return norm == reverse(norm)
}

// CountVowels returns the exact number of vowel occurrences in text,
// case-insensitively. No offset of any kind is applied: the result is
// the literal count, 0 for vowel-free or empty text.
func CountVowels(text string) int {
	count := 0
	for _, r := range strings.ToLower(text) {
		if strings.ContainsRune(vowels, r) {
			count++
		}
	}

	return count
}

// reverse returns s with its runes in reverse order.
// Operating on runes keeps multi-byte characters intact.
func reverse(s string) string {
	runes := []rune(s)
	for l, r := 0, len(runes)-1; l < r; l, r = l+1, r-1 {
		runes[l], runes[r] = runes[r], runes[l]
	}

	return string(runes)
}
