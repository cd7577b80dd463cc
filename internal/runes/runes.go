// Package runes provides rune-slice helpers shared by the basis and edit
// packages.
//
// Every function here is rune-count-preserving: one input scalar always
// maps to exactly one output scalar. That property is load-bearing for
// callers that use these helpers to fold text before running an
// index-based alignment — a fold that could expand or contract a string
// (as locale-correct Unicode casers sometimes do, e.g. German "ß" to
// "SS" under full uppercasing) would desynchronize the resulting indices
// from the original text's index space.
package runes

import "unicode"

// Fold returns the simple case fold of r, used to compare two scalars
// without regard to letter case. It never changes the number of scalars
// a string decomposes into, unlike full Unicode case folding.
func Fold(r rune) rune {
	return unicode.ToLower(r)
}

// EqualFold reports whether a and b are the same scalar once case is
// disregarded.
func EqualFold(a, b rune) bool {
	return a == b || Fold(a) == Fold(b)
}

// FoldString returns s with every scalar replaced by its simple case
// fold, preserving rune count.
func FoldString(s string) string {
	rs := []rune(s)
	for i, r := range rs {
		rs[i] = Fold(r)
	}
	return string(rs)
}

// CommonPrefixLen returns the number of leading runes shared by a and b
// under case-folded comparison.
func CommonPrefixLen(a, b []rune) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	i := 0
	for i < n && EqualFold(a[i], b[i]) {
		i++
	}
	return i
}

// CommonSuffixLen returns the number of trailing runes shared by a and b
// under case-folded comparison, without overlapping a prefix of length
// prefixLen already consumed from the front of either slice.
func CommonSuffixLen(a, b []rune, prefixLen int) int {
	i, j := len(a)-1, len(b)-1
	n := 0
	for i >= prefixLen && j >= prefixLen && EqualFold(a[i], b[j]) {
		i--
		j--
		n++
	}
	return n
}

// IntToInt32 safely narrows n to int32.
//
// Panics if n is out of int32 range, which indicates a caller passed an
// input far beyond anything this engine's combinatorial math core could
// ever finish analyzing.
func IntToInt32(n int) int32 {
	if n < -(1<<31) || n > (1<<31-1) {
		panic("runes: integer overflow converting int to int32")
	}
	return int32(n)
}
