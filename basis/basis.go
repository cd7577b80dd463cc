// Package basis implements the math core: it computes an index-level
// alignment between a compared text and an accurate reference text.
//
// The algorithm, in order:
//
//  1. Fast paths: equal strings after case folding need no further work;
//     a common prefix/suffix is stripped and the remaining inner slices
//     recursed on, then re-stitched.
//  2. Enumeration: every compared-text scalar that also occurs in the
//     accurate text is a candidate for one of the accurate-text
//     positions holding that scalar. All consistent choices are
//     explored by backtracking, under one constraint — see
//     enumerate.go — that keeps the search from blowing up into pure
//     permutations of identical scalars.
//  3. For each such raw sequence, the longest strictly-increasing
//     subsequence is extracted (lis.go), breaking ties toward the
//     lexicographically smallest result.
//  4. The raw-sequence/subsequence pair with the longest subsequence,
//     and among those the smallest element sum, is selected as the
//     Basis (pair.go).
//
// This is combinatorial in the number of times each scalar repeats in
// the compared text: a run of k identical scalars with m candidate
// positions in the accurate text contributes C(m+k-1, k) raw sequences,
// multiplied across every distinct scalar. Implementations (this one
// included) must not "optimize" by returning a shorter subsequence to
// dodge the cost — callers are expected to pre-split long inputs (for
// example into words) before calling Calculate, and may additionally
// bound the search with Limits.
package basis

import "github.com/coregx/typocore/internal/runes"

// unmapped is the sentinel Sequence entry meaning "this compared
// position does not correspond to any accurate position".
const unmapped = -1

// Basis is the math core's output: four index arrays over the accurate
// text's positions.
type Basis struct {
	// SourceSequence is [0, 1, ..., len(accurate)-1].
	SourceSequence []int

	// Sequence has length len(compared); each entry is either the
	// chosen accurate-text index for that compared position, or
	// unmapped (-1).
	Sequence []int

	// Subsequence is the longest strictly-increasing run extracted from
	// Sequence's non-unmapped entries, chosen per the tie-break rule
	// documented on this package.
	Subsequence []int

	// MissingElements are the elements of SourceSequence that do not
	// appear in Subsequence — the accurate-text positions left
	// uncovered by the alignment.
	MissingElements []int
}

// Limits bounds the combinatorial enumeration inside Calculate.
type Limits struct {
	// MaxRawSequences caps the number of raw sequences considered. 0
	// means unbounded. When the cap is hit, Calculate stops exploring
	// further raw sequences and returns the best pair found among those
	// already enumerated.
	MaxRawSequences int
}

// Calculate computes the Basis aligning compared against accurate. Both
// are folded to a common case before any matching decision — case
// differences never influence Sequence or Subsequence.
func Calculate(compared, accurate string, limits Limits) Basis {
	a := []rune(accurate)
	c := []rune(compared)
	return calculateRunes(c, a, limits)
}

func calculateRunes(compared, accurate []rune, limits Limits) Basis {
	source := sourceSequence(len(accurate))

	foldedC := foldAll(compared)
	foldedA := foldAll(accurate)

	if runeSlicesEqual(foldedC, foldedA) {
		return Basis{
			SourceSequence:  source,
			Sequence:        append([]int(nil), source...),
			Subsequence:     append([]int(nil), source...),
			MissingElements: []int{},
		}
	}

	prefix := runes.CommonPrefixLen(foldedC, foldedA)
	suffix := runes.CommonSuffixLen(foldedC, foldedA, prefix)

	innerC := foldedC[prefix : len(foldedC)-suffix]
	innerA := foldedA[prefix : len(foldedA)-suffix]

	var innerSeq, innerSub []int
	if len(innerC) == 0 || len(innerA) == 0 {
		innerSeq = make([]int, len(innerC))
		for i := range innerSeq {
			innerSeq[i] = unmapped
		}
		innerSub = []int{}
	} else {
		pair := bestPair(innerC, innerA, limits)
		innerSeq = pair.sequence
		innerSub = pair.subsequence
	}

	sequence := make([]int, 0, len(compared))
	for i := 0; i < prefix; i++ {
		sequence = append(sequence, i)
	}
	for _, v := range innerSeq {
		if v == unmapped {
			sequence = append(sequence, unmapped)
		} else {
			sequence = append(sequence, v+prefix)
		}
	}
	for i := 0; i < suffix; i++ {
		sequence = append(sequence, len(accurate)-suffix+i)
	}

	subsequence := make([]int, 0, len(innerSub)+prefix+suffix)
	for i := 0; i < prefix; i++ {
		subsequence = append(subsequence, i)
	}
	for _, v := range innerSub {
		subsequence = append(subsequence, v+prefix)
	}
	for i := 0; i < suffix; i++ {
		subsequence = append(subsequence, len(accurate)-suffix+i)
	}

	return Basis{
		SourceSequence:  source,
		Sequence:        sequence,
		Subsequence:     subsequence,
		MissingElements: missingElements(source, subsequence),
	}
}

func sourceSequence(n int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = i
	}
	return s
}

func foldAll(rs []rune) []rune {
	out := make([]rune, len(rs))
	for i, r := range rs {
		out[i] = runes.Fold(r)
	}
	return out
}

func runeSlicesEqual(a, b []rune) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// missingElements returns the elements of source not present in
// subsequence. subsequence is assumed sorted strictly increasing (an
// invariant Calculate always maintains), so this runs in linear time.
func missingElements(source, subsequence []int) []int {
	missing := make([]int, 0, len(source)-len(subsequence))
	j := 0
	for _, v := range source {
		if j < len(subsequence) && subsequence[j] == v {
			j++
			continue
		}
		missing = append(missing, v)
	}
	return missing
}

// CountCommonChars returns the sum, over every distinct scalar, of the
// minimum of its occurrence counts in c and a, after case folding. It is
// symmetric in c and a and invariant under letter-case changes.
func CountCommonChars(c, a string) int {
	cCounts := countRunes([]rune(c))
	aCounts := countRunes([]rune(a))

	total := 0
	for r, n := range cCounts {
		if m, ok := aCounts[r]; ok {
			if m < n {
				total += m
			} else {
				total += n
			}
		}
	}
	return total
}

func countRunes(rs []rune) map[rune]int {
	counts := make(map[rune]int, len(rs))
	for _, r := range rs {
		counts[runes.Fold(r)]++
	}
	return counts
}
