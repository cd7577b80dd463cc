package basis

import "sort"

// longestIncreasing computes the longest strictly-increasing subsequence
// of vs, breaking ties toward the lexicographically smallest result.
//
// This generalizes the tails/prev construction used for an O(n log n)
// longest-increasing-subsequence (the same shape as, for instance,
// creachadair/mds's slice.LISFunc): tails[L] holds the index into vs of
// the final element of the best known subsequence of length L+1, kept
// as whichever such subsequence has the smallest final element; prev[i]
// chains back to the element before vs[i] in whichever subsequence
// currently claims it. Walking prev from the end of the longest tail
// reconstructs one concrete subsequence.
//
// The tie-break toward the smallest last element (and transitively the
// lexicographically smallest overall subsequence) falls out of always
// keeping the smallest-final-element candidate at each length — that is
// the entire point of the tails array, not an extra step bolted on.
func longestIncreasing(vs []int) []int {
	if len(vs) == 0 {
		return nil
	}

	tails := make([]int, 1, len(vs))
	prev := make([]int, len(vs))

	prev[0] = -1
	tails[0] = 0

	for i := 1; i < len(vs); i++ {
		bestTailIdx := tails[len(tails)-1]
		if vs[i] > vs[bestTailIdx] {
			// Fast path: i extends the current longest subsequence.
			prev[i] = bestTailIdx
			tails = append(tails, i)
			continue
		}

		// Otherwise vs[i] must replace the tail of some shorter
		// subsequence — find the first tail whose element is >= vs[i].
		replace := sort.Search(len(tails)-1, func(k int) bool {
			return vs[tails[k]] >= vs[i]
		})

		if replace == 0 {
			prev[i] = -1
		} else {
			prev[i] = tails[replace-1]
		}
		tails[replace] = i
	}

	out := make([]int, len(tails))
	idx := tails[len(tails)-1]
	for i := len(out) - 1; i >= 0; i-- {
		out[i] = vs[idx]
		idx = prev[idx]
	}
	return out
}
