package basis

// rawPair is one enumerated raw sequence together with its longest
// increasing subsequence.
type rawPair struct {
	sequence    []int
	subsequence []int
}

// bestPair enumerates every raw sequence for compared against accurate
// (both already case-folded) and returns the pair whose subsequence is
// longest, breaking ties by smallest element sum and then by first
// occurrence in enumeration order.
func bestPair(compared, accurate []rune, limits Limits) rawPair {
	positions := positionsByChar(accurate)

	var best rawPair
	haveBest := false
	bestSum := 0

	enumerate(compared, positions, limits.MaxRawSequences, func(seq []int) {
		mapped := make([]int, 0, len(seq))
		for _, v := range seq {
			if v != unmapped {
				mapped = append(mapped, v)
			}
		}
		sub := longestIncreasing(mapped)

		if !haveBest || better(sub, bestSum, best.subsequence) {
			best = rawPair{
				sequence:    append([]int(nil), seq...),
				subsequence: sub,
			}
			bestSum = sum(sub)
			haveBest = true
		}
	})

	if !haveBest {
		seq := make([]int, len(compared))
		for i := range seq {
			seq[i] = unmapped
		}
		return rawPair{sequence: seq, subsequence: []int{}}
	}
	return best
}

// better reports whether candidate sub (whose element sum has not yet
// been computed by the caller) beats the current best, given the
// current best's precomputed sum. Strict inequalities only: an exact
// tie keeps the existing (earlier-enumerated) best.
func better(candidate []int, currentBestSum int, currentBest []int) bool {
	if len(candidate) != len(currentBest) {
		return len(candidate) > len(currentBest)
	}
	return sum(candidate) < currentBestSum
}

func sum(vs []int) int {
	s := 0
	for _, v := range vs {
		s += v
	}
	return s
}
