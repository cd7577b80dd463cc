package basis

import "github.com/coregx/typocore/internal/runes"

// positionsByChar maps each scalar occurring in a (already case-folded)
// to the sorted list of positions it occupies.
func positionsByChar(a []rune) map[rune][]int32 {
	m := make(map[rune][]int32)
	for i, r := range a {
		m[r] = append(m[r], runes.IntToInt32(i))
	}
	return m
}

// enumerator explores every raw sequence consistent with the
// non-decreasing-placement constraint documented on this package, and
// reports each one (together with its originating choice) to visit.
//
// The non-decreasing constraint: within one raw sequence, the positions
// chosen for successive occurrences of the same compared scalar must
// form a non-decreasing sequence. Equivalently, since a scalar's
// candidate position list is already sorted, each occurrence picks a
// position-list index no smaller than the index the previous occurrence
// of that same scalar picked. This is what keeps the search from
// enumerating pure permutations of identical scalars, which could never
// change the eventual longest-increasing-subsequence outcome anyway.
type enumerator struct {
	compared  []rune
	positions map[rune][]int32

	// lastIdx tracks, per scalar, the position-list index the most
	// recent occurrence of that scalar (so far in the current partial
	// assignment) consumed.
	lastIdx map[rune]int

	raw     []int
	limit   int
	visited int
	stop    bool
}

// enumerate visits every raw sequence for compared against a's
// positions, calling visit(seq) for each. seq is reused between calls —
// visit must not retain it. Enumeration (and therefore seq, and the
// order visit is called in) stops early once limit raw sequences have
// been visited; limit <= 0 means unbounded.
func enumerate(compared []rune, positions map[rune][]int32, limit int, visit func(seq []int)) {
	e := &enumerator{
		compared:  compared,
		positions: positions,
		lastIdx:   make(map[rune]int),
		raw:       make([]int, len(compared)),
		limit:     limit,
	}
	e.step(0, visit)
}

func (e *enumerator) step(i int, visit func(seq []int)) {
	if e.stop {
		return
	}
	if i == len(e.compared) {
		visit(e.raw)
		e.visited++
		if e.limit > 0 && e.visited >= e.limit {
			e.stop = true
		}
		return
	}

	ch := e.compared[i]
	plist, ok := e.positions[ch]
	if !ok {
		e.raw[i] = unmapped
		e.step(i+1, visit)
		return
	}

	start, hadPrev := e.lastIdx[ch]
	for idx := start; idx < len(plist); idx++ {
		e.raw[i] = int(plist[idx])
		e.lastIdx[ch] = idx
		e.step(i+1, visit)
		if e.stop {
			break
		}
	}

	if hadPrev {
		e.lastIdx[ch] = start
	} else {
		delete(e.lastIdx, ch)
	}
}
