package edit

import (
	"github.com/coregx/typocore/chartext"
	"github.com/coregx/typocore/internal/runes"
)

// adjust rewrites patterns like "correct missing correct extra" (around
// case-insensitively identical scalars) into "correct missing extra
// correct", exposing the missing/extra pair to the fusion pass that
// follows. It never changes the length of t.
//
// It walks left-to-right maintaining missingCount (unclosed Missing
// scalars seen so far) and a "correct run" tracker: the index and
// length of a run of case-insensitively identical Correct scalars that
// immediately follows at least one Missing. When an Extra matching that
// run's scalar arrives, the whole run-plus-extra window is rotated one
// step: every position in the run shifts its Correct classification one
// slot to the right (carrying CorrectCase forward, sign-flipped across
// a case change), and the vacated leftmost slot becomes Extra.
func adjust(t chartext.Text) chartext.Text {
	out := append(chartext.Text(nil), t...)

	missingCount := 0
	haveTracker := false
	firstIdx := 0
	runCount := 0
	runChar := rune(0)

	reset := func() {
		missingCount = 0
		haveTracker = false
		runCount = 0
	}
	dropTracker := func() {
		haveTracker = false
		runCount = 0
	}

	for i := 0; i < len(out); i++ {
		switch out[i].Kind {
		case chartext.Missing:
			missingCount++
			dropTracker()

		case chartext.Correct:
			if missingCount == 0 {
				dropTracker()
				continue
			}
			if !haveTracker {
				haveTracker = true
				firstIdx = i
				runCount = 1
				runChar = out[i].Raw
				continue
			}
			if runes.EqualFold(out[i].Raw, runChar) {
				runCount++
				continue
			}
			reset()

		case chartext.Extra:
			if missingCount > 0 && haveTracker && runes.EqualFold(out[i].Raw, runChar) {
				rotateRun(out, firstIdx, runCount, i)
				firstIdx = i
				runCount = 1
				runChar = out[i].Raw
				missingCount--
				continue
			}
			reset()

		default:
			reset()
		}
	}

	return out
}

// rotateRun shifts the Correct classification of the run
// [firstIdx, firstIdx+runCount) one step to the right, into the extra
// position extraIdx (which must equal firstIdx+runCount), and turns
// firstIdx into Extra. Each shifted-in position's CorrectCase is copied
// from the position it displaced, flipped if the two positions' raw
// scalars differ case-sensitively — the rotation is reassigning which
// accurate position each compared scalar aligns to, so the case
// correctness has to be recomputed relative to its new neighbor.
func rotateRun(t chartext.Text, firstIdx, runCount, extraIdx int) {
	prevRaw := t[firstIdx].Raw
	prevCase := t[firstIdx].CorrectCase

	for pos := firstIdx + 1; pos <= extraIdx; pos++ {
		curRaw := t[pos].Raw

		newCase := prevCase
		if newCase != nil && curRaw != prevRaw {
			flipped := !*newCase
			newCase = &flipped
		}

		origRaw, origCase := t[pos].Raw, t[pos].CorrectCase
		t[pos] = chartext.NewCorrect(curRaw, newCase)
		prevRaw, prevCase = origRaw, origCase
	}

	t[firstIdx] = chartext.NewExtra(t[firstIdx].Raw)
}
