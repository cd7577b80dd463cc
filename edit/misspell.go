package edit

import "github.com/coregx/typocore/chartext"

// fuseMisspells collapses adjacent Missing/Extra pairs into a single
// Misspell character.
//
// It walks left-to-right with two FIFO queues of pending indices
// (pendingMissing, pendingExtra). Whichever of Missing/Extra has been
// waiting — i.e. is already in a queue — becomes the Misspell in place
// when its partner arrives; the partner that just arrived is deleted.
// Any other character type (here, only Correct — Swapped and Misspell
// never appear in text this pass receives) clears both queues: anything
// left pending at that point stays exactly as it was, unfused.
func fuseMisspells(t chartext.Text) chartext.Text {
	work := append(chartext.Text(nil), t...)
	deleted := make([]bool, len(work))

	var pendingMissing, pendingExtra []int

	for i := range work {
		switch work[i].Kind {
		case chartext.Missing:
			if len(pendingExtra) > 0 {
				extraIdx := pendingExtra[0]
				pendingExtra = pendingExtra[1:]
				work[extraIdx] = chartext.NewMisspell(work[extraIdx].Raw, work[i].Raw)
				deleted[i] = true
			} else {
				pendingMissing = append(pendingMissing, i)
			}

		case chartext.Extra:
			if len(pendingMissing) > 0 {
				missingIdx := pendingMissing[0]
				pendingMissing = pendingMissing[1:]
				work[missingIdx] = chartext.NewMisspell(work[i].Raw, work[missingIdx].Raw)
				deleted[i] = true
			} else {
				pendingExtra = append(pendingExtra, i)
			}

		default:
			pendingMissing = pendingMissing[:0]
			pendingExtra = pendingExtra[:0]
		}
	}

	return compact(work, deleted)
}

// compact returns the elements of t not marked deleted, preserving
// order.
func compact(t chartext.Text, deleted []bool) chartext.Text {
	out := make(chartext.Text, 0, len(t))
	for i, c := range t {
		if !deleted[i] {
			out = append(out, c)
		}
	}
	return out
}
