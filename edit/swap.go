package edit

import (
	"github.com/coregx/typocore/chartext"
	"github.com/coregx/typocore/internal/runes"
)

// detectSwaps finds Extra/Correct/Missing triples whose outer two
// scalars are case-insensitively equal — the signature of a user typing
// two adjacent characters in the wrong order — and collapses each into
// a Swapped pair.
//
// It iterates right to left over [1, n-2] so that deleting the missing
// half of a detected pair never invalidates the indices still to be
// visited.
func detectSwaps(t chartext.Text) chartext.Text {
	work := append(chartext.Text(nil), t...)
	deleted := make([]bool, len(work))

	for i := len(work) - 2; i >= 1; i-- {
		if deleted[i-1] || deleted[i] || deleted[i+1] {
			continue
		}
		left, mid, right := work[i-1], work[i], work[i+1]
		if left.Kind == chartext.Extra && mid.Kind == chartext.Correct && right.Kind == chartext.Missing &&
			runes.EqualFold(left.Raw, right.Raw) {
			work[i-1] = chartext.NewSwapped(left.Raw, chartext.Left, nil)
			work[i] = chartext.NewSwapped(mid.Raw, chartext.Right, mid.CorrectCase)
			deleted[i+1] = true
		}
	}

	return compact(work, deleted)
}
