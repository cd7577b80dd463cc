// Package edit is the text editor: it rewrites a formtext.Form-produced
// chartext.Text (Correct/Missing/Extra only) into the final user-facing
// annotation, adding Misspell and Swapped atoms.
//
// Three sequential passes, each handed the previous pass's output:
// adjust (rotate runs so later passes can see adjacent typo pairs),
// fuseMisspells (collapse Missing/Extra pairs into Misspell), and
// detectSwaps (collapse Extra/Correct/Missing triples into Swapped
// pairs).
package edit

import (
	"github.com/coregx/typocore/chartext"
	"github.com/coregx/typocore/config"
)

// MakeUserFriendly runs the three-pass adjustment over text and returns
// the final, user-facing annotation.
//
// cfg is accepted to match the pipeline's public contract (every stage
// takes the call's configuration explicitly); none of the three passes
// currently branch on it, since nothing in their behavior is
// configurable.
func MakeUserFriendly(text chartext.Text, cfg config.Config) chartext.Text {
	text = adjust(text)
	text = fuseMisspells(text)
	text = detectSwaps(text)
	return text
}
