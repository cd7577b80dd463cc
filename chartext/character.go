// Package chartext is the typed-character model the rest of typocore
// builds on: a closed CharacterType variant, a typed Character, and a
// Text container with the aggregate queries callers use to summarize an
// analyzed comparison.
package chartext

// Side names which half of a swapped pair a character represents.
type Side int

const (
	// Left is the first character of a swapped pair in reading order.
	Left Side = iota
	// Right is the second character of a swapped pair in reading order.
	Right
)

func (s Side) String() string {
	if s == Left {
		return "left"
	}
	return "right"
}

// Kind is the closed set of character classifications a Character can
// carry. It is a sum type in spirit: exhaustive switches over Kind are
// expected everywhere a Character is consumed, and Character carries only
// the payload fields relevant to its own Kind (Side for Swapped,
// Intended for Misspell).
type Kind int

const (
	// Correct marks a character present in both texts at matching
	// positions.
	Correct Kind = iota
	// Missing marks a character present only in the accurate text.
	Missing
	// Extra marks a character present only in the compared text.
	Extra
	// Swapped marks one of a correct adjacent pair that appears in
	// reversed order in the compared text. Side says which half.
	Swapped
	// Misspell marks a compared character standing in for a different
	// intended character, carried in Character.Intended.
	Misspell
)

func (k Kind) String() string {
	switch k {
	case Correct:
		return "correct"
	case Missing:
		return "missing"
	case Extra:
		return "extra"
	case Swapped:
		return "swapped"
	case Misspell:
		return "misspell"
	default:
		return "unknown"
	}
}

// Character is one scalar of an analyzed text, annotated with its
// classification.
//
// CorrectCase is nil when letter case does not matter for this position
// (for example after CasePolicy normalization); true when the case
// matches the accurate text; false when it doesn't.
//
// Side is only meaningful when Kind is Swapped. Intended is only
// meaningful when Kind is Misspell.
type Character struct {
	Raw         rune
	Kind        Kind
	CorrectCase *bool
	Side        Side
	Intended    rune
}

// NewCorrect constructs a Correct character. correctCase may be nil.
func NewCorrect(raw rune, correctCase *bool) Character {
	return Character{Raw: raw, Kind: Correct, CorrectCase: correctCase}
}

// NewMissing constructs a Missing character copied from the accurate
// text.
func NewMissing(raw rune) Character {
	return Character{Raw: raw, Kind: Missing}
}

// NewExtra constructs an Extra character copied from the compared text.
func NewExtra(raw rune) Character {
	return Character{Raw: raw, Kind: Extra}
}

// NewSwapped constructs one half of a swapped pair.
func NewSwapped(raw rune, side Side, correctCase *bool) Character {
	return Character{Raw: raw, Kind: Swapped, Side: side, CorrectCase: correctCase}
}

// NewMisspell constructs a misspell standing in for intended.
func NewMisspell(raw, intended rune) Character {
	return Character{Raw: raw, Kind: Misspell, Intended: intended}
}

// BoolPtr is a small helper for building CorrectCase payloads.
func BoolPtr(b bool) *bool { return &b }
