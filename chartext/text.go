package chartext

// Text is an ordered sequence of typed characters — the output shape
// every stage of the pipeline (basis aside) produces and consumes.
type Text []Character

// FromString builds a Text where every character has the given Kind and
// no CorrectCase payload. Used for the pipeline's fast-path outputs
// (pure Missing or pure Extra texts) and by tests that need a plain
// baseline to mutate.
func FromString(s string, kind Kind) Text {
	rs := []rune(s)
	t := make(Text, len(rs))
	for i, r := range rs {
		t[i] = Character{Raw: r, Kind: kind}
	}
	return t
}

// RawValue concatenates every character's Raw scalar, additionally
// emitting a Misspell's Intended scalar immediately after its Raw —
// the shape callers use to reconstruct "what the accurate text would
// read like here" for display.
func (t Text) RawValue() string {
	rs := make([]rune, 0, len(t))
	for _, c := range t {
		rs = append(rs, c.Raw)
		if c.Kind == Misspell {
			rs = append(rs, c.Intended)
		}
	}
	return string(rs)
}

// IsAbsolutelyRight reports whether every character is Correct with
// CorrectCase not false (nil or true both count as right).
func (t Text) IsAbsolutelyRight() bool {
	for _, c := range t {
		if c.Kind != Correct {
			return false
		}
		if c.CorrectCase != nil && !*c.CorrectCase {
			return false
		}
	}
	return true
}

// IsCompletelyWrong reports whether every character is Missing, Extra,
// or Misspell. An empty Text is vacuously not completely wrong, since
// there is nothing to be wrong about.
func (t Text) IsCompletelyWrong() bool {
	if len(t) == 0 {
		return false
	}
	for _, c := range t {
		switch c.Kind {
		case Missing, Extra, Misspell:
		default:
			return false
		}
	}
	return true
}

// CountOfTyposAndMistakes counts Extra + Missing + Misspell characters,
// plus one for every two Swapped characters (a swapped pair is one
// mistake, not two).
func (t Text) CountOfTyposAndMistakes() int {
	n := 0
	swapped := 0
	for _, c := range t {
		switch c.Kind {
		case Extra, Missing, Misspell:
			n++
		case Swapped:
			swapped++
		}
	}
	return n + swapped/2
}

// CountOfWrongLetterCases counts characters whose CorrectCase is
// explicitly false.
func (t Text) CountOfWrongLetterCases() int {
	n := 0
	for _, c := range t {
		if c.CorrectCase != nil && !*c.CorrectCase {
			n++
		}
	}
	return n
}

// CountOfCorrectPositions counts Correct characters. Swapped characters
// are deliberately excluded: a swap pair is one mistake, already counted
// by CountOfTyposAndMistakes, so counting it here too would double-count
// it against EffectiveLength.
func (t Text) CountOfCorrectPositions() int {
	n := 0
	for _, c := range t {
		if c.Kind == Correct {
			n++
		}
	}
	return n
}

// EffectiveLength is CountOfTyposAndMistakes plus CountOfCorrectPositions
// collapsed onto the same swapped-pair-counts-once basis: every Correct
// character, every Swapped pair, and every Extra/Missing/Misspell
// character counts as exactly one effective position.
func (t Text) EffectiveLength() int {
	n := 0
	swapped := 0
	for _, c := range t {
		switch c.Kind {
		case Correct, Extra, Missing, Misspell:
			n++
		case Swapped:
			swapped++
		}
	}
	return n + swapped/2
}
