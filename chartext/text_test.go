package chartext

import "testing"

func TestFromString(t *testing.T) {
	text := FromString("abc", Extra)
	if len(text) != 3 {
		t.Fatalf("len(text) = %d, want 3", len(text))
	}
	for i, r := range []rune("abc") {
		if text[i].Raw != r || text[i].Kind != Extra {
			t.Errorf("text[%d] = %+v, want Raw=%c Kind=Extra", i, text[i], r)
		}
	}
}

func TestFromStringEmpty(t *testing.T) {
	if got := FromString("", Missing); len(got) != 0 {
		t.Errorf("FromString(\"\", Missing) = %v, want empty", got)
	}
}

func TestRawValue(t *testing.T) {
	text := Text{
		NewCorrect('H', nil),
		NewMisspell('o', 'e'),
		NewCorrect('l', nil),
		NewMisspell('a', 'l'),
		NewMissing('o'),
	}
	if got, want := text.RawValue(), "Hoelalo"; got != want {
		t.Errorf("RawValue() = %q, want %q", got, want)
	}
}

func TestIsAbsolutelyRight(t *testing.T) {
	cases := []struct {
		name string
		t    Text
		want bool
	}{
		{"empty", Text{}, true},
		{"all correct no case info", Text{NewCorrect('a', nil), NewCorrect('b', nil)}, true},
		{"all correct right case", Text{NewCorrect('a', BoolPtr(true))}, true},
		{"wrong case", Text{NewCorrect('a', BoolPtr(false))}, false},
		{"has extra", Text{NewCorrect('a', nil), NewExtra('b')}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.t.IsAbsolutelyRight(); got != c.want {
				t.Errorf("IsAbsolutelyRight() = %v, want %v", got, c.want)
			}
		})
	}
}

func TestIsCompletelyWrong(t *testing.T) {
	cases := []struct {
		name string
		t    Text
		want bool
	}{
		{"empty is not completely wrong", Text{}, false},
		{"all extra", Text{NewExtra('a'), NewExtra('b')}, true},
		{"mixed missing/extra/misspell", Text{NewMissing('a'), NewExtra('b'), NewMisspell('c', 'd')}, true},
		{"has a correct", Text{NewCorrect('a', nil), NewExtra('b')}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.t.IsCompletelyWrong(); got != c.want {
				t.Errorf("IsCompletelyWrong() = %v, want %v", got, c.want)
			}
		})
	}
}

func TestCountOfTyposAndMistakes(t *testing.T) {
	text := Text{
		NewCorrect('a', nil),
		NewExtra('b'),
		NewMissing('c'),
		NewMisspell('d', 'e'),
		NewSwapped('f', Left, nil),
		NewSwapped('g', Right, nil),
	}
	// extra + missing + misspell = 3, plus one swapped pair = 1.
	if got := text.CountOfTyposAndMistakes(); got != 4 {
		t.Errorf("CountOfTyposAndMistakes() = %d, want 4", got)
	}
}

func TestCountOfWrongLetterCases(t *testing.T) {
	text := Text{
		NewCorrect('a', BoolPtr(true)),
		NewCorrect('b', BoolPtr(false)),
		NewCorrect('c', nil),
		NewCorrect('d', BoolPtr(false)),
	}
	if got := text.CountOfWrongLetterCases(); got != 2 {
		t.Errorf("CountOfWrongLetterCases() = %d, want 2", got)
	}
}

func TestCountOfCorrectPositions(t *testing.T) {
	text := Text{
		NewCorrect('a', nil),
		NewCorrect('z', nil),
		NewSwapped('b', Left, nil),
		NewSwapped('c', Right, nil),
		NewExtra('d'),
	}
	// Swapped characters are excluded: CountOfTyposAndMistakes already
	// counts a swap pair as one mistake.
	if got := text.CountOfCorrectPositions(); got != 2 {
		t.Errorf("CountOfCorrectPositions() = %d, want 2", got)
	}
}

func TestEffectiveLengthEqualsCountsSum(t *testing.T) {
	// Invariant 7: count_of_typos_and_mistakes + count_of_correct_positions
	// = effective_length, with swap pairs counted once throughout.
	texts := []Text{
		{},
		{NewCorrect('a', nil)},
		{NewExtra('a'), NewMissing('b')},
		{NewSwapped('a', Left, nil), NewSwapped('b', Right, nil)},
		{
			NewCorrect('a', nil),
			NewMisspell('b', 'c'),
			NewSwapped('d', Left, nil),
			NewSwapped('e', Right, nil),
			NewExtra('f'),
		},
	}
	for _, text := range texts {
		sum := text.CountOfTyposAndMistakes() + text.CountOfCorrectPositions()
		if got := text.EffectiveLength(); got != sum {
			t.Errorf("EffectiveLength() = %d, want %d (typos+correct)", got, sum)
		}
	}
}
