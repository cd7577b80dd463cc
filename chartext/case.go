package chartext

import "unicode"

// caseTransform is a rune-to-rune mapping applied per character. Using
// the stdlib unicode case functions here (rather than a locale-correct
// Unicode caser) is required, not a style choice: every Character holds
// exactly one rune, and stdlib's per-rune mapping is guaranteed to
// return exactly one rune, where a general Unicode caser can expand a
// scalar (see internal/runes's package doc).
type caseTransform func(rune) rune

// transformed returns a copy of t with every Raw and Misspell Intended
// scalar passed through f, and every CorrectCase cleared — case
// information from before the transform is no longer meaningful once
// the text has been rewritten.
func (t Text) transformed(f caseTransform) Text {
	out := make(Text, len(t))
	for i, c := range t {
		c.Raw = f(c.Raw)
		if c.Kind == Misspell {
			c.Intended = f(c.Intended)
		}
		c.CorrectCase = nil
		out[i] = c
	}
	return out
}

// Uppercased returns a copy of t with every scalar upper-cased.
func (t Text) Uppercased() Text { return t.transformed(unicode.ToUpper) }

// Lowercased returns a copy of t with every scalar lower-cased.
func (t Text) Lowercased() Text { return t.transformed(unicode.ToLower) }

// Capitalized returns a copy of t with its first scalar title-cased and
// every following scalar lower-cased, treating t as a single word (the
// same behavior the spec's source draws its "capitalized" transform
// from).
func (t Text) Capitalized() Text {
	first := true
	return t.transformed(func(r rune) rune {
		if first {
			first = false
			return unicode.ToTitle(r)
		}
		return unicode.ToLower(r)
	})
}
