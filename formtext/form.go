// Package formtext is the text former: it lifts a basis.Basis into a
// chartext.Text of correct/missing/extra atoms, gated by the quick and
// exact compliance checks.
package formtext

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/coregx/typocore/basis"
	"github.com/coregx/typocore/chartext"
	"github.com/coregx/typocore/config"
)

// Form lifts compared and accurate into a chartext.Text of Correct,
// Missing, and Extra atoms.
//
// Form never fails by exception. An empty compared string yields a pure
// Missing text of accurate; an empty accurate string, or a comparison
// that fails the quick or exact compliance gate, yields a pure Extra
// text of compared — these are classification outcomes, not errors.
func Form(compared, accurate string, cfg config.Config) chartext.Text {
	compared, accurate = normalizeCase(compared, accurate, cfg)

	if compared == "" {
		return chartext.FromString(accurate, chartext.Missing)
	}
	if accurate == "" {
		return chartext.FromString(compared, chartext.Extra)
	}

	if !quickCompliance(compared, accurate, cfg) {
		return chartext.FromString(compared, chartext.Extra)
	}

	b := basis.Calculate(compared, accurate, toBasisLimits(cfg.Limits))

	accurateRunes := []rune(accurate)
	if !exactCompliance(b, len(accurateRunes), cfg) {
		return chartext.FromString(compared, chartext.Extra)
	}

	return lift(compared, accurateRunes, b, cfg)
}

// normalizeCase applies CasePolicy.Make's whole-text normalization, if
// configured. The normalized strings become the new ground truth for
// every later stage, so this is the one place in the pipeline it is
// safe to use a locale-correct Unicode caser that can change a string's
// rune count: there is no earlier index space the result needs to stay
// in lockstep with (see chartext/case.go and SPEC_FULL.md §4.4 for why
// the position-matching fold elsewhere in the pipeline cannot do this).
func normalizeCase(compared, accurate string, cfg config.Config) (string, string) {
	version, ok := cfg.CasePolicy.Make()
	if !ok {
		return compared, accurate
	}
	caser := caserFor(version)
	return caser.String(compared), caser.String(accurate)
}

func caserFor(version config.Version) cases.Caser {
	switch version {
	case config.Uppercase:
		return cases.Upper(language.Und)
	case config.Lowercase:
		return cases.Lower(language.Und)
	default:
		return cases.Title(language.Und)
	}
}

func toBasisLimits(l config.Limits) basis.Limits {
	return basis.Limits{MaxRawSequences: l.MaxRawSequences}
}

// lift walks the basis twice: first relabeling Correct positions as the
// Sequence cursor passes through Subsequence, then inserting Missing
// characters ahead of each Correct position in proportion to how many
// MissingElements sort below it.
func lift(compared string, accurate []rune, b basis.Basis, cfg config.Config) chartext.Text {
	comparedRunes := []rune(compared)

	// Step 6: start from an all-Extra text and relabel Correct
	// positions while walking Sequence against Subsequence.
	correct := make([]bool, len(comparedRunes))
	subCursor := 0
	for i, v := range b.Sequence {
		if subCursor < len(b.Subsequence) && v == b.Subsequence[subCursor] {
			correct[i] = true
			subCursor++
		}
	}

	compareCase := cfg.CasePolicy.IsCompare()

	out := make(chartext.Text, 0, len(comparedRunes)+len(b.MissingElements))

	// Step 7: walk again, inserting Missing characters (copied from
	// accurate) ahead of each Correct position in proportion to how
	// many MissingElements sort strictly below the Subsequence head
	// that position consumes; remaining MissingElements are appended
	// at the end.
	missingIdx := 0
	subCursor = 0
	for i, v := range b.Sequence {
		if correct[i] {
			head := b.Subsequence[subCursor]
			for missingIdx < len(b.MissingElements) && b.MissingElements[missingIdx] < head {
				out = append(out, chartext.NewMissing(accurate[b.MissingElements[missingIdx]]))
				missingIdx++
			}
			var correctCase *bool
			if compareCase {
				correctCase = chartext.BoolPtr(accurate[v] == comparedRunes[i])
			}
			out = append(out, chartext.NewCorrect(comparedRunes[i], correctCase))
			subCursor++
			continue
		}
		out = append(out, chartext.NewExtra(comparedRunes[i]))
	}
	for ; missingIdx < len(b.MissingElements); missingIdx++ {
		out = append(out, chartext.NewMissing(accurate[b.MissingElements[missingIdx]]))
	}

	return out
}
