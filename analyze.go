// Package typocore classifies the difference between a user-entered
// "compared" string and a known-accurate reference string at the
// granularity of single Unicode scalars.
//
// It is a pure, single-call library: every function takes its
// configuration explicitly and returns a fresh result, with no shared
// state between calls and no I/O. The one entry point is Analyze.
//
// Basic usage:
//
//	text := typocore.Analyze("Hola", "Hello", config.Default())
//	if text.IsAbsolutelyRight() {
//	    fmt.Println("no typos")
//	}
//
// Configuring compliance thresholds and letter-case policy:
//
//	cfg := config.Config{
//	    RequiredCorrect: config.Half,
//	    AcceptableWrong: config.Low,
//	    CasePolicy:      config.CaseMake(config.Lowercase),
//	}
//	text := typocore.Analyze(compared, accurate, cfg)
//
// Performance characteristics:
//   - The math core (package basis) is combinatorial in the number of
//     times a scalar repeats within the compared text; callers comparing
//     long free-form text should pre-split it (by word, typically)
//     before calling Analyze. config.Limits bounds the worst case
//     instead of letting it run unbounded.
//
// Limitations:
//   - No tokenization: Analyze compares exactly the two strings it is
//     given.
//   - No linguistic spell correction: Analyze only ever compares against
//     the supplied accurate text.
//   - The alignment it picks, among those of equal quality, is
//     deterministic but not claimed to be the only reasonable one.
package typocore

import (
	"github.com/coregx/typocore/chartext"
	"github.com/coregx/typocore/config"
	"github.com/coregx/typocore/edit"
	"github.com/coregx/typocore/formtext"
)

// Analyze compares compared against accurate under cfg and returns the
// fully annotated, user-facing Text. It is equivalent to
// edit.MakeUserFriendly(formtext.Form(compared, accurate, cfg), cfg).
//
// Analyze never fails by exception: inputs too dissimilar to annotate,
// or an empty compared/accurate string, are reported as plain Extra or
// Missing text rather than an error — see formtext.Form's doc comment.
func Analyze(compared, accurate string, cfg config.Config) chartext.Text {
	formed := formtext.Form(compared, accurate, cfg)
	return edit.MakeUserFriendly(formed, cfg)
}
