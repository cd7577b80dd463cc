// config.go bundles the complete set of knobs the typo-analysis pipeline
// reads: compliance thresholds, letter-case policy, and the math core's
// enumeration budget.
package config

// Limits bounds the math core's combinatorial raw-sequence enumeration
// (basis.Calculate). A MaxRawSequences of 0 means unbounded — the
// default, matching the spec's "callers pre-split long inputs" guidance.
//
// When the cap is reached, the math core stops enumerating further raw
// sequences and proceeds with the best pair found so far; it never
// panics or reports an error, consistent with the pipeline never failing
// by exception.
type Limits struct {
	MaxRawSequences int
}

// Config is the complete, explicit configuration for one Analyze call.
//
// Example:
//
//	cfg := config.Config{
//	    RequiredCorrect: config.Half,
//	    AcceptableWrong: config.Low,
//	    CasePolicy:      config.CaseCompare(),
//	}
type Config struct {
	// RequiredCorrect, if set, is the minimum number of correct
	// characters (as a count or coefficient of len(accurate)) a
	// comparison must reach to pass the compliance gate.
	RequiredCorrect CharQuantity

	// AcceptableWrong, if set, is the maximum number of wrong or missing
	// characters a comparison may have and still pass the compliance
	// gate.
	AcceptableWrong CharQuantity

	// CasePolicy controls how letter case participates in matching.
	// The zero value is CaseCompare.
	CasePolicy CasePolicy

	// Limits bounds the math core's enumeration. The zero value is
	// unbounded.
	Limits Limits
}

// Default returns a Config with no compliance thresholds, CaseCompare
// policy, and unbounded enumeration — equivalent to the spec's "empty
// configuration".
func Default() Config {
	return Config{
		RequiredCorrect: Unset(),
		AcceptableWrong: Unset(),
		CasePolicy:      CaseCompare(),
	}
}
