package formtext

import (
	"github.com/coregx/typocore/basis"
	"github.com/coregx/typocore/config"
)

// quickCompliance is the cheap, necessary-but-not-sufficient pre-check
// run before the (much more expensive) math core. A pass here does not
// guarantee the comparison is worth annotating — only that it isn't
// obviously hopeless.
func quickCompliance(compared, accurate string, cfg config.Config) bool {
	k := basis.CountCommonChars(compared, accurate)
	if k == 0 {
		return false
	}

	accurateLen := runeLen(accurate)

	if cfg.RequiredCorrect.IsSet() {
		if k < cfg.RequiredCorrect.Count(accurateLen, false) {
			return false
		}
	}
	if cfg.AcceptableWrong.IsSet() {
		comparedLen := runeLen(compared)
		wrong := comparedLen - k
		if accurateLen-k > wrong {
			wrong = accurateLen - k
		}
		if wrong > cfg.AcceptableWrong.Count(accurateLen, false) {
			return false
		}
	}
	return true
}

// exactCompliance is the post-alignment gate: having paid for the full
// basis computation, decide whether the result is worth turning into a
// user-facing annotation at all.
func exactCompliance(b basis.Basis, accurateLen int, cfg config.Config) bool {
	if len(b.Subsequence) == 0 {
		return false
	}

	if cfg.RequiredCorrect.IsSet() {
		if len(b.Subsequence) < cfg.RequiredCorrect.Count(accurateLen, true) {
			return false
		}
	}
	if cfg.AcceptableWrong.IsSet() {
		wrong := len(b.Sequence) - len(b.Subsequence) + len(b.MissingElements)
		missing := len(b.MissingElements)
		// The max is taken because a later pass may fuse a wrong-and-a-
		// missing position into a single misspell character.
		w := wrong
		if missing > w {
			w = missing
		}
		if w > cfg.AcceptableWrong.Count(accurateLen, false) {
			return false
		}
	}
	return true
}

func runeLen(s string) int {
	n := 0
	for range s {
		n++
	}
	return n
}
