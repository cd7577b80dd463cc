package basis

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCalculateEqualStrings(t *testing.T) {
	b := Calculate("hello", "hello", Limits{})
	want := []int{0, 1, 2, 3, 4}
	if diff := cmp.Diff(want, b.Sequence); diff != "" {
		t.Errorf("Sequence mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(want, b.Subsequence); diff != "" {
		t.Errorf("Subsequence mismatch (-want +got):\n%s", diff)
	}
	if len(b.MissingElements) != 0 {
		t.Errorf("MissingElements = %v, want empty", b.MissingElements)
	}
}

func TestCalculateEqualStringsIgnoresCase(t *testing.T) {
	b := Calculate("HELLO", "hello", Limits{})
	if len(b.MissingElements) != 0 {
		t.Errorf("MissingElements = %v, want empty (case-insensitive match)", b.MissingElements)
	}
}

func TestCalculateGotobRobot(t *testing.T) {
	// Worked example: three raw sequences are reachable under the
	// non-decreasing-placement constraint; the best pair is the one
	// whose longest increasing subsequence has the smallest element sum.
	b := Calculate("gotob", "robot", Limits{})

	wantSequence := []int{unmapped, 1, 4, 1, 2}
	if diff := cmp.Diff(wantSequence, b.Sequence); diff != "" {
		t.Errorf("Sequence mismatch (-want +got):\n%s", diff)
	}

	wantSubsequence := []int{1, 2}
	if diff := cmp.Diff(wantSubsequence, b.Subsequence); diff != "" {
		t.Errorf("Subsequence mismatch (-want +got):\n%s", diff)
	}

	wantMissing := []int{0, 3, 4}
	if diff := cmp.Diff(wantMissing, b.MissingElements); diff != "" {
		t.Errorf("MissingElements mismatch (-want +got):\n%s", diff)
	}
}

func TestCalculateStripsCommonPrefixAndSuffix(t *testing.T) {
	// "xx" + inner + "yy" on both sides should behave identically to
	// computing the inner alignment alone, offset by len(prefix).
	b := Calculate("xxbayy", "xxabyy", Limits{})
	if b.Sequence[0] != 0 || b.Sequence[1] != 1 {
		t.Errorf("prefix not preserved verbatim: Sequence[0:2] = %v", b.Sequence[:2])
	}
	n := len(b.Sequence)
	if b.Sequence[n-1] != 5 || b.Sequence[n-2] != 4 {
		t.Errorf("suffix not preserved verbatim: Sequence[-2:] = %v", b.Sequence[n-2:])
	}
}

func TestCalculateNoCommonCharacters(t *testing.T) {
	b := Calculate("xyz", "abc", Limits{})
	for i, v := range b.Sequence {
		if v != unmapped {
			t.Errorf("Sequence[%d] = %d, want unmapped", i, v)
		}
	}
	if len(b.Subsequence) != 0 {
		t.Errorf("Subsequence = %v, want empty", b.Subsequence)
	}
	if len(b.MissingElements) != 3 {
		t.Errorf("MissingElements = %v, want all 3 accurate positions", b.MissingElements)
	}
}

func TestCalculateInvariants(t *testing.T) {
	// Invariant 1: |sequence| = |compared|, source_sequence = [0..|accurate|).
	pairs := [][2]string{
		{"Hola", "Hello"},
		{"Halol", "Hello"},
		{"dyy", "day"},
		{"dya", "day"},
		{"hi!", "bye"},
		{"gotob", "robot"},
		{"", "abc"},
		{"abc", ""},
	}
	for _, p := range pairs {
		compared, accurate := p[0], p[1]
		b := Calculate(compared, accurate, Limits{})

		if got, want := len(b.Sequence), len([]rune(compared)); got != want {
			t.Errorf("Calculate(%q, %q): len(Sequence) = %d, want %d", compared, accurate, got, want)
		}
		for i, v := range b.SourceSequence {
			if v != i {
				t.Errorf("Calculate(%q, %q): SourceSequence[%d] = %d, want %d", compared, accurate, i, v, i)
			}
		}
		if len(b.SourceSequence) != len([]rune(accurate)) {
			t.Errorf("Calculate(%q, %q): len(SourceSequence) = %d, want %d", compared, accurate, len(b.SourceSequence), len([]rune(accurate)))
		}

		// Invariant 2: subsequence is strictly increasing and a subset of
		// sequence, in order.
		for i := 1; i < len(b.Subsequence); i++ {
			if b.Subsequence[i] <= b.Subsequence[i-1] {
				t.Errorf("Calculate(%q, %q): Subsequence %v is not strictly increasing", compared, accurate, b.Subsequence)
			}
		}
		cursor := 0
		for _, v := range b.Sequence {
			if cursor < len(b.Subsequence) && v == b.Subsequence[cursor] {
				cursor++
			}
		}
		if cursor != len(b.Subsequence) {
			t.Errorf("Calculate(%q, %q): Subsequence %v does not occur, in order, within Sequence %v", compared, accurate, b.Subsequence, b.Sequence)
		}
	}
}

func TestCountCommonCharsIsSymmetricAndCaseInvariant(t *testing.T) {
	cases := [][2]string{
		{"Hello", "Hola"},
		{"robot", "gotob"},
		{"abc", "xyz"},
		{"", "abc"},
	}
	for _, c := range cases {
		a, b := CountCommonChars(c[0], c[1]), CountCommonChars(c[1], c[0])
		if a != b {
			t.Errorf("CountCommonChars(%q, %q) = %d, CountCommonChars(%q, %q) = %d, want equal", c[0], c[1], a, c[1], c[0], b)
		}
		upper := CountCommonChars(stringsUpper(c[0]), c[1])
		if upper != a {
			t.Errorf("CountCommonChars is not case-invariant: %d vs %d", upper, a)
		}
	}
}

func stringsUpper(s string) string {
	rs := []rune(s)
	for i, r := range rs {
		if r >= 'a' && r <= 'z' {
			rs[i] = r - ('a' - 'A')
		}
	}
	return string(rs)
}
