package casecompare

import (
	"testing"

	"github.com/odintext/icu/ucd"
)

func TestCompareEqualIgnoringCase(t *testing.T) {
	s1 := []uint16{'H', 'e', 'l', 'l', 'o'}
	s2 := []uint16{'h', 'E', 'L', 'L', 'O'}
	result, m1, m2 := Compare(s1, s2, IgnoreCase, ucd.FoldOptions{}, ucd.DefaultUCD{})
	if result != 0 {
		t.Fatalf("got result=%d, want 0", result)
	}
	if m1 != int32(len(s1)) || m2 != int32(len(s2)) {
		t.Errorf("got m1=%d m2=%d, want %d %d", m1, m2, len(s1), len(s2))
	}
}

func TestCompareSymmetry(t *testing.T) {
	a := []uint16{'a', 'p', 'p', 'l', 'e'}
	b := []uint16{'B', 'a', 'n', 'a', 'n', 'a'}
	ab, _, _ := Compare(a, b, IgnoreCase, ucd.FoldOptions{}, ucd.DefaultUCD{})
	ba, _, _ := Compare(b, a, IgnoreCase, ucd.FoldOptions{}, ucd.DefaultUCD{})
	if (ab < 0) == (ba < 0) && ab != 0 {
		t.Fatalf("compare not antisymmetric: ab=%d ba=%d", ab, ba)
	}
	aa, _, _ := Compare(a, a, IgnoreCase, ucd.FoldOptions{}, ucd.DefaultUCD{})
	if aa != 0 {
		t.Errorf("compare(a,a) = %d, want 0", aa)
	}
}

// The ß in "Fußball" folds to "ss". "Fust" and "Fußball" share a
// folded "Fu" prefix; the third code unit of each ("s" on both sides)
// also matches, but mid-fold, so the aligned-prefix boundary reported
// via m1/m2 stays at 2 ("Fu") rather than advancing to 3. The fourth
// code unit, "t" against the fold buffer's second "s", decides the
// overall order: "t" sorts after "s", so "Fust" compares greater than
// "Fußball".
func TestCompareFoldExpansionPrefixMatch(t *testing.T) {
	s1 := []uint16{'F', 'u', 's', 't'}
	s2 := []uint16{'F', 'u', 0x00DF, 'b', 'a', 'l', 'l'}
	result, m1, m2 := Compare(s1, s2, IgnoreCase, ucd.FoldOptions{}, ucd.DefaultUCD{})
	if result <= 0 {
		t.Errorf("got result=%d, want > 0 (\"t\" sorts after \"s\")", result)
	}
	if m1 != 2 || m2 != 2 {
		t.Errorf("got m1=%d m2=%d, want 2 2", m1, m2)
	}
}

func TestCompareCodePointOrder(t *testing.T) {
	// An unpaired lead surrogate standing alone should sort below a
	// real supplementary code point under CodePointOrder.
	lone := []uint16{0xD800}
	supplementary := []uint16{0xD800, 0xDC00} // U+10000
	result, _, _ := Compare(lone, supplementary, CodePointOrder, ucd.FoldOptions{}, ucd.DefaultUCD{})
	if result >= 0 {
		t.Errorf("got result=%d, want < 0 (lone surrogate sorts below supplementary)", result)
	}
}
