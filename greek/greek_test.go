package greek

import (
	"testing"

	"github.com/odintext/icu/edits"
)

type fixedCasing struct {
	cased      map[rune]bool
	ignorable  map[rune]bool
}

func (f fixedCasing) IsCased(c rune) bool        { return f.cased[c] }
func (f fixedCasing) IsCaseIgnorable(c rune) bool { return f.ignorable[c] }

func noFallback(c rune, i, limit int32) []uint16 {
	return []uint16{uint16(c)}
}

func TestToUpperSimpleVowel(t *testing.T) {
	// lowercase alpha -> capital alpha, no diacritics involved.
	src := []uint16{0x03B1}
	dest := make([]uint16, 4)
	n, err := ToUpper(dest, src, fixedCasing{}, noFallback, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 1 || dest[0] != 0x0391 {
		t.Fatalf("got n=%d dest=%v, want n=1 dest[0]=0x0391", n, dest[:n])
	}
}

func TestToUpperDisjunctiveEta(t *testing.T) {
	// eta with tonos, standalone (one code unit), not preceded by a
	// cased letter and not followed by one: preserves as precomposed Ή.
	src := []uint16{0x03AE} // small eta with tonos
	dest := make([]uint16, 4)
	n, err := ToUpper(dest, src, fixedCasing{}, noFallback, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 1 || dest[0] != 0x0389 {
		t.Fatalf("got n=%d dest=%v, want n=1 dest[0]=0x0389", n, dest[:n])
	}
}

func TestToUpperPrecomposedDialytika(t *testing.T) {
	// iota with dialytika and tonos -> capital iota with dialytika (3AA);
	// the tonos is dropped and the dialytika flags are cleared by the
	// precomposed-dialytika rule.
	src := []uint16{0x0390} // iota with dialytika and tonos, precomposed
	dest := make([]uint16, 4)
	n, err := ToUpper(dest, src, fixedCasing{}, noFallback, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n < 1 || dest[0] != 0x03AA {
		t.Fatalf("got n=%d dest=%v, want dest[0]=0x03AA", n, dest[:n])
	}
}

func TestToUpperRecordsEdits(t *testing.T) {
	src := []uint16{0x03B1, 0x03B2} // alpha, beta
	dest := make([]uint16, 4)
	e := edits.New()
	n, err := ToUpper(dest, src, fixedCasing{}, noFallback, e)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 2 {
		t.Fatalf("got n=%d, want 2", n)
	}
	if !e.HasChanges() {
		t.Fatalf("expected edits to report changes")
	}
}

func TestToUpperOmitsUnchangedSpans(t *testing.T) {
	// capital alpha upper-cases to itself (unchanged); beta changes to
	// capital beta. With SetOmitUnchanged, the unchanged alpha span must
	// not be written to dest at all, only the changed beta.
	src := []uint16{0x0391, 0x03B2} // capital alpha, small beta
	dest := make([]uint16, 4)
	e := edits.New()
	e.SetOmitUnchanged(true)
	n, err := ToUpper(dest, src, fixedCasing{}, noFallback, e)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 1 || dest[0] != 0x0392 {
		t.Fatalf("got n=%d dest=%v, want n=1 dest[0]=0x0392", n, dest[:n])
	}
	if !e.HasChanges() {
		t.Fatalf("expected edits to report changes")
	}
}

func TestInBlock(t *testing.T) {
	cases := []struct {
		c    rune
		want bool
	}{
		{0x0391, true},
		{0x1F00, true},
		{0x2126, true},
		{0x0041, false},
	}
	for _, tc := range cases {
		if got := InBlock(tc.c); got != tc.want {
			t.Errorf("InBlock(%#x) = %v, want %v", tc.c, got, tc.want)
		}
	}
}
