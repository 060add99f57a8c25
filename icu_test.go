package icu

import (
	"testing"
	"unicode/utf16"

	"github.com/odintext/icu/errs"
)

func encode(s string) []uint16 { return utf16.Encode([]rune(s)) }
func decode(u []uint16) string { return string(utf16.Decode(u)) }

func TestToUpperTurkishDottedI(t *testing.T) {
	src := encode("i")
	dest := make([]uint16, 2)
	n, err := ToUpper(dest, src, "tr", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := decode(dest[:n]); got != "İ" {
		t.Errorf("got %q, want %q", got, "İ")
	}
}

func TestToUpperGreekDialytika(t *testing.T) {
	src := []uint16{0x039C, 0x03AC, 0x03CA, 0x03BF, 0x03C2} // "Μάϊος"
	dest := make([]uint16, len(src)+2)
	e := NewEdits()
	n, err := ToUpper(dest, src, "el", e)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []uint16{0x039C, 0x0391, 0x03AA, 0x039F, 0x03A3}
	if n != len(want) {
		t.Fatalf("got n=%d want %d", n, len(want))
	}
	for i, u := range want {
		if dest[i] != u {
			t.Errorf("dest[%d]=%#x want %#x", i, dest[i], u)
		}
	}
	if !e.HasChanges() {
		t.Errorf("expected recorded changes")
	}
}

func TestToTitleEnglish(t *testing.T) {
	src := encode("hello world")
	dest := make([]uint16, len(src)+2)
	n, err := ToTitle(dest, src, "", nil, 0, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := decode(dest[:n]); got != "Hello World" {
		t.Errorf("got %q, want %q", got, "Hello World")
	}
}

func TestToTitleDutchIJ(t *testing.T) {
	src := encode("ijsland")
	dest := make([]uint16, len(src)+2)
	n, err := ToTitle(dest, src, "nl", nil, 0, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := decode(dest[:n]); got != "IJsland" {
		t.Errorf("got %q, want %q", got, "IJsland")
	}
}

func TestFoldSharpS(t *testing.T) {
	src := []uint16{0x00DF}
	dest := make([]uint16, 2)
	n, err := Fold(dest, src, FoldCaseDefault, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := decode(dest[:n]); got != "ss" {
		t.Errorf("got %q, want %q", got, "ss")
	}
}

func TestCaseCompareSharpSExpansion(t *testing.T) {
	a := encode("Fust")
	b := encode("Fußball")
	result, err := CaseCompare(a, b, CompareIgnoreCase)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result <= 0 {
		t.Errorf("got result=%d, want > 0", result)
	}
	m1, m2, err := CaseInsensitivePrefixMatch(a, b, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m1 != 2 || m2 != 2 {
		t.Errorf("got m1=%d m2=%d, want 2 2", m1, m2)
	}
}

func TestToLowerBufferOverflowReportsTrueLength(t *testing.T) {
	src := encode("HELLO")
	dest := make([]uint16, 2)
	n, err := ToLower(dest, src, "", nil)
	if n != 5 {
		t.Fatalf("got n=%d, want 5", n)
	}
	ierr, ok := err.(*Error)
	if !ok {
		t.Fatalf("got err=%v (%T), want *Error", err, err)
	}
	if ierr.Code() != errs.BufferOverflow {
		t.Errorf("got code=%v, want BufferOverflow", ierr.Code())
	}
}

func TestToUpperInPlaceOverlapping(t *testing.T) {
	buf := make([]uint16, 6)
	copy(buf, encode("hello"))
	src := buf[0:5]
	dest := buf[0:5]
	n, err := ToUpperInPlace(dest, src, "", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := decode(dest[:n]); got != "HELLO" {
		t.Errorf("got %q, want %q", got, "HELLO")
	}
}
