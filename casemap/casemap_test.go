package casemap

import (
	"testing"

	"github.com/odintext/icu/edits"
	"github.com/odintext/icu/ucd"
	"github.com/odintext/icu/wordbreak"
)

type wbList struct {
	bounds []int
	pos    int
}

func (w *wbList) First() int {
	w.pos = 0
	if len(w.bounds) == 0 {
		return wordbreak.Done
	}
	return w.bounds[0]
}

func (w *wbList) Next() int {
	w.pos++
	if w.pos >= len(w.bounds) {
		return wordbreak.Done
	}
	return w.bounds[w.pos]
}

func TestGenericMapLowerDefault(t *testing.T) {
	src := []uint16{0x0048, 0x0045, 0x004C, 0x004C, 0x004F} // "HELLO"
	dest := make([]uint16, 5)
	e := edits.New()
	n, err := GenericMap(OpLower, dest, src, ucd.RootLocale, FoldCaseDefault, ucd.DefaultUCD{}, e)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []uint16{0x0068, 0x0065, 0x006C, 0x006C, 0x006F}
	if n != int32(len(want)) {
		t.Fatalf("got n=%d want %d", n, len(want))
	}
	for i, u := range want {
		if dest[i] != u {
			t.Errorf("dest[%d] = %#x, want %#x", i, dest[i], u)
		}
	}
	if !e.HasChanges() {
		t.Errorf("expected edits to report a change")
	}
}

func TestGenericMapUpperTurkish(t *testing.T) {
	src := []uint16{0x0069} // "i"
	dest := make([]uint16, 2)
	n, err := Map(OpUpper, dest, src, ucd.Turkish, FoldCaseDefault, ucd.DefaultUCD{}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 1 || dest[0] != 0x0130 {
		t.Fatalf("got n=%d dest=%v, want n=1 dest[0]=0x0130", n, dest[:n])
	}
}

func TestMapUpperGreekPreservesDialytika(t *testing.T) {
	// "Μάϊος" -> "ΜΑΪΟΣ": lowercase alpha-with-tonos upper-cases to
	// bare alpha; the following iota already carries a dialytika and
	// stays as capital iota with dialytika.
	src := []uint16{0x039C, 0x03AC, 0x03CA, 0x03BF, 0x03C2}
	want := []uint16{0x039C, 0x0391, 0x03AA, 0x039F, 0x03A3}
	dest := make([]uint16, len(want))
	n, err := Map(OpUpper, dest, src, ucd.Greek, FoldCaseDefault, ucd.DefaultUCD{}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != int32(len(want)) {
		t.Fatalf("got n=%d want %d", n, len(want))
	}
	for i, u := range want {
		if dest[i] != u {
			t.Errorf("dest[%d] = %#x, want %#x", i, dest[i], u)
		}
	}
}

func TestMapUpperGreekDisjunctiveEta(t *testing.T) {
	// standalone eta-with-tonos preserves the tonos as the precomposed
	// capital eta-with-tonos.
	dest := make([]uint16, 2)
	n, err := Map(OpUpper, dest, []uint16{0x03AE}, ucd.Greek, FoldCaseDefault, ucd.DefaultUCD{}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 1 || dest[0] != 0x0389 {
		t.Fatalf("got n=%d dest=%v, want dest[0]=0x0389", n, dest[:n])
	}

	// the same letter followed by a cased letter drops the tonos.
	src := []uint16{0x03AE, 0x03BC, 0x03BF, 0x03C5, 0x03BD} // "ήμουν"
	want := []uint16{0x0397, 0x039C, 0x039F, 0x03A5, 0x039D}
	dest2 := make([]uint16, len(want))
	n2, err := Map(OpUpper, dest2, src, ucd.Greek, FoldCaseDefault, ucd.DefaultUCD{}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n2 != int32(len(want)) {
		t.Fatalf("got n=%d want %d", n2, len(want))
	}
	for i, u := range want {
		if dest2[i] != u {
			t.Errorf("dest2[%d] = %#x, want %#x", i, dest2[i], u)
		}
	}
}

func TestTitleMapEnglish(t *testing.T) {
	src := []uint16{'h', 'e', 'l', 'l', 'o', ' ', 'w', 'o', 'r', 'l', 'd'}
	iter := &wbList{bounds: []int{0, 5, 6, 11}}
	dest := make([]uint16, len(src))
	n, err := TitleMap(dest, src, ucd.RootLocale, iter, 0, ucd.DefaultUCD{}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "Hello World"
	if n != int32(len(want)) {
		t.Fatalf("got n=%d want %d", n, len(want))
	}
	for i := 0; i < len(want); i++ {
		if dest[i] != uint16(want[i]) {
			t.Errorf("dest[%d] = %c, want %c", i, dest[i], want[i])
		}
	}
}

func TestTitleMapDutchIJ(t *testing.T) {
	src := []uint16{'i', 'j', 's', 'l', 'a', 'n', 'd'}
	iter := &wbList{bounds: []int{0, int(len(src))}}
	dest := make([]uint16, len(src)+1)
	n, err := TitleMap(dest, src, ucd.Dutch, iter, 0, ucd.DefaultUCD{}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "IJsland"
	if n != int32(len(want)) {
		t.Fatalf("got n=%d want %d", n, len(want))
	}
	for i := 0; i < len(want); i++ {
		if dest[i] != uint16(want[i]) {
			t.Errorf("dest[%d] = %c, want %c", i, dest[i], want[i])
		}
	}
}

func TestMapPreflightEqualsTruth(t *testing.T) {
	src := []uint16{0x0048, 0x0045, 0x004C, 0x004C, 0x004F}
	n0, err := Map(OpLower, nil, src, ucd.RootLocale, FoldCaseDefault, ucd.DefaultUCD{}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	dest := make([]uint16, n0)
	n1, err := Map(OpLower, dest, src, ucd.RootLocale, FoldCaseDefault, ucd.DefaultUCD{}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n0 != n1 {
		t.Fatalf("preflight length %d != actual length %d", n0, n1)
	}
}
