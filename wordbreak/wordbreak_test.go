package wordbreak

import (
	"testing"
	"unicode/utf16"
)

func collect(it *UAX29Iterator) []int {
	var got []int
	for b := it.First(); b != Done; b = it.Next() {
		got = append(got, b)
	}
	return got
}

func TestUAX29IteratorTwoWords(t *testing.T) {
	src := utf16.Encode([]rune("hello world"))
	it := NewUAX29Iterator(src)
	got := collect(it)
	if len(got) == 0 || got[0] != 0 {
		t.Fatalf("expected first boundary at 0, got %v", got)
	}
	foundSpace := false
	for _, b := range got {
		if b == 5 {
			foundSpace = true
		}
	}
	if !foundSpace {
		t.Errorf("expected a boundary at the space (offset 5), got %v", got)
	}
}

func TestUAX29IteratorEmpty(t *testing.T) {
	it := NewUAX29Iterator(nil)
	if b := it.First(); b != Done {
		t.Fatalf("expected Done for empty span, got %d", b)
	}
}

func TestUAX29IteratorSupplementary(t *testing.T) {
	// A single supplementary-plane rune occupies 2 UTF-16 code units;
	// the translation table must count it as width 2, not 1.
	src := utf16.Encode([]rune("\U0001F600 hi"))
	it := NewUAX29Iterator(src)
	got := collect(it)
	if len(got) < 2 {
		t.Fatalf("expected at least two boundaries, got %v", got)
	}
}
