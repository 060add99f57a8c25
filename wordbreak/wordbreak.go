// Package wordbreak supplies the word-boundary cursor the title mapper
// walks to find title-casing segment starts. The default
// implementation follows UAX #29 word-break rules via rivo/uniseg
// instead of a hand-rolled break-iterator state machine.
package wordbreak

import (
	"unicode/utf16"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// Done is the sentinel Iterator methods return once no further
// boundary exists.
const Done = -1

// Iterator walks forward through a UTF-16 span, reporting each
// successive word-boundary offset in code units.
type Iterator interface {
	// First resets the cursor and returns the first boundary, which is
	// always 0 for a non-empty span.
	First() int
	// Next returns the next boundary strictly greater than the last one
	// returned, or Done when the span is exhausted.
	Next() int
}

// UAX29Iterator implements Iterator using Unicode's default word
// segmentation. It decodes the UTF-16 source to UTF-8 once up front,
// since uniseg operates on strings, then translates uniseg's byte
// offsets back to UTF-16 code-unit offsets via a precomputed table.
type UAX29Iterator struct {
	text       string
	byteToUnit []int // byteToUnit[b] = UTF-16 offset of the rune starting at byte b
	unitLen    int
	bytePos    int
	state      int
}

// NewUAX29Iterator builds an iterator over src. The returned iterator
// is positioned before the first boundary; call First to begin.
func NewUAX29Iterator(src []uint16) *UAX29Iterator {
	runes := utf16.Decode(src)
	var buf [utf8.UTFMax]byte
	text := make([]byte, 0, len(src)*2)
	byteToUnit := make([]int, 0, len(src)*2+1)

	unit := 0
	for _, r := range runes {
		n := utf8.EncodeRune(buf[:], r)
		for i := 0; i < n; i++ {
			byteToUnit = append(byteToUnit, unit)
		}
		text = append(text, buf[:n]...)
		if r > 0xFFFF {
			unit += 2
		} else {
			unit++
		}
	}
	byteToUnit = append(byteToUnit, unit) // sentinel for the end-of-text offset

	return &UAX29Iterator{text: string(text), byteToUnit: byteToUnit, unitLen: unit}
}

// First resets the cursor to the start of the span and returns 0 (or
// Done if the span is empty).
func (it *UAX29Iterator) First() int {
	it.bytePos = 0
	it.state = -1
	if it.unitLen == 0 {
		return Done
	}
	return 0
}

// Next advances to the next UAX #29 word boundary, returning its
// UTF-16 code-unit offset, or Done once the span is exhausted.
func (it *UAX29Iterator) Next() int {
	if it.bytePos >= len(it.text) {
		return Done
	}
	word, _, newState := uniseg.FirstWordInString(it.text[it.bytePos:], it.state)
	it.state = newState
	it.bytePos += len(word)
	if it.bytePos >= len(it.text) {
		return Done
	}
	return it.byteToUnit[it.bytePos]
}
