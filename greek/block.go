package greek

import (
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

var greekBlocks = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: data0370Base, Hi: data0370Base + uint16(len(data0370)) - 1, Stride: 1},
		{Lo: data1F00Base, Hi: data1F00Base + uint16(len(data1F00)) - 1, Stride: 1},
	},
}

var greekRange = rangetable.Merge(greekBlocks, rangetable.New(rune(data2126CodePoint)))

// InBlock reports whether c falls in one of the ranges the Greek
// letter-data tables cover. It is a fast pre-check ahead of
// getLetterData, not a replacement for it: individual code points
// inside the range can still carry a zero (unassigned) entry.
func InBlock(c rune) bool {
	return unicode.Is(greekRange, c)
}
