package casemap

import (
	"github.com/odintext/icu/edits"
	"github.com/odintext/icu/ucd"
	"github.com/odintext/icu/wordbreak"
)

// TitleMap implements word-segment title-casing. For each segment the
// iterator reports: any leading uncased characters are copied
// verbatim (unless TitleNoBreakAdjustment is set), the next cased
// letter is mapped via the UCD full-title entry point, a Dutch
// "ij"/"IJ" digraph is extended to capitalize both letters, and the
// remainder of the segment is lowercased (unless TitleNoLowercase is
// set).
func TitleMap(dest, src []uint16, locale ucd.CaseLocale, iter wordbreak.Iterator, opts TitleOptions, u Capability, ed *edits.Edits) (int32, error) {
	ctx := ucd.NewSpanContext(src)
	destIndex := int32(0)
	n := int32(len(src))

	prev := iter.First()
	for prev != wordbreak.Done {
		prevU := int32(prev)

		next := iter.Next()
		idx := n
		if next != wordbreak.Done {
			idx = int32(next)
		}

		titleStart := prevU
		titleLimit := prevU

		if titleStart < idx {
			c, width := ucd.DecodeAt(src, titleStart)
			titleLimit = titleStart + width

			if opts&TitleNoBreakAdjustment == 0 {
				for u.CaseType(c) == ucd.None {
					written, err := appendVerbatim(dest, destIndex, src[titleStart:titleLimit], ed)
					if err != nil {
						return 0, err
					}
					destIndex = written
					titleStart = titleLimit
					if titleStart >= idx {
						break
					}
					c, width = ucd.DecodeAt(src, titleStart)
					titleLimit = titleStart + width
				}
			}

			if titleStart < idx {
				ctx.SetCurrent(titleStart, titleLimit)
				result := u.ToFullTitle(c, ctx, &locale)
				written, err := appendResult(dest, destIndex, width, result, ed)
				if err != nil {
					return 0, err
				}
				destIndex = written

				if locale == ucd.Dutch && titleStart+1 < idx {
					c0 := src[titleStart]
					c1 := src[titleStart+1]
					if (c0 == 'I' || c0 == 'i') && (c1 == 'J' || c1 == 'j') {
						written, err := appendRune(dest, destIndex, 'J')
						if err != nil {
							return 0, err
						}
						destIndex = written
						if ed != nil {
							ed.AddReplace(1, 1)
						}
						titleLimit++
					}
				}
			}
		}

		if titleLimit < idx {
			if opts&TitleNoLowercase == 0 {
				written, err := lowerSegment(dest, destIndex, src, titleLimit, idx, locale, u, ctx, ed)
				if err != nil {
					return 0, err
				}
				destIndex = written
			} else {
				written, err := appendVerbatim(dest, destIndex, src[titleLimit:idx], ed)
				if err != nil {
					return 0, err
				}
				destIndex = written
			}
		}

		prev = next
	}

	return destIndex, nil
}

// lowerSegment lowercases src[from:to) through the same UCD full-lower
// entry point the generic mapper uses, sharing ctx so a final-sigma
// lookback can still see across the segment boundary into the title
// head this tail follows.
func lowerSegment(dest []uint16, destIndex int32, src []uint16, from, to int32, locale ucd.CaseLocale, u Capability, ctx *ucd.SpanContext, ed *edits.Edits) (int32, error) {
	for i := from; i < to; {
		c, width := ucd.DecodeAt(src, i)
		j := i + width
		ctx.SetCurrent(i, j)
		result := u.ToFullLower(c, ctx, &locale)
		n, err := appendResult(dest, destIndex, width, result, ed)
		if err != nil {
			return 0, err
		}
		destIndex = n
		i = j
	}
	return destIndex, nil
}
