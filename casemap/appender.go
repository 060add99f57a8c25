// Package casemap holds the mapping algorithms shared by every
// case-transform entry point: the generic per-code-point mapper used
// for lowercasing, folding, and non-Greek uppercasing; the
// word-segment title mapper; and the result appender both funnel
// through to write output and maintain the edit log.
package casemap

import (
	"unicode/utf16"

	"github.com/odintext/icu/edits"
	"github.com/odintext/icu/errs"
	"github.com/odintext/icu/ucd"
)

const maxLength = 1<<31 - 1

// appendRune writes c's UTF-16 encoding (one or two code units)
// starting at destIndex, truncating at dest's capacity but always
// returning the full post-write index so callers can preflight.
func appendRune(dest []uint16, destIndex int32, c rune) (int32, error) {
	if c <= 0xFFFF {
		return appendUnits(dest, destIndex, []uint16{uint16(c)})
	}
	r1, r2 := utf16.EncodeRune(c)
	return appendUnits(dest, destIndex, []uint16{uint16(r1), uint16(r2)})
}

// appendUnits writes units starting at destIndex, truncating at
// dest's capacity.
func appendUnits(dest []uint16, destIndex int32, units []uint16) (int32, error) {
	if int64(destIndex)+int64(len(units)) > maxLength {
		return 0, errs.New(errs.IndexOutOfBounds, "destination index overflow")
	}
	for _, u := range units {
		if destIndex < int32(len(dest)) {
			dest[destIndex] = u
		}
		destIndex++
	}
	return destIndex, nil
}

// appendVerbatim copies src through unchanged, recording an unchanged
// edit-log run of its length. Used for uncased-prefix skipping in the
// title mapper and for the no-lowercase title tail.
func appendVerbatim(dest []uint16, destIndex int32, src []uint16, ed *edits.Edits) (int32, error) {
	if ed != nil {
		ed.AddUnchanged(int32(len(src)))
		if !ed.WriteUnchanged() {
			return destIndex, nil
		}
	}
	return appendUnits(dest, destIndex, src)
}

// appendResult is the shared Result Appender: given a decoded mapping
// result and the number of source code units it replaces, record the
// edit and write the resulting code units, honoring the edit log's
// omit-unchanged option.
func appendResult(dest []uint16, destIndex int32, oldLength int32, result ucd.MappingResult, ed *edits.Edits) (int32, error) {
	switch result.Kind {
	case ucd.Unchanged:
		if ed != nil {
			ed.AddUnchanged(oldLength)
			if !ed.WriteUnchanged() {
				return destIndex, nil
			}
		}
		return appendRune(dest, destIndex, result.Original)
	case ucd.Scalar:
		n, err := appendRune(dest, destIndex, result.Scalar)
		if err != nil {
			return 0, err
		}
		if ed != nil {
			ed.AddReplace(oldLength, n-destIndex)
		}
		return n, nil
	case ucd.Expansion:
		n, err := appendUnits(dest, destIndex, result.Expanded)
		if err != nil {
			return 0, err
		}
		if ed != nil {
			ed.AddReplace(oldLength, int32(len(result.Expanded)))
		}
		return n, nil
	default:
		return destIndex, nil
	}
}
