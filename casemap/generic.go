package casemap

import (
	"github.com/odintext/icu/edits"
	"github.com/odintext/icu/ucd"
)

// Operation selects which UCD full-mapping entry point the generic
// mapper consults per code point.
type Operation int

const (
	OpLower Operation = iota
	// OpUpper is the non-Greek upper path; callers resolve the Greek
	// locale to the greek package's state machine before reaching here.
	OpUpper
	OpFold
)

// GenericMap walks src one code point at a time, consults the UCD
// full-mapping capability with a case context positioned at that code
// point, and appends the result. It implements lowercasing, the
// non-Greek upper path, and folding uniformly, since all three share
// this shape and differ only in which full-mapping entry point they
// call.
func GenericMap(op Operation, dest, src []uint16, locale ucd.CaseLocale, foldOpts FoldOptions, u Capability, ed *edits.Edits) (int32, error) {
	ctx := ucd.NewSpanContext(src)
	destIndex := int32(0)

	for i := int32(0); i < int32(len(src)); {
		c, width := ucd.DecodeAt(src, i)
		j := i + width

		var result ucd.MappingResult
		switch op {
		case OpLower:
			ctx.SetCurrent(i, j)
			result = u.ToFullLower(c, ctx, &locale)
		case OpUpper:
			ctx.SetCurrent(i, j)
			result = u.ToFullUpper(c, ctx, &locale)
		case OpFold:
			result = u.ToFullFolding(c, foldOpts.toUCD())
		}

		n, err := appendResult(dest, destIndex, width, result, ed)
		if err != nil {
			return 0, err
		}
		destIndex = n
		i = j
	}

	return destIndex, nil
}
