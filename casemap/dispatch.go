package casemap

import (
	"unicode/utf16"
	"unsafe"

	"github.com/odintext/icu/edits"
	"github.com/odintext/icu/errs"
	"github.com/odintext/icu/greek"
	"github.com/odintext/icu/ucd"
)

// scratchCapacity is the size of MapWithOverlap's stack-sized scratch
// buffer.
const scratchCapacity = 300

// Map validates arguments, rejects overlapping source/destination
// spans, and dispatches to the Greek upper-casing state machine or
// the generic per-code-point mapper. Title-casing has its own entry
// point (TitleMap) since it additionally needs a word-boundary
// iterator.
func Map(op Operation, dest, src []uint16, locale ucd.CaseLocale, foldOpts FoldOptions, u Capability, ed *edits.Edits) (int32, error) {
	if overlaps(dest, src) {
		return 0, errs.New(errs.IllegalArgument, "source and destination overlap")
	}
	if op == OpUpper && locale == ucd.Greek {
		return greek.ToUpper(dest, src, casedChecker{u}, upperFallback(u, locale), ed)
	}
	return GenericMap(op, dest, src, locale, foldOpts, u, ed)
}

// MapWithOverlap maps src into dest even when the two spans overlap,
// by mapping into an intermediate buffer first and copying out: a
// stack-sized scratch array for the common case, falling back to a
// heap allocation sized to the exact required length when the result
// would not fit.
func MapWithOverlap(op Operation, dest, src []uint16, locale ucd.CaseLocale, foldOpts FoldOptions, u Capability, ed *edits.Edits) (int32, error) {
	var stack [scratchCapacity]uint16
	scratch := stack[:]

	n, err := GenericMapDispatch(op, scratch, src, locale, foldOpts, u, ed)
	if err != nil {
		return 0, err
	}
	if n > int32(len(scratch)) {
		if ed != nil {
			ed.Reset()
		}
		heap := make([]uint16, n)
		n, err = GenericMapDispatch(op, heap, src, locale, foldOpts, u, ed)
		if err != nil {
			return 0, err
		}
		scratch = heap
	}
	for i := int32(0); i < n && i < int32(len(dest)); i++ {
		dest[i] = scratch[i]
	}
	return n, nil
}

// GenericMapDispatch is Map's dispatch step without the overlap
// check, since MapWithOverlap's scratch buffer never overlaps src.
func GenericMapDispatch(op Operation, dest, src []uint16, locale ucd.CaseLocale, foldOpts FoldOptions, u Capability, ed *edits.Edits) (int32, error) {
	if op == OpUpper && locale == ucd.Greek {
		return greek.ToUpper(dest, src, casedChecker{u}, upperFallback(u, locale), ed)
	}
	return GenericMap(op, dest, src, locale, foldOpts, u, ed)
}

// overlaps reports whether dest and src share any backing memory,
// using pointer-range comparison on the first and last elements of
// each slice (Go gives us pointer identity per-element without the
// original's need for a raw-pointer-range hack).
func overlaps(dest, src []uint16) bool {
	if len(dest) == 0 || len(src) == 0 {
		return false
	}
	dStart := uintptr(unsafe.Pointer(&dest[0]))
	dEnd := uintptr(unsafe.Pointer(&dest[len(dest)-1])) + 2
	sStart := uintptr(unsafe.Pointer(&src[0]))
	sEnd := uintptr(unsafe.Pointer(&src[len(src)-1])) + 2
	return dStart < sEnd && sStart < dEnd
}

// casedChecker adapts a Capability to greek.CasedChecker.
type casedChecker struct{ u Capability }

func (c casedChecker) IsCased(r rune) bool { return c.u.CaseType(r) != ucd.None }
func (c casedChecker) IsCaseIgnorable(r rune) bool {
	_, ignorable := c.u.CaseTypeOrIgnorable(r)
	return ignorable
}

// upperFallback adapts the UCD full-upper entry point to
// greek.GenericUpper, for the code points the Greek state machine
// does not itself recognize. Non-Greek upper-casing has no
// context-sensitive rules, so the context cursor is a no-op.
func upperFallback(u Capability, locale ucd.CaseLocale) greek.GenericUpper {
	ctx := ucd.NewSpanContext(nil)
	return func(c rune, i, limit int32) []uint16 {
		result := u.ToFullUpper(c, ctx, &locale)
		switch result.Kind {
		case ucd.Unchanged:
			return runeUnits(result.Original)
		case ucd.Scalar:
			return runeUnits(result.Scalar)
		case ucd.Expansion:
			return result.Expanded
		default:
			return runeUnits(c)
		}
	}
}

func runeUnits(c rune) []uint16 {
	if c <= 0xFFFF {
		return []uint16{uint16(c)}
	}
	r1, r2 := utf16.EncodeRune(c)
	return []uint16{uint16(r1), uint16(r2)}
}
