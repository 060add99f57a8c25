// Package icu implements Unicode UTF-16 case mapping and case-insensitive
// comparison: lower/upper/title/fold transforms, a Greek upper-casing state
// machine, word-segment title-casing, a bit-packed edit log for mapping
// source spans to destination spans, and a lazy case-fold comparator.
package icu

import (
	"github.com/odintext/icu/casecompare"
	"github.com/odintext/icu/casemap"
	"github.com/odintext/icu/edits"
	"github.com/odintext/icu/errs"
	"github.com/odintext/icu/ucd"
	"github.com/odintext/icu/wordbreak"
)

// Edits is the append-only log every mapping entry point can optionally
// fill in, recording which destination spans came from unchanged source
// code units versus replacements.
type Edits = edits.Edits

// NewEdits returns an empty edit log ready to pass to any mapping call.
func NewEdits() *Edits { return edits.New() }

// TitleOptions controls the title mapper's word-segment handling.
type TitleOptions = casemap.TitleOptions

const (
	TitleNoLowercase       = casemap.TitleNoLowercase
	TitleNoBreakAdjustment = casemap.TitleNoBreakAdjustment
)

// FoldOptions controls case-folding variant selection.
type FoldOptions = casemap.FoldOptions

const (
	FoldCaseDefault         = casemap.FoldCaseDefault
	FoldCaseExcludeSpecialI = casemap.FoldCaseExcludeSpecialI
	FoldCaseTurkicI         = casemap.FoldCaseTurkicI
)

// CompareOptions controls CaseCompare and CaseInsensitivePrefixMatch.
type CompareOptions = casecompare.Options

const (
	CompareIgnoreCase     = casecompare.IgnoreCase
	CompareCodePointOrder = casecompare.CodePointOrder
	CompareStrncmpStyle   = casecompare.StrncmpStyle
)

// Error is the error type every function in this package returns.
type Error = errs.Error

// WordBreakIterator drives ToTitle's word-segment boundaries. NewUAX29
// below returns the default UAX #29 implementation; callers with their
// own segmentation needs can supply anything satisfying this interface.
type WordBreakIterator = wordbreak.Iterator

// NewUAX29 returns a word-break iterator over src using Unicode's default
// word-segmentation rules.
func NewUAX29(src []uint16) WordBreakIterator {
	return wordbreak.NewUAX29Iterator(src)
}

var defaultUCD = ucd.DefaultUCD{}

func terminate(dest []uint16, n int32) (int, error) {
	if n < 0 || n > int32(1<<31-1) {
		return 0, errs.New(errs.IndexOutOfBounds, "result length overflow")
	}
	if int(n) > len(dest) {
		return int(n), errs.New(errs.BufferOverflow, "destination too small")
	}
	// An exact fit (n == len(dest)) leaves no room for a terminator; it is
	// not reported as an error.
	return int(n), nil
}

// ToLower writes the lower-cased form of src to dest, returning the
// length of the result. If dest is too small the returned length is the
// full required length (a pre-flight count) and the error is
// errs.BufferOverflow; dest's contents up to its own capacity are still
// valid lower-cased output.
func ToLower(dest, src []uint16, locale string, e *Edits) (int, error) {
	loc := ucd.ResolveLocale(locale)
	n, err := casemap.GenericMap(casemap.OpLower, dest, src, loc, FoldCaseDefault, defaultUCD, e)
	if err != nil {
		return 0, err
	}
	return terminate(dest, n)
}

// ToUpper writes the upper-cased form of src to dest. For the Greek
// locale this runs the context-sensitive accent/dialytika state machine
// instead of the generic per-code-point mapping.
func ToUpper(dest, src []uint16, locale string, e *Edits) (int, error) {
	loc := ucd.ResolveLocale(locale)
	n, err := casemap.Map(casemap.OpUpper, dest, src, loc, FoldCaseDefault, defaultUCD, e)
	if err != nil {
		return 0, err
	}
	return terminate(dest, n)
}

// ToTitle writes the title-cased form of src to dest, using iter to find
// word-segment boundaries. A nil iter defaults to UAX #29 segmentation.
func ToTitle(dest, src []uint16, locale string, iter WordBreakIterator, opts TitleOptions, e *Edits) (int, error) {
	if iter == nil {
		iter = NewUAX29(src)
	}
	loc := ucd.ResolveLocale(locale)
	n, err := casemap.TitleMap(dest, src, loc, iter, opts, defaultUCD, e)
	if err != nil {
		return 0, err
	}
	return terminate(dest, n)
}

// Fold writes the case-folded form of src to dest, the locale-independent
// transform CaseCompare uses internally for case-insensitive matching.
func Fold(dest, src []uint16, opts FoldOptions, e *Edits) (int, error) {
	n, err := casemap.GenericMap(casemap.OpFold, dest, src, ucd.RootLocale, opts, defaultUCD, e)
	if err != nil {
		return 0, err
	}
	return terminate(dest, n)
}

// ToLowerInPlace maps src into dest even when the two slices overlap, at
// the cost of an intermediate buffer.
func ToLowerInPlace(dest, src []uint16, locale string, e *Edits) (int, error) {
	loc := ucd.ResolveLocale(locale)
	n, err := casemap.MapWithOverlap(casemap.OpLower, dest, src, loc, FoldCaseDefault, defaultUCD, e)
	if err != nil {
		return 0, err
	}
	return terminate(dest, n)
}

// ToUpperInPlace is ToUpper's overlap-tolerant counterpart.
func ToUpperInPlace(dest, src []uint16, locale string, e *Edits) (int, error) {
	loc := ucd.ResolveLocale(locale)
	n, err := casemap.MapWithOverlap(casemap.OpUpper, dest, src, loc, FoldCaseDefault, defaultUCD, e)
	if err != nil {
		return 0, err
	}
	return terminate(dest, n)
}

// CaseCompare compares s1 and s2 case-insensitively, folding on the fly
// rather than allocating folded copies of either argument. Folding is
// applied whether or not CompareIgnoreCase is set; CompareCodePointOrder
// only changes how unpaired surrogates sort. The sign of
// the result matches the folded code point sequences; comparison never
// fails, so the error return is always nil.
func CaseCompare(s1, s2 []uint16, opts CompareOptions) (int, error) {
	foldOpts := foldOptionsFromCompare(opts)
	result, _, _ := casecompare.Compare(s1, s2, opts, foldOpts, defaultUCD)
	return result, nil
}

// CaseInsensitivePrefixMatch reports how many leading code units of s1
// and s2 form a matching, case-insensitively-equal prefix, which may
// differ between the two sides when a fold expands or contracts a code
// point (e.g. German ß folding to "ss"). The error return is always nil.
func CaseInsensitivePrefixMatch(s1, s2 []uint16, opts CompareOptions) (m1, m2 int, err error) {
	foldOpts := foldOptionsFromCompare(opts)
	_, mm1, mm2 := casecompare.Compare(s1, s2, opts|CompareIgnoreCase, foldOpts, defaultUCD)
	return int(mm1), int(mm2), nil
}

func foldOptionsFromCompare(opts CompareOptions) ucd.FoldOptions {
	return ucd.FoldOptions{}
}
