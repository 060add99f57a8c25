// Package ucd is the Unicode Character Database capability the case
// mappers consume as an opaque collaborator: per-code-point case type,
// ignorable status, and full lower/upper/title/fold mappings that may
// expand a single code point into several code units.
//
// DefaultUCD, the implementation provided here, is built from the
// standard library's unicode tables plus a small embedded table of the
// one-to-many SpecialCasing/CaseFolding exceptions stdlib unicode cannot
// express, since it only ever implements simple one-rune mappings.
// Callers with access to an ICU-grade database can supply their own
// CaseProperties/FullCaseMapper instead.
package ucd

import (
	"unicode"

	"golang.org/x/text/language"
)

// CaseType classifies a code point's simple case status.
type CaseType int

const (
	// None means the code point has no case. It may still be
	// case-ignorable; CaseTypeOrIgnorable reports that separately.
	None CaseType = iota
	Lower
	Upper
	Title
)

// CaseLocale is the small set of locales that change case-mapping
// behavior, replacing the original's UCASE_LOC_* integer constants.
type CaseLocale int

const (
	// RootLocale applies the default Unicode algorithm with no
	// locale-specific overrides.
	RootLocale CaseLocale = iota
	Turkish
	Azeri
	Lithuanian
	Greek
	Dutch
)

// ResolveLocale parses a BCP-47 locale identifier and returns the
// CaseLocale it maps to, defaulting to RootLocale for anything not
// specially handled by the mapping algorithms.
func ResolveLocale(id string) CaseLocale {
	if id == "" {
		return RootLocale
	}
	tag, err := language.Parse(id)
	if err != nil {
		return RootLocale
	}
	base, conf := tag.Base()
	if conf == language.No {
		return RootLocale
	}
	switch base.String() {
	case "tr":
		return Turkish
	case "az":
		return Azeri
	case "lt":
		return Lithuanian
	case "el":
		return Greek
	case "nl":
		return Dutch
	default:
		return RootLocale
	}
}

// ResultKind tags the shape of a MappingResult, replacing the original's
// negative/0..MAX/>=MAX sentinel-integer encoding with an explicit enum.
type ResultKind int

const (
	// Unchanged means the input code point maps to itself.
	Unchanged ResultKind = iota
	// Scalar means the input maps to exactly one (possibly different)
	// code point.
	Scalar
	// Expansion means the input maps to a run of code units (at most
	// three, per Unicode's full-mapping guarantee).
	Expansion
)

// MappingResult is the outcome of a full case-mapping lookup.
type MappingResult struct {
	Kind     ResultKind
	Original rune
	Scalar   rune
	Expanded []uint16
}

func unchanged(c rune) MappingResult {
	return MappingResult{Kind: Unchanged, Original: c}
}

func scalar(c rune) MappingResult {
	return MappingResult{Kind: Scalar, Scalar: c}
}

func expansion(units []uint16) MappingResult {
	return MappingResult{Kind: Expansion, Expanded: units}
}

// CaseContextIterator lets the UCD capability look both forward and
// backward from a mapped code point's position to resolve context-
// sensitive mappings such as final sigma. It replaces the original's
// function-pointer-plus-direction callback with a small capability
// object, per this module's design notes.
type CaseContextIterator interface {
	// Next returns the next code point moving forward from the current
	// position, or ok=false at the scan limit.
	Next() (c rune, ok bool)
	// Prev returns the next code point moving backward from the current
	// position, or ok=false at the source base.
	Prev() (c rune, ok bool)
	// ResetToStart repositions for a fresh backward scan from cpStart.
	ResetToStart()
	// ResetToLimit repositions for a fresh forward scan from cpLimit.
	ResetToLimit()
}

// CaseProperties reports per-code-point simple case status.
type CaseProperties interface {
	CaseType(c rune) CaseType
	// CaseTypeOrIgnorable additionally reports whether c is case-ignorable
	// (contributes nothing to final-sigma or AFTER_CASED state tracking).
	CaseTypeOrIgnorable(c rune) (caseType CaseType, ignorable bool)
}

// FoldOptions selects among the small number of case-folding variants.
type FoldOptions struct {
	// TurkicI enables the Turkic mapping of dotted/dotless I during
	// folding (mutually exclusive in effect with ExcludeSpecialI).
	TurkicI bool
	// ExcludeSpecialI suppresses the dotted-I special case, folding i/I
	// uniformly regardless of locale.
	ExcludeSpecialI bool
}

// FullCaseMapper produces the full (possibly one-to-many) case mappings
// the generic and title mappers drive.
type FullCaseMapper interface {
	ToFullLower(c rune, ctx CaseContextIterator, locale *CaseLocale) MappingResult
	ToFullUpper(c rune, ctx CaseContextIterator, locale *CaseLocale) MappingResult
	ToFullTitle(c rune, ctx CaseContextIterator, locale *CaseLocale) MappingResult
	ToFullFolding(c rune, opts FoldOptions) MappingResult
}

// DefaultUCD implements CaseProperties and FullCaseMapper on top of the
// standard library's unicode tables, consulting specialCasing for the
// exceptions stdlib unicode's simple one-rune mapping cannot express.
type DefaultUCD struct{}

var _ CaseProperties = DefaultUCD{}
var _ FullCaseMapper = DefaultUCD{}

// CaseType reports c's simple case status from the stdlib unicode range
// tables.
func (DefaultUCD) CaseType(c rune) CaseType {
	switch {
	case unicode.IsUpper(c):
		return Upper
	case unicode.IsLower(c):
		return Lower
	case unicode.IsTitle(c):
		return Title
	default:
		return None
	}
}

// CaseTypeOrIgnorable additionally classifies case-ignorable code points:
// Mn (nonspacing marks), the word-joiner/format-control code points
// Unicode designates Case_Ignorable, and a handful of punctuation marks
// explicitly called out by the Case_Ignorable property (MidLetter-style
// marks) that sit outside Mn.
func (d DefaultUCD) CaseTypeOrIgnorable(c rune) (CaseType, bool) {
	return d.CaseType(c), isCaseIgnorable(c)
}

func isCaseIgnorable(c rune) bool {
	if unicode.Is(unicode.Mn, c) || unicode.Is(unicode.Me, c) || unicode.Is(unicode.Cf, c) {
		return true
	}
	switch c {
	case 0x0027, // apostrophe
		0x00AD, // soft hyphen
		0x2018, 0x2019, 0x2024, // quotation marks, one dot leader
		0x003A, 0x00B7, 0x0387, 0x05F4, 0x2027: // colon, middle dots
		return true
	}
	return false
}
