package casemap

import "github.com/odintext/icu/ucd"

// TitleOptions controls the title mapper's word-segment handling.
// Bit values match ICU's public U_TITLECASE_* constants so that an
// encoder/decoder built against this package stays wire-compatible.
type TitleOptions uint32

const (
	TitleNoLowercase       TitleOptions = 0x100
	TitleNoBreakAdjustment TitleOptions = 0x200
)

// FoldOptions controls case-folding variant selection. Bit values
// match ICU's public U_FOLD_CASE_* constants.
type FoldOptions uint32

const (
	FoldCaseDefault         FoldOptions = 0
	FoldCaseExcludeSpecialI FoldOptions = 0x1
	// FoldCaseTurkicI selects the Turkic dotted/dotless I fold variant.
	// ICU exposes this through a separate entry point rather than a
	// public u_strFoldCase bit; this package folds it into the same
	// option set for a single Fold entrypoint.
	FoldCaseTurkicI FoldOptions = 0x2
)

func (o FoldOptions) toUCD() ucd.FoldOptions {
	return ucd.FoldOptions{
		TurkicI:         o&FoldCaseTurkicI != 0,
		ExcludeSpecialI: o&FoldCaseExcludeSpecialI != 0,
	}
}

// Capability is what the generic, title, and Greek-upper mappers need
// from a case database: per-code-point classification plus the full
// (possibly one-to-many) mappings. ucd.DefaultUCD satisfies it.
type Capability interface {
	ucd.CaseProperties
	ucd.FullCaseMapper
}
