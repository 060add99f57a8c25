// Package casecompare implements case-insensitive comparison of two
// UTF-16 spans by folding each side lazily, one code point at a time,
// instead of allocating a fully-folded copy of either string first.
package casecompare

import (
	"github.com/odintext/icu/ucd"
)

// Options controls comparison behavior. Bit values match ICU's public
// U_COMPARE_* constants.
type Options uint32

const (
	IgnoreCase     Options = 0x10000
	CodePointOrder Options = 0x8000
	// StrncmpStyle selects NUL-aware comparison semantics when a span's
	// length is given as -1. The []uint16 API here always carries an
	// explicit length, so this bit has no behavior to select, but the
	// value itself is kept so the option bit layout stays wire-compatible
	// with callers that persist or transmit option values.
	StrncmpStyle Options = 0x1000
)

// foldBufCap bounds the local fold buffer: Unicode full case folding
// never expands a single code point past 3 code units.
const foldBufCap = 8

const (
	leadSurrogateMin = 0xD800
	leadSurrogateMax = 0xDBFF
	trailSurrogateMin = 0xDC00
	trailSurrogateMax = 0xDFFF
)

func isLead(u int32) bool  { return u >= leadSurrogateMin && u <= leadSurrogateMax }
func isTrail(u int32) bool { return u >= trailSurrogateMin && u <= trailSurrogateMax }

// cursor is one side's position: either reading directly from the
// original span (level 0) or from a local fold-expansion buffer
// (level 1, after the original single code point that produced it).
// Only one level of folding is ever pushed, since full folding is
// context-free and never folds its own output.
type cursor struct {
	src   []uint16
	pos   int32
	limit int32
	level int

	// saved level-0 position to resume once the fold buffer drains.
	savedSrc   []uint16
	savedPos   int32
	savedLimit int32

	buf [foldBufCap]uint16
}

func newCursor(src []uint16) *cursor {
	return &cursor{src: src, limit: int32(len(src))}
}

// fetch returns the next cached code unit, or -1 once the side is
// exhausted. Code units are always in [0, 0xFFFF], so -1 is an
// unambiguous sentinel.
func (c *cursor) fetch() int32 {
	if c.level == 1 && c.pos == c.limit {
		c.src, c.pos, c.limit = c.savedSrc, c.savedPos, c.savedLimit
		c.level = 0
	}
	if c.pos < c.limit {
		u := int32(c.src[c.pos])
		c.pos++
		return u
	}
	return -1
}

// origPos reports this side's position in the ORIGINAL span: the
// live cursor at level 0, or the saved resume point while mid-fold.
func (c *cursor) origPos() int32 {
	if c.level == 0 {
		return c.pos
	}
	return c.savedPos
}

// peekTrail returns the next unit without consuming it, or -1 if at
// the end of the current level.
func (c *cursor) peekTrail() int32 {
	if c.pos < c.limit {
		return int32(c.src[c.pos])
	}
	return -1
}

// pushFold switches this cursor to read from a freshly-computed fold
// expansion, saving the level-0 position it should resume at once the
// expansion is consumed.
func (c *cursor) pushFold(expanded []uint16) {
	c.savedSrc, c.savedPos, c.savedLimit = c.src, c.pos, c.limit
	n := copy(c.buf[:], expanded)
	c.src = c.buf[:n]
	c.pos = 0
	c.limit = int32(n)
	c.level = 1
}

// Compare implements the case-fold comparator. It returns a value
// whose sign matches the fully-decoded, case-folded code point
// sequences (negative if s1 sorts before s2), plus the last aligned
// code-unit positions m1/m2 both sides had fully consumed — the
// prefix-match lengths CaseInsensitivePrefixMatch reports.
func Compare(s1, s2 []uint16, opts Options, foldOpts ucd.FoldOptions, folder ucd.FullCaseMapper) (result int, m1, m2 int32) {
	c1 := newCursor(s1)
	c2 := newCursor(s2)
	u1, u2 := int32(-1), int32(-1)
	mm1, mm2 := int32(0), int32(0)

	for {
		if u1 == -1 {
			u1 = c1.fetch()
		}
		if u2 == -1 {
			u2 = c2.fetch()
		}

		if u1 == u2 {
			if u1 == -1 {
				return 0, mm1, mm2
			}
			if (c1.level == 0 || c1.pos == c1.limit) && (c2.level == 0 || c2.pos == c2.limit) {
				mm1 = c1.origPos()
				mm2 = c2.origPos()
			}
			u1, u2 = -1, -1
			continue
		}

		if (u1 == -1) != (u2 == -1) {
			if u1 == -1 {
				return -1, mm1, mm2
			}
			return 1, mm1, mm2
		}

		cp1, cp2 := u1, u2
		if isLead(u1) {
			if t := c1.peekTrail(); isTrail(t) {
				c1.pos++
				cp1 = ((u1 - 0xD800) << 10) + (t - 0xDC00) + 0x10000
			}
		} else if isTrail(u1) && c1.pos >= 2 && isLead(int32(c1.src[c1.pos-2])) {
			cp1 = ((int32(c1.src[c1.pos-2]) - 0xD800) << 10) + (u1 - 0xDC00) + 0x10000
		}
		if isLead(u2) {
			if t := c2.peekTrail(); isTrail(t) {
				c2.pos++
				cp2 = ((u2 - 0xD800) << 10) + (t - 0xDC00) + 0x10000
			}
		} else if isTrail(u2) && c2.pos >= 2 && isLead(int32(c2.src[c2.pos-2])) {
			cp2 = ((int32(c2.src[c2.pos-2]) - 0xD800) << 10) + (u2 - 0xDC00) + 0x10000
		}

		if c1.level == 0 {
			res := folder.ToFullFolding(cp1, foldOpts)
			if res.Kind != ucd.Unchanged {
				if isTrail(u1) {
					c2.pos--
					mm2--
					u2 = int32(c2.src[c2.pos-1])
				}
				c1.pushFold(expandedUnits(res))
				u1 = -1
				continue
			}
		}
		if c2.level == 0 {
			res := folder.ToFullFolding(cp2, foldOpts)
			if res.Kind != ucd.Unchanged {
				if isTrail(u2) {
					c1.pos--
					mm2--
					u1 = int32(c1.src[c1.pos-1])
				}
				c2.pushFold(expandedUnits(res))
				u2 = -1
				continue
			}
		}

		if opts&CodePointOrder != 0 {
			if isLead(u1) || isTrail(u1) {
				if cp1 == u1 {
					cp1 -= 0x2800
				}
			}
			if isLead(u2) || isTrail(u2) {
				if cp2 == u2 {
					cp2 -= 0x2800
				}
			}
		}
		if cp1 < cp2 {
			return -1, mm1, mm2
		}
		return 1, mm1, mm2
	}
}

func expandedUnits(r ucd.MappingResult) []uint16 {
	switch r.Kind {
	case ucd.Scalar:
		return runeUnits(r.Scalar)
	case ucd.Expansion:
		return r.Expanded
	default:
		return nil
	}
}

func runeUnits(c rune) []uint16 {
	if c <= 0xFFFF {
		return []uint16{uint16(c)}
	}
	hi := 0xD800 + ((c - 0x10000) >> 10)
	lo := 0xDC00 + ((c - 0x10000) & 0x3FF)
	return []uint16{uint16(hi), uint16(lo)}
}
