package ucd

import "unicode"

func scalarIfDiff(orig, mapped rune) MappingResult {
	if mapped == orig {
		return unchanged(orig)
	}
	return scalar(mapped)
}

func expansionOrScalar(orig rune, units []uint16) MappingResult {
	if len(units) == 1 {
		return scalarIfDiff(orig, rune(units[0]))
	}
	return expansion(units)
}

var lithuanianLower = map[rune]rune{
	0x0049: 0x0069, // I -> i
	0x004A: 0x006A, // J -> j
	0x012E: 0x012F, // Į -> į
	0x0172: 0x0173, // Ų -> ų
}

func isAboveCombiningAccent(c rune) bool {
	switch c {
	case 0x0300, 0x0301, 0x0302, 0x0303, 0x0306, 0x0308, 0x0309, 0x030C:
		return true
	default:
		return false
	}
}

// isFinalSigmaContext applies the Unicode final-sigma rule: capital
// sigma lowercases to the final form when it is preceded by a cased
// letter (skipping case-ignorables) and not followed by one.
func (d DefaultUCD) isFinalSigmaContext(ctx CaseContextIterator) bool {
	ctx.ResetToStart()
	precededByCased := false
	for {
		c, ok := ctx.Prev()
		if !ok {
			break
		}
		ct, ignorable := d.CaseTypeOrIgnorable(c)
		if ignorable {
			continue
		}
		precededByCased = ct != None
		break
	}
	if !precededByCased {
		return false
	}
	ctx.ResetToLimit()
	for {
		c, ok := ctx.Next()
		if !ok {
			return true
		}
		ct, ignorable := d.CaseTypeOrIgnorable(c)
		if ignorable {
			continue
		}
		return ct == None
	}
}

// ToFullLower implements the default_lower operation: stdlib unicode's
// simple lower mapping, overridden by the final-sigma context rule, the
// Lithuanian dot-retention rule, and the hand-maintained special-casing
// table.
func (d DefaultUCD) ToFullLower(c rune, ctx CaseContextIterator, locale *CaseLocale) MappingResult {
	loc := RootLocale
	if locale != nil {
		loc = *locale
	}
	if c == 0x03A3 { // capital sigma
		if d.isFinalSigmaContext(ctx) {
			return scalarIfDiff(c, 0x03C2) // final sigma
		}
		return scalarIfDiff(c, 0x03C3)
	}
	if loc == Lithuanian {
		if base, ok := lithuanianLower[c]; ok {
			ctx.ResetToLimit()
			if next, ok := ctx.Next(); ok && isAboveCombiningAccent(next) {
				return expansion([]uint16{uint16(base), 0x0307})
			}
		}
	}
	if sc, ok := lookupSpecial(c, loc); ok && sc.lower != nil {
		return expansionOrScalar(c, sc.lower)
	}
	return scalarIfDiff(c, unicode.ToLower(c))
}

// ToFullUpper implements the default_upper operation for non-Greek
// locales; Greek upper-casing is handled entirely by the greek package's
// state machine instead of this capability.
func (d DefaultUCD) ToFullUpper(c rune, ctx CaseContextIterator, locale *CaseLocale) MappingResult {
	loc := RootLocale
	if locale != nil {
		loc = *locale
	}
	if sc, ok := lookupSpecial(c, loc); ok && sc.upper != nil {
		return expansionOrScalar(c, sc.upper)
	}
	return scalarIfDiff(c, unicode.ToUpper(c))
}

// ToFullTitle implements the default_title operation driving the title
// mapper's head character.
func (d DefaultUCD) ToFullTitle(c rune, ctx CaseContextIterator, locale *CaseLocale) MappingResult {
	loc := RootLocale
	if locale != nil {
		loc = *locale
	}
	if sc, ok := lookupSpecial(c, loc); ok && sc.title != nil {
		return expansionOrScalar(c, sc.title)
	}
	return scalarIfDiff(c, unicode.ToTitle(c))
}

// ToFullFolding implements the context-free case-fold operation.
func (d DefaultUCD) ToFullFolding(c rune, opts FoldOptions) MappingResult {
	if opts.TurkicI {
		switch c {
		case 0x0049:
			return scalarIfDiff(c, 0x0131)
		case 0x0130:
			return scalarIfDiff(c, 0x0069)
		}
	} else if !opts.ExcludeSpecialI && c == 0x0130 {
		return expansion([]uint16{0x0069, 0x0307})
	}
	if c == 0x00DF {
		return expansion([]uint16{'s', 's'})
	}
	return scalarIfDiff(c, unicode.ToLower(c))
}
