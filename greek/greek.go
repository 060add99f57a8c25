package greek

import "github.com/odintext/icu/edits"

// Flags a diacritic code point contributes when absorbed into a
// preceding Greek letter. A return of 0 means c is not one of the
// diacritics this state machine tracks, ending the absorption run.
func getDiacriticData(c rune) int32 {
	switch c {
	case 0x0300, // combining grave accent
		0x0301, // combining acute accent
		0x0342, // combining greek perispomeni
		0x0302, // combining circumflex accent
		0x0303, // combining tilde
		0x0311: // combining inverted breve
		return HasAccent
	case 0x0308, // combining diaeresis
		0x0344: // combining greek dialytika tonos (decomposes to dialytika+tonos)
		return HasCombiningDialytika
	case 0x0345: // combining greek ypogegrammeni
		return HasYpogegrammeni
	case 0x0304, // combining macron
		0x0306, // combining breve
		0x0313, // combining comma above
		0x0314, // combining reversed comma above
		0x0343: // combining greek koronis
		return HasOtherGreekDiacritic
	default:
		return 0
	}
}

// getLetterData looks up a code point's packed upper-case base plus
// flags across the three disjoint ranges the static tables cover.
// Returns -1 if c lies outside the table ranges and 0 for a table entry
// with no Greek-specific behavior; in either case the caller falls back
// to the generic full-mapping path.
func getLetterData(c rune) int32 {
	if c == data2126CodePoint {
		return data2126
	}
	if !InBlock(c) {
		return -1
	}
	switch {
	case c >= data0370Base && c < data0370Base+int32(len(data0370)):
		return data0370[c-data0370Base]
	case c >= data1F00Base && c < data1F00Base+int32(len(data1F00)):
		return data1F00[c-data1F00Base]
	default:
		return -1
	}
}

// CasedChecker reports whether a code point is cased or case-ignorable,
// the minimum a caller must supply to drive isFollowedByCasedLetter and
// the AFTER_CASED state transition.
type CasedChecker interface {
	IsCased(c rune) bool
	IsCaseIgnorable(c rune) bool
}

// isFollowedByCasedLetter scans forward from src[index) skipping
// case-ignorable code points; returns true on the first cased letter,
// false on the first non-ignorable uncased code point or end of input.
func isFollowedByCasedLetter(cased CasedChecker, src []uint16, index int32) bool {
	for index < int32(len(src)) {
		c, width := decodeAt(src, index)
		if cased.IsCaseIgnorable(c) {
			index += width
			continue
		}
		return cased.IsCased(c)
	}
	return false
}

func decodeAt(src []uint16, i int32) (rune, int32) {
	c := src[i]
	if c >= 0xD800 && c <= 0xDBFF && i+1 < int32(len(src)) && src[i+1] >= 0xDC00 && src[i+1] <= 0xDFFF {
		return ((rune(c)-0xD800)<<10 | (rune(src[i+1]) - 0xDC00)) + 0x10000, 2
	}
	return rune(c), 1
}

// GenericUpper maps one code point that getLetterData does not cover;
// the caller supplies the generic full-mapping fallback (§4.2's path)
// since this package knows nothing about the UCD capability.
type GenericUpper func(c rune, i, limit int32) (destUnits []uint16)

// ToUpper runs the Greek-specific upper-casing state machine over
// src[0:len(src)), writing to dest and returning the total length
// written (a pre-flight count when dest is too small, matching the
// generic mapper's contract). fallback handles any code point
// getLetterData does not recognize.
func ToUpper(dest []uint16, src []uint16, cased CasedChecker, fallback GenericUpper, ed *edits.Edits) (int32, error) {
	destIndex := int32(0)
	state := int32(0)

	for i := int32(0); i < int32(len(src)); {
		c, width := decodeAt(src, i)
		nextIndex := i + width

		var nextState int32
		if cased.IsCaseIgnorable(c) {
			nextState = state & AfterCased
		} else if cased.IsCased(c) {
			nextState = AfterCased
		}

		data := getLetterData(c)
		if data <= 0 {
			units := fallback(c, i, nextIndex)
			n, err := appendUnits(dest, destIndex, src[i:nextIndex], units, ed)
			if err != nil {
				return 0, err
			}
			destIndex = n
			state = nextState
			i = nextIndex
			continue
		}

		upper := data & UpperMask
		flags := data &^ UpperMask

		if state&AfterVowelWithAccent != 0 && flags&HasVowel != 0 && (upper == 0x399 || upper == 0x3A5) {
			flags |= HasDialytika
		}

		numYpogegrammeni := int32(0)
		if flags&HasYpogegrammeni != 0 {
			numYpogegrammeni = 1
		}
		for nextIndex < int32(len(src)) {
			dc, dwidth := decodeAt(src, nextIndex)
			dflags := getDiacriticData(dc)
			if dflags == 0 {
				break
			}
			flags |= dflags
			if dflags == HasYpogegrammeni {
				numYpogegrammeni++
			}
			nextIndex += dwidth
		}

		if flags&HasVowelAndAccent == HasVowelAndAccent && flags&HasEitherDialytika == 0 {
			nextState |= AfterVowelWithAccent
		}

		addTonos := false
		if upper == 0x397 && flags&HasAccent != 0 && flags&HasYpogegrammeni == 0 &&
			state&AfterCased == 0 && !isFollowedByCasedLetter(cased, src, nextIndex) {
			if i+1 == nextIndex {
				upper = 0x389
			} else {
				addTonos = true
			}
		}

		if flags&HasDialytika != 0 {
			switch upper {
			case 0x399:
				upper = 0x3AA
				flags &^= HasEitherDialytika
			case 0x3A5:
				upper = 0x3AB
				flags &^= HasEitherDialytika
			}
		}

		outUnits := make([]uint16, 0, 4)
		outUnits = append(outUnits, uint16(upper))
		if flags&HasEitherDialytika != 0 {
			outUnits = append(outUnits, 0x0308)
		}
		if addTonos {
			outUnits = append(outUnits, 0x0301)
		}
		for k := int32(0); k < numYpogegrammeni; k++ {
			outUnits = append(outUnits, 0x0399)
		}

		n, err := appendUnits(dest, destIndex, src[i:nextIndex], outUnits, ed)
		if err != nil {
			return 0, err
		}
		destIndex = n
		state = nextState
		i = nextIndex
	}

	return destIndex, nil
}

// appendUnits is the Greek mapper's narrow counterpart to the generic
// result appender: record the edit (or lack of one) and copy out as
// far as dest's capacity allows, returning the running length.
func appendUnits(dest []uint16, destIndex int32, oldUnits, newUnits []uint16, ed *edits.Edits) (int32, error) {
	changed := len(oldUnits) != len(newUnits)
	if !changed {
		for i := range oldUnits {
			if oldUnits[i] != newUnits[i] {
				changed = true
				break
			}
		}
	}
	if ed != nil {
		if changed {
			ed.AddReplace(int32(len(oldUnits)), int32(len(newUnits)))
		} else {
			ed.AddUnchanged(int32(len(oldUnits)))
			if !ed.WriteUnchanged() {
				return destIndex, nil
			}
		}
	}
	for _, u := range newUnits {
		if destIndex < int32(len(dest)) {
			dest[destIndex] = u
		}
		destIndex++
	}
	return destIndex, nil
}
