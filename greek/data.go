// Data tables for code points U+0370..U+03FF and U+1F00..U+1FFF, keyed
// by (codePoint - base). Each entry packs the uppercase base letter into
// the low bits (see UpperMask) and OR's in flag bits describing the
// letter: whether it is a vowel, carries an accent, a dialytika, or a
// ypogegrammeni. A zero entry means the code point is unassigned or has
// no Greek-specific case behavior.
package greek

const data0370Base = 0x0370

var data0370 = [144]int32{
	0x0370,
	0x0370,
	0x0372,
	0x0372,
	0,
	0,
	0x0376,
	0x0376,
	0,
	0,
	0x037A,
	0x03FD,
	0x03FE,
	0x03FF,
	0,
	0x037F,
	0,
	0,
	0,
	0,
	0,
	0,
	0x0391 | HasVowel | HasAccent,
	0,
	0x0395 | HasVowel | HasAccent,
	0x0397 | HasVowel | HasAccent,
	0x0399 | HasVowel | HasAccent,
	0,
	0x039F | HasVowel | HasAccent,
	0,
	0x03A5 | HasVowel | HasAccent,
	0x03A9 | HasVowel | HasAccent,
	0x0399 | HasVowel | HasAccent | HasDialytika,
	0x0391 | HasVowel,
	0x0392,
	0x0393,
	0x0394,
	0x0395 | HasVowel,
	0x0396,
	0x0397 | HasVowel,
	0x0398,
	0x0399 | HasVowel,
	0x039A,
	0x039B,
	0x039C,
	0x039D,
	0x039E,
	0x039F | HasVowel,
	0x03A0,
	0x03A1,
	0,
	0x03A3,
	0x03A4,
	0x03A5 | HasVowel,
	0x03A6,
	0x03A7,
	0x03A8,
	0x03A9 | HasVowel,
	0x0399 | HasVowel | HasDialytika,
	0x03A5 | HasVowel | HasDialytika,
	0x0391 | HasVowel | HasAccent,
	0x0395 | HasVowel | HasAccent,
	0x0397 | HasVowel | HasAccent,
	0x0399 | HasVowel | HasAccent,
	0x03A5 | HasVowel | HasAccent | HasDialytika,
	0x0391 | HasVowel,
	0x0392,
	0x0393,
	0x0394,
	0x0395 | HasVowel,
	0x0396,
	0x0397 | HasVowel,
	0x0398,
	0x0399 | HasVowel,
	0x039A,
	0x039B,
	0x039C,
	0x039D,
	0x039E,
	0x039F | HasVowel,
	0x03A0,
	0x03A1,
	0x03A3,
	0x03A3,
	0x03A4,
	0x03A5 | HasVowel,
	0x03A6,
	0x03A7,
	0x03A8,
	0x03A9 | HasVowel,
	0x0399 | HasVowel | HasDialytika,
	0x03A5 | HasVowel | HasDialytika,
	0x039F | HasVowel | HasAccent,
	0x03A5 | HasVowel | HasAccent,
	0x03A9 | HasVowel | HasAccent,
	0x03CF,
	0x0392,
	0x0398,
	0x03D2,
	0x03D2 | HasAccent,
	0x03D2 | HasDialytika,
	0x03A6,
	0x03A0,
	0x03CF,
	0x03D8,
	0x03D8,
	0x03DA,
	0x03DA,
	0x03DC,
	0x03DC,
	0x03DE,
	0x03DE,
	0x03E0,
	0x03E0,
	0,
	0,
	0,
	0,
	0,
	0,
	0,
	0,
	0,
	0,
	0,
	0,
	0,
	0,
	0x039A,
	0x03A1,
	0x03F9,
	0x037F,
	0x03F4,
	0x0395 | HasVowel,
	0,
	0x03F7,
	0x03F7,
	0x03F9,
	0x03FA,
	0x03FA,
	0x03FC,
	0x03FD,
	0x03FE,
	0x03FF,
}

const data1F00Base = 0x1F00

var data1F00 = [256]int32{
	0x0391 | HasVowel,
	0x0391 | HasVowel,
	0x0391 | HasVowel | HasAccent,
	0x0391 | HasVowel | HasAccent,
	0x0391 | HasVowel | HasAccent,
	0x0391 | HasVowel | HasAccent,
	0x0391 | HasVowel | HasAccent,
	0x0391 | HasVowel | HasAccent,
	0x0391 | HasVowel,
	0x0391 | HasVowel,
	0x0391 | HasVowel | HasAccent,
	0x0391 | HasVowel | HasAccent,
	0x0391 | HasVowel | HasAccent,
	0x0391 | HasVowel | HasAccent,
	0x0391 | HasVowel | HasAccent,
	0x0391 | HasVowel | HasAccent,
	0x0395 | HasVowel,
	0x0395 | HasVowel,
	0x0395 | HasVowel | HasAccent,
	0x0395 | HasVowel | HasAccent,
	0x0395 | HasVowel | HasAccent,
	0x0395 | HasVowel | HasAccent,
	0,
	0,
	0x0395 | HasVowel,
	0x0395 | HasVowel,
	0x0395 | HasVowel | HasAccent,
	0x0395 | HasVowel | HasAccent,
	0x0395 | HasVowel | HasAccent,
	0x0395 | HasVowel | HasAccent,
	0,
	0,
	0x0397 | HasVowel,
	0x0397 | HasVowel,
	0x0397 | HasVowel | HasAccent,
	0x0397 | HasVowel | HasAccent,
	0x0397 | HasVowel | HasAccent,
	0x0397 | HasVowel | HasAccent,
	0x0397 | HasVowel | HasAccent,
	0x0397 | HasVowel | HasAccent,
	0x0397 | HasVowel,
	0x0397 | HasVowel,
	0x0397 | HasVowel | HasAccent,
	0x0397 | HasVowel | HasAccent,
	0x0397 | HasVowel | HasAccent,
	0x0397 | HasVowel | HasAccent,
	0x0397 | HasVowel | HasAccent,
	0x0397 | HasVowel | HasAccent,
	0x0399 | HasVowel,
	0x0399 | HasVowel,
	0x0399 | HasVowel | HasAccent,
	0x0399 | HasVowel | HasAccent,
	0x0399 | HasVowel | HasAccent,
	0x0399 | HasVowel | HasAccent,
	0x0399 | HasVowel | HasAccent,
	0x0399 | HasVowel | HasAccent,
	0x0399 | HasVowel,
	0x0399 | HasVowel,
	0x0399 | HasVowel | HasAccent,
	0x0399 | HasVowel | HasAccent,
	0x0399 | HasVowel | HasAccent,
	0x0399 | HasVowel | HasAccent,
	0x0399 | HasVowel | HasAccent,
	0x0399 | HasVowel | HasAccent,
	0x039F | HasVowel,
	0x039F | HasVowel,
	0x039F | HasVowel | HasAccent,
	0x039F | HasVowel | HasAccent,
	0x039F | HasVowel | HasAccent,
	0x039F | HasVowel | HasAccent,
	0,
	0,
	0x039F | HasVowel,
	0x039F | HasVowel,
	0x039F | HasVowel | HasAccent,
	0x039F | HasVowel | HasAccent,
	0x039F | HasVowel | HasAccent,
	0x039F | HasVowel | HasAccent,
	0,
	0,
	0x03A5 | HasVowel,
	0x03A5 | HasVowel,
	0x03A5 | HasVowel | HasAccent,
	0x03A5 | HasVowel | HasAccent,
	0x03A5 | HasVowel | HasAccent,
	0x03A5 | HasVowel | HasAccent,
	0x03A5 | HasVowel | HasAccent,
	0x03A5 | HasVowel | HasAccent,
	0,
	0x03A5 | HasVowel,
	0,
	0x03A5 | HasVowel | HasAccent,
	0,
	0x03A5 | HasVowel | HasAccent,
	0,
	0x03A5 | HasVowel | HasAccent,
	0x03A9 | HasVowel,
	0x03A9 | HasVowel,
	0x03A9 | HasVowel | HasAccent,
	0x03A9 | HasVowel | HasAccent,
	0x03A9 | HasVowel | HasAccent,
	0x03A9 | HasVowel | HasAccent,
	0x03A9 | HasVowel | HasAccent,
	0x03A9 | HasVowel | HasAccent,
	0x03A9 | HasVowel,
	0x03A9 | HasVowel,
	0x03A9 | HasVowel | HasAccent,
	0x03A9 | HasVowel | HasAccent,
	0x03A9 | HasVowel | HasAccent,
	0x03A9 | HasVowel | HasAccent,
	0x03A9 | HasVowel | HasAccent,
	0x03A9 | HasVowel | HasAccent,
	0x0391 | HasVowel | HasAccent,
	0x0391 | HasVowel | HasAccent,
	0x0395 | HasVowel | HasAccent,
	0x0395 | HasVowel | HasAccent,
	0x0397 | HasVowel | HasAccent,
	0x0397 | HasVowel | HasAccent,
	0x0399 | HasVowel | HasAccent,
	0x0399 | HasVowel | HasAccent,
	0x039F | HasVowel | HasAccent,
	0x039F | HasVowel | HasAccent,
	0x03A5 | HasVowel | HasAccent,
	0x03A5 | HasVowel | HasAccent,
	0x03A9 | HasVowel | HasAccent,
	0x03A9 | HasVowel | HasAccent,
	0,
	0,
	0x0391 | HasVowel | HasYpogegrammeni,
	0x0391 | HasVowel | HasYpogegrammeni,
	0x0391 | HasVowel | HasYpogegrammeni | HasAccent,
	0x0391 | HasVowel | HasYpogegrammeni | HasAccent,
	0x0391 | HasVowel | HasYpogegrammeni | HasAccent,
	0x0391 | HasVowel | HasYpogegrammeni | HasAccent,
	0x0391 | HasVowel | HasYpogegrammeni | HasAccent,
	0x0391 | HasVowel | HasYpogegrammeni | HasAccent,
	0x0391 | HasVowel | HasYpogegrammeni,
	0x0391 | HasVowel | HasYpogegrammeni,
	0x0391 | HasVowel | HasYpogegrammeni | HasAccent,
	0x0391 | HasVowel | HasYpogegrammeni | HasAccent,
	0x0391 | HasVowel | HasYpogegrammeni | HasAccent,
	0x0391 | HasVowel | HasYpogegrammeni | HasAccent,
	0x0391 | HasVowel | HasYpogegrammeni | HasAccent,
	0x0391 | HasVowel | HasYpogegrammeni | HasAccent,
	0x0397 | HasVowel | HasYpogegrammeni,
	0x0397 | HasVowel | HasYpogegrammeni,
	0x0397 | HasVowel | HasYpogegrammeni | HasAccent,
	0x0397 | HasVowel | HasYpogegrammeni | HasAccent,
	0x0397 | HasVowel | HasYpogegrammeni | HasAccent,
	0x0397 | HasVowel | HasYpogegrammeni | HasAccent,
	0x0397 | HasVowel | HasYpogegrammeni | HasAccent,
	0x0397 | HasVowel | HasYpogegrammeni | HasAccent,
	0x0397 | HasVowel | HasYpogegrammeni,
	0x0397 | HasVowel | HasYpogegrammeni,
	0x0397 | HasVowel | HasYpogegrammeni | HasAccent,
	0x0397 | HasVowel | HasYpogegrammeni | HasAccent,
	0x0397 | HasVowel | HasYpogegrammeni | HasAccent,
	0x0397 | HasVowel | HasYpogegrammeni | HasAccent,
	0x0397 | HasVowel | HasYpogegrammeni | HasAccent,
	0x0397 | HasVowel | HasYpogegrammeni | HasAccent,
	0x03A9 | HasVowel | HasYpogegrammeni,
	0x03A9 | HasVowel | HasYpogegrammeni,
	0x03A9 | HasVowel | HasYpogegrammeni | HasAccent,
	0x03A9 | HasVowel | HasYpogegrammeni | HasAccent,
	0x03A9 | HasVowel | HasYpogegrammeni | HasAccent,
	0x03A9 | HasVowel | HasYpogegrammeni | HasAccent,
	0x03A9 | HasVowel | HasYpogegrammeni | HasAccent,
	0x03A9 | HasVowel | HasYpogegrammeni | HasAccent,
	0x03A9 | HasVowel | HasYpogegrammeni,
	0x03A9 | HasVowel | HasYpogegrammeni,
	0x03A9 | HasVowel | HasYpogegrammeni | HasAccent,
	0x03A9 | HasVowel | HasYpogegrammeni | HasAccent,
	0x03A9 | HasVowel | HasYpogegrammeni | HasAccent,
	0x03A9 | HasVowel | HasYpogegrammeni | HasAccent,
	0x03A9 | HasVowel | HasYpogegrammeni | HasAccent,
	0x03A9 | HasVowel | HasYpogegrammeni | HasAccent,
	0x0391 | HasVowel,
	0x0391 | HasVowel,
	0x0391 | HasVowel | HasYpogegrammeni | HasAccent,
	0x0391 | HasVowel | HasYpogegrammeni,
	0x0391 | HasVowel | HasYpogegrammeni | HasAccent,
	0,
	0x0391 | HasVowel | HasAccent,
	0x0391 | HasVowel | HasYpogegrammeni | HasAccent,
	0x0391 | HasVowel,
	0x0391 | HasVowel,
	0x0391 | HasVowel | HasAccent,
	0x0391 | HasVowel | HasAccent,
	0x0391 | HasVowel | HasYpogegrammeni,
	0,
	0x0399 | HasVowel,
	0,
	0,
	0,
	0x0397 | HasVowel | HasYpogegrammeni | HasAccent,
	0x0397 | HasVowel | HasYpogegrammeni,
	0x0397 | HasVowel | HasYpogegrammeni | HasAccent,
	0,
	0x0397 | HasVowel | HasAccent,
	0x0397 | HasVowel | HasYpogegrammeni | HasAccent,
	0x0395 | HasVowel | HasAccent,
	0x0395 | HasVowel | HasAccent,
	0x0397 | HasVowel | HasAccent,
	0x0397 | HasVowel | HasAccent,
	0x0397 | HasVowel | HasYpogegrammeni,
	0,
	0,
	0,
	0x0399 | HasVowel,
	0x0399 | HasVowel,
	0x0399 | HasVowel | HasAccent | HasDialytika,
	0x0399 | HasVowel | HasAccent | HasDialytika,
	0,
	0,
	0x0399 | HasVowel | HasAccent,
	0x0399 | HasVowel | HasAccent | HasDialytika,
	0x0399 | HasVowel,
	0x0399 | HasVowel,
	0x0399 | HasVowel | HasAccent,
	0x0399 | HasVowel | HasAccent,
	0,
	0,
	0,
	0,
	0x03A5 | HasVowel,
	0x03A5 | HasVowel,
	0x03A5 | HasVowel | HasAccent | HasDialytika,
	0x03A5 | HasVowel | HasAccent | HasDialytika,
	0x03A1,
	0x03A1,
	0x03A5 | HasVowel | HasAccent,
	0x03A5 | HasVowel | HasAccent | HasDialytika,
	0x03A5 | HasVowel,
	0x03A5 | HasVowel,
	0x03A5 | HasVowel | HasAccent,
	0x03A5 | HasVowel | HasAccent,
	0x03A1,
	0,
	0,
	0,
	0,
	0,
	0x03A9 | HasVowel | HasYpogegrammeni | HasAccent,
	0x03A9 | HasVowel | HasYpogegrammeni,
	0x03A9 | HasVowel | HasYpogegrammeni | HasAccent,
	0,
	0x03A9 | HasVowel | HasAccent,
	0x03A9 | HasVowel | HasYpogegrammeni | HasAccent,
	0x039F | HasVowel | HasAccent,
	0x039F | HasVowel | HasAccent,
	0x03A9 | HasVowel | HasAccent,
	0x03A9 | HasVowel | HasAccent,
	0x03A9 | HasVowel | HasYpogegrammeni,
	0,
	0,
	0,
}

// U+2126 OHM SIGN behaves like capital omega for case purposes but sits
// far outside the two contiguous blocks above, so it gets its own entry.
const data2126CodePoint = 0x2126
const data2126 = 0x03A9 | HasVowel
