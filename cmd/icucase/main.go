// Example: upper/title-casing and case-insensitive comparison
package main

import (
	"fmt"
	"unicode/utf16"

	"github.com/odintext/icu"
)

func main() {
	fmt.Println("=== Case Mapping Demo ===")
	fmt.Println()

	demoUpper("istanbul", "tr")
	demoUpper("istanbul", "")
	demoGreek()
	demoTitle("hello world", "")
	demoTitle("ijsland", "nl")
	demoCompare()
}

func demoUpper(s, locale string) {
	src := utf16.Encode([]rune(s))
	dest := make([]uint16, len(src)*2)
	n, err := icu.ToUpper(dest, src, locale, nil)
	if err != nil {
		fmt.Printf("ToUpper(%q, %q): error: %v\n", s, locale, err)
		return
	}
	fmt.Printf("ToUpper(%q, locale=%q) = %q\n", s, locale, string(utf16.Decode(dest[:n])))
}

func demoGreek() {
	src := []uint16{0x039C, 0x03AC, 0x03CA, 0x03BF, 0x03C2} // "Μάϊος"
	dest := make([]uint16, len(src)*2)
	e := icu.NewEdits()
	n, err := icu.ToUpper(dest, src, "el", e)
	if err != nil {
		fmt.Printf("ToUpper(Greek): error: %v\n", err)
		return
	}
	fmt.Printf("ToUpper(Greek \"%s\") = %q, changed=%v\n",
		string(utf16.Decode(src)), string(utf16.Decode(dest[:n])), e.HasChanges())
}

func demoTitle(s, locale string) {
	src := utf16.Encode([]rune(s))
	dest := make([]uint16, len(src)+4)
	n, err := icu.ToTitle(dest, src, locale, nil, 0, nil)
	if err != nil {
		fmt.Printf("ToTitle(%q, %q): error: %v\n", s, locale, err)
		return
	}
	fmt.Printf("ToTitle(%q, locale=%q) = %q\n", s, locale, string(utf16.Decode(dest[:n])))
}

func demoCompare() {
	a := utf16.Encode([]rune("Fust"))
	b := utf16.Encode([]rune("Fußball"))
	result, _ := icu.CaseCompare(a, b, icu.CompareIgnoreCase)
	m1, m2, _ := icu.CaseInsensitivePrefixMatch(a, b, 0)
	fmt.Printf("CaseCompare(%q, %q) = %d, prefix match m1=%d m2=%d\n",
		"Fust", "Fußball", result, m1, m2)
}
