package ucd

const (
	leadSurrogateMin  = 0xD800
	leadSurrogateMax  = 0xDBFF
	trailSurrogateMin = 0xDC00
	trailSurrogateMax = 0xDFFF
)

func isLeadSurrogate(u uint16) bool  { return u >= leadSurrogateMin && u <= leadSurrogateMax }
func isTrailSurrogate(u uint16) bool { return u >= trailSurrogateMin && u <= trailSurrogateMax }

// DecodeAt decodes the code point starting at src[i], returning it along
// with its width in code units (1, or 2 for a valid surrogate pair). An
// unpaired surrogate decodes to itself with width 1, matching U16_NEXT.
func DecodeAt(src []uint16, i int32) (rune, int32) {
	c := src[i]
	if isLeadSurrogate(c) && i+1 < int32(len(src)) && isTrailSurrogate(src[i+1]) {
		return ((rune(c)-0xD800)<<10 | (rune(src[i+1]) - 0xDC00)) + 0x10000, 2
	}
	return rune(c), 1
}

// DecodeBefore decodes the code point ending just before src[i], the
// backward counterpart of DecodeAt, matching U16_PREV.
func DecodeBefore(src []uint16, i int32) (rune, int32) {
	c := src[i-1]
	if isTrailSurrogate(c) && i-2 >= 0 && isLeadSurrogate(src[i-2]) {
		lead := src[i-2]
		return ((rune(lead)-0xD800)<<10 | (rune(c) - 0xDC00)) + 0x10000, 2
	}
	return rune(c), 1
}

// Width16 returns how many UTF-16 code units c needs: 1 inside the BMP,
// 2 for a supplementary code point.
func Width16(c rune) int32 {
	if c > 0xFFFF {
		return 2
	}
	return 1
}

// SpanContext is the CaseContextIterator implementation every mapper in
// this module uses: a cursor over a UTF-16 span with the
// {source_base, cp_start, cp_limit, scan_limit} invariant the UCD
// capability relies on to resolve context-sensitive mappings.
type SpanContext struct {
	src        []uint16
	sourceBase int32
	cpStart    int32
	cpLimit    int32
	scanLimit  int32

	index int32
	dir   int32 // 0 = unset, 1 = forward, -1 = backward
}

// NewSpanContext returns a context over the full span src, with
// source_base and scan_limit fixed at the span's bounds.
func NewSpanContext(src []uint16) *SpanContext {
	return &SpanContext{src: src, scanLimit: int32(len(src))}
}

// SetCurrent points the context at the code point occupying
// [cpStart, cpLimit) for the next Next/Prev calls.
func (c *SpanContext) SetCurrent(cpStart, cpLimit int32) {
	c.cpStart = cpStart
	c.cpLimit = cpLimit
	c.dir = 0
}

func (c *SpanContext) ResetToStart() {
	c.index = c.cpStart
	c.dir = -1
}

func (c *SpanContext) ResetToLimit() {
	c.index = c.cpLimit
	c.dir = 1
}

func (c *SpanContext) Next() (rune, bool) {
	if c.dir != 1 {
		c.ResetToLimit()
	}
	if c.index >= c.scanLimit {
		return 0, false
	}
	r, width := DecodeAt(c.src, c.index)
	c.index += width
	return r, true
}

func (c *SpanContext) Prev() (rune, bool) {
	if c.dir != -1 {
		c.ResetToStart()
	}
	if c.index <= c.sourceBase {
		return 0, false
	}
	r, width := DecodeBefore(c.src, c.index)
	c.index -= width
	return r, true
}
