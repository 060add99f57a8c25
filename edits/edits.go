// Package edits implements the bit-packed, append-only edit log shared by
// every mapper in this module: a compact record of which source spans were
// preserved and which were replaced, readable afterwards through a
// configurable iterator.
//
// The cell layout is fixed by the format this package interoperates with
// and must not be changed: an unchanged run is a cell in 0..0x0FFF, a
// short same-width replacement is 0x1000..0x6FFF (0wwwcccccccccccc), and a
// long replacement starts at 0x7000 with six-bit old/new length fields
// that can overflow into one or two trailing cells. See AddReplace for the
// exact bit arithmetic.
package edits

import (
	"fmt"
	"math"

	"github.com/odintext/icu/errs"
)

const (
	maxUnchangedLength = 0x1000
	maxUnchanged       = maxUnchangedLength - 1

	maxShortWidth        = 6
	maxShortChangeLength = 0xfff
	maxShortChange       = 0x6fff

	lengthIn1Trail = 61
	lengthIn2Trail = 62
)

// stackCells is the size of the inline array every Edits starts with, so
// that ordinary mapping calls never touch the heap. It mirrors the
// stack-buffer-then-heap-growth lifecycle the spec describes, sized well
// above what a handful of short words needs.
const stackCells = 32

// Edits is an append-only log of unchanged and replaced spans. The zero
// value is not usable; construct one with New. Not safe for concurrent
// writers.
type Edits struct {
	array      []uint16
	stack      [stackCells]uint16
	onStack    bool
	length     int
	delta      int64
	err        error
	omit       bool
}

// New returns an empty Edits backed by a small inline buffer.
func New() *Edits {
	e := &Edits{onStack: true}
	e.array = e.stack[:]
	return e
}

// SetOmitUnchanged controls whether mappers that consult this log skip
// writing unchanged code units to the destination (they still record the
// unchanged run either way).
func (e *Edits) SetOmitUnchanged(omit bool) {
	e.omit = omit
}

// OmitUnchanged reports whether unchanged spans should be left out of the
// mapped destination.
func (e *Edits) OmitUnchanged() bool {
	return e.omit
}

// WriteUnchanged is the complement of OmitUnchanged, named to match the
// call sites (such as the Greek upper mapper) that ask the question the
// other way around.
func (e *Edits) WriteUnchanged() bool {
	return !e.omit
}

// Reset clears the log for reuse without releasing its backing storage.
func (e *Edits) Reset() {
	e.length = 0
	e.delta = 0
	e.err = nil
}

// HasChanges reports whether any replacement was recorded.
func (e *Edits) HasChanges() bool {
	if e.delta != 0 {
		return true
	}
	for i := 0; i < e.length; i++ {
		if e.array[i] > maxUnchanged {
			return true
		}
	}
	return false
}

// Delta returns the signed length difference between the replaced and
// original text accumulated so far.
func (e *Edits) Delta() int64 {
	return e.delta
}

// CopyErrorTo transfers this log's internal sticky error into dst,
// leaving an existing *dst untouched, and reports whether a transfer
// happened.
func (e *Edits) CopyErrorTo(dst *error) bool {
	if *dst != nil {
		return false
	}
	if e.err == nil {
		return false
	}
	*dst = e.err
	return true
}

func (e *Edits) lastUnit() int32 {
	if e.length > 0 {
		return int32(e.array[e.length-1])
	}
	return 0xffff
}

func (e *Edits) setLastUnit(v int32) {
	e.array[e.length-1] = uint16(v)
}

// AddUnchanged records that the next n source code units were copied to
// the destination without change. A no-op for n == 0.
func (e *Edits) AddUnchanged(n int32) {
	if e.err != nil || n == 0 {
		return
	}
	if n < 0 {
		e.err = errs.New(errs.IllegalArgument, "negative unchanged length")
		return
	}
	last := e.lastUnit()
	if last < maxUnchanged {
		remaining := maxUnchanged - last
		if remaining >= n {
			e.setLastUnit(last + n)
			return
		}
		e.setLastUnit(maxUnchanged)
		n -= remaining
	}
	for n >= maxUnchangedLength {
		e.append(maxUnchanged)
		n -= maxUnchangedLength
	}
	if n > 0 {
		e.append(n - 1)
	}
}

// AddReplace records a replacement of oldLength source code units by
// newLength result code units. A no-op when both lengths are zero.
func (e *Edits) AddReplace(oldLength, newLength int32) {
	if e.err != nil {
		return
	}
	if oldLength == newLength && 0 < oldLength && oldLength <= maxShortWidth {
		last := e.lastUnit()
		if maxUnchanged < last && last < maxShortChange &&
			(last>>12) == oldLength && (last&0xfff) < maxShortChangeLength {
			e.setLastUnit(last + 1)
			return
		}
		e.append(oldLength << 12)
		return
	}

	if oldLength < 0 || newLength < 0 {
		e.err = errs.New(errs.IllegalArgument, "negative replacement length")
		return
	}
	if oldLength == 0 && newLength == 0 {
		return
	}
	newDelta := int64(newLength) - int64(oldLength)
	if newDelta != 0 {
		if newDelta > 0 && newDelta > (math.MaxInt32-e.delta) ||
			newDelta < 0 && newDelta < (math.MinInt32-e.delta) {
			e.err = errs.New(errs.IndexOutOfBounds, "edit delta overflow")
			return
		}
		e.delta += newDelta
	}

	var buffer [5]int32
	bLength := 1
	head := int32(0x7000)
	if oldLength < lengthIn1Trail {
		head |= oldLength << 6
	} else if oldLength <= 0x7fff {
		head |= lengthIn1Trail << 6
		buffer[bLength] = 0x8000 | oldLength
		bLength++
	} else {
		head |= (lengthIn2Trail + (oldLength >> 30)) << 6
		buffer[bLength] = 0x8000 | (oldLength >> 15)
		bLength++
		buffer[bLength] = 0x8000 | oldLength
		bLength++
	}
	if newLength < lengthIn1Trail {
		head |= newLength
	} else if newLength <= 0x7fff {
		head |= lengthIn1Trail
		buffer[bLength] = 0x8000 | newLength
		bLength++
	} else {
		head |= lengthIn2Trail + (newLength >> 30)
		buffer[bLength] = 0x8000 | (newLength >> 15)
		bLength++
		buffer[bLength] = 0x8000 | newLength
		bLength++
	}
	if bLength == 1 {
		e.append(head)
	} else {
		buffer[0] = head
		e.appendAll(buffer[:bLength])
	}
}

func (e *Edits) append(r int32) {
	if e.length < len(e.array) || e.growArray() {
		e.array[e.length] = uint16(r)
		e.length++
	}
}

func (e *Edits) appendAll(cells []int32) {
	n := len(cells)
	if n > (math.MaxInt32 - e.length) {
		e.err = errs.New(errs.IndexOutOfBounds, "edit log length overflow")
		return
	}
	if e.length+n < len(e.array) || e.growArray() {
		for _, c := range cells {
			e.array[e.length] = uint16(c)
			e.length++
		}
	}
}

func (e *Edits) growArray() bool {
	capacity := len(e.array)
	var newCapacity int
	if e.onStack {
		newCapacity = 2000
		e.onStack = false
	} else if capacity == math.MaxInt32 {
		e.err = errs.New(errs.BufferOverflow, "edit log at maximum capacity")
		return false
	} else if capacity >= math.MaxInt32/2 {
		newCapacity = math.MaxInt32
	} else {
		newCapacity = 2 * capacity
	}
	// Grow by at least 5 units so a maximal change record always fits.
	if (newCapacity - capacity) < 5 {
		e.err = errs.New(errs.BufferOverflow, "edit log growth too small")
		return false
	}
	newArray, err := allocateCells(newCapacity)
	if err != nil {
		e.err = errs.Wrap(errs.MemoryAllocation, err, "growing edit log array")
		return false
	}
	copy(newArray, e.array[:e.length])
	e.array = newArray
	return true
}

// allocateCells wraps make in a recover so a runtime out-of-memory panic
// surfaces as an ordinary error growArray can attach errs.MemoryAllocation
// to, the closest Go equivalent to the original's checked malloc failure.
func allocateCells(n int) (cells []uint16, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("allocating %d cells: %v", n, r)
		}
	}()
	cells = make([]uint16, n)
	return cells, nil
}
