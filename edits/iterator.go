package edits

// Iterator walks the recorded spans of an Edits log, either fine-grained
// (one record at a time, expanding compressed short same-width runs into
// their individual sub-edits) or coarse-grained (adjacent change records
// fused into one span), and either over every record or only the changed
// ones.
type Iterator struct {
	array       []uint16
	index       int
	length      int
	remaining   int32
	onlyChanges bool
	coarse      bool

	changed   bool
	oldLength int32
	newLength int32
	srcIndex  int32
	replIndex int32
	destIndex int32
}

// FineIterator walks every record, including unchanged ones, without
// fusing adjacent changes.
func (e *Edits) FineIterator() *Iterator {
	return e.newIterator(false, false)
}

// FineChangesIterator walks only changed records, without fusing them.
func (e *Edits) FineChangesIterator() *Iterator {
	return e.newIterator(true, false)
}

// CoarseIterator walks every record, fusing adjacent changed records into
// one span.
func (e *Edits) CoarseIterator() *Iterator {
	return e.newIterator(false, true)
}

// CoarseChangesIterator walks only changed records, fusing adjacent ones.
func (e *Edits) CoarseChangesIterator() *Iterator {
	return e.newIterator(true, true)
}

func (e *Edits) newIterator(onlyChanges, coarse bool) *Iterator {
	return &Iterator{
		array:       e.array[:e.length],
		length:      e.length,
		onlyChanges: onlyChanges,
		coarse:      coarse,
	}
}

// Changed reports whether the span just yielded by Next was a replacement.
func (it *Iterator) Changed() bool { return it.changed }

// OldLength returns the source-side length of the span just yielded.
func (it *Iterator) OldLength() int32 { return it.oldLength }

// NewLength returns the destination-side length of the span just yielded.
func (it *Iterator) NewLength() int32 { return it.newLength }

// SourceIndex returns the source offset at the start of the span just
// yielded.
func (it *Iterator) SourceIndex() int32 { return it.srcIndex }

// DestinationIndex returns the destination offset at the start of the
// span just yielded.
func (it *Iterator) DestinationIndex() int32 { return it.destIndex }

// ReplacementIndex returns the offset, within the concatenation of only
// the replaced spans, at the start of the span just yielded.
func (it *Iterator) ReplacementIndex() int32 { return it.replIndex }

func (it *Iterator) readLength(head int32) int32 {
	if head < lengthIn1Trail {
		return head
	} else if head < lengthIn2Trail {
		v := int32(it.array[it.index] & 0x7fff)
		it.index++
		return v
	}
	lo := int32(it.array[it.index] & 0x7fff)
	hi := int32(it.array[it.index+1] & 0x7fff)
	it.index += 2
	return ((head & 1) << 30) | (lo << 15) | hi
}

func (it *Iterator) updateIndexes() {
	it.srcIndex += it.oldLength
	if it.changed {
		it.replIndex += it.newLength
	}
	it.destIndex += it.newLength
}

func (it *Iterator) noNext() bool {
	it.oldLength = 0
	it.newLength = 0
	return false
}

// Next advances to the next span, returning false once the log is
// exhausted. In fine mode, a compressed short same-width run is expanded
// one sub-edit per call.
func (it *Iterator) Next() bool {
	it.updateIndexes()
	if it.remaining > 0 {
		it.remaining--
		return true
	}
	if it.index >= it.length {
		return it.noNext()
	}
	u := int32(it.array[it.index])
	it.index++
	if u <= maxUnchanged {
		it.changed = false
		it.oldLength = u + 1
		for it.index < it.length {
			u = int32(it.array[it.index])
			if u > maxUnchanged {
				break
			}
			it.index++
			it.oldLength += u + 1
		}
		it.newLength = it.oldLength
		if it.onlyChanges {
			it.updateIndexes()
			if it.index >= it.length {
				return it.noNext()
			}
			// u > maxUnchanged was already fetched at it.index.
			it.index++
		} else {
			return true
		}
	}
	it.changed = true
	if u <= maxShortChange {
		if it.coarse {
			w := u >> 12
			length := (u & 0xfff) + 1
			it.oldLength = length * w
			it.newLength = it.oldLength
		} else {
			it.oldLength = u >> 12
			it.newLength = it.oldLength
			it.remaining = u & 0xfff
			return true
		}
	} else {
		it.oldLength = it.readLength((u >> 6) & 0x3f)
		it.newLength = it.readLength(u & 0x3f)
		if !it.coarse {
			return true
		}
	}
	for it.index < it.length {
		u = int32(it.array[it.index])
		if u <= maxUnchanged {
			break
		}
		it.index++
		if u <= maxShortChange {
			w := u >> 12
			length := (u&0xfff + 1) * w
			it.oldLength += length
			it.newLength += length
		} else {
			oldLen := it.readLength((u >> 6) & 0x3f)
			newLen := it.readLength(u & 0x3f)
			it.oldLength += oldLen
			it.newLength += newLen
		}
	}
	return true
}

// FindSourceIndex advances the iterator until the current span covers
// source offset i, resetting to the start if i lies before the current
// position. Returns false if i is past the end of the log.
func (it *Iterator) FindSourceIndex(i int32) bool {
	if i < 0 {
		return false
	}
	onlyChanges := it.onlyChanges
	it.onlyChanges = false
	defer func() { it.onlyChanges = onlyChanges }()
	if i < it.srcIndex {
		it.index, it.remaining = 0, 0
		it.oldLength, it.newLength = 0, 0
		it.srcIndex, it.replIndex, it.destIndex = 0, 0, 0
	} else if i < it.srcIndex+it.oldLength {
		return true
	}
	for it.Next() {
		if i < it.srcIndex+it.oldLength {
			return true
		}
		if it.remaining > 0 {
			length := (it.remaining + 1) * it.oldLength
			if i < it.srcIndex+length {
				n := (i - it.srcIndex) / it.oldLength
				step := n * it.oldLength
				it.srcIndex += step
				it.replIndex += step
				it.destIndex += step
				it.remaining -= n
				return true
			}
			// Make Next skip all the remaining sub-edits at once.
			it.oldLength = length
			it.newLength = length
			it.remaining = 0
		}
	}
	return false
}
