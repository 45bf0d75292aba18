package intcodec

import (
	"errors"
	"slices"
)

// ErrNotLoaded is returned when Reader operations are called before Load.
var ErrNotLoaded = errors.New("intcodec: reader not loaded")

// ErrPositionOutOfRange is returned when accessing a position beyond the
// loaded sequence's length.
var ErrPositionOutOfRange = errors.New("intcodec: position out of range")

// Reader provides random access into a fully decoded delta+mode-coded
// sequence, the kind of parent-pointer, child-span, or path-reference
// index list this codec targets. It decodes the whole sequence once on
// Load and serves Get/Next/SkipTo from the decoded buffer; there is no
// partial or streaming decode, and the element count must still be known
// out of band.
//
// A Reader is not safe for concurrent use. Create one Reader per goroutine
// over the same underlying buffer if concurrent access is needed.
type Reader struct {
	values   []int32
	pos      int
	count    int
	isSorted bool
	loaded   bool
}

// NewReader creates an empty Reader that must be loaded with Load before use.
func NewReader() *Reader {
	return &Reader{}
}

// Load decodes an intermediate delta+mode buffer (as produced by
// EncodeInt32/EncodeUint32, not yet byte-stream compressed) of n elements
// into the reader. It resets all internal state and can be called
// repeatedly to reuse the reader's buffer.
func (r *Reader) Load(data []byte, n int) error {
	if n < 0 {
		return ErrInvalidBuffer
	}
	if cap(r.values) >= n {
		r.values = r.values[:n]
	} else {
		r.values = make([]int32, n)
	}
	DecodeInt32(r.values, data, n)

	r.count = n
	r.isSorted = slices.IsSorted(r.values)
	r.pos = 0
	r.loaded = true
	return nil
}

// IsLoaded reports whether the reader has been loaded with data.
func (r *Reader) IsLoaded() bool { return r.loaded }

// Len returns the number of elements in the loaded sequence.
func (r *Reader) Len() int { return r.count }

// Pos returns the current position for sequential iteration.
func (r *Reader) Pos() int { return r.pos }

// Reset rewinds the reader's position to the beginning for sequential iteration.
func (r *Reader) Reset() { r.pos = 0 }

// IsSorted reports whether the decoded sequence is non-decreasing.
func (r *Reader) IsSorted() bool { return r.isSorted }

// Get returns the value at pos.
func (r *Reader) Get(pos int) (int32, error) {
	if !r.loaded {
		return 0, ErrNotLoaded
	}
	if pos < 0 || pos >= r.count {
		return 0, ErrPositionOutOfRange
	}
	return r.values[pos], nil
}

// GetSafe returns the value at pos and whether pos was valid.
func (r *Reader) GetSafe(pos int) (int32, bool) {
	v, err := r.Get(pos)
	return v, err == nil
}

// Next returns the next value in sequence and its position. ok is false
// once the reader is exhausted or was never loaded.
func (r *Reader) Next() (value int32, pos int, ok bool) {
	if !r.loaded || r.pos >= r.count {
		return 0, 0, false
	}
	value = r.values[r.pos]
	pos = r.pos
	r.pos++
	return value, pos, true
}

// SkipTo advances to and returns the first value >= req at or after the
// current position. On sorted sequences this binary-searches; otherwise it
// falls back to a linear scan.
func (r *Reader) SkipTo(req int32) (value int32, pos int, ok bool) {
	if !r.loaded || r.pos >= r.count {
		return 0, 0, false
	}
	if r.isSorted {
		return r.skipToBinarySearch(req)
	}
	return r.skipToLinear(req)
}

func (r *Reader) skipToBinarySearch(req int32) (int32, int, bool) {
	idx, _ := slices.BinarySearch(r.values[r.pos:], req)
	absPos := r.pos + idx
	if absPos >= r.count {
		r.pos = r.count
		return 0, 0, false
	}
	r.pos = absPos + 1
	return r.values[absPos], absPos, true
}

func (r *Reader) skipToLinear(req int32) (int32, int, bool) {
	for r.pos < r.count {
		v, p := r.values[r.pos], r.pos
		r.pos++
		if v >= req {
			return v, p, true
		}
	}
	return 0, 0, false
}

// Decode copies all decoded values into dst, growing it if needed, and
// returns the (possibly new) slice.
func (r *Reader) Decode(dst []int32) []int32 {
	if !r.loaded {
		return nil
	}
	if cap(dst) < r.count {
		dst = make([]int32, r.count)
	} else {
		dst = dst[:r.count]
	}
	copy(dst, r.values)
	return dst
}
