package cowlist

import (
	"github.com/Invicton-Labs/go-stackerr"
)

// InsertAt inserts a value so that it ends up at the given position.
// Position 0 prepends and position Len() appends; anything outside
// [0, Len()] fails with ErrOutOfRange. The insertion itself is O(1) once
// the neighbors are found.
func (l *List[T]) InsertAt(pos int, value T) stackerr.Error {
	return l.InsertSliceAt(pos, []T{value})
}

// InsertSliceAt inserts the given values, in order, so that the first one
// ends up at the given position. An empty slice leaves the list untouched
// (after bounds checking).
func (l *List[T]) InsertSliceAt(pos int, values []T) stackerr.Error {
	l.lazyInit()
	if err := l.checkInsertPosition(pos); err != nil {
		return err
	}
	if len(values) == 0 {
		return nil
	}
	l.ensureUnique()
	segHead, segTail, segLen := buildSegment(values)
	l.chain.splice(pos, pos, segHead, segTail, segLen)
	return nil
}

// RemoveAt removes and returns the element at the given position. It fails
// with ErrOutOfRange when the position does not refer to an existing
// element.
func (l *List[T]) RemoveAt(pos int) (T, stackerr.Error) {
	l.lazyInit()
	var zeroValue T
	if err := l.checkElementPosition(pos); err != nil {
		return zeroValue, err
	}
	l.ensureUnique()
	n := l.chain.seek(pos)
	v := n.value
	l.chain.unlink(n)
	return v, nil
}

// RemoveRange removes the elements in the half-open position range
// [lower, upper). A zero-width range is a no-op.
func (l *List[T]) RemoveRange(lower, upper int) stackerr.Error {
	return l.ReplaceRange(lower, upper, nil)
}

// ReplaceRange replaces the elements in the half-open position range
// [lower, upper) with the given values. An empty replacement is a pure
// deletion; a zero-width range is a pure insertion. Relative order outside
// the range is preserved, and the count is adjusted exactly once. It fails
// with ErrOutOfRange unless 0 <= lower <= upper <= Len().
func (l *List[T]) ReplaceRange(lower, upper int, values []T) stackerr.Error {
	l.lazyInit()
	if err := l.checkRange(lower, upper); err != nil {
		return err
	}
	if upper == lower && len(values) == 0 {
		return nil
	}
	l.ensureUnique()
	segHead, segTail, segLen := buildSegment(values)
	l.chain.splice(lower, upper, segHead, segTail, segLen)
	return nil
}

// ReplaceRangeList replaces the elements in the half-open position range
// [lower, upper) with the elements of another list. When the range spans
// the entire list, the replacement's chain is adopted in O(1) instead of
// being spliced node by node; the two handles then share until one mutates.
// The other list is never modified.
func (l *List[T]) ReplaceRangeList(lower, upper int, other *List[T]) stackerr.Error {
	l.lazyInit()
	other.lazyInit()
	if err := l.checkRange(lower, upper); err != nil {
		return err
	}
	if lower == 0 && upper == l.chain.count {
		l.adopt(other)
		return nil
	}
	// Copy the replacement values before the copy-on-write check; the other
	// list may be this list (or share its chain), and the segment must be
	// built from the pre-mutation contents.
	n := other.chain.count
	values := make([]T, 0, n)
	for i, e := 0, other.chain.head; i < n; i, e = i+1, e.next {
		values = append(values, e.value)
	}
	l.ensureUnique()
	segHead, segTail, segLen := buildSegment(values)
	l.chain.splice(lower, upper, segHead, segTail, segLen)
	return nil
}
