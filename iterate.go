package cowlist

import (
	"github.com/Invicton-Labs/go-stackerr"
)

// Iterate returns a closure iterator that yields the elements head to tail,
// each exactly once, then reports false. Each call to Iterate starts a
// fresh traversal. The iterator holds only a current-node reference;
// mutating this handle while one of its iterators is in flight is
// unsupported, but mutating a copy is safe and is never observed by
// iterators already bound to this handle.
func (l *List[T]) Iterate() func() (value T, ok bool) {
	l.lazyInit()
	n := l.chain.head
	return func() (value T, ok bool) {
		if n == nil {
			return value, false
		}
		// Yield, then advance.
		value = n.value
		n = n.next
		return value, true
	}
}

// IterateReverse returns a closure iterator that yields the elements tail
// to head via the back-links.
func (l *List[T]) IterateReverse() func() (value T, ok bool) {
	l.lazyInit()
	n := l.chain.tail
	return func() (value T, ok bool) {
		if n == nil {
			return value, false
		}
		value = n.value
		n = n.prev
		return value, true
	}
}

// ForEach calls f once for each element, head to tail.
func (l *List[T]) ForEach(f func(value T)) {
	l.lazyInit()
	for n := l.chain.head; n != nil; n = n.next {
		f(n.value)
	}
}

// ForEachWithErr calls f once for each element, head to tail, stopping at
// and returning the first error f raises.
func (l *List[T]) ForEachWithErr(f func(value T) stackerr.Error) stackerr.Error {
	l.lazyInit()
	for n := l.chain.head; n != nil; n = n.next {
		if err := f(n.value); err != nil {
			return err
		}
	}
	return nil
}

// ToSlice returns the elements as a slice in head-to-tail order. The slice
// is an independent snapshot; modifying it never affects the list.
func (l *List[T]) ToSlice() []T {
	l.lazyInit()
	out := make([]T, 0, l.chain.count)
	for n := l.chain.head; n != nil; n = n.next {
		out = append(out, n.value)
	}
	return out
}

// Equal checks whether two lists hold equal elements in the same order by
// applying a comparison function to each pair. Lists of unequal length are
// never equal.
func Equal[T any](a *List[T], b *List[T], comparisonFunc func(v1 T, v2 T) bool) bool {
	a.lazyInit()
	b.lazyInit()
	if a.chain.count != b.chain.count {
		return false
	}
	for na, nb := a.chain.head, b.chain.head; na != nil; na, nb = na.next, nb.next {
		if !comparisonFunc(na.value, nb.value) {
			return false
		}
	}
	return true
}

// EqualComparable checks whether two lists of comparable elements hold
// equal elements in the same order.
func EqualComparable[T comparable](a *List[T], b *List[T]) bool {
	return Equal(a, b, func(v1 T, v2 T) bool { return v1 == v2 })
}

// Contains checks whether the list holds the given value.
func Contains[T comparable](l *List[T], value T) bool {
	_, found := Find(l, value)
	return found
}

// Find returns the position of the first element equal to the given value,
// or false if no element matches.
func Find[T comparable](l *List[T], value T) (int, bool) {
	l.lazyInit()
	pos := 0
	for n := l.chain.head; n != nil; n = n.next {
		if n.value == value {
			return pos, true
		}
		pos++
	}
	return -1, false
}
