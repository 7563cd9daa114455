// Package cowlist implements a generic doubly-linked list with copy-on-write
// sharing between handles.
//
// A List is a lightweight handle onto a shared chain of nodes. Copy produces
// a new handle in O(1); the two handles share the chain until one of them
// mutates, at which point the mutator clones the chain privately and the
// other handle is unaffected. Access to the ends is O(1), positional access
// is O(n) traversing from whichever end is closer.
//
// Every structural mutation rotates the list's identity token when it forces
// a clone, which invalidates any Index captured before the clone; presenting
// such an index afterwards fails with ErrForeignIndex rather than touching
// the wrong chain.
//
// A single List handle is not synchronized: concurrent use of one handle
// from multiple goroutines requires external locking. Distinct handles
// produced by Copy may be read and mutated concurrently without locking.
package cowlist

import (
	"github.com/Invicton-Labs/go-stackerr"
	"github.com/google/uuid"
)

// List is a handle onto a copy-on-write doubly-linked chain of values.
// The zero value is an empty list ready to use.
type List[T any] struct {
	chain *chain[T]
	token uuid.UUID
}

// New creates a new empty list.
func New[T any]() *List[T] {
	return &List[T]{
		chain: newChain[T](),
		token: uuid.New(),
	}
}

// FromSlice creates a new list holding the values of the given slice in
// order. The conversion is O(n), appending each element.
func FromSlice[T any](values []T) *List[T] {
	l := New[T]()
	for _, v := range values {
		l.chain.pushBack(v)
	}
	return l
}

// Of creates a new list holding the given values in order.
func Of[T any](values ...T) *List[T] {
	return FromSlice(values)
}

// lazyInit lazily initializes a zero List[T] value.
func (l *List[T]) lazyInit() {
	if l.chain == nil {
		l.chain = newChain[T]()
		l.token = uuid.New()
	}
}

// Len returns the number of elements in the list. The complexity is O(1).
func (l *List[T]) Len() int {
	l.lazyInit()
	return l.chain.count
}

// Copy returns a new handle sharing this list's chain. The copy is O(1);
// the chain is cloned only when one of the handles later mutates, so the
// handles diverge without ever observing each other's changes.
func (l *List[T]) Copy() *List[T] {
	l.lazyInit()
	l.chain.refs.Add(1)
	return &List[T]{
		chain: l.chain,
		token: l.token,
	}
}

// First returns the first element, or false if the list is empty.
func (l *List[T]) First() (T, bool) {
	l.lazyInit()
	if l.chain.head == nil {
		var zeroValue T
		return zeroValue, false
	}
	return l.chain.head.value, true
}

// Last returns the last element, or false if the list is empty.
func (l *List[T]) Last() (T, bool) {
	l.lazyInit()
	if l.chain.tail == nil {
		var zeroValue T
		return zeroValue, false
	}
	return l.chain.tail.value, true
}

// Append adds the given values to the end of the list in order. Each append
// is O(1).
func (l *List[T]) Append(values ...T) {
	l.lazyInit()
	l.ensureUnique()
	for _, v := range values {
		l.chain.pushBack(v)
	}
}

// Prepend adds a value to the front of the list in O(1).
func (l *List[T]) Prepend(value T) {
	l.lazyInit()
	l.ensureUnique()
	l.chain.pushFront(value)
}

// AppendList appends every element of the other list to this one. The other
// list is never modified. The two lists may be the same list, or copies
// sharing one chain.
func (l *List[T]) AppendList(other *List[T]) {
	l.lazyInit()
	other.lazyInit()
	// Capture the length up front so appending to ourselves terminates.
	n := other.chain.count
	l.ensureUnique()
	for i, e := 0, other.chain.head; i < n; i, e = i+1, e.next {
		l.chain.pushBack(e.value)
	}
}

// RemoveFirst removes and returns the first element. It fails with
// ErrEmptyList if the list is empty; use PopFirst for a non-failing variant.
func (l *List[T]) RemoveFirst() (T, stackerr.Error) {
	l.lazyInit()
	if l.chain.count == 0 {
		var zeroValue T
		return zeroValue, errEmpty("remove the first element of an empty list")
	}
	l.ensureUnique()
	n := l.chain.head
	v := n.value
	l.chain.unlink(n)
	return v, nil
}

// RemoveLast removes and returns the last element. It fails with
// ErrEmptyList if the list is empty; use PopLast for a non-failing variant.
func (l *List[T]) RemoveLast() (T, stackerr.Error) {
	l.lazyInit()
	if l.chain.count == 0 {
		var zeroValue T
		return zeroValue, errEmpty("remove the last element of an empty list")
	}
	l.ensureUnique()
	n := l.chain.tail
	v := n.value
	l.chain.unlink(n)
	return v, nil
}

// PopFirst removes and returns the first element, or returns false if the
// list is empty.
func (l *List[T]) PopFirst() (T, bool) {
	l.lazyInit()
	if l.chain.count == 0 {
		var zeroValue T
		return zeroValue, false
	}
	l.ensureUnique()
	n := l.chain.head
	v := n.value
	l.chain.unlink(n)
	return v, true
}

// PopLast removes and returns the last element, or returns false if the
// list is empty.
func (l *List[T]) PopLast() (T, bool) {
	l.lazyInit()
	if l.chain.count == 0 {
		var zeroValue T
		return zeroValue, false
	}
	l.ensureUnique()
	n := l.chain.tail
	v := n.value
	l.chain.unlink(n)
	return v, true
}

// RemoveAll empties the list in O(1) by detaching from the chain and letting
// it be reclaimed (or letting remaining sharers keep it). The identity token
// rotates, so indices issued before the call are rejected afterwards.
func (l *List[T]) RemoveAll() {
	l.lazyInit()
	l.detach(newChain[T]())
}

// At returns the element at the given position, seeking from the closer
// end. It fails with ErrOutOfRange when the position does not refer to an
// existing element.
func (l *List[T]) At(pos int) (T, stackerr.Error) {
	l.lazyInit()
	if err := l.checkElementPosition(pos); err != nil {
		var zeroValue T
		return zeroValue, err
	}
	return l.chain.seek(pos).value, nil
}

// AtOK returns the element at the given position, or false when the
// position is out of range. It never fails.
func (l *List[T]) AtOK(pos int) (T, bool) {
	l.lazyInit()
	if pos < 0 || pos >= l.chain.count {
		var zeroValue T
		return zeroValue, false
	}
	return l.chain.seek(pos).value, true
}

// SetAt replaces the element at the given position. It fails with
// ErrOutOfRange when the position does not refer to an existing element.
func (l *List[T]) SetAt(pos int, value T) stackerr.Error {
	l.lazyInit()
	if err := l.checkElementPosition(pos); err != nil {
		return err
	}
	l.ensureUnique()
	l.chain.seek(pos).value = value
	return nil
}
