package cowlist

import (
	"github.com/Invicton-Labs/go-stackerr"
	"github.com/google/uuid"
)

// Index is an opaque position handle issued by a specific generation of a
// specific list. It pairs the node it refers to with its 0-based rank and
// the identity token of the list that issued it. A nil node encodes the
// past-the-end position (rank == count).
//
// An index stays usable on the issuing list, and on copies of it, until a
// copy-on-write clone rotates the token; from then on the index is stale
// and every operation rejects it with ErrForeignIndex instead of
// dereferencing a node that belongs to another chain.
type Index[T any] struct {
	token uuid.UUID
	node  *node[T]
	pos   int
}

// Position returns the 0-based rank the index was issued for. The
// past-the-end index reports the count of the issuing list.
func (i Index[T]) Position() int {
	return i.pos
}

// validateIndex rejects indices whose identity token does not match the
// list's current token. This must run before any dereference of the
// index's node.
func (l *List[T]) validateIndex(i Index[T]) stackerr.Error {
	if i.token != l.token {
		return errForeign()
	}
	return nil
}

// Start returns the index of the first element, which is the past-the-end
// index when the list is empty.
func (l *List[T]) Start() Index[T] {
	l.lazyInit()
	return Index[T]{
		token: l.token,
		node:  l.chain.head,
		pos:   0,
	}
}

// End returns the past-the-end index.
func (l *List[T]) End() Index[T] {
	l.lazyInit()
	return Index[T]{
		token: l.token,
		pos:   l.chain.count,
	}
}

// IndexAt returns an index for the given position, which may be anywhere
// from 0 through the count (the past-the-end position). Building the index
// is O(n), seeking from the closer end.
func (l *List[T]) IndexAt(pos int) (Index[T], stackerr.Error) {
	l.lazyInit()
	if err := l.checkInsertPosition(pos); err != nil {
		return Index[T]{}, err
	}
	if pos == l.chain.count {
		return l.End(), nil
	}
	return Index[T]{
		token: l.token,
		node:  l.chain.seek(pos),
		pos:   pos,
	}, nil
}

// Advance returns the index one position forward. It fails with
// ErrForeignIndex for an index this list did not issue, and with
// ErrOutOfRange when advancing past the past-the-end index.
func (l *List[T]) Advance(i Index[T]) (Index[T], stackerr.Error) {
	l.lazyInit()
	if err := l.validateIndex(i); err != nil {
		return Index[T]{}, err
	}
	if i.node == nil {
		return Index[T]{}, errPosition(i.pos+1, l.chain.count)
	}
	return Index[T]{
		token: l.token,
		node:  i.node.next,
		pos:   i.pos + 1,
	}, nil
}

// Retreat returns the index one position backward. It fails with
// ErrForeignIndex for an index this list did not issue, and with
// ErrOutOfRange when retreating before the start.
func (l *List[T]) Retreat(i Index[T]) (Index[T], stackerr.Error) {
	l.lazyInit()
	if err := l.validateIndex(i); err != nil {
		return Index[T]{}, err
	}
	if i.pos == 0 {
		return Index[T]{}, errPosition(-1, l.chain.count)
	}
	prev := l.chain.tail
	if i.node != nil {
		prev = i.node.prev
	}
	return Index[T]{
		token: l.token,
		node:  prev,
		pos:   i.pos - 1,
	}, nil
}

// Get returns the element the index refers to. It fails with
// ErrForeignIndex for a stale or foreign index and with ErrOutOfRange for
// the past-the-end index.
func (l *List[T]) Get(i Index[T]) (T, stackerr.Error) {
	l.lazyInit()
	var zeroValue T
	if err := l.validateIndex(i); err != nil {
		return zeroValue, err
	}
	if i.node == nil {
		return zeroValue, errPosition(i.pos, l.chain.count)
	}
	return i.node.value, nil
}

// Set replaces the element the index refers to. The index is validated
// against the current token before the copy-on-write check runs; if that
// check clones the chain, the element is re-located by position on the
// private clone, since the index's node belongs to the abandoned chain.
func (l *List[T]) Set(i Index[T], value T) stackerr.Error {
	l.lazyInit()
	if err := l.validateIndex(i); err != nil {
		return err
	}
	if i.node == nil {
		return errPosition(i.pos, l.chain.count)
	}
	n := i.node
	if l.ensureUnique() {
		n = l.chain.seek(i.pos)
	}
	n.value = value
	return nil
}

// InsertBefore inserts a value immediately before the position the index
// refers to (at the end, for the past-the-end index). It delegates to the
// positional primitive, so bounds and copy-on-write behavior are identical
// to InsertAt.
func (l *List[T]) InsertBefore(i Index[T], value T) stackerr.Error {
	l.lazyInit()
	if err := l.validateIndex(i); err != nil {
		return err
	}
	return l.InsertAt(i.pos, value)
}

// RemoveAtIndex removes and returns the element the index refers to,
// delegating to the positional primitive.
func (l *List[T]) RemoveAtIndex(i Index[T]) (T, stackerr.Error) {
	l.lazyInit()
	if err := l.validateIndex(i); err != nil {
		var zeroValue T
		return zeroValue, err
	}
	return l.RemoveAt(i.pos)
}
