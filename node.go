package cowlist

import "sync/atomic"

// node is a single link in the chain. The spine of the chain runs head to
// tail through the next pointers; prev pointers are back-references used
// only for traversal from the tail end.
type node[T any] struct {
	value T
	next  *node[T]
	prev  *node[T]
}

// chain is the shared node graph behind one or more List handles. The refs
// counter tracks how many handles currently share it; a handle must hold
// the chain uniquely (refs == 1) before performing any mutation.
type chain[T any] struct {
	refs  atomic.Int64
	head  *node[T]
	tail  *node[T]
	count int
}

func newChain[T any]() *chain[T] {
	c := &chain[T]{}
	c.refs.Store(1)
	return c
}

// clone creates a fully independent copy of the chain, walking head to tail
// once and re-linking both directions in the copy.
func (c *chain[T]) clone() *chain[T] {
	nc := newChain[T]()
	nc.count = c.count
	var prev *node[T]
	for n := c.head; n != nil; n = n.next {
		cp := &node[T]{value: n.value, prev: prev}
		if prev == nil {
			nc.head = cp
		} else {
			prev.next = cp
		}
		prev = cp
	}
	nc.tail = prev
	return nc
}

// seek returns the node at the given position, traversing from whichever
// end is closer. The caller must guarantee 0 <= pos < c.count.
func (c *chain[T]) seek(pos int) *node[T] {
	if pos < c.count/2 {
		n := c.head
		for i := 0; i < pos; i++ {
			n = n.next
		}
		return n
	}
	n := c.tail
	for i := c.count - 1; i > pos; i-- {
		n = n.prev
	}
	return n
}

// pushBack appends a value in O(1). The caller must hold the chain uniquely.
func (c *chain[T]) pushBack(v T) {
	n := &node[T]{value: v, prev: c.tail}
	if c.tail == nil {
		c.head = n
	} else {
		c.tail.next = n
	}
	c.tail = n
	c.count++
}

// pushFront prepends a value in O(1). The caller must hold the chain uniquely.
func (c *chain[T]) pushFront(v T) {
	n := &node[T]{value: v, next: c.head}
	if c.head == nil {
		c.tail = n
	} else {
		c.head.prev = n
	}
	c.head = n
	c.count++
}

// unlink removes a single node from the chain in O(1). The caller must hold
// the chain uniquely and the node must belong to this chain.
func (c *chain[T]) unlink(n *node[T]) {
	if n.prev == nil {
		c.head = n.next
	} else {
		n.prev.next = n.next
	}
	if n.next == nil {
		c.tail = n.prev
	} else {
		n.next.prev = n.prev
	}
	n.next = nil
	n.prev = nil
	c.count--
}

// buildSegment links the given values into a detached sub-chain and returns
// its ends along with the number of nodes built.
func buildSegment[T any](values []T) (head *node[T], tail *node[T], n int) {
	for _, v := range values {
		nn := &node[T]{value: v, prev: tail}
		if tail == nil {
			head = nn
		} else {
			tail.next = nn
		}
		tail = nn
	}
	return head, tail, len(values)
}

// splice replaces the nodes in the half-open position range [lower, upper)
// with the given detached segment (which may be empty). The caller must hold
// the chain uniquely and must have validated 0 <= lower <= upper <= count.
// The count is adjusted exactly once, regardless of which edge case runs.
func (c *chain[T]) splice(lower, upper int, segHead, segTail *node[T], segLen int) {
	var pred *node[T]
	if lower > 0 {
		pred = c.seek(lower - 1)
	}
	first := c.head
	if pred != nil {
		first = pred.next
	}
	// Walk off the doomed span to find the successor node (nil when the
	// range runs to the very end).
	succ := first
	var lastRemoved *node[T]
	for i := lower; i < upper; i++ {
		lastRemoved = succ
		succ = succ.next
	}

	if segLen == 0 {
		// Pure deletion: bridge the predecessor straight to the successor.
		if pred == nil {
			c.head = succ
		} else {
			pred.next = succ
		}
		if succ == nil {
			c.tail = pred
		} else {
			succ.prev = pred
		}
	} else {
		segHead.prev = pred
		if pred == nil {
			c.head = segHead
		} else {
			pred.next = segHead
		}
		segTail.next = succ
		if succ == nil {
			c.tail = segTail
		} else {
			succ.prev = segTail
		}
	}

	// Sever the removed span so unlinked nodes don't pin the chain.
	if lastRemoved != nil {
		first.prev = nil
		lastRemoved.next = nil
	}

	c.count = c.count - (upper - lower) + segLen
}
