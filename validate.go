package cowlist

import (
	"github.com/Invicton-Labs/go-stackerr"
	"go.uber.org/multierr"
)

// Validate walks the chain once in each direction and checks every
// structural invariant: the count matches the reachable nodes, head and
// tail are nil together or not at all, adjacent nodes agree on their links,
// and the tail is reached from the head in exactly count-1 steps (and the
// head from the tail). All violations found are aggregated into one
// combined error; a healthy list returns nil.
//
// This is a diagnostic for tests and debugging; no list operation depends
// on it.
func (l *List[T]) Validate() stackerr.Error {
	l.lazyInit()
	c := l.chain
	var combined error

	emptyEnds := 0
	if c.head == nil {
		emptyEnds++
	}
	if c.tail == nil {
		emptyEnds++
	}
	if emptyEnds == 1 {
		combined = multierr.Append(combined, stackerr.Errorf("exactly one of head and tail is nil (head nil: %t, tail nil: %t)", c.head == nil, c.tail == nil))
	}
	if emptyEnds == 2 && c.count != 0 {
		combined = multierr.Append(combined, stackerr.Errorf("count is %d but the chain is empty", c.count))
	}

	forward := 0
	var last *node[T]
	for n := c.head; n != nil; n = n.next {
		forward++
		if forward > c.count {
			combined = multierr.Append(combined, stackerr.Errorf("forward walk exceeded the count (%d); chain may be cyclic or over-long", c.count))
			break
		}
		if n.next != nil && n.next.prev != n {
			combined = multierr.Append(combined, stackerr.Errorf("back-link mismatch after position %d", forward-1))
		}
		last = n
	}
	if forward <= c.count && forward != c.count {
		combined = multierr.Append(combined, stackerr.Errorf("count is %d but the forward walk reached %d nodes", c.count, forward))
	}
	if forward <= c.count && last != c.tail {
		combined = multierr.Append(combined, stackerr.Errorf("forward walk did not end at the tail"))
	}

	backward := 0
	for n := c.tail; n != nil; n = n.prev {
		backward++
		if backward > c.count {
			combined = multierr.Append(combined, stackerr.Errorf("backward walk exceeded the count (%d)", c.count))
			break
		}
	}
	if backward <= c.count && backward != forward {
		combined = multierr.Append(combined, stackerr.Errorf("forward walk reached %d nodes but backward walk reached %d", forward, backward))
	}

	if combined != nil {
		return stackerr.Wrap(combined)
	}
	return nil
}
