package cowlist

import (
	"sync/atomic"

	"github.com/Invicton-Labs/go-cowlist/log"
	"github.com/google/uuid"
)

// cloneLogger, when set, receives a Debug-level event for every
// copy-on-write clone. Stored behind an atomic pointer so lists on
// different goroutines can consult it without locking.
var cloneLogger atomic.Pointer[log.Logger]

// SetDebugLogger installs a logger that reports every copy-on-write clone
// (with the chain length and the old and new identity tokens). This is a
// diagnostic aid for finding accidental copy churn; pass nil to disable.
// The list never logs anything else.
func SetDebugLogger(logger log.Logger) {
	if logger == nil {
		cloneLogger.Store(nil)
		return
	}
	cloneLogger.Store(&logger)
}

func debugLogger() log.Logger {
	p := cloneLogger.Load()
	if p == nil {
		return nil
	}
	return *p
}

// ensureUnique is the copy-on-write arbiter. Every operation that mutates
// node contents or linkage must call it before touching the chain. If the
// chain is shared with other handles, it is cloned, this handle moves onto
// the private clone, and the identity token rotates so that indices issued
// against the shared chain are rejected from here on. The returned bool
// reports whether a clone occurred, letting index-based mutators know that
// a captured node pointer now refers to the abandoned chain.
func (l *List[T]) ensureUnique() (cloned bool) {
	if l.chain.refs.Load() == 1 {
		return false
	}
	cl := l.chain.clone()
	l.chain.refs.Add(-1)
	oldToken := l.token
	l.chain = cl
	l.token = uuid.New()
	if logger := debugLogger(); logger != nil {
		logger.Debugw("copy-on-write clone",
			"count", cl.count,
			"oldToken", oldToken.String(),
			"newToken", l.token.String(),
		)
	}
	return true
}

// detach moves this handle onto the given replacement chain without cloning
// the current one, releasing its share of the old chain and rotating the
// token. Used where the old contents are discarded wholesale (RemoveAll,
// whole-span replacement, decoding), where a clone would be wasted work.
func (l *List[T]) detach(replacement *chain[T]) {
	l.chain.refs.Add(-1)
	l.chain = replacement
	l.token = uuid.New()
}

// adopt makes this handle a logical copy of the other list's chain in O(1),
// releasing its own chain. The other list is unaffected; both handles then
// share until one mutates.
func (l *List[T]) adopt(other *List[T]) {
	if other.chain == l.chain {
		// Same chain already; just rotate the token, since the caller is
		// performing a mutation-shaped operation.
		l.token = uuid.New()
		return
	}
	other.chain.refs.Add(1)
	l.chain.refs.Add(-1)
	l.chain = other.chain
	l.token = uuid.New()
}
