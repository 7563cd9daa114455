package cowlist

import (
	"fmt"
	"strings"
)

// String renders the elements in head-to-tail order, in the same style the
// fmt package renders slices.
func (l *List[T]) String() string {
	l.lazyInit()
	var b strings.Builder
	b.WriteByte('[')
	for n := l.chain.head; n != nil; n = n.next {
		if n != l.chain.head {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%v", n.value)
	}
	b.WriteByte(']')
	return b.String()
}

// GoString renders a debug form that additionally reports the count.
func (l *List[T]) GoString() string {
	l.lazyInit()
	return fmt.Sprintf("cowlist.List(count=%d, elements=%s)", l.chain.count, l.String())
}
