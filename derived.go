package cowlist

import (
	"github.com/Invicton-Labs/go-stackerr"
)

// Transform maps an input list to a new list using a transformation
// function. The input list is never modified.
func Transform[In any, Out any](in *List[In], transformationFunc func(value In) (transformed Out)) *List[Out] {
	in.lazyInit()
	out := New[Out]()
	for n := in.chain.head; n != nil; n = n.next {
		out.chain.pushBack(transformationFunc(n.value))
	}
	return out
}

// TransformWithErr maps an input list to a new list using a transformation
// function and allows returning an error, which aborts the pass and is
// surfaced to the caller unchanged.
func TransformWithErr[In any, Out any](in *List[In], transformationFunc func(value In) (transformed Out, err stackerr.Error)) (*List[Out], stackerr.Error) {
	in.lazyInit()
	out := New[Out]()
	for n := in.chain.head; n != nil; n = n.next {
		v, err := transformationFunc(n.value)
		if err != nil {
			return nil, err
		}
		out.chain.pushBack(v)
	}
	return out, nil
}

// TransformCompact maps an input list to a new list, dropping elements for
// which the transformation function reports false.
func TransformCompact[In any, Out any](in *List[In], transformationFunc func(value In) (transformed Out, include bool)) *List[Out] {
	in.lazyInit()
	out := New[Out]()
	for n := in.chain.head; n != nil; n = n.next {
		if v, include := transformationFunc(n.value); include {
			out.chain.pushBack(v)
		}
	}
	return out
}

// TransformCompactWithErr maps an input list to a new list, dropping
// elements for which the transformation function reports false, and allows
// returning an error that aborts the pass.
func TransformCompactWithErr[In any, Out any](in *List[In], transformationFunc func(value In) (transformed Out, include bool, err stackerr.Error)) (*List[Out], stackerr.Error) {
	in.lazyInit()
	out := New[Out]()
	for n := in.chain.head; n != nil; n = n.next {
		v, include, err := transformationFunc(n.value)
		if err != nil {
			return nil, err
		}
		if include {
			out.chain.pushBack(v)
		}
	}
	return out, nil
}

// Reduce folds the list head to tail into a single value, starting from the
// given initial accumulator.
func Reduce[T any, Acc any](in *List[T], initial Acc, reduceFunc func(acc Acc, value T) Acc) Acc {
	in.lazyInit()
	acc := initial
	for n := in.chain.head; n != nil; n = n.next {
		acc = reduceFunc(acc, n.value)
	}
	return acc
}

// ReduceWithErr folds the list head to tail into a single value and allows
// the fold function to return an error that aborts the pass.
func ReduceWithErr[T any, Acc any](in *List[T], initial Acc, reduceFunc func(acc Acc, value T) (Acc, stackerr.Error)) (Acc, stackerr.Error) {
	in.lazyInit()
	acc := initial
	for n := in.chain.head; n != nil; n = n.next {
		next, err := reduceFunc(acc, n.value)
		if err != nil {
			return initial, err
		}
		acc = next
	}
	return acc, nil
}

// Filter returns a new list of the elements that meet the given condition
// function, in their original order. The receiver is never modified.
func (l *List[T]) Filter(filterFunc func(value T) (include bool)) *List[T] {
	l.lazyInit()
	out := New[T]()
	for n := l.chain.head; n != nil; n = n.next {
		if filterFunc(n.value) {
			out.chain.pushBack(n.value)
		}
	}
	return out
}

// FilterWithErr returns a new list of the elements that meet the given
// condition function, and allows the condition to return an error that
// aborts the pass.
func (l *List[T]) FilterWithErr(filterFunc func(value T) (include bool, err stackerr.Error)) (*List[T], stackerr.Error) {
	l.lazyInit()
	out := New[T]()
	for n := l.chain.head; n != nil; n = n.next {
		include, err := filterFunc(n.value)
		if err != nil {
			return nil, err
		}
		if include {
			out.chain.pushBack(n.value)
		}
	}
	return out, nil
}

// Reverse reverses the list in place in O(n): after the copy-on-write
// check, every node's links are swapped and the head and tail trade places.
func (l *List[T]) Reverse() {
	l.lazyInit()
	if l.chain.count < 2 {
		return
	}
	l.ensureUnique()
	c := l.chain
	for n := c.head; n != nil; {
		next := n.next
		n.next, n.prev = n.prev, next
		n = next
	}
	c.head, c.tail = c.tail, c.head
}

// Reversed returns a new list holding the elements in reverse order,
// walking the receiver tail to head via the back-links. The receiver is
// never modified.
func (l *List[T]) Reversed() *List[T] {
	l.lazyInit()
	out := New[T]()
	for n := l.chain.tail; n != nil; n = n.prev {
		out.chain.pushBack(n.value)
	}
	return out
}
