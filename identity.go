package cowlist

import (
	"github.com/Invicton-Labs/go-stackerr"
)

// Identified is implemented by element types that expose a queryable
// identity field, enabling the ID-keyed convenience operations. IDs do not
// have to be unique within a list; the operations below define their
// behavior for duplicates explicitly.
type Identified[ID comparable] interface {
	ID() ID
}

// FirstByID returns the first element whose ID matches, or false if none
// does. O(n) single pass.
func FirstByID[ID comparable, T Identified[ID]](l *List[T], id ID) (T, bool) {
	l.lazyInit()
	for n := l.chain.head; n != nil; n = n.next {
		if n.value.ID() == id {
			return n.value, true
		}
	}
	var zeroValue T
	return zeroValue, false
}

// AllByID returns a new list of every element whose ID matches, in their
// original relative order.
func AllByID[ID comparable, T Identified[ID]](l *List[T], id ID) *List[T] {
	l.lazyInit()
	out := New[T]()
	for n := l.chain.head; n != nil; n = n.next {
		if n.value.ID() == id {
			out.chain.pushBack(n.value)
		}
	}
	return out
}

// ContainsID checks whether any element's ID matches.
func ContainsID[ID comparable, T Identified[ID]](l *List[T], id ID) bool {
	_, found := FirstByID(l, id)
	return found
}

// RemoveFirstByID unlinks the first element whose ID matches and reports
// whether one was found. The copy-on-write check runs only when a match
// exists; a miss never clones.
func RemoveFirstByID[ID comparable, T Identified[ID]](l *List[T], id ID) bool {
	l.lazyInit()
	pos := 0
	for n := l.chain.head; n != nil; n = n.next {
		if n.value.ID() == id {
			if l.ensureUnique() {
				n = l.chain.seek(pos)
			}
			l.chain.unlink(n)
			return true
		}
		pos++
	}
	return false
}

// RemoveAllByID unlinks every element whose ID matches in one pass and
// returns how many were removed. The copy-on-write check runs only when at
// least one match exists.
func RemoveAllByID[ID comparable, T Identified[ID]](l *List[T], id ID) int {
	if !ContainsID(l, id) {
		return 0
	}
	l.ensureUnique()
	removed := 0
	for n := l.chain.head; n != nil; {
		next := n.next
		if n.value.ID() == id {
			l.chain.unlink(n)
			removed++
		}
		n = next
	}
	return removed
}

// UpdateFirstByID replaces the first element whose ID matches with the
// result of the transformation function, in place, and reports whether a
// match was found.
func UpdateFirstByID[ID comparable, T Identified[ID]](l *List[T], id ID, transformationFunc func(value T) (transformed T)) bool {
	found, _ := updateFirstByID(l, id, func(v T) (T, stackerr.Error) {
		return transformationFunc(v), nil
	})
	return found
}

// UpdateFirstByIDWithErr replaces the first element whose ID matches with
// the result of the transformation function, surfacing the function's error
// unchanged. On error the list is left exactly as it was.
func UpdateFirstByIDWithErr[ID comparable, T Identified[ID]](l *List[T], id ID, transformationFunc func(value T) (transformed T, err stackerr.Error)) (found bool, err stackerr.Error) {
	return updateFirstByID(l, id, transformationFunc)
}

func updateFirstByID[ID comparable, T Identified[ID]](l *List[T], id ID, transformationFunc func(value T) (T, stackerr.Error)) (bool, stackerr.Error) {
	l.lazyInit()
	pos := 0
	for n := l.chain.head; n != nil; n = n.next {
		if n.value.ID() == id {
			// Run the transform before the copy-on-write check so a failed
			// transform leaves no trace, not even a clone.
			transformed, err := transformationFunc(n.value)
			if err != nil {
				return false, err
			}
			if l.ensureUnique() {
				n = l.chain.seek(pos)
			}
			n.value = transformed
			return true, nil
		}
		pos++
	}
	return false, nil
}

// FilteredByIDs returns a new list of the elements whose IDs are in the
// given set, in their original relative order. The receiver is never
// modified.
func FilteredByIDs[ID comparable, T Identified[ID]](l *List[T], ids IDSet[ID]) *List[T] {
	l.lazyInit()
	out := New[T]()
	for n := l.chain.head; n != nil; n = n.next {
		if ids.Has(n.value.ID()) {
			out.chain.pushBack(n.value)
		}
	}
	return out
}

// IndexByID builds a map from ID to element. When several elements share an
// ID, the last one wins. The ID type argument must be given explicitly
// (e.g. IndexByID[string](l)); it cannot be inferred from the list alone.
func IndexByID[ID comparable, T Identified[ID]](l *List[T]) map[ID]T {
	l.lazyInit()
	out := make(map[ID]T, l.chain.count)
	for n := l.chain.head; n != nil; n = n.next {
		out[n.value.ID()] = n.value
	}
	return out
}

// GroupByID builds a map from ID to all elements carrying that ID, each
// group in original relative order. As with IndexByID, the ID type argument
// must be given explicitly.
func GroupByID[ID comparable, T Identified[ID]](l *List[T]) map[ID][]T {
	l.lazyInit()
	out := map[ID][]T{}
	for n := l.chain.head; n != nil; n = n.next {
		out[n.value.ID()] = append(out[n.value.ID()], n.value)
	}
	return out
}
