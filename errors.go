package cowlist

import (
	"errors"
	"fmt"

	"github.com/Invicton-Labs/go-stackerr"
)

// Error kinds raised by positional and index-based operations. They are
// precondition violations: each is checked before any surgery begins, so a
// failed operation never leaves partial state behind. Use errors.Is to test
// the kind of a returned error.
var (
	// ErrOutOfRange is raised when a position or range argument violates
	// the bounds of the list.
	ErrOutOfRange = errors.New("position out of range")

	// ErrEmptyList is raised by the unconditional remove operations when
	// the list holds no elements.
	ErrEmptyList = errors.New("list is empty")

	// ErrForeignIndex is raised when an index issued by a different list,
	// or by an earlier generation of this list, is presented.
	ErrForeignIndex = errors.New("index does not belong to this list")
)

func errPosition(pos int, count int) stackerr.Error {
	return stackerr.Wrap(fmt.Errorf("%w: position %d with count %d", ErrOutOfRange, pos, count))
}

func errRange(lower int, upper int, count int) stackerr.Error {
	return stackerr.Wrap(fmt.Errorf("%w: range [%d, %d) with count %d", ErrOutOfRange, lower, upper, count))
}

func errEmpty(operation string) stackerr.Error {
	return stackerr.Wrap(fmt.Errorf("%w: cannot %s", ErrEmptyList, operation))
}

func errForeign() stackerr.Error {
	return stackerr.Wrap(fmt.Errorf("%w: identity token mismatch", ErrForeignIndex))
}

// checkElementPosition validates a position that must refer to an existing
// element (0 <= pos < count).
func (l *List[T]) checkElementPosition(pos int) stackerr.Error {
	if pos < 0 || pos >= l.chain.count {
		return errPosition(pos, l.chain.count)
	}
	return nil
}

// checkInsertPosition validates a position that may also be one past the
// last element (0 <= pos <= count).
func (l *List[T]) checkInsertPosition(pos int) stackerr.Error {
	if pos < 0 || pos > l.chain.count {
		return errPosition(pos, l.chain.count)
	}
	return nil
}

// checkRange validates a half-open position range (0 <= lower <= upper <= count).
func (l *List[T]) checkRange(lower, upper int) stackerr.Error {
	if lower < 0 || upper < lower || upper > l.chain.count {
		return errRange(lower, upper, l.chain.count)
	}
	return nil
}
