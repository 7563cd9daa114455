package cowlist

import (
	"errors"
	"testing"
)

func TestStartEndOnEmptyList(t *testing.T) {
	l := New[int]()
	start := l.Start()
	end := l.End()
	if start.Position() != 0 || end.Position() != 0 {
		t.Errorf("expected both ends at position 0, got %d and %d", start.Position(), end.Position())
	}
	if _, err := l.Get(start); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("dereferencing the past-the-end index should fail with ErrOutOfRange, got %v", err)
	}
}

func TestAdvanceWalksTheList(t *testing.T) {
	l := Of(10, 20, 30)
	i := l.Start()
	var got []int
	for i.Position() < l.Len() {
		v, err := l.Get(i)
		if err != nil {
			t.Fatalf("Get at position %d failed: %v", i.Position(), err)
		}
		got = append(got, v)
		next, err := l.Advance(i)
		if err != nil {
			t.Fatalf("Advance from position %d failed: %v", i.Position(), err)
		}
		i = next
	}
	if len(got) != 3 || got[0] != 10 || got[1] != 20 || got[2] != 30 {
		t.Errorf("unexpected traversal: %v", got)
	}
	if _, err := l.Advance(i); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("advancing past the end should fail with ErrOutOfRange, got %v", err)
	}
}

func TestRetreatWalksBackFromEnd(t *testing.T) {
	l := Of(10, 20, 30)
	i := l.End()
	var got []int
	for i.Position() > 0 {
		prev, err := l.Retreat(i)
		if err != nil {
			t.Fatalf("Retreat from position %d failed: %v", i.Position(), err)
		}
		i = prev
		v, err := l.Get(i)
		if err != nil {
			t.Fatalf("Get at position %d failed: %v", i.Position(), err)
		}
		got = append(got, v)
	}
	if len(got) != 3 || got[0] != 30 || got[1] != 20 || got[2] != 10 {
		t.Errorf("unexpected reverse traversal: %v", got)
	}
	if _, err := l.Retreat(i); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("retreating before the start should fail with ErrOutOfRange, got %v", err)
	}
}

func TestIndexAt(t *testing.T) {
	l := Of(10, 20, 30)
	i, err := l.IndexAt(2)
	if err != nil {
		t.Fatalf("IndexAt failed: %v", err)
	}
	if v, err := l.Get(i); err != nil || v != 30 {
		t.Errorf("expected 30, got %d (err %v)", v, err)
	}
	if end, err := l.IndexAt(3); err != nil || end.Position() != 3 {
		t.Errorf("IndexAt(count) should produce the past-the-end index, got %v (err %v)", end.Position(), err)
	}
	if _, err := l.IndexAt(4); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("expected ErrOutOfRange, got %v", err)
	}
}

func TestForeignIndexRejected(t *testing.T) {
	a := Of(1, 2, 3)
	b := Of(1, 2, 3)
	i := a.Start()
	if _, err := b.Get(i); !errors.Is(err, ErrForeignIndex) {
		t.Errorf("an index from another list should fail with ErrForeignIndex, got %v", err)
	}
	if _, err := b.Advance(i); !errors.Is(err, ErrForeignIndex) {
		t.Errorf("Advance with a foreign index should fail, got %v", err)
	}
	if err := b.Set(i, 9); !errors.Is(err, ErrForeignIndex) {
		t.Errorf("Set with a foreign index should fail, got %v", err)
	}
}

func TestIndexSurvivesCopyUntilClone(t *testing.T) {
	a := Of(1, 2, 3)
	i, err := a.IndexAt(1)
	if err != nil {
		t.Fatalf("IndexAt failed: %v", err)
	}

	// A copy shares the chain and the token, so the index still resolves.
	b := a.Copy()
	if v, err := b.Get(i); err != nil || v != 2 {
		t.Fatalf("expected the index to resolve on a fresh copy, got %d (err %v)", v, err)
	}

	// The copy's first mutation clones the chain and rotates its token; the
	// old index must now be rejected by the copy but still work on the
	// original, whose chain never changed.
	b.Append(4)
	if _, err := b.Get(i); !errors.Is(err, ErrForeignIndex) {
		t.Errorf("a pre-clone index should be stale on the mutated copy, got %v", err)
	}
	if v, err := a.Get(i); err != nil || v != 2 {
		t.Errorf("the index should remain valid on the original, got %d (err %v)", v, err)
	}
}

func TestSetThroughIndexAfterSharingReseeks(t *testing.T) {
	a := Of(1, 2, 3)
	i, err := a.IndexAt(1)
	if err != nil {
		t.Fatalf("IndexAt failed: %v", err)
	}
	b := a.Copy()

	// The index was issued against the shared chain; Set must clone first
	// and then write to the clone, never to the shared nodes.
	if err := a.Set(i, 9); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	assertElements(t, a, []int{1, 9, 3})
	assertElements(t, b, []int{1, 2, 3})
}

func TestInsertBeforeAndRemoveAtIndex(t *testing.T) {
	l := Of(1, 3)
	i, err := l.IndexAt(1)
	if err != nil {
		t.Fatalf("IndexAt failed: %v", err)
	}
	if err := l.InsertBefore(i, 2); err != nil {
		t.Fatalf("InsertBefore failed: %v", err)
	}
	assertElements(t, l, []int{1, 2, 3})

	if err := l.InsertBefore(l.End(), 4); err != nil {
		t.Fatalf("InsertBefore at the end failed: %v", err)
	}
	assertElements(t, l, []int{1, 2, 3, 4})

	j, err := l.IndexAt(0)
	if err != nil {
		t.Fatalf("IndexAt failed: %v", err)
	}
	v, err := l.RemoveAtIndex(j)
	if err != nil || v != 1 {
		t.Fatalf("expected to remove 1, got %d (err %v)", v, err)
	}
	assertElements(t, l, []int{2, 3, 4})
}

func TestRemoveAtPastTheEndIndexFails(t *testing.T) {
	l := Of(1, 2)
	if _, err := l.RemoveAtIndex(l.End()); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("expected ErrOutOfRange, got %v", err)
	}
}
