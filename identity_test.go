package cowlist

import (
	"errors"
	"testing"

	"github.com/Invicton-Labs/go-stackerr"
)

type record struct {
	id   string
	body string
}

func (r record) ID() string { return r.id }

func recordList() *List[record] {
	return Of(
		record{id: "id1", body: "first-1"},
		record{id: "id2", body: "first-2"},
		record{id: "id1", body: "second-1"},
		record{id: "id2", body: "second-2"},
	)
}

func TestFirstByID(t *testing.T) {
	l := recordList()
	r, found := FirstByID(l, "id1")
	if !found || r.body != "first-1" {
		t.Errorf("expected the first id1 record, got %+v (found %t)", r, found)
	}
	if _, found := FirstByID(l, "id3"); found {
		t.Error("did not expect a match for id3")
	}
}

func TestAllByIDPreservesOrder(t *testing.T) {
	l := recordList()
	matches := AllByID(l, "id1")
	if matches.Len() != 2 {
		t.Fatalf("expected 2 matches, got %d", matches.Len())
	}
	got := matches.ToSlice()
	if got[0].body != "first-1" || got[1].body != "second-1" {
		t.Errorf("matches out of order: %+v", got)
	}
}

func TestContainsID(t *testing.T) {
	l := recordList()
	if !ContainsID(l, "id2") {
		t.Error("expected the list to contain id2")
	}
	if ContainsID(l, "id3") {
		t.Error("did not expect the list to contain id3")
	}
}

func TestRemoveFirstByID(t *testing.T) {
	l := recordList()
	if !RemoveFirstByID(l, "id1") {
		t.Fatal("expected a removal")
	}
	if l.Len() != 3 {
		t.Errorf("expected count 3, got %d", l.Len())
	}
	r, found := FirstByID(l, "id1")
	if !found || r.body != "second-1" {
		t.Errorf("expected only the first id1 to be removed, got %+v (found %t)", r, found)
	}
	if RemoveFirstByID(l, "id3") {
		t.Error("removing a missing ID should report false")
	}
}

func TestRemoveFirstByIDDoesNotTouchCopies(t *testing.T) {
	a := recordList()
	b := a.Copy()
	if !RemoveFirstByID(a, "id1") {
		t.Fatal("expected a removal")
	}
	if a.Len() != 3 || b.Len() != 4 {
		t.Errorf("expected counts 3 and 4, got %d and %d", a.Len(), b.Len())
	}
}

func TestRemoveAllByID(t *testing.T) {
	l := recordList()
	if removed := RemoveAllByID(l, "id2"); removed != 2 {
		t.Errorf("expected 2 removals, got %d", removed)
	}
	if l.Len() != 2 {
		t.Errorf("expected count 2, got %d", l.Len())
	}
	if ContainsID(l, "id2") {
		t.Error("id2 should be gone")
	}
	if removed := RemoveAllByID(l, "id2"); removed != 0 {
		t.Errorf("expected no removals, got %d", removed)
	}
	if err := l.Validate(); err != nil {
		t.Errorf("invariants violated: %v", err)
	}
}

func TestUpdateFirstByID(t *testing.T) {
	l := recordList()
	found := UpdateFirstByID(l, "id2", func(r record) record {
		r.body = "updated"
		return r
	})
	if !found {
		t.Fatal("expected a match")
	}
	got := l.ToSlice()
	if got[1].body != "updated" {
		t.Errorf("expected the first id2 to be updated, got %+v", got[1])
	}
	if got[3].body != "second-2" {
		t.Errorf("the second id2 must be untouched, got %+v", got[3])
	}
}

func TestUpdateFirstByIDWithErrLeavesListUnchanged(t *testing.T) {
	l := recordList()
	boom := stackerr.Errorf("update failed")
	found, err := UpdateFirstByIDWithErr(l, "id1", func(r record) (record, stackerr.Error) {
		return record{}, boom
	})
	if found {
		t.Error("a failed update should not report found")
	}
	if !errors.Is(err, boom) {
		t.Errorf("expected the transform's own error, got %v", err)
	}
	got := l.ToSlice()
	if got[0].body != "first-1" {
		t.Errorf("a failed update must leave the list unchanged, got %+v", got[0])
	}
}

func TestUpdateFirstByIDCopiesOnWrite(t *testing.T) {
	a := recordList()
	b := a.Copy()
	UpdateFirstByID(a, "id1", func(r record) record {
		r.body = "mutated"
		return r
	})
	if b.ToSlice()[0].body != "first-1" {
		t.Error("updating through one handle must not be visible through the copy")
	}
	if a.ToSlice()[0].body != "mutated" {
		t.Error("the update should be visible through the mutating handle")
	}
}

func TestFilteredByIDs(t *testing.T) {
	l := recordList()
	out := FilteredByIDs(l, NewIDSet("id1"))
	if out.Len() != 2 {
		t.Fatalf("expected 2 elements, got %d", out.Len())
	}
	for _, r := range out.ToSlice() {
		if r.id != "id1" {
			t.Errorf("unexpected element %+v", r)
		}
	}
	if out := FilteredByIDs(l, NewIDSet[string]()); out.Len() != 0 {
		t.Errorf("an empty ID set should select nothing, got %d", out.Len())
	}
}

func TestIndexByIDLastMatchWins(t *testing.T) {
	l := recordList()
	RemoveFirstByID(l, "id1")
	byID := IndexByID[string](l)
	if byID["id1"].body != "second-1" {
		t.Errorf("expected the remaining id1 match, got %+v", byID["id1"])
	}
	if byID["id2"].body != "second-2" {
		t.Errorf("expected the last id2 match to win, got %+v", byID["id2"])
	}
}

func TestGroupByID(t *testing.T) {
	l := recordList()
	groups := GroupByID[string](l)
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}
	id1 := groups["id1"]
	if len(id1) != 2 || id1[0].body != "first-1" || id1[1].body != "second-1" {
		t.Errorf("id1 group out of order: %+v", id1)
	}
}

func TestIDSet(t *testing.T) {
	s := NewIDSet("a", "b")
	if !s.Has("a") || !s.Has("b") || s.Has("c") {
		t.Error("unexpected membership")
	}
	s.Store("c")
	if !s.Has("c") {
		t.Error("expected c after Store")
	}
	if !s.Delete("a") {
		t.Error("deleting an existing ID should report true")
	}
	if s.Delete("a") {
		t.Error("deleting a missing ID should report false")
	}
	if s.Length() != 2 {
		t.Errorf("expected length 2, got %d", s.Length())
	}
	if ids := s.IDs(); len(ids) != 2 {
		t.Errorf("expected 2 IDs, got %v", ids)
	}
}
