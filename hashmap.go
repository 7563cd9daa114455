package cowlist

// IDSet is a keys-only set of element identities. It is useful for driving
// the set-based identity queries (FilteredByIDs) in a high-performance way.
type IDSet[ID comparable] interface {
	// Store will store an ID in the set.
	Store(id ID)
	// Delete will delete an ID from the set if it exists, and returns a
	// bool of whether the ID existed and was deleted.
	Delete(id ID) bool
	// Has returns a bool of whether the ID exists in the set.
	Has(id ID) bool
	// Length returns the number of IDs in the set.
	Length() int
	// IDs returns a slice of all IDs in the set.
	IDs() []ID
}

type idSet[ID comparable] map[ID]struct{}

// NewIDSet creates a set holding the given IDs.
func NewIDSet[ID comparable](initial ...ID) IDSet[ID] {
	s := make(idSet[ID], len(initial))
	for _, id := range initial {
		s[id] = struct{}{}
	}
	return s
}

func (s idSet[ID]) Store(id ID) {
	s[id] = struct{}{}
}

func (s idSet[ID]) Delete(id ID) bool {
	_, exists := s[id]
	if exists {
		delete(s, id)
	}
	return exists
}

func (s idSet[ID]) Has(id ID) bool {
	_, ok := s[id]
	return ok
}

func (s idSet[ID]) Length() int {
	return len(s)
}

func (s idSet[ID]) IDs() []ID {
	ids := make([]ID, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	return ids
}
