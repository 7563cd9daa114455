package cowlist

import (
	"encoding/json"

	"github.com/Invicton-Labs/go-stackerr"
)

// The list defines no wire format of its own: it encodes as the ordered
// JSON array of its elements and rebuilds from one, delegating the element
// representation entirely to encoding/json.

// ToJSON encodes the list as a JSON array of its elements in head-to-tail
// order.
func (l *List[T]) ToJSON() ([]byte, stackerr.Error) {
	data, err := json.Marshal(l.ToSlice())
	if err != nil {
		return nil, stackerr.Wrap(err)
	}
	return data, nil
}

// FromJSON decodes a JSON array into a new list holding its elements in
// order.
func FromJSON[T any](data []byte) (*List[T], stackerr.Error) {
	var values []T
	if err := json.Unmarshal(data, &values); err != nil {
		return nil, stackerr.Wrap(err)
	}
	return FromSlice(values), nil
}

// MarshalJSON implements json.Marshaler.
func (l *List[T]) MarshalJSON() ([]byte, error) {
	data, err := l.ToJSON()
	if err != nil {
		return nil, err
	}
	return data, nil
}

// UnmarshalJSON implements json.Unmarshaler, replacing the list's contents
// wholesale. The previous chain is released rather than cloned, and the
// identity token rotates.
func (l *List[T]) UnmarshalJSON(data []byte) error {
	l.lazyInit()
	decoded, err := FromJSON[T](data)
	if err != nil {
		return err
	}
	l.detach(decoded.chain)
	return nil
}
