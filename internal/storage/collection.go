package storage

import (
	"bytes"
	"encoding/json"
	"errors"
	"iter"
	"maps"
	"slices"

	"github.com/Siddhesh-Agarwal/pwactl/internal/id"
)

// Collection maps IDs to entities. Iteration always follows ascending ID
// order, whatever order entries were inserted or appeared in a document.
//
// Collection shares its underlying map when copied, like a Go map.
type Collection[T any] struct {
	items map[id.ID]T
}

// NewCollection returns an empty collection.
func NewCollection[T any]() Collection[T] {
	return Collection[T]{items: make(map[id.ID]T)}
}

func (c Collection[T]) Len() int {
	return len(c.items)
}

func (c Collection[T]) Get(key id.ID) (T, bool) {
	v, ok := c.items[key]
	return v, ok
}

func (c Collection[T]) Has(key id.ID) bool {
	_, ok := c.items[key]
	return ok
}

// Set inserts or replaces the entity stored under key.
func (c *Collection[T]) Set(key id.ID, v T) {
	if c.items == nil {
		c.items = make(map[id.ID]T)
	}
	c.items[key] = v
}

// Delete removes key and reports whether it was present.
func (c *Collection[T]) Delete(key id.ID) bool {
	if _, ok := c.items[key]; !ok {
		return false
	}
	delete(c.items, key)
	return true
}

// Keys returns the IDs in ascending order.
func (c Collection[T]) Keys() []id.ID {
	return slices.SortedFunc(maps.Keys(c.items), id.Compare)
}

// Values returns the entities in ascending ID order.
func (c Collection[T]) Values() []T {
	values := make([]T, 0, len(c.items))
	for _, key := range c.Keys() {
		values = append(values, c.items[key])
	}
	return values
}

// All iterates over the entries in ascending ID order.
func (c Collection[T]) All() iter.Seq2[id.ID, T] {
	return func(yield func(id.ID, T) bool) {
		for _, key := range c.Keys() {
			if !yield(key, c.items[key]) {
				return
			}
		}
	}
}

// MarshalJSON encodes the collection as an object keyed by the text form of
// each ID. Keys are written in ascending order.
func (c Collection[T]) MarshalJSON() ([]byte, error) {
	if len(c.items) == 0 {
		return []byte("{}"), nil
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(c.items); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// UnmarshalJSON replaces the contents of c with the entries of a JSON object.
// Anything other than an object, null included, is rejected.
func (c *Collection[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return errors.New("expected object, got null")
	}

	items := make(map[id.ID]T)
	if err := json.Unmarshal(data, &items); err != nil {
		return err
	}
	c.items = items
	return nil
}
