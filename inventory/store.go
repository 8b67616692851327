// Package inventory routes items into per-category containers.
//
// Each category is assigned a discipline (LIFO, FIFO, or unordered) by a
// fixed policy. A Store holds one container per category and applies
// the discipline on every add and remove. A Store is not safe for
// concurrent use; callers that share one must serialize access.
package inventory

import "fmt"

// Store holds one container per category.
type Store struct {
	containers [numCategories]container
}

// NewStore creates a store with an empty container for every category.
func NewStore() *Store {
	s := new(Store)
	for _, c := range Categories() {
		d, err := DisciplineOf(c)
		if err != nil {
			// unreachable: Categories only yields valid categories
			panic(err)
		}
		s.containers[c] = newContainer(d)
	}
	return s
}

func (s *Store) lookup(c Category) (container, Discipline, error) {
	d, err := DisciplineOf(c)
	if err != nil {
		return nil, d, err
	}
	return s.containers[c], d, nil
}

// AddItem inserts item into the container for its category.
// Duplicate items are allowed.
func (s *Store) AddItem(item Item) error {
	ct, _, err := s.lookup(item.Category)
	if err != nil {
		return err
	}
	ct.put(item)
	return nil
}

// RemoveItem removes an item from the container for item's category.
//
// For LIFO and FIFO categories item only selects the category: the most
// recently (LIFO) or earliest (FIFO) added item is removed and returned.
// ErrContainerEmpty is returned if that container holds nothing.
//
// For unordered categories the first item equal to item is removed and
// returned. If no equal item is held nothing changes and a nil item and
// nil error are returned.
func (s *Store) RemoveItem(item Item) (*Item, error) {
	ct, d, err := s.lookup(item.Category)
	if err != nil {
		return nil, err
	}
	removed, err := ct.take(item)
	if err != nil {
		return nil, fmt.Errorf("remove %s item from %s: %w", d, item.Category, err)
	}
	return removed, nil
}

// Items returns a copy of the items held for c in insertion order.
func (s *Store) Items(c Category) ([]Item, error) {
	ct, _, err := s.lookup(c)
	if err != nil {
		return nil, err
	}
	return ct.snapshot(), nil
}

// Len returns the number of items held for c.
// It returns 0 for an invalid category.
func (s *Store) Len(c Category) int {
	ct, _, err := s.lookup(c)
	if err != nil {
		return 0
	}
	return ct.len()
}
