package inventory

// container holds the items of a single category.
type container interface {
	// put inserts item using the container's natural insertion.
	put(item Item)

	// take removes an item using the container's natural removal.
	// Ordered containers ignore item. Unordered containers remove the
	// first element equal to item and return nil if there is none.
	take(item Item) (*Item, error)

	// snapshot returns a copy of the held items in insertion order.
	snapshot() []Item

	len() int
}

func newContainer(d Discipline) container {
	switch d {
	case LIFO:
		return new(stack)
	case FIFO:
		return new(queue)
	case Unordered:
		return new(collection)
	}
	return nil
}

// stack is a last-in-first-out container.
type stack struct {
	items []Item
}

func (s *stack) put(item Item) {
	s.items = append(s.items, item)
}

func (s *stack) take(_ Item) (*Item, error) {
	n := len(s.items)
	if n < 1 {
		return nil, ErrContainerEmpty
	}
	top := s.items[n-1]
	s.items[n-1] = Item{}
	s.items = s.items[:n-1]
	return &top, nil
}

func (s *stack) snapshot() []Item { return append([]Item(nil), s.items...) }

func (s *stack) len() int { return len(s.items) }

// queue is a first-in-first-out container.
type queue struct {
	items []Item
	head  int
}

func (q *queue) put(item Item) {
	q.items = append(q.items, item)
}

func (q *queue) take(_ Item) (*Item, error) {
	if q.head >= len(q.items) {
		return nil, ErrContainerEmpty
	}
	front := q.items[q.head]
	q.items[q.head] = Item{}
	q.head++
	if q.head == len(q.items) {
		// drained: reuse the backing array
		q.items = q.items[:0]
		q.head = 0
	} else if q.head > 32 && q.head*2 > len(q.items) {
		q.items = append(q.items[:0], q.items[q.head:]...)
		q.head = 0
	}
	return &front, nil
}

func (q *queue) snapshot() []Item { return append([]Item(nil), q.items[q.head:]...) }

func (q *queue) len() int { return len(q.items) - q.head }

// collection is an appendable container with removal by value.
type collection struct {
	items []Item
}

func (c *collection) put(item Item) {
	c.items = append(c.items, item)
}

func (c *collection) take(item Item) (*Item, error) {
	for i := range c.items {
		if !c.items[i].Equal(item) {
			continue
		}
		found := c.items[i]
		copy(c.items[i:], c.items[i+1:])
		c.items[len(c.items)-1] = Item{}
		c.items = c.items[:len(c.items)-1]
		return &found, nil
	}
	return nil, nil
}

func (c *collection) snapshot() []Item { return append([]Item(nil), c.items...) }

func (c *collection) len() int { return len(c.items) }
