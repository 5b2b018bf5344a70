package collections

import "fmt"

type node[V any] struct {
	value V
	next  *node[V]
}

// chain is a singly linked run of nodes shared by every container in this
// package. head is the removal end. tail is only maintained so pushBack stays
// O(1). version changes on every mutation and is what invalidates iterators.
type chain[V any] struct {
	head    *node[V]
	tail    *node[V]
	size    int
	version uint64
}

func (c *chain[V]) pushFront(v V) {
	n := &node[V]{value: v, next: c.head}
	if c.head == nil {
		c.tail = n
	}
	c.head = n
	c.size++
	c.version++
}

func (c *chain[V]) pushBack(v V) {
	n := &node[V]{value: v}
	if c.tail == nil {
		c.head = n
	} else {
		c.tail.next = n
	}
	c.tail = n
	c.size++
	c.version++
}

func (c *chain[V]) popFront() (v V, err error) {
	if c.isEmpty() {
		return v, ErrEmptyContainer
	}
	n := c.head
	c.head = n.next
	n.next = nil
	c.size--
	if c.head == nil {
		c.tail = nil
	}
	c.version++
	return n.value, nil
}

func (c *chain[V]) front() (v V, err error) {
	if c.isEmpty() {
		return v, ErrEmptyContainer
	}
	return c.head.value, nil
}

func (c *chain[V]) isEmpty() bool {
	return c.size == 0 && c.head == nil
}

func (c *chain[V]) iterator() Iterator[V] {
	return &chainIterator[V]{
		owner:   c,
		current: c.head,
		version: c.version,
	}
}

func (c *chain[V]) entries() []V {
	arr := make([]V, 0, c.size)
	for n := c.head; n != nil; n = n.next {
		arr = append(arr, n.value)
	}
	return arr
}

func (c *chain[V]) String() string {
	return fmt.Sprint(c.entries())
}
