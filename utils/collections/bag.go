package collections

import "iter"

// Bag holds values of V. Values can be added and enumerated, but never
// removed. Enumeration order is unspecified; the current implementation
// yields the most recently added value first.
type Bag[V any] interface {
	Add(...V)
	IsEmpty() bool
	Size() int
	Iterator() Iterator[V]
	All() iter.Seq[V]
	Entries() []V
}

type bag[V any] struct {
	list chain[V]
}

func NewBag[V any]() Bag[V] {
	return &bag[V]{}
}

func (b *bag[V]) Add(v ...V) {
	for _, item := range v {
		b.list.pushFront(item)
	}
}

func (b *bag[V]) IsEmpty() bool {
	return b.list.isEmpty()
}

func (b *bag[V]) Size() int {
	return b.list.size
}

func (b *bag[V]) Iterator() Iterator[V] {
	return b.list.iterator()
}

func (b *bag[V]) All() iter.Seq[V] {
	return seq(b.list.iterator())
}

func (b *bag[V]) Entries() []V {
	return b.list.entries()
}

func (b *bag[V]) String() string {
	return b.list.String()
}
