package collections

import "iter"

// Queue is a FIFO container. Items are enqueued at the back and dequeued
// from the front.
type Queue[V any] interface {
	Enqueue(V)
	Dequeue() (V, error)
	Peek() (V, error)
	IsEmpty() bool
	Size() int
	// Iterator yields items front to back.
	Iterator() Iterator[V]
	All() iter.Seq[V]
	Entries() []V
}

type queue[V any] struct {
	list chain[V]
}

func NewQueue[V any]() Queue[V] {
	return &queue[V]{}
}

func (q *queue[V]) Enqueue(v V) {
	q.list.pushBack(v)
}

func (q *queue[V]) Dequeue() (V, error) {
	return q.list.popFront()
}

func (q *queue[V]) Peek() (V, error) {
	return q.list.front()
}

func (q *queue[V]) IsEmpty() bool {
	return q.list.isEmpty()
}

func (q *queue[V]) Size() int {
	return q.list.size
}

func (q *queue[V]) Iterator() Iterator[V] {
	return q.list.iterator()
}

func (q *queue[V]) All() iter.Seq[V] {
	return seq(q.list.iterator())
}

func (q *queue[V]) Entries() []V {
	return q.list.entries()
}

func (q *queue[V]) String() string {
	return q.list.String()
}
