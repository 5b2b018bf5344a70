package collections

import "iter"

// Stack is a LIFO container. Pop and Peek act on the most recently pushed item.
type Stack[V any] interface {
	Push(V)
	Pop() (V, error)
	Peek() (V, error)
	IsEmpty() bool
	Size() int
	// Iterator yields items top to bottom.
	Iterator() Iterator[V]
	All() iter.Seq[V]
	Entries() []V
}

type stack[V any] struct {
	list chain[V]
}

func NewStack[V any]() Stack[V] {
	return &stack[V]{}
}

func (s *stack[V]) Push(v V) {
	s.list.pushFront(v)
}

func (s *stack[V]) Pop() (V, error) {
	return s.list.popFront()
}

func (s *stack[V]) Peek() (V, error) {
	return s.list.front()
}

func (s *stack[V]) IsEmpty() bool {
	return s.list.isEmpty()
}

func (s *stack[V]) Size() int {
	return s.list.size
}

func (s *stack[V]) Iterator() Iterator[V] {
	return s.list.iterator()
}

func (s *stack[V]) All() iter.Seq[V] {
	return seq(s.list.iterator())
}

func (s *stack[V]) Entries() []V {
	return s.list.entries()
}

func (s *stack[V]) String() string {
	return s.list.String()
}
