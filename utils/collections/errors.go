package collections

import "errors"

var (
	ErrEmptyContainer         = errors.New("cannot retrieve item from empty container")
	ErrIterationExhausted     = errors.New("iteration exhausted")
	ErrConcurrentModification = errors.New("container modified during iteration")
)
