package utils

import (
	"iter"

	"github.com/picarlo/picarlo/perror"
)

// CircularQueue is a fixed-capacity FIFO that overwrites its oldest element once full.
type CircularQueue[T any] struct {
	items []T
	head  int
	tail  int
	size  int
}

func NewCircularQueue[T any](capacity int) *CircularQueue[T] {
	return &CircularQueue[T]{items: make([]T, max(capacity, 0))}
}

// Append appends an item or returns an error if the queue has zero capacity.
func (q *CircularQueue[T]) Append(item T) error {
	if len(q.items) == 0 {
		return perror.NewError("circularQueue: append on zero-capacity queue")
	}

	q.items[q.tail] = item
	if q.size == len(q.items) {
		// Full: the write above replaced the oldest element.
		q.head = (q.head + 1) % len(q.items)
	} else {
		q.size++
	}
	q.tail = (q.tail + 1) % len(q.items)
	return nil
}

// Iter yields the elements from oldest to newest.
func (q *CircularQueue[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		for index := range q.size {
			if !yield(q.items[(q.head+index)%len(q.items)]) {
				return
			}
		}
	}
}

// Values copies the elements from oldest to newest into a new slice.
func (q *CircularQueue[T]) Values() []T {
	out := make([]T, 0, q.size)
	for v := range q.Iter() {
		out = append(out, v)
	}
	return out
}

// Last returns the newest element. The boolean is false if the queue is empty.
func (q *CircularQueue[T]) Last() (item T, ok bool) {
	if q.size == 0 {
		return item, false
	}
	return q.items[(q.tail-1+len(q.items))%len(q.items)], true
}

// Len returns the number of elements currently held.
func (q *CircularQueue[T]) Len() int {
	return q.size
}

// Cap returns the maximum number of elements the queue can hold.
func (q *CircularQueue[T]) Cap() int {
	return len(q.items)
}

// Clear drops all elements while keeping the capacity.
func (q *CircularQueue[T]) Clear() {
	clear(q.items)
	q.head, q.tail, q.size = 0, 0, 0
}
