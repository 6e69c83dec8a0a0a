// Package stack provides a generic LIFO container.
package stack

import "errors"

// ErrEmpty is returned by Pop and Peek on an empty stack.
var ErrEmpty = errors.New("stack is empty")

// Stack is a last-in-first-out container backed by a growable slice.
// The zero value is an empty stack ready to use.
// A Stack is not safe for concurrent use.
type Stack[T any] struct {
	items []T
}

// New returns an empty stack.
func New[T any]() *Stack[T] {
	return &Stack[T]{}
}

// Push places item on top of the stack.
func (s *Stack[T]) Push(item T) {
	s.items = append(s.items, item)
}

// Pop removes and returns the top item.
func (s *Stack[T]) Pop() (T, error) {
	item, err := s.Peek()
	if err != nil {
		return item, err
	}

	last := len(s.items) - 1
	var zero T
	s.items[last] = zero
	s.items = s.items[:last]

	return item, nil
}

// Peek returns the top item without removing it.
func (s *Stack[T]) Peek() (T, error) {
	if len(s.items) == 0 {
		var zero T
		return zero, ErrEmpty
	}
	return s.items[len(s.items)-1], nil
}

// Size returns the number of items on the stack.
func (s *Stack[T]) Size() int {
	return len(s.items)
}

// IsEmpty reports whether the stack holds no items.
func (s *Stack[T]) IsEmpty() bool {
	return len(s.items) == 0
}

// Clear removes every item.
func (s *Stack[T]) Clear() {
	s.items = nil
}
