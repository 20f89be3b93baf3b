// Package linkstack implements a LIFO stack as a chain of arena nodes.
//
// The top of the stack is the head of the chain: Push allocates a node that
// links to the previous top, Pop unlinks the top and frees its slot.
// Release pops everything iteratively, so dropping a deep stack is bounded
// in stack space and frees each node exactly once.
package linkstack

import (
	"github.com/samber/mo"

	"github.com/katalvlaran/lvlist/arena"
)

// Stack is not safe for concurrent use.
type Stack[T any] struct {
	top  arena.Index
	size int
	mem  *arena.Arena[T]
}

// New returns an empty stack.
func New[T any](opts ...arena.Option) *Stack[T] {
	return &Stack[T]{top: arena.Nil, mem: arena.New[T](opts...)}
}

// Push places v on top.
func (s *Stack[T]) Push(v T) {
	n := s.mem.Alloc(v)
	s.mem.SetNext(n, s.top)
	s.top = n
	s.size++
}

// Pop removes and returns the top value, None when empty.
func (s *Stack[T]) Pop() mo.Option[T] {
	if s.top == arena.Nil {
		return mo.None[T]()
	}
	n := s.top
	s.top = s.mem.Next(n)
	s.mem.SetNext(n, arena.Nil)
	s.size--

	return mo.Some(s.mem.Free(n))
}

// Peek returns the top value without removing it.
func (s *Stack[T]) Peek() mo.Option[T] {
	if s.top == arena.Nil {
		return mo.None[T]()
	}

	return mo.Some(s.mem.Get(s.top))
}

// Len returns the number of values on the stack.
func (s *Stack[T]) Len() int { return s.size }

// IsEmpty reports whether the stack holds nothing.
func (s *Stack[T]) IsEmpty() bool { return s.top == arena.Nil }

// Release pops every node.
func (s *Stack[T]) Release() {
	for !s.IsEmpty() {
		s.Pop()
	}
}

// Stats returns the allocation counters of the stack's arena.
func (s *Stack[T]) Stats() arena.Stats {
	return s.mem.Stats()
}
