package chain

import (
	"github.com/samber/mo"
)

// node is one element of the chain. Its next link owns the successor.
type node[T comparable] struct {
	value T
	next  *node[T]
}

// List is the handle of an ownership chain. The zero value is an empty list.
type List[T comparable] struct {
	head *node[T] // nil is Empty
}

// New returns an empty list.
func New[T comparable]() *List[T] {
	return &List[T]{}
}

// Push prepends v. The former head moves onto the new node's link.
func (l *List[T]) Push(v T) {
	l.head = &node[T]{value: v, next: l.head}
}

// Pop removes the head and returns its value, or None when empty.
func (l *List[T]) Pop() mo.Option[T] {
	cur := l.head
	if cur == nil {
		return mo.None[T]()
	}
	l.head = cur.next
	cur.next = nil

	return mo.Some(cur.value)
}

// Peek returns the head value without removing it.
func (l *List[T]) Peek() mo.Option[T] {
	if l.head == nil {
		return mo.None[T]()
	}

	return mo.Some(l.head.value)
}

// Insert places v before the i-th element; i == Len()+1 appends.
// It returns false without mutation when i < 1 or i > Len()+1.
func (l *List[T]) Insert(i int, v T) bool {
	if i < 1 {
		return false
	}

	// 1. Walk i-1 links; link points at the slot that must own the new node.
	link := &l.head
	for pos := 0; pos < i-1; pos++ {
		if *link == nil {
			return false
		}
		link = &(*link).next
	}

	// 2. The new node takes over the rest of the chain, the slot takes the node.
	*link = &node[T]{value: v, next: *link}

	return true
}

// Delete removes the i-th element. It returns false without mutation when
// i < 1 or i > Len().
func (l *List[T]) Delete(i int) bool {
	if i < 1 {
		return false
	}

	// Head: replace it with its own successor.
	if i == 1 {
		if l.head == nil {
			return false
		}
		detach(&l.head)

		return true
	}

	// Walk i-2 hops to the predecessor.
	prev := l.head
	for hop := 0; hop < i-2; hop++ {
		if prev == nil {
			return false
		}
		prev = prev.next
	}
	if prev == nil || prev.next == nil {
		return false
	}
	detach(&prev.next)

	return true
}

// detach unlinks the node owned by link, splicing link to the node's
// successor and clearing the detached node's own link. link must own a node.
func detach[T comparable](link **node[T]) {
	target := *link
	*link = target.next
	target.next = nil
}

// Len walks the chain and counts its nodes.
func (l *List[T]) Len() int {
	n := 0
	for cur := l.head; cur != nil; cur = cur.next {
		n++
	}

	return n
}

// IsEmpty reports whether the list holds no nodes.
func (l *List[T]) IsEmpty() bool {
	return l.head == nil
}

// Clear detaches and drops nodes one at a time from the head. It never
// recurses, so chains of any length are torn down in constant stack space.
func (l *List[T]) Clear() {
	for l.head != nil {
		detach(&l.head)
	}
}

// Destroy tears the chain down. Ownership chains need nothing beyond Clear.
func (l *List[T]) Destroy() {
	l.Clear()
}

// Values returns the values in order.
func (l *List[T]) Values() []T {
	out := make([]T, 0)
	for cur := l.head; cur != nil; cur = cur.next {
		out = append(out, cur.value)
	}

	return out
}
