package sentinel

import (
	"github.com/samber/mo"

	"github.com/katalvlaran/lvlist/seq"
)

// Node is a list node. On the sentinel Data is absent.
type Node[T comparable] struct {
	Data mo.Option[T]
	Next *Node[T]
}

// New returns a sentinel with no value and no successor.
func New[T comparable]() *Node[T] {
	return &Node[T]{Data: mo.None[T]()}
}

// Get returns the node i hops after n; Get(0) is n itself.
func (n *Node[T]) Get(i int) mo.Option[*Node[T]] {
	if i < 0 {
		return mo.None[*Node[T]]()
	}
	cur := n
	for hop := 0; hop < i; hop++ {
		if cur.Next == nil {
			return mo.None[*Node[T]]()
		}
		cur = cur.Next
	}

	return mo.Some(cur)
}

// Len counts the real nodes after n.
func (n *Node[T]) Len() int {
	count := 0
	for cur := n.Next; cur != nil; cur = cur.Next {
		count++
	}

	return count
}

// IsEmpty reports whether no real node follows n.
func (n *Node[T]) IsEmpty() bool {
	return n.Next == nil
}

// tail returns the last node of the chain, n itself when empty.
func (n *Node[T]) tail() *Node[T] {
	cur := n
	for cur.Next != nil {
		cur = cur.Next
	}

	return cur
}

// Push appends v after the last node. O(n).
func (n *Node[T]) Push(v T) {
	n.tail().Next = &Node[T]{Data: mo.Some(v)}
}

// PopTail removes the last real node and returns its value. On a bare
// sentinel it does nothing and returns None.
func (n *Node[T]) PopTail() mo.Option[T] {
	if n.Next == nil {
		return mo.None[T]()
	}

	prev := n
	for prev.Next.Next != nil {
		prev = prev.Next
	}
	last := prev.Next
	prev.Next = nil

	return last.Data
}

// Insert splices a node holding v after node i-1, so that it becomes node i.
// It returns false without mutation when i < 1 or node i-1 does not exist.
func (n *Node[T]) Insert(i int, v T) bool {
	if i < 1 {
		return false
	}
	prev, ok := n.Get(i - 1).Get()
	if !ok {
		return false
	}
	prev.Next = &Node[T]{Data: mo.Some(v), Next: prev.Next}

	return true
}

// Remove unlinks node i, the successor of node i-1. It returns false without
// mutation when i < 1 or node i does not exist.
func (n *Node[T]) Remove(i int) bool {
	if i < 1 {
		return false
	}
	prev, ok := n.Get(i - 1).Get()
	if !ok || prev.Next == nil {
		return false
	}
	target := prev.Next
	prev.Next = target.Next
	target.Next = nil

	return true
}

// MustInsert is Insert for callers that have already validated i.
// An unreachable position panics.
func (n *Node[T]) MustInsert(i int, v T) {
	if !n.Insert(i, v) {
		panic(seq.IndexError(i))
	}
}

// MustRemove is Remove for callers that have already validated i.
// An unreachable position panics.
func (n *Node[T]) MustRemove(i int) {
	if !n.Remove(i) {
		panic(seq.IndexError(i))
	}
}

// Clear detaches real nodes one by one, leaving the bare sentinel.
func (n *Node[T]) Clear() {
	for n.Next != nil {
		next := n.Next
		n.Next = next.Next
		next.Next = nil
	}
}

// Destroy is Clear; the sentinel is garbage once unreferenced.
func (n *Node[T]) Destroy() {
	n.Clear()
}

// Values returns the real node values in order.
func (n *Node[T]) Values() []T {
	return seq.Collect(n.All())
}
