package rawlist

import (
	"github.com/katalvlaran/lvlist/arena"
	"github.com/katalvlaran/lvlist/seq"
)

// Node is a value with its outgoing link. Nodes returned by Delete are
// detached: their link is arena.Nil.
type Node[T comparable] struct {
	Value T
	next  arena.Index
}

// Next returns the node's link.
func (n Node[T]) Next() arena.Index {
	return n.next
}

// Detached reports whether the node links nowhere.
func (n Node[T]) Detached() bool {
	return n.next == arena.Nil
}

// atHead addresses the List's own head node in walks.
const atHead arena.Index = -2

// List is a chain of arena nodes behind a caller-owned head node.
// It is not safe for concurrent use.
type List[T comparable] struct {
	head Node[T]
	mem  *arena.Arena[T]
}

// New returns an empty list with its own arena.
func New[T comparable](opts ...arena.Option) *List[T] {
	return &List[T]{
		head: Node[T]{next: arena.Nil},
		mem:  arena.New[T](opts...),
	}
}

// link returns the outgoing link of cur.
func (l *List[T]) link(cur arena.Index) arena.Index {
	if cur == atHead {
		return l.head.next
	}

	return l.mem.Next(cur)
}

// setLink points cur at n.
func (l *List[T]) setLink(cur, n arena.Index) {
	if cur == atHead {
		l.head.next = n
		return
	}
	l.mem.SetNext(cur, n)
}

// walk follows hops links from the head. It returns the node reached, or
// false when a Nil link is met first.
func (l *List[T]) walk(hops int) (arena.Index, bool) {
	cur := atHead
	for h := 0; h < hops; h++ {
		next := l.link(cur)
		if next == arena.Nil {
			return arena.Nil, false
		}
		cur = next
	}

	return cur, true
}

// Insert allocates a node for v and splices it in at position pos, moving
// the remainder of the chain onto the new node's link.
func (l *List[T]) Insert(pos int, v T) error {
	if pos < 1 {
		return seq.IndexError(pos)
	}
	prev, ok := l.walk(pos - 1)
	if !ok {
		return seq.IndexError(pos)
	}

	n := l.mem.Alloc(v)
	l.mem.SetNext(n, l.link(prev))
	l.setLink(prev, n)

	return nil
}

// Delete detaches the node at pos, frees its slot, and returns it with a
// Nil link so nothing of the chain travels with it.
func (l *List[T]) Delete(pos int) (Node[T], error) {
	if pos < 1 {
		return Node[T]{next: arena.Nil}, seq.IndexError(pos)
	}
	prev, ok := l.walk(pos - 1)
	if !ok {
		return Node[T]{next: arena.Nil}, seq.IndexError(pos)
	}
	target := l.link(prev)
	if target == arena.Nil {
		return Node[T]{next: arena.Nil}, seq.IndexError(pos)
	}

	// 1. Rewire the predecessor around the target.
	l.setLink(prev, l.mem.Next(target))
	// 2. Cut the target's own link, then reclaim its slot.
	l.mem.SetNext(target, arena.Nil)
	v := l.mem.Free(target)

	return Node[T]{Value: v, next: arena.Nil}, nil
}

// node returns the slot at pos, counting real nodes from 1.
func (l *List[T]) node(pos int) (arena.Index, error) {
	if pos < 1 {
		return arena.Nil, seq.IndexError(pos)
	}
	cur, ok := l.walk(pos)
	if !ok {
		return arena.Nil, seq.IndexError(pos)
	}

	return cur, nil
}

// Get returns a copy of the value at pos.
func (l *List[T]) Get(pos int) (T, error) {
	cur, err := l.node(pos)
	if err != nil {
		var zero T
		return zero, err
	}

	return l.mem.Get(cur), nil
}

// Update calls fn with the value at pos for in-place modification. The
// pointer is only valid for the duration of the call.
func (l *List[T]) Update(pos int, fn func(*T)) error {
	cur, err := l.node(pos)
	if err != nil {
		return err
	}
	l.mem.Update(cur, fn)

	return nil
}

// Set replaces the value at pos.
func (l *List[T]) Set(pos int, v T) error {
	return l.Update(pos, func(p *T) { *p = v })
}

// Len walks the chain and counts nodes after the head.
func (l *List[T]) Len() int {
	n := 0
	for cur := l.head.next; cur != arena.Nil; cur = l.mem.Next(cur) {
		n++
	}

	return n
}

// IsEmpty reports whether the head links nowhere.
func (l *List[T]) IsEmpty() bool {
	return l.head.next == arena.Nil
}

// Release frees every node after the head, iteratively, each exactly once.
// The list is empty and reusable afterwards.
func (l *List[T]) Release() {
	first := l.head.next
	l.head.next = arena.Nil
	l.mem.FreeChain(first)
}

// Stats returns the allocation counters of the list's arena.
func (l *List[T]) Stats() arena.Stats {
	return l.mem.Stats()
}

// Values returns the values in order.
func (l *List[T]) Values() []T {
	return seq.Collect(l.All())
}
