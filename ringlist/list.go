package ringlist

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvlist/arena"
	"github.com/katalvlaran/lvlist/seq"
)

// ErrContract indicates a Delete call whose preconditions do not hold.
var ErrContract = errors.New("ringlist: delete precondition violated")

// Node is a node handed back by Delete. Slot is the arena index the node
// occupied; it has already been reclaimed.
type Node[T comparable] struct {
	Value T
	Slot  arena.Index
}

// List is the handle: the index of the head node plus the arena holding
// the chain. The zero value is uninitialised; use Init or New.
type List[T comparable] struct {
	head arena.Index
	mem  *arena.Arena[T]
}

// Init allocates a new head node and writes it into l. An already
// initialised l first has its whole chain freed. It returns false only when
// l is nil. opts apply when l gets its first arena.
func Init[T comparable](l *List[T], opts ...arena.Option) bool {
	if l == nil {
		return false
	}
	if l.mem == nil {
		l.mem = arena.New[T](opts...)
	} else {
		l.Release()
	}

	var zero T
	l.head = l.mem.Alloc(zero)

	return true
}

// New returns an initialised list.
func New[T comparable](opts ...arena.Option) *List[T] {
	l := &List[T]{head: arena.Nil}
	Init(l, opts...)

	return l
}

// Initialized reports whether l has a head node.
func (l *List[T]) Initialized() bool {
	return l.mem != nil && l.head != arena.Nil
}

// Head returns the index of the head node, arena.Nil when uninitialised.
func (l *List[T]) Head() arena.Index {
	if !l.Initialized() {
		return arena.Nil
	}

	return l.head
}

// Insert walks pos-1 hops from the head and splices a node holding v after
// the node reached. It returns false, allocating nothing, when pos < 1, the
// list is uninitialised, or the walk runs off the chain.
func (l *List[T]) Insert(pos int, v T) bool {
	if pos < 1 || !l.Initialized() {
		return false
	}
	cur := l.head
	for h := 0; h < pos-1; h++ {
		next := l.mem.Next(cur)
		if next == arena.Nil {
			return false
		}
		cur = next
	}

	n := l.mem.Alloc(v)
	l.mem.SetNext(n, l.mem.Next(cur))
	l.mem.SetNext(cur, n)

	return true
}

// Delete removes the value at pos by swap-then-unlink and returns the
// unlinked successor node, which now carries that value. The node at pos and
// its successor must exist; otherwise Delete panics with ErrContract.
func (l *List[T]) Delete(pos int) Node[T] {
	if !l.Initialized() {
		panic(fmt.Errorf("%w: list not initialised", ErrContract))
	}
	if pos < 1 {
		panic(fmt.Errorf("%w: position %d", ErrContract, pos))
	}

	// 1. Walk pos hops to the node whose value is being removed.
	cur := l.head
	for h := 0; h < pos; h++ {
		cur = l.mem.Next(cur)
		if cur == arena.Nil {
			panic(fmt.Errorf("%w: position %d beyond chain", ErrContract, pos))
		}
	}
	succ := l.mem.Next(cur)
	if succ == arena.Nil {
		panic(fmt.Errorf("%w: position %d has no successor", ErrContract, pos))
	}

	// 2. Swap values so the successor carries the doomed value.
	l.mem.Swap(cur, succ)

	// 3. Unlink the successor and reclaim its slot.
	l.mem.SetNext(cur, l.mem.Next(succ))
	l.mem.SetNext(succ, arena.Nil)
	v := l.mem.Free(succ)

	return Node[T]{Value: v, Slot: succ}
}

// SlotAt returns the arena index of the node at pos, arena.Nil when absent.
// Position 0 is the head.
func (l *List[T]) SlotAt(pos int) arena.Index {
	if pos < 0 || !l.Initialized() {
		return arena.Nil
	}
	cur := l.head
	for h := 0; h < pos && cur != arena.Nil; h++ {
		cur = l.mem.Next(cur)
	}

	return cur
}

// Len counts the nodes after the head.
func (l *List[T]) Len() int {
	if !l.Initialized() {
		return 0
	}
	n := 0
	for cur := l.mem.Next(l.head); cur != arena.Nil; cur = l.mem.Next(cur) {
		n++
	}

	return n
}

// IsEmpty reports whether no node follows the head.
func (l *List[T]) IsEmpty() bool {
	return l.Len() == 0
}

// Clear frees every node after the head; the head stays.
func (l *List[T]) Clear() {
	if !l.Initialized() {
		return
	}
	first := l.mem.Next(l.head)
	l.mem.SetNext(l.head, arena.Nil)
	l.mem.FreeChain(first)
}

// Release frees the whole chain including the head. l must be passed to
// Init again before reuse.
func (l *List[T]) Release() {
	if !l.Initialized() {
		return
	}
	head := l.head
	l.head = arena.Nil
	l.mem.FreeChain(head)
}

// Destroy is Release.
func (l *List[T]) Destroy() {
	l.Release()
}

// Stats returns the allocation counters of the list's arena.
func (l *List[T]) Stats() arena.Stats {
	if l.mem == nil {
		return arena.Stats{}
	}

	return l.mem.Stats()
}

// Values returns the values after the head, in order.
func (l *List[T]) Values() []T {
	return seq.Collect(l.All())
}
