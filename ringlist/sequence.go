package ringlist

import (
	"iter"

	"github.com/samber/mo"

	"github.com/katalvlaran/lvlist/arena"
	"github.com/katalvlaran/lvlist/seq"
)

var _ seq.Sequence[int] = (*List[int])(nil)

// All yields the values after the head.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if !l.Initialized() {
			return
		}
		for cur := l.mem.Next(l.head); cur != arena.Nil; cur = l.mem.Next(cur) {
			if !yield(l.mem.Get(cur)) {
				return
			}
		}
	}
}

// Elem returns the value at position i.
func (l *List[T]) Elem(i int) mo.Option[T] {
	if i < 1 {
		return mo.None[T]()
	}
	cur := l.SlotAt(i)
	if cur == arena.Nil {
		return mo.None[T]()
	}

	return mo.Some(l.mem.Get(cur))
}

func (l *List[T]) Locate(v T) int           { return seq.Locate(l.All(), v) }
func (l *List[T]) PriorOf(v T) mo.Option[T] { return seq.PriorOf(l.All(), v) }
func (l *List[T]) NextOf(v T) mo.Option[T]  { return seq.NextOf(l.All(), v) }

// InsertAt is Insert reporting rejection as seq.ErrIndex.
func (l *List[T]) InsertAt(i int, v T) error {
	if !l.Insert(i, v) {
		return seq.IndexError(i)
	}

	return nil
}

// DeleteAt removes position i after checking bounds. Inner positions go
// through Delete; the tail, which has no successor to swap with, is
// unlinked from its predecessor.
func (l *List[T]) DeleteAt(i int) error {
	n := l.Len()
	if !seq.ValidPosition(i, n) {
		return seq.IndexError(i)
	}
	if i < n {
		l.Delete(i)
		return nil
	}

	prev := l.SlotAt(i - 1)
	tail := l.mem.Next(prev)
	l.mem.SetNext(prev, arena.Nil)
	l.mem.Free(tail)

	return nil
}
