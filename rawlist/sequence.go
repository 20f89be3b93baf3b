package rawlist

import (
	"iter"

	"github.com/samber/mo"

	"github.com/katalvlaran/lvlist/arena"
	"github.com/katalvlaran/lvlist/seq"
)

var _ seq.Sequence[int] = (*List[int])(nil)

// All yields the values after the head, in order.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for cur := l.head.next; cur != arena.Nil; cur = l.mem.Next(cur) {
			if !yield(l.mem.Get(cur)) {
				return
			}
		}
	}
}

// Elem returns a copy of the value at position i.
func (l *List[T]) Elem(i int) mo.Option[T] {
	v, err := l.Get(i)
	if err != nil {
		return mo.None[T]()
	}

	return mo.Some(v)
}

func (l *List[T]) Locate(v T) int           { return seq.Locate(l.All(), v) }
func (l *List[T]) PriorOf(v T) mo.Option[T] { return seq.PriorOf(l.All(), v) }
func (l *List[T]) NextOf(v T) mo.Option[T]  { return seq.NextOf(l.All(), v) }

// InsertAt is Insert.
func (l *List[T]) InsertAt(i int, v T) error {
	return l.Insert(i, v)
}

// DeleteAt is Delete, discarding the detached node.
func (l *List[T]) DeleteAt(i int) error {
	_, err := l.Delete(i)

	return err
}

// Clear releases every node.
func (l *List[T]) Clear() {
	l.Release()
}

// Destroy releases every node.
func (l *List[T]) Destroy() {
	l.Release()
}
