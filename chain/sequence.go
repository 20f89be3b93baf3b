package chain

import (
	"iter"

	"github.com/samber/mo"

	"github.com/katalvlaran/lvlist/seq"
)

var _ seq.Sequence[int] = (*List[int])(nil)

// All yields the values from head to tail.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for cur := l.head; cur != nil; cur = cur.next {
			if !yield(cur.value) {
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
	cur := l.head
	for hop := 1; hop < i && cur != nil; hop++ {
		cur = cur.next
	}
	if cur == nil {
		return mo.None[T]()
	}

	return mo.Some(cur.value)
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

// DeleteAt is Delete reporting rejection as seq.ErrIndex.
func (l *List[T]) DeleteAt(i int) error {
	if !l.Delete(i) {
		return seq.IndexError(i)
	}

	return nil
}
