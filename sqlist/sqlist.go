// Package sqlist implements a fixed-capacity, array-backed sequential list.
//
// It is the one container in lvlist that can run out of room: InsertAt on a
// full list reports seq.ErrFull. Position validity is checked first, so an
// invalid position on a full list reports seq.ErrIndex.
//
// Complexity: Elem O(1); InsertAt / DeleteAt O(n) element shifts.
package sqlist

import (
	"fmt"
	"iter"

	"github.com/samber/mo"

	"github.com/katalvlaran/lvlist/seq"
)

// DefaultCapacity is used when New receives a non-positive capacity.
const DefaultCapacity = 100

var _ seq.Sequence[int] = (*List[int])(nil)

// List stores up to Cap() elements contiguously.
type List[T comparable] struct {
	elems []T // len(elems) == capacity; only [0, length) is meaningful
	n     int
}

// New returns an empty list holding at most capacity elements.
func New[T comparable](capacity int) *List[T] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}

	return &List[T]{elems: make([]T, capacity)}
}

// Cap returns the fixed capacity.
func (l *List[T]) Cap() int { return len(l.elems) }

// Len returns the number of elements.
func (l *List[T]) Len() int { return l.n }

// IsEmpty reports whether the list holds no elements.
func (l *List[T]) IsEmpty() bool { return l.n == 0 }

// IsFull reports whether another insert would fail with seq.ErrFull.
func (l *List[T]) IsFull() bool { return l.n == len(l.elems) }

// Elem returns the value at position i.
func (l *List[T]) Elem(i int) mo.Option[T] {
	if !seq.ValidPosition(i, l.n) {
		return mo.None[T]()
	}

	return mo.Some(l.elems[i-1])
}

// InsertAt shifts positions i.. one slot right and stores v at i.
func (l *List[T]) InsertAt(i int, v T) error {
	if !seq.ValidInsert(i, l.n) {
		return seq.IndexError(i)
	}
	if l.IsFull() {
		return fmt.Errorf("%w: capacity %d", seq.ErrFull, len(l.elems))
	}
	copy(l.elems[i:l.n+1], l.elems[i-1:l.n])
	l.elems[i-1] = v
	l.n++

	return nil
}

// DeleteAt removes position i, shifting the rest one slot left.
func (l *List[T]) DeleteAt(i int) error {
	if !seq.ValidPosition(i, l.n) {
		return seq.IndexError(i)
	}
	copy(l.elems[i-1:l.n-1], l.elems[i:l.n])
	var zero T
	l.elems[l.n-1] = zero
	l.n--

	return nil
}

// All yields the elements in order.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range l.elems[:l.n] {
			if !yield(v) {
				return
			}
		}
	}
}

func (l *List[T]) Locate(v T) int           { return seq.Locate(l.All(), v) }
func (l *List[T]) PriorOf(v T) mo.Option[T] { return seq.PriorOf(l.All(), v) }
func (l *List[T]) NextOf(v T) mo.Option[T]  { return seq.NextOf(l.All(), v) }

// Clear zeroes the used prefix and resets the length.
func (l *List[T]) Clear() {
	clear(l.elems[:l.n])
	l.n = 0
}

// Destroy is Clear.
func (l *List[T]) Destroy() {
	l.Clear()
}
