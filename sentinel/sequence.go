package sentinel

import (
	"iter"

	"github.com/samber/mo"

	"github.com/katalvlaran/lvlist/seq"
)

var _ seq.Sequence[int] = (*Node[int])(nil)

// All yields the values of the real nodes after n. A node whose Data was
// reset to None through Get holds no value and is skipped.
func (n *Node[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for cur := n.Next; cur != nil; cur = cur.Next {
			v, ok := cur.Data.Get()
			if !ok {
				continue
			}
			if !yield(v) {
				return
			}
		}
	}
}

// Elem returns the value at position i. The sentinel is not an element.
func (n *Node[T]) Elem(i int) mo.Option[T] {
	if i < 1 {
		return mo.None[T]()
	}
	node, ok := n.Get(i).Get()
	if !ok {
		return mo.None[T]()
	}

	return node.Data
}

func (n *Node[T]) Locate(v T) int           { return seq.Locate(n.All(), v) }
func (n *Node[T]) PriorOf(v T) mo.Option[T] { return seq.PriorOf(n.All(), v) }
func (n *Node[T]) NextOf(v T) mo.Option[T]  { return seq.NextOf(n.All(), v) }

// InsertAt is Insert reporting rejection as seq.ErrIndex.
func (n *Node[T]) InsertAt(i int, v T) error {
	if !n.Insert(i, v) {
		return seq.IndexError(i)
	}

	return nil
}

// DeleteAt is Remove reporting rejection as seq.ErrIndex.
func (n *Node[T]) DeleteAt(i int) error {
	if !n.Remove(i) {
		return seq.IndexError(i)
	}

	return nil
}
