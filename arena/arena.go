package arena

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

type slot[T any] struct {
	value T
	next  Index
	live  bool
}

// Arena stores nodes of type T in slots addressed by Index.
// It is not safe for concurrent use.
type Arena[T any] struct {
	slots []slot[T]
	free  []Index // LIFO
	stats Stats
	log   *logrus.Entry
}

// New returns an empty arena configured by opts.
func New[T any](opts ...Option) *Arena[T] {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return &Arena[T]{
		slots: make([]slot[T], 0, o.Capacity),
		log:   o.Logger,
	}
}

// Alloc stores v in a fresh slot with a Nil link and returns its index.
// Free slots are reused before the slice grows.
func (a *Arena[T]) Alloc(v T) Index {
	a.stats.Allocs++

	if n := len(a.free); n > 0 {
		i := a.free[n-1]
		a.free = a.free[:n-1]
		a.slots[i] = slot[T]{value: v, next: Nil, live: true}
		a.stats.Reuses++
		a.log.WithField("slot", int(i)).Trace("arena: reuse")

		return i
	}

	i := Index(len(a.slots))
	a.slots = append(a.slots, slot[T]{value: v, next: Nil, live: true})
	a.log.WithField("slot", int(i)).Trace("arena: alloc")

	return i
}

// Free releases slot i and returns the value it held. The slot's value is
// zeroed so the arena does not retain references.
func (a *Arena[T]) Free(i Index) T {
	if i < 0 || int(i) >= len(a.slots) {
		panic(fmt.Errorf("%w: free of %d", ErrBadIndex, i))
	}
	s := &a.slots[i]
	if !s.live {
		panic(fmt.Errorf("%w: slot %d", ErrDoubleFree, i))
	}

	v := s.value
	var zero T
	*s = slot[T]{value: zero, next: Nil}
	a.free = append(a.free, i)
	a.stats.Frees++
	a.log.WithField("slot", int(i)).Trace("arena: free")

	return v
}

// Valid reports whether i addresses a live slot.
func (a *Arena[T]) Valid(i Index) bool {
	return i >= 0 && int(i) < len(a.slots) && a.slots[i].live
}

// at returns the live slot i or panics.
func (a *Arena[T]) at(i Index) *slot[T] {
	if !a.Valid(i) {
		panic(fmt.Errorf("%w: %d", ErrBadIndex, i))
	}

	return &a.slots[i]
}

// Get returns a copy of the value in slot i.
func (a *Arena[T]) Get(i Index) T {
	return a.at(i).value
}

// Update calls fn with the value in slot i. The pointer must not be
// retained after fn returns: a later Alloc may move or reuse the slot.
func (a *Arena[T]) Update(i Index, fn func(*T)) {
	fn(&a.at(i).value)
}

// Next returns the link stored in slot i.
func (a *Arena[T]) Next(i Index) Index {
	return a.at(i).next
}

// SetNext stores link n in slot i. n must be Nil or live.
func (a *Arena[T]) SetNext(i, n Index) {
	if n != Nil && !a.Valid(n) {
		panic(fmt.Errorf("%w: link to %d", ErrBadIndex, n))
	}
	a.at(i).next = n
}

// Swap exchanges the values of slots i and j; links stay in place.
func (a *Arena[T]) Swap(i, j Index) {
	si, sj := a.at(i), a.at(j)
	si.value, sj.value = sj.value, si.value
}

// Live returns the number of allocated slots.
func (a *Arena[T]) Live() int {
	return a.stats.Live()
}

// Stats returns a snapshot of the allocation counters.
func (a *Arena[T]) Stats() Stats {
	return a.stats
}

// FreeChain frees every slot reachable from head, one at a time, detaching
// each slot before freeing it. It returns the number of slots freed.
func (a *Arena[T]) FreeChain(head Index) int {
	n := 0
	for cur := head; cur != Nil; {
		next := a.Next(cur)
		a.at(cur).next = Nil
		a.Free(cur)
		cur = next
		n++
	}

	return n
}
