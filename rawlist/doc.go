// Package rawlist implements a manually managed singly linked list whose
// nodes live in an arena and are linked by index.
//
// The head node is part of the List value itself and is never allocated
// from, or returned to, the arena. Every other node is allocated by Insert
// and belongs to the link that points at it; nothing in the type system
// enforces that, the list code does. Delete hands one node back to the
// caller fully detached, and Release walks the chain iteratively, detaching
// and freeing each node exactly once.
//
// Positions are 1-based and count real nodes after the head. Every bounds
// violation (position < 1, or running off the chain while walking toward
// the target) is reported as an error wrapping seq.ErrIndex; the list never
// panics on a bad position.
//
// Values are read with Get and written with Set or Update. No pointer into
// the arena outlives the call that produced it, so a deleted node's slot
// can be reused without any stale alias reaching the new node.
//
//	l := rawlist.New[int]()
//	defer l.Release()
//	_ = l.Insert(1, 10)
//	_ = l.Insert(2, 20)
//	n, _ := l.Delete(1) // n.Value == 10, chain is now [20]
package rawlist
