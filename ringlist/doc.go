// Package ringlist implements a head-node list addressed through a
// reseatable handle, with the swap-then-unlink deletion technique.
//
// The List value is the handle. Init allocates a fresh head node in the
// list's arena and stores its index in the handle, so re-running Init
// reseats the head (the old chain is freed first). Real elements follow the
// head at positions 1, 2, ...
//
// Deletion without a back-pointer:
//
//	Delete(pos) walks pos hops to node P (the node at pos) and requires P and
//	its successor S to exist. It swaps the values of P and S, relinks P past
//	S, frees S, and returns S.
//
//	  before:  head → P(a) → S(b) → R(c)
//	  after:   head → P(b) → R(c)          returned: S(a)
//
// The logical sequence loses the value at pos, and the returned node carries
// that value, but the returned node is S: the physical node that used to sit
// at pos+1. The physical node P stays in the chain and now carries S's
// former value. Code that tracks node identity (Slot) must expect this.
//
// Because S must exist, Delete cannot remove the last element. Calling it at
// an invalid position is a caller contract violation and panics with an
// error wrapping ErrContract. DeleteAt is the bounds-checked sequence entry
// point; it uses the swap technique for inner positions and a plain unlink
// for the tail.
package ringlist
