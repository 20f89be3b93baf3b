// Package seq defines the common sequence contract shared by every container
// in lvlist, together with the sentinel errors it reports.
//
// All positions are 1-based. In lookup results a position of 0 means
// "not found"; as an argument, 0 is always invalid.
//
// Contract:
//
//	Clear()                      drop every element, handle stays usable
//	Destroy()                    release every node, handle must not be reused
//	IsEmpty() bool
//	Len() int
//	Elem(i) mo.Option[T]         value at position i
//	Locate(v) int                first position holding v, 0 if absent
//	PriorOf(v) mo.Option[T]      value before the first v
//	NextOf(v) mo.Option[T]       value after the first v
//	InsertAt(i, v) error         ErrIndex | ErrFull
//	DeleteAt(i) error            ErrIndex
//	All() iter.Seq[T]            traversal in order
//
// The helpers in this package (Locate, PriorOf, NextOf, Collect) work on any
// iter.Seq, so implementations only need to provide All.
package seq
