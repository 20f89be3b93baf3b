package seq

import (
	"errors"
	"iter"

	"github.com/samber/mo"
)

// Sentinel errors for sequence operations.
var (
	// ErrIndex indicates a position that is zero, negative, or outside the
	// range valid for the operation.
	ErrIndex = errors.New("seq: position out of range")

	// ErrFull indicates an insert into a fixed-capacity container at capacity.
	// Unbounded chains never report it.
	ErrFull = errors.New("seq: container is full")
)

// NotFound is the position Locate reports for an absent value.
const NotFound = 0

// Sequence is the abstract positional container contract.
type Sequence[T comparable] interface {
	// Clear removes every element; the sequence stays usable.
	Clear()
	// Destroy releases every node. The sequence must not be used afterwards.
	Destroy()
	IsEmpty() bool
	Len() int
	// Elem returns the value at 1-based position i.
	Elem(i int) mo.Option[T]
	// Locate returns the position of the first element equal to v, or NotFound.
	Locate(v T) int
	PriorOf(v T) mo.Option[T]
	NextOf(v T) mo.Option[T]
	// InsertAt inserts v so that it ends up at position i (1 ≤ i ≤ Len()+1).
	InsertAt(i int, v T) error
	// DeleteAt removes the element at position i (1 ≤ i ≤ Len()).
	DeleteAt(i int) error
	// All yields every value in order.
	All() iter.Seq[T]
}
