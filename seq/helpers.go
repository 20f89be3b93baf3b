package seq

import (
	"fmt"
	"iter"

	"github.com/samber/mo"
)

// ValidPosition reports whether i addresses an existing element of a
// sequence of length n.
func ValidPosition(i, n int) bool {
	return i >= 1 && i <= n
}

// ValidInsert reports whether i is an insertion point for a sequence of
// length n. Appending (i == n+1) is valid.
func ValidInsert(i, n int) bool {
	return i >= 1 && i <= n+1
}

// IndexError wraps ErrIndex with the offending position.
func IndexError(i int) error {
	return fmt.Errorf("%w: position %d", ErrIndex, i)
}

// Locate returns the 1-based position of the first value equal to v, or
// NotFound.
func Locate[T comparable](all iter.Seq[T], v T) int {
	pos := 0
	for x := range all {
		pos++
		if x == v {
			return pos
		}
	}

	return NotFound
}

// PriorOf returns the value immediately before the first occurrence of v.
// It is absent when v is missing or sits at position 1.
func PriorOf[T comparable](all iter.Seq[T], v T) mo.Option[T] {
	prev := mo.None[T]()
	for x := range all {
		if x == v {
			return prev
		}
		prev = mo.Some(x)
	}

	return mo.None[T]()
}

// NextOf returns the value immediately after the first occurrence of v.
// It is absent when v is missing or is the last value.
func NextOf[T comparable](all iter.Seq[T], v T) mo.Option[T] {
	found := false
	for x := range all {
		if found {
			return mo.Some(x)
		}
		found = x == v
	}

	return mo.None[T]()
}

// Collect drains all into a slice. An empty sequence yields an empty,
// non-nil slice.
func Collect[T any](all iter.Seq[T]) []T {
	out := make([]T, 0)
	for x := range all {
		out = append(out, x)
	}

	return out
}
