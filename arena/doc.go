// Package arena provides the slot allocator behind the index-linked lists.
//
// Instead of heap nodes addressed by pointers, an Arena keeps every node in
// one growable slice and addresses it by Index. A link is an Index, and Nil
// marks the end of a chain. Freeing a slot pushes it onto a free list that
// later allocations reuse, so memory is reclaimed without a deallocator and
// a stale Index can never reach foreign memory.
//
// Ownership is still manual: whoever holds an Index decides when to Free it.
// The arena checks the discipline at run time:
//
//   - Free of an already-free slot panics with ErrDoubleFree.
//   - Any access through an Index that is out of range or not live panics
//     with ErrBadIndex.
//
// Both are contract violations by the caller, not data conditions, so they
// abort instead of returning an error.
//
// Stats reports cumulative allocations and frees; a teardown that leaves
// Live() == 0 with Allocs == Frees freed every node exactly once.
//
// Options:
//
//   - WithCapacity(n)   preallocate room for n slots.
//   - WithLogger(e)     trace alloc/free/reuse through a logrus entry.
package arena
