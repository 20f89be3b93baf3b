// Package lvlist is a playground of classic singly linked lists, each built
// around a different memory-ownership discipline for the same positional
// contract: 1-based insert, delete and get over a dynamic chain of nodes.
//
// 🚀 What is inside?
//
//	chain/       ownership chain: every link owns its successor (Empty | Node)
//	sentinel/    dummy-headed list, no special case for the front
//	rawlist/     manually managed nodes behind a caller-owned head
//	ringlist/    reseatable head handle, swap-then-unlink delete
//	arena/       index-addressed slot allocator behind rawlist/ringlist
//	seq/         the shared Sequence contract, ErrIndex and ErrFull
//	sqlist/      fixed-capacity array list (the only source of ErrFull)
//	linkstack/   arena-backed LIFO stack
//
// ✨ Guarantees
//
//   - Single ownership: no two handles ever own the same node.
//   - Acyclic chains at all times.
//   - Every allocated node is released exactly once; arena.Stats proves it.
//   - Iterative teardown everywhere, so chain length never threatens the
//     call stack.
//
// None of the containers lock; a handle must be used from one goroutine at
// a time.
//
// Quick ASCII picture of a sentinel list holding 1, 2, 3:
//
//	[•] → [1] → [2] → [3] → nil
//
//	go get github.com/katalvlaran/lvlist
package lvlist
