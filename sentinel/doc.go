// Package sentinel implements a singly linked list headed by a dummy
// sentinel node.
//
// The list handle is the sentinel itself: a *Node whose Data is absent and
// whose Next owns the first real node. Because every real node has a
// predecessor, inserting or removing at the front needs no special case.
//
// Indexing:
//
//   - Get(i) counts 0-based from the sentinel, so Get(0) is the sentinel and
//     Get(1) is the first real node. Beyond the chain it is absent.
//   - Insert(i, v) / Remove(i) locate node i-1 and splice after it, so i=1
//     addresses the first real node.
//
// Insert and Remove are the checked path and return false without mutation
// when the position is unreachable. MustInsert and MustRemove are the
// unchecked path: an unreachable position is a programmer error and panics
// with an error wrapping seq.ErrIndex.
//
// Nodes are pointers, so Get also serves as the mutable accessor: assigning
// to the returned node's Data edits the list in place. A real node whose
// Data is set to None stays linked and counted by Len, but All, Values and
// the Sequence lookups skip it.
package sentinel
