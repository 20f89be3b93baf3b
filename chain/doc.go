// Package chain implements the ownership-chain list: a singly linked list in
// which every link exclusively owns the node it points to.
//
// A link is either empty (nil) or a *node carrying a value and the link to
// its successor, so the list is the recursive sum type
//
//	Link = Empty | Node(value, Link)
//
// Ownership moves, it is never shared: Insert re-points exactly one link,
// Delete splices a predecessor to its grand-successor and clears the link of
// the detached node. No value is copied between nodes.
//
// Key operations:
//
//   - Push / Pop / Peek     head access, O(1)
//   - Insert(i, v) bool     place v before the i-th element (i=1 is the head)
//   - Delete(i) bool        remove the i-th element
//   - Clear / Destroy       iterative teardown, safe for arbitrarily long chains
//
// Positions are 1-based. Insert and Delete reject i < 1 up front and detect
// positions past the end by walking until the chain runs out; in both cases
// they return false and leave the list untouched.
//
// *List also satisfies seq.Sequence.
package chain
