// Package slab reconstructs the target's fixed-capacity object array: a
// header followed by N uniform slots, with unused slots threaded onto an
// embedded singly linked free list.
//
// # Layout
//
//	Header{PtrNum, PtrNumMax, Ptrs, FreeList{Free, Work}}
//	Work: [N]Node[T]{NextNode, Elem}
//
// While a slot is free its first word (NextNode) links to the next free slot;
// FreeList.Free is the head. Acquire pops the head and Release pushes a slot
// back, both O(1). PtrNum counts slots in use, so
//
//	PtrNum + len(free list) == PtrNumMax
//
// holds after every operation on a well-formed array.
//
// The Ptrs side table is carried through untouched; it normally lives
// outside the captured region.
package slab
