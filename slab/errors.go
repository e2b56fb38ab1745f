package slab

import "errors"

var (
	// ErrFull indicates Acquire found the free list empty.
	ErrFull = errors.New("slab: no free slot")

	// ErrBadSlot indicates Release was given an address that is not a slot of the array.
	ErrBadSlot = errors.New("slab: pointer is not a slot")

	// ErrCorruptFreeList indicates a free list longer than the capacity or with a cycle.
	ErrCorruptFreeList = errors.New("slab: corrupt free list")
)
