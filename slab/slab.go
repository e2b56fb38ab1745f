package slab

import (
	"fmt"

	"github.com/joshuapare/pouchkit/internal/buf"
	"github.com/joshuapare/pouchkit/layout"
	"github.com/joshuapare/pouchkit/mem"
)

// FreeList is the embedded free-list head.
type FreeList struct {
	Free mem.Pointer[uint64]
	Work mem.Pointer[byte]
}

// Header mirrors the fixed part of the object array.
type Header struct {
	PtrNum    int32
	PtrNumMax int32
	Ptrs      mem.Pointer[uint64]
	FreeList  FreeList
}

// Node is one slot. NextNode doubles as the free-list link while the slot is
// unused.
type Node[T any] struct {
	NextNode mem.Pointer[Node[T]]
	Elem     T
}

// Allocator is a handle to an object array in memory whose slots follow the
// header directly.
type Allocator[T any] struct {
	m        *mem.Memory
	self     mem.Pointer[Header]
	capacity int
}

// At returns a handle to the array at p with room for capacity slots.
func At[T any](m *mem.Memory, p mem.Pointer[Header], capacity int) *Allocator[T] {
	return &Allocator[T]{m: m, self: p, capacity: capacity}
}

// Ptr returns the header address.
func (a *Allocator[T]) Ptr() mem.Pointer[Header] { return a.self }

// Capacity returns the number of slots.
func (a *Allocator[T]) Capacity() int { return a.capacity }

func stride[T any]() uint64 {
	return uint64(buf.Align(layout.SizeOf[Node[T]](), 8))
}

func elemOffset[T any]() uint64 {
	return uint64(layout.OffsetOf[Node[T]]("Elem"))
}

// Work returns the address of the first slot.
func (a *Allocator[T]) Work() mem.Pointer[Node[T]] {
	return mem.Pointer[Node[T]](a.self.Add(a.self.Size()))
}

// Slot returns the address of slot i.
func (a *Allocator[T]) Slot(i int) mem.Pointer[Node[T]] {
	return a.Work().Add(uint64(i) * stride[T]())
}

// Elem returns the element address inside slot i.
func (a *Allocator[T]) Elem(i int) mem.Pointer[T] {
	return mem.Cast[T](a.Slot(i).Add(elemOffset[T]()))
}

// Construct threads every slot onto the free list in index order and marks
// the array empty.
func (a *Allocator[T]) Construct() error {
	for i := 0; i < a.capacity; i++ {
		next := mem.Null[Node[T]]()
		if i+1 < a.capacity {
			next = a.Slot(i + 1)
		}
		if err := mem.WriteField(a.m, a.Slot(i), "NextNode", next); err != nil {
			return fmt.Errorf("slab: chain slot %d: %w", i, err)
		}
	}
	head := mem.Null[uint64]()
	if a.capacity > 0 {
		head = mem.Cast[uint64](a.Slot(0))
	}
	if err := mem.WriteField(a.m, a.self, "PtrNum", int32(0)); err != nil {
		return err
	}
	if err := mem.WriteField(a.m, a.self, "PtrNumMax", int32(a.capacity)); err != nil {
		return err
	}
	if err := mem.WriteField(a.m, a.self, "FreeList.Work", mem.Cast[byte](a.Work())); err != nil {
		return err
	}
	return mem.WriteField(a.m, a.self, "FreeList.Free", head)
}

// Acquire pops a slot off the free list and returns its element address.
func (a *Allocator[T]) Acquire() (mem.Pointer[T], error) {
	head, err := mem.ReadField[mem.Pointer[uint64]](a.m, a.self, "FreeList.Free")
	if err != nil {
		return 0, err
	}
	if head.IsNull() {
		return 0, ErrFull
	}
	node := mem.Cast[Node[T]](head)
	next, err := mem.ReadField[mem.Pointer[Node[T]]](a.m, node, "NextNode")
	if err != nil {
		return 0, err
	}
	if err := mem.WriteField(a.m, a.self, "FreeList.Free", mem.Cast[uint64](next)); err != nil {
		return 0, err
	}
	if err := a.addUsed(1); err != nil {
		return 0, err
	}
	return mem.Cast[T](node.Add(elemOffset[T]())), nil
}

// Release pushes the slot holding elem back onto the free list. The address
// must be the element of one of this array's slots; whether the slot is
// actually in use is not checked.
func (a *Allocator[T]) Release(elem mem.Pointer[T]) error {
	node := mem.Cast[Node[T]](elem.Sub(elemOffset[T]()))
	if err := a.checkSlot(node); err != nil {
		return err
	}
	head, err := mem.ReadField[mem.Pointer[uint64]](a.m, a.self, "FreeList.Free")
	if err != nil {
		return err
	}
	if err := mem.WriteField(a.m, node, "NextNode", mem.Cast[Node[T]](head)); err != nil {
		return err
	}
	if err := mem.WriteField(a.m, a.self, "FreeList.Free", mem.Cast[uint64](node)); err != nil {
		return err
	}
	return a.addUsed(-1)
}

func (a *Allocator[T]) checkSlot(node mem.Pointer[Node[T]]) error {
	work := a.Work().Addr()
	end, err := buf.CheckSlots(work, a.capacity, int(stride[T]()))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBadSlot, err)
	}
	addr := node.Addr()
	if addr < work || addr >= end || (addr-work)%stride[T]() != 0 {
		return fmt.Errorf("%w: 0x%x not in 0x%x-0x%x", ErrBadSlot, addr, work, end)
	}
	return nil
}

func (a *Allocator[T]) addUsed(delta int32) error {
	n, err := mem.ReadField[int32](a.m, a.self, "PtrNum")
	if err != nil {
		return err
	}
	return mem.WriteField(a.m, a.self, "PtrNum", n+delta)
}

// Used returns the number of slots in use.
func (a *Allocator[T]) Used() (int, error) {
	n, err := mem.ReadField[int32](a.m, a.self, "PtrNum")
	return int(n), err
}

// FreeSlots returns the free-list chain in order. It fails with
// ErrCorruptFreeList if the chain revisits a slot or runs past capacity.
func (a *Allocator[T]) FreeSlots() ([]mem.Pointer[Node[T]], error) {
	head, err := mem.ReadField[mem.Pointer[uint64]](a.m, a.self, "FreeList.Free")
	if err != nil {
		return nil, err
	}
	var out []mem.Pointer[Node[T]]
	seen := make(map[mem.Pointer[Node[T]]]struct{})
	for node := mem.Cast[Node[T]](head); !node.IsNull(); {
		if _, ok := seen[node]; ok || len(out) >= a.capacity {
			return out, fmt.Errorf("%w: at 0x%x after %d slots", ErrCorruptFreeList, node.Addr(), len(out))
		}
		seen[node] = struct{}{}
		out = append(out, node)
		if node, err = mem.ReadField[mem.Pointer[Node[T]]](a.m, node, "NextNode"); err != nil {
			return out, err
		}
	}
	return out, nil
}
