package buf

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// EndOf returns addr+size, reporting ok = false when the range would wrap
// past the top of the 64-bit address space.
func EndOf(addr, size uint64) (uint64, bool) {
	if size > math.MaxUint64-addr {
		return 0, false
	}
	return addr + size, true
}

// Within reports whether [addr, addr+size) lies inside [start, end).
func Within(addr, size, start, end uint64) bool {
	stop, ok := EndOf(addr, size)
	if !ok {
		return false
	}
	return addr >= start && stop <= end
}

// Covers reports whether the block [base, base+n) fully contains [addr, addr+size).
func Covers(base uint64, n int, addr, size uint64) bool {
	if addr < base {
		return false
	}
	stop, ok := EndOf(addr, size)
	if !ok {
		return false
	}
	return stop-base <= uint64(n)
}

// CheckSlots validates that count slots of stride bytes starting at base stay
// addressable. Returns the end address of the slot array.
//
//	end, err := buf.CheckSlots(work, 5, 0x60)
//	if err != nil {
//	    return fmt.Errorf("slab: %w", err)
//	}
func CheckSlots(base uint64, count, stride int) (uint64, error) {
	if count < 0 {
		return 0, fmt.Errorf("negative count: %d", count)
	}
	if stride <= 0 {
		return 0, fmt.Errorf("non-positive stride: %d", stride)
	}
	if count > math.MaxInt/stride {
		return 0, fmt.Errorf("overflow: count=%d * stride=%d", count, stride)
	}
	end, ok := EndOf(base, uint64(count*stride))
	if !ok {
		return 0, fmt.Errorf("overflow: base=0x%x + size=%d", base, count*stride)
	}
	return end, nil
}

// Align rounds a up to the next multiple of b. b must be a power of two.
func Align[I constraints.Integer](a, b I) I {
	return (a + b - 1) &^ (b - 1)
}
