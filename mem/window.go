package mem

import (
	"fmt"

	"github.com/joshuapare/pouchkit/internal/buf"
)

// Window is the half-open address range [Start, End) every access must fall in.
type Window struct {
	Start uint64
	End   uint64
}

// DefaultWindow is the ASLR range of the target console's user heap.
var DefaultWindow = Window{Start: 0x8000000, End: 0x8000000000}

// Contains reports whether [addr, addr+size) lies inside the window.
func (w Window) Contains(addr, size uint64) bool {
	return buf.Within(addr, size, w.Start, w.End)
}

// Check returns ErrOutOfRange describing the offending range, or nil.
func (w Window) Check(addr, size uint64) error {
	if w.Contains(addr, size) {
		return nil
	}
	if size <= 1 {
		return fmt.Errorf("%w: address 0x%x is outside 0x%x-0x%x", ErrOutOfRange, addr, w.Start, w.End)
	}
	return fmt.Errorf("%w: range 0x%x-0x%x is outside 0x%x-0x%x", ErrOutOfRange, addr, addr+size, w.Start, w.End)
}
