package mem

import "fmt"

// Confirmer decides whether an address that passed the window check should
// be treated as a legitimate object location.
type Confirmer interface {
	Confirm(addr, size uint64) bool
}

// ConfirmFunc adapts a function to Confirmer.
type ConfirmFunc func(addr, size uint64) bool

// Confirm calls f.
func (f ConfirmFunc) Confirm(addr, size uint64) bool { return f(addr, size) }

// AlwaysConfirm accepts every in-window address.
var AlwaysConfirm Confirmer = ConfirmFunc(func(uint64, uint64) bool { return true })

// Check performs a validation-only dereference of p: the pointee must fit in
// w and, when c is non-nil, be confirmed. No memory is read. It guards
// against following garbage pointers found in a capture.
func (p Pointer[T]) Check(w Window, c Confirmer) error {
	size := p.Size()
	if err := w.Check(p.Addr(), size); err != nil {
		return err
	}
	if c != nil && !c.Confirm(p.Addr(), size) {
		return fmt.Errorf("%w: 0x%x", ErrRejected, p.Addr())
	}
	return nil
}
