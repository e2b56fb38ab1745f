package mem

import "errors"

var (
	// ErrOutOfRange indicates an address range outside the valid window.
	ErrOutOfRange = errors.New("mem: address out of range")

	// ErrUninitialized indicates a read of memory that was never captured.
	ErrUninitialized = errors.New("mem: uninitialized memory")

	// ErrRejected indicates a confirmer declined a validation-only dereference.
	ErrRejected = errors.New("mem: dereference rejected")

	// ErrFieldSize indicates a field write whose value does not match the field width.
	ErrFieldSize = errors.New("mem: field size mismatch")
)
