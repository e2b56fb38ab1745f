package mem

import (
	"fmt"

	"github.com/joshuapare/pouchkit/internal/buf"
	"github.com/joshuapare/pouchkit/layout"
)

// Pointer is an address in target memory tagged with the type stored there.
// It is encoded as a plain 64-bit word, so it can appear directly inside
// mirror structs. The zero value is NULL.
type Pointer[T any] uint64

// Null returns the NULL pointer of type T.
func Null[T any]() Pointer[T] { return 0 }

// Cast reinterprets p as pointing to a U. Only the tag changes.
func Cast[U, T any](p Pointer[T]) Pointer[U] { return Pointer[U](p) }

// Same reports whether two pointers hold the same address, whatever their types.
func Same[T, U any](a Pointer[T], b Pointer[U]) bool { return uint64(a) == uint64(b) }

// Addr returns the raw address.
func (p Pointer[T]) Addr() uint64 { return uint64(p) }

// IsNull reports whether p is NULL.
func (p Pointer[T]) IsNull() bool { return p == 0 }

// Add returns p moved forward by off bytes. The result is not checked until
// it is dereferenced.
func (p Pointer[T]) Add(off uint64) Pointer[T] { return p + Pointer[T](off) }

// Sub returns p moved back by off bytes.
func (p Pointer[T]) Sub(off uint64) Pointer[T] { return p - Pointer[T](off) }

// Index returns the address of the i-th T in an array starting at p.
func (p Pointer[T]) Index(i int) Pointer[T] {
	return p.Add(uint64(i) * uint64(layout.SizeOf[T]()))
}

// FromLE converts a pointer word copied verbatim from target memory to the
// host's byte order.
func (p Pointer[T]) FromLE() Pointer[T] { return Pointer[T](buf.FromLE(uint64(p))) }

// ToLE converts a host pointer word to the target's byte order.
func (p Pointer[T]) ToLE() Pointer[T] { return Pointer[T](buf.ToLE(uint64(p))) }

// Read dereferences p.
func (p Pointer[T]) Read(m *Memory) (T, error) { return Read[T](m, uint64(p)) }

// Write stores v at p.
func (p Pointer[T]) Write(m *Memory, v T) error { return Write(m, uint64(p), v) }

// Size returns the encoded size of T.
func (p Pointer[T]) Size() uint64 { return uint64(layout.SizeOf[T]()) }

func (p Pointer[T]) String() string { return fmt.Sprintf("0x%x", uint64(p)) }
