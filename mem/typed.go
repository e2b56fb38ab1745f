package mem

import (
	"fmt"

	"github.com/joshuapare/pouchkit/layout"
)

// Read decodes a T from the bytes at addr.
func Read[T any](m *Memory, addr uint64) (T, error) {
	c := layout.Of[T]()
	b, err := m.ReadBytes(addr, uint64(c.Size()))
	if err != nil {
		var zero T
		return zero, err
	}
	return c.Decode(b)
}

// Write encodes v and stores it at addr.
func Write[T any](m *Memory, addr uint64, v T) error {
	b, err := layout.Of[T]().Encode(&v)
	if err != nil {
		return err
	}
	return m.WriteBytes(addr, b)
}

// FieldPtr returns the address of the field at path inside *p.
func FieldPtr[F, T any](p Pointer[T], path string) Pointer[F] {
	return Pointer[F](p.Add(uint64(layout.OffsetOf[T](path))))
}

// ReadField reads just the field at path of the T at p.
func ReadField[F, T any](m *Memory, p Pointer[T], path string) (F, error) {
	var zero F
	f, err := layout.Of[T]().Field(path)
	if err != nil {
		return zero, err
	}
	if want := layout.SizeOf[F](); want != f.Size {
		return zero, fmt.Errorf("%w: %s is %d bytes, read as %d", ErrFieldSize, path, f.Size, want)
	}
	return Read[F](m, p.Addr()+uint64(f.Offset))
}

// WriteField writes value into the field at path of the T at p, touching no
// other bytes. Cached views of the owner must be refreshed afterwards.
func WriteField[F, T any](m *Memory, p Pointer[T], path string, value F) error {
	f, err := layout.Of[T]().Field(path)
	if err != nil {
		return err
	}
	if want := layout.SizeOf[F](); want != f.Size {
		return fmt.Errorf("%w: %s is %d bytes, wrote %d", ErrFieldSize, path, f.Size, want)
	}
	return Write(m, p.Addr()+uint64(f.Offset), value)
}
