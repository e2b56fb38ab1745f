package mem

import "io"

// ReadAt implements io.ReaderAt over absolute target addresses.
func (m *Memory) ReadAt(p []byte, off int64) (int, error) {
	if off < 0 {
		return 0, ErrOutOfRange
	}
	if err := m.ReadInto(uint64(off), p); err != nil {
		return 0, err
	}
	return len(p), nil
}

// WriteAt implements io.WriterAt over absolute target addresses.
func (m *Memory) WriteAt(p []byte, off int64) (int, error) {
	if off < 0 {
		return 0, ErrOutOfRange
	}
	if err := m.WriteBytes(uint64(off), p); err != nil {
		return 0, err
	}
	return len(p), nil
}

var (
	_ io.ReaderAt = (*Memory)(nil)
	_ io.WriterAt = (*Memory)(nil)
)
