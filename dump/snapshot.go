package dump

import (
	"bytes"
	"fmt"
	"io"

	"github.com/joshuapare/pouchkit/internal/buf"
	"github.com/joshuapare/pouchkit/internal/mmfile"
	"github.com/joshuapare/pouchkit/internal/writer"
)

// HeaderSize is the size of the address prefix.
const HeaderSize = 8

// ManagerHeapOffset is the manager's offset from the start of the heap it
// is allocated in, used to recover the heap base from a capture.
const ManagerHeapOffset = 0xa982c8b0

// Snapshot is a captured object and the address it was captured at.
type Snapshot struct {
	Addr uint64
	Data []byte
}

// HeapBase returns the heap base implied by a manager capture address.
func (s Snapshot) HeapBase() uint64 { return s.Addr - ManagerHeapOffset }

// Parse splits blob into its address and body. The body must be exactly
// size bytes. The returned data aliases blob.
func Parse(blob []byte, size int) (Snapshot, error) {
	if len(blob) < HeaderSize {
		return Snapshot{}, &SizeError{Expected: size, Actual: len(blob) - HeaderSize}
	}
	body := blob[HeaderSize:]
	if len(body) != size {
		return Snapshot{}, &SizeError{Expected: size, Actual: len(body)}
	}
	return Snapshot{Addr: buf.U64LE(blob), Data: body}, nil
}

// Encode returns the capture bytes for s.
func Encode(s Snapshot) []byte {
	out := make([]byte, HeaderSize+len(s.Data))
	buf.PutU64LE(out, s.Addr)
	copy(out[HeaderSize:], s.Data)
	return out
}

// Read parses a capture from r.
func Read(r io.Reader, size int) (Snapshot, error) {
	blob, err := io.ReadAll(r)
	if err != nil {
		return Snapshot{}, fmt.Errorf("dump: read: %w", err)
	}
	return Parse(blob, size)
}

// Open maps the capture at path and parses it. The returned data is a
// private copy, so the mapping is released before Open returns.
func Open(path string, size int) (Snapshot, error) {
	mp, err := mmfile.Map(path)
	if err != nil {
		return Snapshot{}, fmt.Errorf("dump: open %s: %w", path, err)
	}
	defer mp.Close()

	s, err := Parse(mp.Bytes(), size)
	if err != nil {
		return Snapshot{}, fmt.Errorf("dump: %s: %w", path, err)
	}
	s.Data = bytes.Clone(s.Data)
	return s, nil
}

// WriteTo hands the encoded capture to w.
func WriteTo(w writer.Sink, s Snapshot) error {
	if err := w.WriteCapture(Encode(s)); err != nil {
		return fmt.Errorf("dump: write: %w", err)
	}
	return nil
}

// WriteFile atomically replaces path with the capture.
func WriteFile(path string, s Snapshot) error {
	if err := WriteTo(&writer.FileWriter{Path: path}, s); err != nil {
		return fmt.Errorf("%w (%s)", err, path)
	}
	return nil
}
