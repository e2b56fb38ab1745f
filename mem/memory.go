package mem

import (
	"fmt"
	"slices"
	"sort"

	"github.com/joshuapare/pouchkit/internal/buf"
)

type block struct {
	addr uint64
	data []byte
}

func (b *block) end() uint64 { return b.addr + uint64(len(b.data)) }

// Region describes one stored block.
type Region struct {
	Addr, Size uint64
}

// End returns the first address past the region.
func (r Region) End() uint64 { return r.Addr + r.Size }

// Memory is a sparse, byte-exact model of a target address space.
// Blocks are kept sorted by address; no two blocks overlap or touch.
type Memory struct {
	window Window
	blocks []*block
}

// New returns an empty Memory checked against DefaultWindow.
func New() *Memory {
	return NewWithWindow(DefaultWindow)
}

// NewWithWindow returns an empty Memory checked against w.
func NewWithWindow(w Window) *Memory {
	return &Memory{window: w}
}

// FromSnapshot returns a Memory seeded with a single captured region. The
// data is copied.
func FromSnapshot(addr uint64, data []byte) (*Memory, error) {
	m := New()
	if err := m.WriteBytes(addr, data); err != nil {
		return nil, fmt.Errorf("seed snapshot: %w", err)
	}
	return m, nil
}

// Window returns the valid address window.
func (m *Memory) Window() Window { return m.window }

// Regions returns the stored blocks in address order.
func (m *Memory) Regions() []Region {
	out := make([]Region, len(m.blocks))
	for i, b := range m.blocks {
		out[i] = Region{Addr: b.addr, Size: uint64(len(b.data))}
	}
	return out
}

// covering returns the block that fully contains [addr, addr+size), if any.
func (m *Memory) covering(addr, size uint64) *block {
	i := sort.Search(len(m.blocks), func(i int) bool { return m.blocks[i].addr > addr }) - 1
	if i < 0 {
		return nil
	}
	b := m.blocks[i]
	if !buf.Covers(b.addr, len(b.data), addr, size) {
		return nil
	}
	return b
}

// ReadInto fills p with the bytes at addr. The store is not modified.
func (m *Memory) ReadInto(addr uint64, p []byte) error {
	size := uint64(len(p))
	if err := m.window.Check(addr, size); err != nil {
		return err
	}
	b := m.covering(addr, size)
	if b == nil {
		return fmt.Errorf("%w in range 0x%x-0x%x", ErrUninitialized, addr, addr+size)
	}
	copy(p, b.data[addr-b.addr:])
	return nil
}

// ReadBytes returns a copy of size bytes at addr.
func (m *Memory) ReadBytes(addr, size uint64) ([]byte, error) {
	if err := m.window.Check(addr, size); err != nil {
		return nil, err
	}
	p := make([]byte, size)
	if err := m.ReadInto(addr, p); err != nil {
		return nil, err
	}
	return p, nil
}

// WriteBytes stores data at addr.
//
// A write inside an existing block overwrites it in place. Otherwise blocks
// enclosed by the write are dropped, a block overlapping or touching the
// write's end has its surviving suffix spliced onto the new data, and the
// result either extends the block that contains or touches addr or becomes
// a new block.
func (m *Memory) WriteBytes(addr uint64, data []byte) error {
	size := uint64(len(data))
	if err := m.window.Check(addr, size); err != nil {
		return err
	}
	if size == 0 {
		return nil
	}
	if b := m.covering(addr, size); b != nil {
		copy(b.data[addr-b.addr:], data)
		return nil
	}

	end := addr + size
	var (
		tail []byte
		prev *block
	)
	kept := make([]*block, 0, len(m.blocks)+1)
	for _, b := range m.blocks {
		switch {
		case b.addr > addr && b.end() <= end:
			continue
		case b.addr > addr && b.addr <= end:
			tail = b.data[end-b.addr:]
			continue
		case b.addr <= addr && addr <= b.end():
			prev = b
		}
		kept = append(kept, b)
	}

	if prev != nil {
		grown := make([]byte, 0, int(end-prev.addr)+len(tail))
		grown = append(grown, prev.data[:addr-prev.addr]...)
		grown = append(grown, data...)
		prev.data = append(grown, tail...)
	} else {
		nb := &block{addr: addr, data: make([]byte, 0, len(data)+len(tail))}
		nb.data = append(append(nb.data, data...), tail...)
		i := sort.Search(len(kept), func(i int) bool { return kept[i].addr > addr })
		kept = slices.Insert(kept, i, nb)
	}
	m.blocks = kept
	return nil
}
