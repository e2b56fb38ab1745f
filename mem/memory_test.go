package mem

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

const base = 0x2a982c8b0

func fill(n int, v byte) []byte {
	return bytes.Repeat([]byte{v}, n)
}

// requireConverged checks that stored blocks are sorted, disjoint and never touch.
func requireConverged(t *testing.T, m *Memory) {
	t.Helper()
	rs := m.Regions()
	for i := 1; i < len(rs); i++ {
		require.Greater(t, rs[i].Addr, rs[i-1].End(), "blocks %d and %d overlap or touch", i-1, i)
	}
}

func TestMemory_RoundTrip(t *testing.T) {
	m := New()
	require.NoError(t, Write(m, base, uint64(0x1122334455667788)))
	require.NoError(t, Write(m, base+8, int32(-7)))

	u, err := Read[uint64](m, base)
	require.NoError(t, err)
	require.Equal(t, uint64(0x1122334455667788), u)

	i, err := Read[int32](m, base+8)
	require.NoError(t, err)
	require.Equal(t, int32(-7), i)

	raw, err := m.ReadBytes(base, 4)
	require.NoError(t, err)
	require.Equal(t, []byte{0x88, 0x77, 0x66, 0x55}, raw, "values must be stored little-endian")
	require.Len(t, m.Regions(), 1)
}

func TestMemory_OutOfRange(t *testing.T) {
	m := New()
	err := m.WriteBytes(DefaultWindow.Start-1, []byte{1, 2})
	require.ErrorIs(t, err, ErrOutOfRange)

	_, err = m.ReadBytes(DefaultWindow.End-2, 4)
	require.ErrorIs(t, err, ErrOutOfRange)
	require.Contains(t, err.Error(), "outside")

	_, err = Read[uint64](m, 0)
	require.ErrorIs(t, err, ErrOutOfRange)
}

func TestMemory_Uninitialized(t *testing.T) {
	m := New()
	require.NoError(t, m.WriteBytes(base, fill(16, 0xAA)))

	_, err := m.ReadBytes(base+8, 16)
	require.ErrorIs(t, err, ErrUninitialized, "read straddling the end of a block")

	_, err = m.ReadBytes(base-4, 8)
	require.ErrorIs(t, err, ErrUninitialized, "read straddling the start of a block")

	_, err = m.ReadBytes(base+0x1000, 1)
	require.ErrorIs(t, err, ErrUninitialized)

	got, err := m.ReadBytes(base+4, 8)
	require.NoError(t, err)
	require.Equal(t, fill(8, 0xAA), got)
}

func TestMemory_WriteInsideBlockOverwritesInPlace(t *testing.T) {
	m := New()
	require.NoError(t, m.WriteBytes(base, fill(32, 0x11)))
	require.NoError(t, m.WriteBytes(base+8, fill(4, 0x22)))

	got, err := m.ReadBytes(base, 16)
	require.NoError(t, err)
	require.Equal(t, append(append(fill(8, 0x11), fill(4, 0x22)...), fill(4, 0x11)...), got)
	require.Equal(t, []Region{{Addr: base, Size: 32}}, m.Regions())
}

func TestMemory_WriteMerges(t *testing.T) {
	tests := []struct {
		name    string
		setup   [][2]uint64 // addr offset, size
		write   [2]uint64
		regions []Region
	}{
		{
			name:    "disjoint creates new block",
			setup:   [][2]uint64{{0, 8}},
			write:   [2]uint64{16, 8},
			regions: []Region{{base, 8}, {base + 16, 8}},
		},
		{
			name:    "adjacent after extends previous",
			setup:   [][2]uint64{{0, 8}},
			write:   [2]uint64{8, 8},
			regions: []Region{{base, 16}},
		},
		{
			name:    "adjacent before absorbs next",
			setup:   [][2]uint64{{8, 8}},
			write:   [2]uint64{0, 8},
			regions: []Region{{base, 16}},
		},
		{
			name:    "bridges two blocks",
			setup:   [][2]uint64{{0, 8}, {16, 8}},
			write:   [2]uint64{8, 8},
			regions: []Region{{base, 24}},
		},
		{
			name:    "overlapping tail of previous",
			setup:   [][2]uint64{{0, 8}},
			write:   [2]uint64{4, 8},
			regions: []Region{{base, 12}},
		},
		{
			name:    "overlapping head of next",
			setup:   [][2]uint64{{8, 8}},
			write:   [2]uint64{4, 8},
			regions: []Region{{base + 4, 12}},
		},
		{
			name:    "swallows enclosed fragments",
			setup:   [][2]uint64{{8, 4}, {16, 4}, {24, 4}},
			write:   [2]uint64{4, 28},
			regions: []Region{{base + 4, 28}},
		},
		{
			name:    "same start longer write grows block",
			setup:   [][2]uint64{{0, 8}},
			write:   [2]uint64{0, 12},
			regions: []Region{{base, 12}},
		},
		{
			name:    "extends previous and splices next suffix",
			setup:   [][2]uint64{{0, 8}, {12, 12}, {40, 4}},
			write:   [2]uint64{6, 10},
			regions: []Region{{base, 24}, {base + 40, 4}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New()
			for i, s := range tt.setup {
				require.NoError(t, m.WriteBytes(base+s[0], fill(int(s[1]), byte(0x10+i))))
			}
			require.NoError(t, m.WriteBytes(base+tt.write[0], fill(int(tt.write[1]), 0xEE)))
			require.Equal(t, tt.regions, m.Regions())
			requireConverged(t, m)

			got, err := m.ReadBytes(base+tt.write[0], tt.write[1])
			require.NoError(t, err)
			require.Equal(t, fill(int(tt.write[1]), 0xEE), got)
		})
	}
}

func TestMemory_SplicePreservesSurvivingBytes(t *testing.T) {
	m := New()
	require.NoError(t, m.WriteBytes(base, []byte{1, 2, 3, 4}))
	require.NoError(t, m.WriteBytes(base+8, []byte{5, 6, 7, 8}))
	require.NoError(t, m.WriteBytes(base+2, []byte{9, 9, 9, 9, 9, 9, 9}))

	got, err := m.ReadBytes(base, 12)
	require.NoError(t, err)
	require.Equal(t, []byte{1, 2, 9, 9, 9, 9, 9, 9, 9, 6, 7, 8}, got)
}

func TestMemory_ConvergesUnderRandomWrites(t *testing.T) {
	m := New()
	// deterministic LCG so the sequence is reproducible
	seed := uint64(42)
	next := func(n uint64) uint64 {
		seed = seed*6364136223846793005 + 1442695040888963407
		return (seed >> 33) % n
	}
	shadow := make(map[uint64]byte)
	for i := 0; i < 500; i++ {
		off := next(512)
		n := next(24) + 1
		v := byte(next(255) + 1)
		require.NoError(t, m.WriteBytes(base+off, fill(int(n), v)))
		for j := uint64(0); j < n; j++ {
			shadow[off+j] = v
		}
		requireConverged(t, m)
	}
	for off, v := range shadow {
		got, err := Read[uint8](m, base+off)
		require.NoError(t, err)
		require.Equal(t, v, got, "byte at +0x%x", off)
	}
}

func TestMemory_ZeroLengthWrite(t *testing.T) {
	m := New()
	require.NoError(t, m.WriteBytes(base, nil))
	require.Empty(t, m.Regions())
}

func TestFromSnapshotCopiesData(t *testing.T) {
	data := fill(16, 0x33)
	m, err := FromSnapshot(base, data)
	require.NoError(t, err)
	data[0] = 0
	b, err := Read[uint8](m, base)
	require.NoError(t, err)
	require.Equal(t, uint8(0x33), b)

	_, err = FromSnapshot(0x10, data)
	require.ErrorIs(t, err, ErrOutOfRange)
}

func TestMemory_ReaderWriterAt(t *testing.T) {
	m := New()
	n, err := m.WriteAt([]byte("pouch"), base)
	require.NoError(t, err)
	require.Equal(t, 5, n)

	p := make([]byte, 5)
	n, err = m.ReadAt(p, base)
	require.NoError(t, err)
	require.Equal(t, 5, n)
	require.Equal(t, "pouch", string(p))

	_, err = m.ReadAt(p, -1)
	require.ErrorIs(t, err, ErrOutOfRange)
}
