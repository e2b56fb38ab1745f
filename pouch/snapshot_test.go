package pouch_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/pouchkit/dump"
	"github.com/joshuapare/pouchkit/mem"
	"github.com/joshuapare/pouchkit/pouch"
)

const captureAddr = 0x2a982c8b0

// captureWith returns the capture bytes of a manager holding one item.
func captureWith(t *testing.T, name string) []byte {
	t.Helper()
	m := mem.New()
	require.NoError(t, pouch.Construct(m, captureAddr))
	mgr, err := pouch.New(m, captureAddr, pouch.DefaultOptions())
	require.NoError(t, err)
	require.NoError(t, mgr.AcquireItem(name, pouch.ItemTypeMaterial, 1, mem.Null[pouch.WeaponModifierInfo]()))

	data, err := m.ReadBytes(captureAddr, uint64(pouch.ManagerSize))
	require.NoError(t, err)
	return dump.Encode(dump.Snapshot{Addr: captureAddr, Data: data})
}

func TestCapture_OpenMenuAndRemove(t *testing.T) {
	snap, err := dump.Parse(captureWith(t, "FirstItem"), pouch.ManagerSize)
	require.NoError(t, err)
	m, err := mem.FromSnapshot(snap.Addr, snap.Data)
	require.NoError(t, err)
	mgr, err := pouch.New(m, snap.Addr, pouch.DefaultOptions())
	require.NoError(t, err)

	require.NoError(t, mgr.OpenPauseMenu())
	found, err := mgr.Find("FirstItem")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, found[0], mgr.State().LastAddedItem)

	require.NoError(t, mgr.Remove(found[0]))
	require.NoError(t, mgr.OpenPauseMenu())

	items, err := mgr.Items()
	require.NoError(t, err)
	assert.Empty(t, items)
	n, err := mgr.Graveyard().Count()
	require.NoError(t, err)
	assert.Equal(t, pouch.NumPouchItemsMax, n)
	assert.True(t, mgr.State().LastAddedItem.IsNull())

	// the edited bytes frame back into a capture that parses again
	data, err := m.ReadBytes(snap.Addr, uint64(pouch.ManagerSize))
	require.NoError(t, err)
	again, err := dump.Parse(dump.Encode(dump.Snapshot{Addr: snap.Addr, Data: data}), pouch.ManagerSize)
	require.NoError(t, err)
	assert.Equal(t, data, again.Data)
}
