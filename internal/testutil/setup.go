// Package testutil builds inventory fixtures for tests.
package testutil

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/pouchkit/dump"
	"github.com/joshuapare/pouchkit/mem"
	"github.com/joshuapare/pouchkit/pouch"
)

// ManagerAddr is the manager address used by fixtures. It lies in the valid
// window at the manager's usual heap offset.
const ManagerAddr = 0x2a982c8b0

// Item describes one fixture item.
type Item struct {
	Name  string
	Type  pouch.ItemType
	Value int32
}

// NewManager constructs an empty manager at ManagerAddr and picks up items
// in order. It returns the manager and the slot each item landed in.
//
// Example:
//
//	mgr, items := testutil.NewManager(t,
//	    testutil.Item{Name: "Weapon_Sword_001", Type: pouch.ItemTypeSword, Value: 30})
func NewManager(t *testing.T, items ...Item) (*pouch.Manager, []mem.Pointer[pouch.PouchItem]) {
	t.Helper()
	m := mem.New()
	require.NoError(t, pouch.Construct(m, ManagerAddr))
	mgr, err := pouch.New(m, ManagerAddr, pouch.DefaultOptions())
	require.NoError(t, err)

	ptrs := make([]mem.Pointer[pouch.PouchItem], 0, len(items))
	for _, it := range items {
		require.NoError(t, mgr.AcquireItem(it.Name, it.Type, it.Value, mem.Null[pouch.WeaponModifierInfo]()))
		ptrs = append(ptrs, mgr.State().LastAddedItem)
	}
	return mgr, ptrs
}

// WriteCapture saves the manager's current bytes as a capture in a temp
// directory and returns its path.
func WriteCapture(t *testing.T, mgr *pouch.Manager) string {
	t.Helper()
	data, err := mgr.Memory().ReadBytes(mgr.Ptr().Addr(), uint64(pouch.ManagerSize))
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "pmdm.bin")
	require.NoError(t, dump.WriteFile(path, dump.Snapshot{Addr: mgr.Ptr().Addr(), Data: data}))
	return path
}
