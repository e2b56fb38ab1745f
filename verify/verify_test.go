package verify

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/pouchkit/internal/testutil"
	"github.com/joshuapare/pouchkit/mem"
	"github.com/joshuapare/pouchkit/offsetlist"
	"github.com/joshuapare/pouchkit/pouch"
	"github.com/joshuapare/pouchkit/slab"
)

func newTestManager(t *testing.T) (*pouch.Manager, []mem.Pointer[pouch.PouchItem]) {
	t.Helper()
	return testutil.NewManager(t,
		testutil.Item{Name: "Item_Fruit_A", Type: pouch.ItemTypeMaterial, Value: 1},
		testutil.Item{Name: "Weapon_Sword_001", Type: pouch.ItemTypeSword, Value: 1},
		testutil.Item{Name: "Item_Cook_C_17", Type: pouch.ItemTypeFood, Value: 1},
	)
}

func requireValidation(t *testing.T, err error, typ string) *ValidationError {
	t.Helper()
	var verr *ValidationError
	require.True(t, errors.As(err, &verr), "expected *ValidationError, got %v", err)
	assert.Equal(t, typ, verr.Type)
	return verr
}

func TestAllInvariants_Valid(t *testing.T) {
	mgr, _ := newTestManager(t)
	require.NoError(t, AllInvariants(mgr))
	require.NoError(t, ListCount(mgr.Memory(), mgr.Active()))
	require.NoError(t, ListCount(mgr.Memory(), mgr.Graveyard()))
}

func TestBlocks(t *testing.T) {
	m := mem.New()
	require.NoError(t, m.WriteBytes(testutil.ManagerAddr, make([]byte, 16)))
	require.NoError(t, m.WriteBytes(testutil.ManagerAddr+32, make([]byte, 16)))
	require.NoError(t, Blocks(m))
	require.NoError(t, m.WriteBytes(testutil.ManagerAddr+16, make([]byte, 16)))
	require.NoError(t, Blocks(m))
	assert.Len(t, m.Regions(), 1)
}

func TestListCount_AfterOffset(t *testing.T) {
	mgr, _ := newTestManager(t)
	require.NoError(t, mgr.OffsetCapacity(2))

	err := ListCount(mgr.Memory(), mgr.Active())
	verr := requireValidation(t, err, "ListCount")
	assert.Equal(t, 1, verr.Details["count"])
	assert.Equal(t, 3, verr.Details["linked"])

	// shifting counts keeps the manager-wide accounting intact
	require.NoError(t, Manager(mgr))
}

func TestListLinks_BrokenBackLink(t *testing.T) {
	mgr, items := newTestManager(t)
	link, err := mgr.Active().LinkOf(items[0])
	require.NoError(t, err)
	require.NoError(t, mem.WriteField(mgr.Memory(), link, "Prev", link))

	err = ListLinks(mgr.Memory(), mgr.Active())
	verr := requireValidation(t, err, "ListLinks")
	assert.Equal(t, link.Addr(), verr.Address)
	requireValidation(t, Manager(mgr), "ListLinks")
}

func TestListLinks_Cycle(t *testing.T) {
	mgr, items := newTestManager(t)
	link, err := mgr.Active().LinkOf(items[2])
	require.NoError(t, err)
	require.NoError(t, mem.WriteField(mgr.Memory(), link, "Next", link))

	err = ListLinks(mgr.Memory(), mgr.Active())
	require.ErrorIs(t, err, offsetlist.ErrCorruptList)
}

func TestSlab_Accounting(t *testing.T) {
	mgr, items := newTestManager(t)
	hdr := mem.FieldPtr[slab.Header](items[2], "Ingredients.Header")
	arr := slab.At[pouch.FixedSafeString](mgr.Memory(), hdr, pouch.NumIngredientsMax)
	require.NoError(t, mgr.AddIngredient(items[2], "Item_Fruit_A"))
	require.NoError(t, Slab(mgr.Memory(), arr))

	require.NoError(t, mem.WriteField(mgr.Memory(), hdr, "PtrNum", int32(3)))
	verr := requireValidation(t, Slab(mgr.Memory(), arr), "Slab")
	assert.Equal(t, int32(3), verr.Details["used"])
	assert.Equal(t, 4, verr.Details["free"])
	requireValidation(t, Manager(mgr), "Slab")
}

func TestManager_CategoryOrder(t *testing.T) {
	mgr, items := newTestManager(t)
	// sword is listed first; retyping it as food breaks the order
	require.NoError(t, mem.WriteField(mgr.Memory(), items[1], "Type", pouch.ItemTypeFood))

	verr := requireValidation(t, Manager(mgr), "Manager")
	assert.Contains(t, verr.Message, "listed after")
}

func TestManager_TabHeads(t *testing.T) {
	mgr, _ := newTestManager(t)
	bogus := mem.FieldPtr[mem.Pointer[pouch.PouchItem]](mgr.Ptr(), "Tabs.0")
	require.NoError(t, mem.WriteField(mgr.Memory(), mgr.Ptr(), "ListHeads.5", bogus))

	verr := requireValidation(t, Manager(mgr), "Manager")
	assert.Contains(t, verr.Message, "Food head points at a Sword tab")

	require.NoError(t, mem.WriteField(mgr.Memory(), mgr.Ptr(), "ListHeads.5", bogus.Add(8*40)))
	verr = requireValidation(t, Manager(mgr), "Manager")
	assert.Contains(t, verr.Message, "does not point at a used tab")
}
