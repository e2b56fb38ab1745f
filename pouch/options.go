package pouch

import (
	"cmp"
	"log/slog"

	"github.com/joshuapare/pouchkit/mem"
	"github.com/joshuapare/pouchkit/offsetlist"
)

// SlotSelector picks the slot a newly acquired item is constructed into.
type SlotSelector func(mgr *Manager) (mem.Pointer[PouchItem], error)

// Comparator orders two active-list items. Sorting is stable, so items that
// compare equal keep their current relative order.
type Comparator func(a, b *PouchItem) int

// Options configures a Manager.
type Options struct {
	// Window bounds every address the manager follows. Default: mem.DefaultWindow.
	Window mem.Window
	// Confirmer vets modifier pointers before they are read. Nil accepts
	// every in-window address.
	Confirmer mem.Confirmer
	// Compare orders the active list. Default: ByCategory.
	Compare Comparator
	// SelectSlot picks new-item slots. Default: ReuseGraveyard.
	SelectSlot SlotSelector
	// RepeatableKeyItems are key items that may be held more than once.
	RepeatableKeyItems []string
	// UniqueSword is the sword that respawns instead of being duplicated.
	UniqueSword string
	// Logger receives operation logs. Default: logger.L.
	Logger *slog.Logger
}

// DefaultUniqueSword is the default respawning sword.
const DefaultUniqueSword = "Weapon_Sword_070"

// DefaultRepeatableKeyItems are the default key items exempt from duplicate
// suppression.
var DefaultRepeatableKeyItems = []string{"Obj_KorokNuts", "Obj_DungeonClearSeal", "Obj_WarpDLC"}

// DefaultOptions returns the options used when fields are left zero.
func DefaultOptions() Options {
	return Options{
		Window:             mem.DefaultWindow,
		Compare:            ByCategory,
		SelectSlot:         ReuseGraveyard,
		RepeatableKeyItems: DefaultRepeatableKeyItems,
		UniqueSword:        DefaultUniqueSword,
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.Window == (mem.Window{}) {
		o.Window = d.Window
	}
	if o.Compare == nil {
		o.Compare = d.Compare
	}
	if o.SelectSlot == nil {
		o.SelectSlot = d.SelectSlot
	}
	if o.RepeatableKeyItems == nil {
		o.RepeatableKeyItems = d.RepeatableKeyItems
	}
	if o.UniqueSword == "" {
		o.UniqueSword = d.UniqueSword
	}
	return o
}

// ByCategory orders items by the category their type is listed under.
func ByCategory(a, b *PouchItem) int {
	return cmp.Compare(a.Type.Category(), b.Type.Category())
}

// ReuseGraveyard takes the first slot parked on the graveyard list, or else
// the first slot whose link is fully detached.
func ReuseGraveyard(mgr *Manager) (mem.Pointer[PouchItem], error) {
	gy := mgr.Graveyard()
	first, err := gy.First()
	if err != nil {
		return 0, err
	}
	if !first.IsNull() {
		if err := gy.Erase(first); err != nil {
			return 0, err
		}
		return first, nil
	}
	for i := range NumPouchItemsMax {
		p := mgr.Slot(i)
		node, err := mem.ReadField[offsetlist.Node](mgr.m, p, "ListNode")
		if err != nil {
			return 0, err
		}
		if node.Prev.IsNull() && node.Next.IsNull() {
			return p, nil
		}
	}
	return 0, ErrInventoryFull
}
