package pouch

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"slices"
	"strconv"

	"github.com/joshuapare/pouchkit/internal/logger"
	"github.com/joshuapare/pouchkit/layout"
	"github.com/joshuapare/pouchkit/mem"
	"github.com/joshuapare/pouchkit/offsetlist"
)

// itemsPerTab is how many items one inventory tab shows.
const itemsPerTab = 20

// Manager is a handle to the inventory manager at a known address.
type Manager struct {
	m    *mem.Memory
	self mem.Pointer[PauseMenuDataMgr]
	view *mem.View[PauseMenuDataMgr]
	opts Options
}

// New binds a manager handle to the PauseMenuDataMgr at addr. Both lists
// must carry the native link offset.
func New(m *mem.Memory, addr uint64, opts Options) (*Manager, error) {
	opts = opts.withDefaults()
	self := mem.Pointer[PauseMenuDataMgr](addr)
	if err := self.Check(opts.Window, nil); err != nil {
		return nil, fmt.Errorf("pouch: manager at %s: %w", self, err)
	}
	view, err := mem.NewView(m, self)
	if err != nil {
		return nil, fmt.Errorf("pouch: read manager at %s: %w", self, err)
	}
	lists := view.Get().ItemLists
	for i, off := range []int32{lists.List1.Offset, lists.List2.Offset} {
		if off != LinkOffset {
			return nil, fmt.Errorf("%w: list%d has %d, want %d", ErrBadLayout, i+1, off, LinkOffset)
		}
	}
	return &Manager{m: m, self: self, view: view, opts: opts}, nil
}

func (mgr *Manager) log() *slog.Logger {
	if mgr.opts.Logger != nil {
		return mgr.opts.Logger
	}
	return logger.L
}

// Ptr returns the manager's address.
func (mgr *Manager) Ptr() mem.Pointer[PauseMenuDataMgr] { return mgr.self }

// Memory returns the memory the manager lives in.
func (mgr *Manager) Memory() *mem.Memory { return mgr.m }

// State returns the cached manager object as of the last Sync.
func (mgr *Manager) State() *PauseMenuDataMgr { return mgr.view.Get() }

// Sync re-reads the whole manager object. Every mutating operation ends
// with it.
func (mgr *Manager) Sync() error {
	if err := mgr.view.Refresh(); err != nil {
		return fmt.Errorf("pouch: sync: %w", err)
	}
	return nil
}

// Active returns the list of items shown in the inventory.
func (mgr *Manager) Active() *offsetlist.List[PouchItem] {
	return offsetlist.At(mgr.m, mem.FieldPtr[offsetlist.Header[PouchItem]](mgr.self, "ItemLists.List1"))
}

// Graveyard returns the list of spare item slots.
func (mgr *Manager) Graveyard() *offsetlist.List[PouchItem] {
	return offsetlist.At(mgr.m, mem.FieldPtr[offsetlist.Header[PouchItem]](mgr.self, "ItemLists.List2"))
}

// Slot returns the address of fixed item slot i.
func (mgr *Manager) Slot(i int) mem.Pointer[PouchItem] {
	return mem.FieldPtr[PouchItem](mgr.self, "ItemLists.Buffer.0").Index(i)
}

// SlotIndex returns the index of the fixed item slot at p.
func (mgr *Manager) SlotIndex(p mem.Pointer[PouchItem]) (int, error) {
	base := mgr.Slot(0).Addr()
	size := p.Size()
	addr := p.Addr()
	if addr < base || (addr-base)%size != 0 || (addr-base)/size >= NumPouchItemsMax {
		return -1, fmt.Errorf("%w: %s", ErrNotSlot, p)
	}
	return int((addr - base) / size), nil
}

// Item reads the item at p, which must be one of the fixed slots.
func (mgr *Manager) Item(p mem.Pointer[PouchItem]) (PouchItem, error) {
	if _, err := mgr.SlotIndex(p); err != nil {
		return PouchItem{}, err
	}
	return p.Read(mgr.m)
}

// Items returns the active list in order.
func (mgr *Manager) Items() ([]mem.Pointer[PouchItem], error) {
	return mgr.Active().Elements()
}

// Find returns the active items named name.
func (mgr *Manager) Find(name string) ([]mem.Pointer[PouchItem], error) {
	var out []mem.Pointer[PouchItem]
	err := mgr.Active().Walk(func(p mem.Pointer[PouchItem]) error {
		n, err := mem.ReadField[FixedSafeString](mgr.m, p, "Name")
		if err != nil {
			return err
		}
		if n.String() == name {
			out = append(out, p)
		}
		return nil
	})
	return out, err
}

// errStopRun ends a category run early.
var errStopRun = errors.New("stop")

// categoryRun calls fn for each item of the active list's run for cat,
// starting from the category head. fn returns errStopRun to end early.
func (mgr *Manager) categoryRun(cat Category, fn func(p mem.Pointer[PouchItem], it *PouchItem) error) error {
	if cat < 0 || int(cat) >= NumPouchCategories {
		return nil
	}
	head, err := mem.ReadField[mem.Pointer[mem.Pointer[PouchItem]]](mgr.m, mgr.self, "ListHeads."+strconv.Itoa(int(cat)))
	if err != nil {
		return err
	}
	if head.IsNull() {
		return nil
	}
	if err := head.Check(mgr.opts.Window, nil); err != nil {
		return fmt.Errorf("pouch: %s head: %w", cat, err)
	}
	p, err := head.Read(mgr.m)
	if err != nil {
		return err
	}
	active := mgr.Active()
	for steps := 0; !p.IsNull() && steps < NumPouchItemsMax; steps++ {
		it, err := p.Read(mgr.m)
		if err != nil {
			return err
		}
		if it.Type.Category() != cat {
			break
		}
		if err := fn(p, &it); err != nil {
			if errors.Is(err, errStopRun) {
				return nil
			}
			return err
		}
		if p, err = active.Next(p); err != nil {
			return err
		}
	}
	return nil
}

// AcquireItem models picking up an item.
//
// A key item that is not repeatable and is already held is ignored. The
// unique sword respawns in place when it is already in the inventory: its
// value drops to 0, it is unequipped, and it becomes the last added item, or
// NULL when its value had already run out. Invalid types are ignored. Anything else is
// constructed into a new slot, appended and the list is re-sorted.
func (mgr *Manager) AcquireItem(name string, typ ItemType, value int32, modifier mem.Pointer[WeaponModifierInfo]) error {
	log := mgr.log().With("op", "acquire", "name", name, "type", typ)

	switch {
	case typ == ItemTypeInvalid:
		log.Info("ignored invalid item type")
		return nil

	case typ == ItemTypeKeyItem && !slices.Contains(mgr.opts.RepeatableKeyItems, name):
		held := false
		err := mgr.categoryRun(CategoryKeyItem, func(_ mem.Pointer[PouchItem], it *PouchItem) error {
			if it.Name.String() == name && it.InInventory.Get() {
				held = true
				return errStopRun
			}
			return nil
		})
		if err != nil {
			return err
		}
		if held {
			log.Info("key item already held")
			return nil
		}

	case typ == ItemTypeSword && name == mgr.opts.UniqueSword:
		var found mem.Pointer[PouchItem]
		var old int32
		err := mgr.categoryRun(CategorySword, func(p mem.Pointer[PouchItem], it *PouchItem) error {
			if it.Name.String() == name && it.InInventory.Get() {
				found, old = p, it.Value
				return errStopRun
			}
			return nil
		})
		if err != nil {
			return err
		}
		if !found.IsNull() {
			return mgr.respawn(found, old)
		}
	}

	var payload Payload
	if typ.IsWeapon() && !modifier.IsNull() {
		if err := modifier.Check(mgr.opts.Window, mgr.opts.Confirmer); err != nil {
			return fmt.Errorf("pouch: weapon modifier: %w", err)
		}
		info, err := modifier.Read(mgr.m)
		if err != nil {
			return fmt.Errorf("pouch: weapon modifier: %w", err)
		}
		payload = WeaponData{ModifierValue: uint32(info.Value), Modifier: info.Flags}
	}

	p, err := mgr.addNew(name, typ, value, payload)
	if err != nil {
		return err
	}
	if err := mem.WriteField(mgr.m, mgr.self, "LastAddedItem", p); err != nil {
		return err
	}
	if err := mgr.resort(); err != nil {
		return err
	}
	log.Debug("item added", "item", p, "value", value)
	return mgr.Sync()
}

func (mgr *Manager) respawn(p mem.Pointer[PouchItem], old int32) error {
	if err := mem.WriteField(mgr.m, p, "Value", int32(0)); err != nil {
		return err
	}
	if err := mem.WriteField(mgr.m, p, "Equipped", layout.BoolOf(false)); err != nil {
		return err
	}
	if err := mgr.clearEquipMirror(p); err != nil {
		return err
	}
	last := p
	if old <= 0 {
		last = mem.Null[PouchItem]()
	}
	if err := mem.WriteField(mgr.m, mgr.self, "LastAddedItem", last); err != nil {
		return err
	}
	mgr.log().Debug("unique sword respawned", "op", "acquire", "item", p, "old", old)
	return mgr.Sync()
}

// addNew constructs an item into the slot picked by SelectSlot and appends
// it to the active list.
func (mgr *Manager) addNew(name string, typ ItemType, value int32, payload Payload) (mem.Pointer[PouchItem], error) {
	p, err := mgr.opts.SelectSlot(mgr)
	if err != nil {
		return 0, err
	}
	if _, err := mgr.SlotIndex(p); err != nil {
		return 0, err
	}
	if err := ConstructItem(mgr.m, p); err != nil {
		return 0, err
	}

	s, err := mem.ReadField[FixedSafeString](mgr.m, p, "Name")
	if err != nil {
		return 0, err
	}
	s.Set(name)
	if err := mem.WriteField(mgr.m, p, "Name.Buffer", s.Buffer); err != nil {
		return 0, err
	}
	if err := mem.WriteField(mgr.m, p, "Type", typ); err != nil {
		return 0, err
	}
	if err := mem.WriteField(mgr.m, p, "Use", typ.DefaultUse()); err != nil {
		return 0, err
	}
	if err := mem.WriteField(mgr.m, p, "Value", value); err != nil {
		return 0, err
	}
	if payload != nil {
		it, err := p.Read(mgr.m)
		if err != nil {
			return 0, err
		}
		it.SetPayload(payload)
		if err := mem.WriteField(mgr.m, p, "Data", it.Data); err != nil {
			return 0, err
		}
	}
	if err := mgr.Active().PushBack(p); err != nil {
		return 0, err
	}
	return p, nil
}

// resort stably sorts the active list with Compare and rebuilds the tabs.
func (mgr *Manager) resort() error {
	active := mgr.Active()
	elems, err := active.Elements()
	if err != nil {
		return err
	}
	items := make(map[mem.Pointer[PouchItem]]*PouchItem, len(elems))
	for _, p := range elems {
		it, err := p.Read(mgr.m)
		if err != nil {
			return err
		}
		items[p] = &it
	}
	err = active.Sort(func(a, b mem.Pointer[PouchItem]) int {
		return mgr.opts.Compare(items[a], items[b])
	})
	if err != nil {
		return err
	}
	return mgr.rebuildTabs()
}

// rebuildTabs splits the active list into tabs, one category per tab and at
// most itemsPerTab items each, and points every category head at the tab
// entry of its first item.
func (mgr *Manager) rebuildTabs() error {
	elems, err := mgr.Active().Elements()
	if err != nil {
		return err
	}
	last, err := mem.ReadField[mem.Pointer[PouchItem]](mgr.m, mgr.self, "LastAddedItem")
	if err != nil {
		return err
	}

	var (
		tabs  [NumTabMax]mem.Pointer[PouchItem]
		types [NumTabMax]ItemType
		heads [NumPouchCategories]mem.Pointer[mem.Pointer[PouchItem]]
	)
	for i := range types {
		types[i] = ItemTypeInvalid
	}
	numTabs, inTab := 0, 0
	lastTab, lastSlot := int32(-1), int32(-1)
	cur := CategoryInvalid
	for _, p := range elems {
		typ, err := mem.ReadField[ItemType](mgr.m, p, "Type")
		if err != nil {
			return err
		}
		cat := typ.Category()
		if numTabs == 0 || cat != cur || inTab == itemsPerTab {
			if numTabs == NumTabMax {
				break
			}
			tabs[numTabs] = p
			types[numTabs] = typ
			if cat >= 0 && heads[cat].IsNull() {
				heads[cat] = mem.FieldPtr[mem.Pointer[PouchItem]](mgr.self, "Tabs."+strconv.Itoa(numTabs))
			}
			numTabs++
			inTab = 0
			cur = cat
		}
		if p == last {
			lastTab, lastSlot = int32(numTabs-1), int32(inTab)
		}
		inTab++
	}

	if err := mem.WriteField(mgr.m, mgr.self, "Tabs", tabs); err != nil {
		return err
	}
	if err := mem.WriteField(mgr.m, mgr.self, "TabsType", types); err != nil {
		return err
	}
	if err := mem.WriteField(mgr.m, mgr.self, "ListHeads", heads); err != nil {
		return err
	}
	if err := mem.WriteField(mgr.m, mgr.self, "NumTabs", int32(numTabs)); err != nil {
		return err
	}
	if err := mem.WriteField(mgr.m, mgr.self, "LastAddedItemTab", lastTab); err != nil {
		return err
	}
	return mem.WriteField(mgr.m, mgr.self, "LastAddedItemSlot", lastSlot)
}

// Remove unlinks an item while the game is running. References to it are
// cleared, and the slot is reconstructed and parked on the graveyard.
func (mgr *Manager) Remove(item mem.Pointer[PouchItem]) error {
	if err := mgr.requireActive(item); err != nil {
		return err
	}
	if err := mgr.clearRefs(item); err != nil {
		return err
	}
	if err := mgr.Active().Erase(item); err != nil {
		return err
	}
	if err := ConstructItem(mgr.m, item); err != nil {
		return err
	}
	if err := mgr.Graveyard().PushFront(item); err != nil {
		return err
	}
	if err := mgr.rebuildTabs(); err != nil {
		return err
	}
	mgr.log().Debug("item removed", "op", "remove", "item", item)
	return mgr.Sync()
}

func (mgr *Manager) requireActive(item mem.Pointer[PouchItem]) error {
	if _, err := mgr.SlotIndex(item); err != nil {
		return err
	}
	ok, err := mgr.Active().Contains(item)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotInList, item)
	}
	return nil
}

// clearRefs nulls every manager reference equal to item.
func (mgr *Manager) clearRefs(item mem.Pointer[PouchItem]) error {
	st, err := mgr.self.Read(mgr.m)
	if err != nil {
		return err
	}
	null := mem.Null[PouchItem]()
	refs := map[string]mem.Pointer[PouchItem]{
		"LastAddedItem":  st.LastAddedItem,
		"Item444f0":      st.Item444f0,
		"RitoSoulItem":   st.RitoSoulItem,
		"GoronSoulItem":  st.GoronSoulItem,
		"ZoraSoulItem":   st.ZoraSoulItem,
		"GerudoSoulItem": st.GerudoSoulItem,
	}
	for i, g := range st.GrabbedItems {
		refs["GrabbedItems."+strconv.Itoa(i)+".Item"] = g.Item
	}
	for i, w := range st.EquippedWeapons {
		refs["EquippedWeapons."+strconv.Itoa(i)] = w
	}
	for path, p := range refs {
		if p != item {
			continue
		}
		if err := mem.WriteField(mgr.m, mgr.self, path, null); err != nil {
			return err
		}
	}
	return nil
}

func (mgr *Manager) clearEquipMirror(item mem.Pointer[PouchItem]) error {
	weapons, err := mem.ReadField[[NumEquippedWeapons]mem.Pointer[PouchItem]](mgr.m, mgr.self, "EquippedWeapons")
	if err != nil {
		return err
	}
	for i, w := range weapons {
		if w != item {
			continue
		}
		if err := mem.WriteField(mgr.m, mgr.self, "EquippedWeapons."+strconv.Itoa(i), mem.Null[PouchItem]()); err != nil {
			return err
		}
	}
	return nil
}

// Drop hides an item while the menu is open. It stays linked and keeps its
// slot.
func (mgr *Manager) Drop(item mem.Pointer[PouchItem]) error {
	if _, err := mgr.SlotIndex(item); err != nil {
		return err
	}
	if err := mem.WriteField(mgr.m, item, "InInventory", layout.BoolOf(false)); err != nil {
		return err
	}
	mgr.log().Debug("item dropped", "op", "drop", "item", item)
	return mgr.Sync()
}

// SetValue overwrites an item's value: durability, count or ammo.
func (mgr *Manager) SetValue(item mem.Pointer[PouchItem], value int32) error {
	if _, err := mgr.SlotIndex(item); err != nil {
		return err
	}
	if err := mem.WriteField(mgr.m, item, "Value", value); err != nil {
		return err
	}
	mgr.log().Debug("value set", "op", "set-value", "item", item, "value", value)
	return mgr.Sync()
}

// Equip sets an item's equipped flag. Swords, bows, arrows and shields are
// also recorded in the equipped-weapon slot for their type.
func (mgr *Manager) Equip(item mem.Pointer[PouchItem]) error {
	if _, err := mgr.SlotIndex(item); err != nil {
		return err
	}
	if err := mem.WriteField(mgr.m, item, "Equipped", layout.BoolOf(true)); err != nil {
		return err
	}
	typ, err := mem.ReadField[ItemType](mgr.m, item, "Type")
	if err != nil {
		return err
	}
	if typ >= 0 && int(typ) < NumEquippedWeapons {
		if err := mem.WriteField(mgr.m, mgr.self, "EquippedWeapons."+strconv.Itoa(int(typ)), item); err != nil {
			return err
		}
	}
	mgr.log().Debug("item equipped", "op", "equip", "item", item)
	return mgr.Sync()
}

// Unequip clears an item's equipped flag and any equipped-weapon slot
// holding it.
func (mgr *Manager) Unequip(item mem.Pointer[PouchItem]) error {
	if _, err := mgr.SlotIndex(item); err != nil {
		return err
	}
	if err := mem.WriteField(mgr.m, item, "Equipped", layout.BoolOf(false)); err != nil {
		return err
	}
	if err := mgr.clearEquipMirror(item); err != nil {
		return err
	}
	mgr.log().Debug("item unequipped", "op", "unequip", "item", item)
	return mgr.Sync()
}

// OpenPauseMenu walks the whole active list without changing anything. A
// cycle or broken link is reported as an offsetlist.ErrCorruptList; the game
// would freeze on it.
func (mgr *Manager) OpenPauseMenu() error {
	n := 0
	err := mgr.Active().Walk(func(mem.Pointer[PouchItem]) error {
		n++
		return nil
	})
	if err != nil {
		mgr.log().Warn("inventory list corrupt", "op", "pause", "error", err)
		return fmt.Errorf("pouch: open pause menu: %w", err)
	}
	mgr.log().Debug("pause menu opened", "op", "pause", "count", n)
	return nil
}

// OffsetCapacity moves n units of count from the active list to the
// graveyard without moving any element. n must fit a list count.
func (mgr *Manager) OffsetCapacity(n uint32) error {
	if n > math.MaxInt32 {
		return fmt.Errorf("%w: %d", ErrCountRange, n)
	}
	if err := mgr.Active().AddCount(-int32(n)); err != nil {
		return err
	}
	if err := mgr.Graveyard().AddCount(int32(n)); err != nil {
		return err
	}
	mgr.log().Debug("capacity offset", "op", "offset", "count", n)
	return mgr.Sync()
}

// AddIngredient appends name to the item's ingredient array.
func (mgr *Manager) AddIngredient(item mem.Pointer[PouchItem], name string) error {
	if _, err := mgr.SlotIndex(item); err != nil {
		return err
	}
	if err := addIngredient(mgr.m, item, name); err != nil {
		return err
	}
	return mgr.Sync()
}

func addIngredient(m *mem.Memory, item mem.Pointer[PouchItem], name string) error {
	elem, err := ingredients(m, item).Acquire()
	if err != nil {
		return fmt.Errorf("pouch: ingredient %q: %w", name, err)
	}
	var s FixedSafeString
	s.Init(elem)
	s.Set(name)
	if err := mem.WriteField(m, elem, "StringTop", s.StringTop); err != nil {
		return err
	}
	if err := mem.WriteField(m, elem, "BufferSize", s.BufferSize); err != nil {
		return err
	}
	return mem.WriteField(m, elem, "Buffer", s.Buffer)
}

// Ingredients returns the names held in the item's ingredient array, in
// slot order.
func (mgr *Manager) Ingredients(item mem.Pointer[PouchItem]) ([]string, error) {
	if _, err := mgr.SlotIndex(item); err != nil {
		return nil, err
	}
	arr := ingredients(mgr.m, item)
	free, err := arr.FreeSlots()
	if err != nil {
		return nil, err
	}
	var out []string
	for i := range arr.Capacity() {
		if slices.Contains(free, arr.Slot(i)) {
			continue
		}
		s, err := arr.Elem(i).Read(mgr.m)
		if err != nil {
			return nil, err
		}
		out = append(out, s.String())
	}
	return out, nil
}
