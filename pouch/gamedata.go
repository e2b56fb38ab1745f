package pouch

import (
	"errors"
	"fmt"

	"github.com/joshuapare/pouchkit/mem"
)

// GameDataItem is the saved form of one inventory entry.
type GameDataItem struct {
	Name        string      `json:"name"`
	Type        ItemType    `json:"type"`
	Value       int32       `json:"value"`
	Equipped    bool        `json:"equipped"`
	Cook        *CookData   `json:"cook,omitempty"`
	Weapon      *WeaponData `json:"weapon,omitempty"`
	Ingredients []string    `json:"ingredients,omitempty"`
}

// GameData is the saved inventory, in list order.
type GameData []GameDataItem

var errSaved = errors.New("saved")

// Save records the first Count entries of the active list. Entries past
// the count, such as those cut off by OffsetCapacity, are not saved.
func (mgr *Manager) Save() (GameData, error) {
	active := mgr.Active()
	count, err := active.Count()
	if err != nil {
		return nil, err
	}
	out := GameData{}
	err = active.Walk(func(p mem.Pointer[PouchItem]) error {
		if len(out) >= count {
			return errSaved
		}
		it, err := p.Read(mgr.m)
		if err != nil {
			return err
		}
		rec := GameDataItem{
			Name:     it.Name.String(),
			Type:     it.Type,
			Value:    it.Value,
			Equipped: it.Equipped.Get(),
		}
		switch v := it.Payload().(type) {
		case CookData:
			rec.Cook = &v
		case WeaponData:
			rec.Weapon = &v
		}
		if rec.Ingredients, err = mgr.Ingredients(p); err != nil {
			return err
		}
		out = append(out, rec)
		return nil
	})
	if err != nil && !errors.Is(err, errSaved) {
		return nil, err
	}
	mgr.log().Debug("inventory saved", "op", "save", "count", len(out))
	return out, nil
}

// Load replaces the inventory with data. Both lists are rebuilt from
// scratch, every slot is reconstructed and the records are added in order,
// then sorted. Records of the invalid type are skipped, as acquiring them
// would be, and equipped records are equipped like Equip does.
func (mgr *Manager) Load(data GameData) error {
	if len(data) > NumPouchItemsMax {
		return fmt.Errorf("%w: %d records", ErrInventoryFull, len(data))
	}
	if err := mgr.resetLists(); err != nil {
		return err
	}
	for i, rec := range data {
		if rec.Type == ItemTypeInvalid {
			mgr.log().Debug("skipped invalid record", "op", "load", "index", i, "name", rec.Name)
			continue
		}
		var payload Payload
		switch {
		case rec.Cook != nil:
			payload = *rec.Cook
		case rec.Weapon != nil:
			payload = *rec.Weapon
		}
		p, err := mgr.addNew(rec.Name, rec.Type, rec.Value, payload)
		if err != nil {
			return fmt.Errorf("pouch: load record %d (%s): %w", i, rec.Name, err)
		}
		if rec.Equipped {
			if err := mgr.Equip(p); err != nil {
				return err
			}
		}
		for _, ing := range rec.Ingredients {
			if err := addIngredient(mgr.m, p, ing); err != nil {
				return err
			}
		}
	}
	if err := mgr.resort(); err != nil {
		return err
	}
	mgr.log().Debug("inventory loaded", "op", "load", "count", len(data))
	return mgr.Sync()
}

// resetLists empties both lists, reconstructs every slot onto the graveyard
// and clears every item reference the manager holds.
func (mgr *Manager) resetLists() error {
	active, graveyard := mgr.Active(), mgr.Graveyard()
	if err := active.Init(LinkOffset); err != nil {
		return err
	}
	if err := graveyard.Init(LinkOffset); err != nil {
		return err
	}
	for i := range NumPouchItemsMax {
		p := mgr.Slot(i)
		if err := ConstructItem(mgr.m, p); err != nil {
			return fmt.Errorf("pouch: construct slot %d: %w", i, err)
		}
		if err := graveyard.PushBack(p); err != nil {
			return err
		}
	}

	null := mem.Null[PouchItem]()
	paths := append([]string{"LastAddedItem", "Item444f0"}, soulFields...)
	for _, path := range paths {
		if err := mem.WriteField(mgr.m, mgr.self, path, null); err != nil {
			return err
		}
	}
	for i := range NumGrabbableItems {
		if err := mem.WriteField(mgr.m, mgr.self, fmt.Sprintf("GrabbedItems.%d.Item", i), null); err != nil {
			return err
		}
	}
	var weapons [NumEquippedWeapons]mem.Pointer[PouchItem]
	if err := mem.WriteField(mgr.m, mgr.self, "EquippedWeapons", weapons); err != nil {
		return err
	}
	return mgr.rebuildTabs()
}

// Construct writes a pristine manager image at addr: both lists empty
// apart from every slot parked on the graveyard, no tabs and no item
// references.
func Construct(m *mem.Memory, addr uint64) error {
	self := mem.Pointer[PauseMenuDataMgr](addr)
	img := PauseMenuDataMgr{CategoryToSort: CategoryInvalid}
	if err := self.Write(m, img); err != nil {
		return err
	}
	mgr := &Manager{m: m, self: self, opts: DefaultOptions()}
	if err := ConstructItem(m, mem.FieldPtr[PouchItem](self, "NewlyAddedItem")); err != nil {
		return err
	}
	return mgr.resetLists()
}
