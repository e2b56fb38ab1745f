package main

import (
	"fmt"

	"github.com/joshuapare/pouchkit/dump"
	"github.com/joshuapare/pouchkit/mem"
	"github.com/joshuapare/pouchkit/pouch"
	"github.com/joshuapare/pouchkit/verify"
)

// Row is one inventory entry as shown in the list.
type Row struct {
	Tab         int
	Addr        mem.Pointer[pouch.PouchItem]
	Name        string
	Display     string
	Type        pouch.ItemType
	Value       int32
	Equipped    bool
	InInventory bool
	Payload     pouch.Payload
	Ingredients []string
}

// Inventory is a loaded capture.
type Inventory struct {
	Path      string
	Addr      uint64
	Rows      []Row
	NumTabs   int
	Graveyard int
	Problem   error // first invariant violation, nil when valid
}

// LoadInventory reads a capture and flattens its active list.
func LoadInventory(path string, names dump.Translations) (*Inventory, error) {
	snap, err := dump.Open(path, pouch.ManagerSize)
	if err != nil {
		return nil, err
	}
	m, err := mem.FromSnapshot(snap.Addr, snap.Data)
	if err != nil {
		return nil, err
	}
	mgr, err := pouch.New(m, snap.Addr, pouch.DefaultOptions())
	if err != nil {
		return nil, err
	}
	inv := &Inventory{Path: path, Addr: snap.Addr}
	if err := mgr.OpenPauseMenu(); err != nil {
		// a broken list cannot be walked; report it instead of the rows
		inv.Problem = err
		return inv, nil
	}
	inv.Problem = verify.AllInvariants(mgr)

	st := mgr.State()
	inv.NumTabs = int(st.NumTabs)
	inv.Graveyard = int(st.ItemLists.List2.Count)

	items, err := mgr.Items()
	if err != nil {
		return nil, err
	}
	tab := -1
	for _, p := range items {
		it, err := mgr.Item(p)
		if err != nil {
			return nil, err
		}
		ings, err := mgr.Ingredients(p)
		if err != nil {
			return nil, err
		}
		for tab+1 < inv.NumTabs && tab+1 < pouch.NumTabMax && st.Tabs[tab+1] == p {
			tab++
		}
		name := it.Name.String()
		inv.Rows = append(inv.Rows, Row{
			Tab:         tab,
			Addr:        p,
			Name:        name,
			Display:     names.Display(name),
			Type:        it.Type,
			Value:       it.Value,
			Equipped:    it.Equipped.Get(),
			InInventory: it.InInventory.Get(),
			Payload:     it.Payload(),
			Ingredients: ings,
		})
	}
	return inv, nil
}

// Status is the one-line summary shown in the status bar.
func (inv *Inventory) Status() string {
	s := fmt.Sprintf("%d items, %d tabs, %d free slots", len(inv.Rows), inv.NumTabs, inv.Graveyard)
	if inv.Problem != nil {
		s += " | INVALID"
	}
	return s
}
