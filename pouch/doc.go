// Package pouch replays the game's inventory manager against a captured heap.
//
// # Overview
//
// The manager object (PauseMenuDataMgr, 0x44808 bytes) owns 420 fixed item
// slots and two intrusive lists threaded through them:
//
//   - the active list holds the items shown in the inventory, kept sorted by
//     category so each category forms a contiguous run;
//   - the graveyard list holds spare slots, and absorbs count bookkeeping
//     moved out of the active list by OffsetCapacity.
//
// A Manager is a handle bound to the manager's address in a mem.Memory. Every
// operation is expressed as field writes through that address, never as a
// detached copy written back wholesale, and every mutating operation ends
// with Sync so cached views match memory again.
//
// # Usage Example
//
//	snap, err := dump.Open("pmdm.bin", pouch.ManagerSize)
//	if err != nil {
//	    return err
//	}
//	m, err := mem.FromSnapshot(snap.Addr, snap.Data)
//	if err != nil {
//	    return err
//	}
//	mgr, err := pouch.New(m, snap.Addr, pouch.DefaultOptions())
//	if err != nil {
//	    return err
//	}
//	if err := mgr.OpenPauseMenu(); err != nil {
//	    return err // corrupt list; the capture cannot be trusted
//	}
//	err = mgr.AcquireItem("Weapon_Sword_001", pouch.ItemTypeSword, 14, mem.Null[pouch.WeaponModifierInfo]())
//
// # Extension points
//
// New-slot selection (Options.SelectSlot) and the active-list ordering
// (Options.Compare) are pluggable. The defaults reuse graveyard slots first
// and order by category only, keeping insertion order within a category.
//
// # Thread Safety
//
// A Manager and its Memory are single-threaded. Wrap the whole session in a
// mutex if it must be shared.
package pouch
