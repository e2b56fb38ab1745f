package pouch

import (
	"github.com/joshuapare/pouchkit/layout"
	"github.com/joshuapare/pouchkit/mem"
	"github.com/joshuapare/pouchkit/offsetlist"
)

// MutexType mirrors the native mutex.
type MutexType struct {
	State       uint8
	IsRecursive layout.Bool
	Pad0        [2]byte
	LockLevel   int32
	NestCount   int32
	Pad1        [4]byte
	OwnerThread uint64
	Mutex       int32
	Pad2        [4]byte
}

// CriticalSection mirrors the disposer-backed critical section.
type CriticalSection struct {
	Vptr         uint64
	DisposerHeap uint64
	ListNode     offsetlist.Node
	Inner        MutexType
}

// Lists holds the two item lists and the fixed item slots they thread.
type Lists struct {
	List1  offsetlist.Header[PouchItem]
	List2  offsetlist.Header[PouchItem]
	Buffer [NumPouchItemsMax]PouchItem
}

// GrabbedItemInfo is one held-up item record.
type GrabbedItemInfo struct {
	Item mem.Pointer[PouchItem]
	U8   layout.Bool
	U9   layout.Bool
	Pad0 [6]byte
}

// PauseMenuDataMgr mirrors the manager object (0x44808 bytes).
type PauseMenuDataMgr struct {
	Vptr                 uint64
	SingletonDisposerBuf [8]uint32
	CritSection          CriticalSection
	ItemLists            Lists
	ListHeads            [NumPouchCategories]mem.Pointer[mem.Pointer[PouchItem]]
	Tabs                 [NumTabMax]mem.Pointer[PouchItem]
	TabsType             [NumTabMax]ItemType
	LastAddedItem        mem.Pointer[PouchItem]
	LastAddedItemTab     int32
	LastAddedItemSlot    int32
	NumTabs              int32
	Pad0                 [4]byte
	GrabbedItems         [NumGrabbableItems]GrabbedItemInfo
	Item444f0            mem.Pointer[PouchItem]
	Unk444f8             int32
	Unk444fc             int32
	Unk44500             int32
	Unk44504             uint32
	Unk44508             uint32
	Unk4450c             uint32
	Unk44510             uint32
	Unk44514             uint32
	RitoSoulItem         mem.Pointer[PouchItem]
	GoronSoulItem        mem.Pointer[PouchItem]
	ZoraSoulItem         mem.Pointer[PouchItem]
	GerudoSoulItem       mem.Pointer[PouchItem]
	CanSeeHealthBar      layout.Bool
	Pad1                 [7]byte
	NewlyAddedItem       PouchItem
	IsPouchForQuest      layout.Bool
	Pad2                 [7]byte
	EquippedWeapons      [NumEquippedWeapons]mem.Pointer[PouchItem]
	CategoryToSort       Category
	Pad3                 [4]byte
}

// ManagerSize is the native size of PauseMenuDataMgr.
var ManagerSize = layout.SizeOf[PauseMenuDataMgr]()

// soulFields name the champion-ability item references.
var soulFields = []string{"RitoSoulItem", "GoronSoulItem", "ZoraSoulItem", "GerudoSoulItem"}
