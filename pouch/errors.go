package pouch

import "errors"

var (
	// ErrInventoryFull is returned when no item slot is free for a new item.
	ErrInventoryFull = errors.New("pouch: no free item slot")
	// ErrNotInList is returned when an item is not linked into the active list.
	ErrNotInList = errors.New("pouch: item not in inventory list")
	// ErrBadLayout is returned when the manager's lists disagree with the
	// native item layout.
	ErrBadLayout = errors.New("pouch: unexpected list link offset")
	// ErrNotSlot is returned for item pointers outside the fixed item slots.
	ErrNotSlot = errors.New("pouch: pointer is not an item slot")
	// ErrCountRange is returned for a count offset that does not fit a list
	// count.
	ErrCountRange = errors.New("pouch: count offset out of range")
)
