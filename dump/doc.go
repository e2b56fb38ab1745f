// Package dump reads and writes manager captures and their companion files.
//
// A capture is the manager's address as an 8-byte little-endian integer
// followed by exactly the manager's native bytes:
//
//	offset  size  field
//	0x00    8     manager address (LE)
//	0x08    N     PauseMenuDataMgr image
//
// The package also loads the identifier to display-name table used to show
// items, and stores saved inventories as JSON.
package dump
