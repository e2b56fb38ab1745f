package offsetlist

import (
	"errors"
	"fmt"
)

// ErrCorruptList indicates a link chain that cycles or breaks before
// returning to the sentinel.
var ErrCorruptList = errors.New("offsetlist: corrupt list")

// CorruptListError describes where a traversal detected corruption.
type CorruptListError struct {
	List   uint64 // address of the list header
	Link   uint64 // offending link address
	Step   int    // links followed before the fault
	Reason string
}

func (e *CorruptListError) Error() string {
	return fmt.Sprintf("offsetlist: corrupt list at 0x%x: %s (link 0x%x, step %d)", e.List, e.Reason, e.Link, e.Step)
}

func (e *CorruptListError) Unwrap() error { return ErrCorruptList }
