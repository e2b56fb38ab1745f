// Package verify checks the structural invariants of a captured inventory.
//
// # Overview
//
// The checks are read-only and are used by tests and by the CLI's validate
// command to decide whether a capture, or the result of a sequence of
// operations on it, is still well formed:
//   - Blocks: the memory store is a minimal set of sorted, disjoint blocks
//     inside the valid window
//   - ListLinks: every next link is mirrored by the following node's prev
//     link and the walk returns to the sentinel without revisiting a node
//   - ListCount: the recorded count equals the number of linked elements
//   - Slab: used slots plus free-list length equals capacity
//   - Manager: all of the above for both item lists and every item, plus
//     category order, tab heads and slot accounting
//
// # ValidationError
//
// Every check returns a *ValidationError on failure:
//
//	err := verify.Manager(mgr)
//	var verr *verify.ValidationError
//	if errors.As(err, &verr) {
//	    fmt.Printf("%s at 0x%x: %s\n", verr.Type, verr.Address, verr.Message)
//	}
//
// A List* error caused by a cycle also wraps offsetlist.ErrCorruptList.
package verify
