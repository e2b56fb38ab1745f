// Package offsetlist reconstructs the target's intrusive doubly linked list.
//
// # Overview
//
// Each element embeds a Node {Prev, Next} at a fixed byte offset declared in
// the list header. Links point at other elements' embedded nodes, or at the
// header's own sentinel node, never at element starts:
//
//	Header{StartEnd, Count, Offset}
//	   sentinel.Next -> elem0+Offset -> elem1+Offset -> ... -> sentinel
//
// A List is a stateless handle: every operation reads and writes the header
// and links through mem, so the captured bytes are always the only state.
//
// # Corruption
//
// Full traversals remember every link address they visit. Reaching a link
// twice before returning to the sentinel, or meeting a NULL link, fails with
// ErrCorruptList instead of looping. The error is terminal: the list is not
// repaired, since the broken capture is what the caller needs to see.
//
// Count is bookkeeping and may legitimately disagree with the number of
// linked elements (see AddCount), so traversals stop at the sentinel, not
// after Count steps. Nth is bounded by Count.
package offsetlist
