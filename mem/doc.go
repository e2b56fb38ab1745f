// Package mem models the captured heap of a target process as a sparse set of
// byte blocks and provides typed, pointer-style access to it.
//
// # Overview
//
// A Memory holds independently sized blocks keyed by base address. Captures
// arrive fragmented; every write leaves the store as the minimal set of
// non-overlapping, non-adjacent blocks, absorbing and bridging fragments the
// way a real memory manager would:
//
//	m := mem.New()
//	_ = m.WriteBytes(0x10000000, headerBytes)
//	_ = m.WriteBytes(0x10000010, bodyBytes) // merged with the header block
//
// Every access is checked against a valid address Window modelling the
// target's address space layout. Reads of bytes that were never captured fail
// with ErrUninitialized rather than returning zeros.
//
// # Typed access
//
// Pointer[T] is a bare address tagged with the type it points to. It owns
// nothing and mirrors native pointer arithmetic:
//
//	item := mem.Pointer[Item](addr)
//	link := mem.Cast[ListNode](item.Add(8))
//	node, err := link.Read(m)
//
// Whole objects are encoded and decoded through layout codecs, so padding is
// preserved byte-for-byte. WriteField writes a single field's bytes without
// materialising the owning object.
//
// # Views
//
// A View caches a decoded copy of one object. Any write may alias fields of
// a cached object, so code that mutates memory through field writes must
// Refresh every view it holds afterwards. View.Set does both.
//
// # Thread Safety
//
// Memory is not safe for concurrent use. Multi-step sequences such as
// unlinking a list node are read-modify-write chains over several fields and
// must be serialised as a whole by the caller.
package mem
