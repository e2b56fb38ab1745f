// Package layout describes the byte layout of native structures mirrored as
// Go structs.
//
// # Overview
//
// A mirror type is a Go struct whose fields appear in the same order and
// with the same sizes as the native object, with every padding gap spelled
// out as an exported byte-array field. Because every field is fixed size and
// padding is a real field, decoding and re-encoding a value reproduces the
// source bytes exactly:
//
//	type itemHeader struct {
//	    Vptr     uint64
//	    Type     int32
//	    Equipped bool
//	    Pad0     [3]byte
//	}
//
// # Codecs
//
// Of[T] builds (and caches) a Codec for a mirror type. The codec knows the
// encoded size and the byte offset of every field path:
//
//	c := layout.Of[itemHeader]()
//	c.Size()              // 16
//	c.Offset("Equipped")  // 12
//
// Paths use dots for nested struct fields and decimal segments for array
// elements, e.g. "Lists.Buffer.3.Value".
//
// # Field encoding
//
// EncodeField returns just the bytes of one field taken from a Go value.
// It is the building block for partial writes: the memory layer writes those
// bytes at base+Offset(path) and never touches neighbouring fields.
//
// All integers are little-endian, matching the captured target.
package layout
