// Package buf contains bounds and endian helpers shared by the memory model.
package buf

import "encoding/binary"

// nativeLittle is true when the host stores integers little-endian.
var nativeLittle = binary.NativeEndian.Uint16([]byte{1, 0}) == 1

// U64LE reads a little-endian uint64 from b. Returns 0 when b is too short.
func U64LE(b []byte) uint64 {
	if len(b) < 8 {
		return 0
	}
	return binary.LittleEndian.Uint64(b)
}

// I32LE reads a little-endian int32 from b. Returns 0 when b is too short.
func I32LE(b []byte) int32 {
	if len(b) < 4 {
		return 0
	}
	return int32(binary.LittleEndian.Uint32(b))
}

// PutU64LE writes v to b in little-endian order. b must hold 8 bytes.
func PutU64LE(b []byte, v uint64) {
	binary.LittleEndian.PutUint64(b[:8], v)
}

// FromLE converts a word whose bytes were taken verbatim from little-endian
// target memory into the host's native representation.
func FromLE(v uint64) uint64 {
	if nativeLittle {
		return v
	}
	return swap64(v)
}

// ToLE converts a native word into the byte order of the target.
func ToLE(v uint64) uint64 {
	return FromLE(v)
}

func swap64(v uint64) uint64 {
	var b [8]byte
	binary.NativeEndian.PutUint64(b[:], v)
	return binary.LittleEndian.Uint64(b[:])
}
