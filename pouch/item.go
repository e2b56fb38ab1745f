package pouch

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	"github.com/joshuapare/pouchkit/layout"
	"github.com/joshuapare/pouchkit/mem"
	"github.com/joshuapare/pouchkit/offsetlist"
	"github.com/joshuapare/pouchkit/slab"
)

// StringCapacity is the buffer size of the fixed strings used for names.
const StringCapacity = 64

// FixedSafeString mirrors a string object with an inline 64-byte buffer.
type FixedSafeString struct {
	Vptr       uint64
	StringTop  mem.Pointer[byte]
	BufferSize int32
	Buffer     [StringCapacity]byte
	Pad0       [4]byte
}

// String returns the NUL-terminated buffer contents. Bytes that are not valid
// UTF-8 are decoded as Windows-1252.
func (s FixedSafeString) String() string {
	b := s.Buffer[:]
	if i := indexNUL(b); i >= 0 {
		b = b[:i]
	}
	if utf8.Valid(b) {
		return string(b)
	}
	out, err := charmap.Windows1252.NewDecoder().Bytes(b)
	if err != nil {
		return strings.ToValidUTF8(string(b), "?")
	}
	return string(out)
}

func indexNUL(b []byte) int {
	for i, c := range b {
		if c == 0 {
			return i
		}
	}
	return -1
}

// Set replaces the contents with v, truncated to fit with its terminator.
// Truncation never splits a UTF-8 sequence.
func (s *FixedSafeString) Set(v string) {
	limit := len(s.Buffer) - 1
	if len(v) > limit {
		v = v[:limit]
		for len(v) > 0 && !utf8.ValidString(v) {
			v = v[:len(v)-1]
		}
	}
	clear(s.Buffer[:])
	copy(s.Buffer[:], v)
}

// Init points the string at its own buffer, which lives at self, and empties
// it. The vtable pointer is left alone.
func (s *FixedSafeString) Init(self mem.Pointer[FixedSafeString]) {
	s.StringTop = mem.FieldPtr[byte](self, "Buffer")
	s.BufferSize = StringCapacity
	clear(s.Buffer[:])
}

// CookData is the payload of a Food item.
type CookData struct {
	HealthRecover  int32
	EffectDuration int32
	SellPrice      int32
	EffectID       float32
	EffectLevel    float32
}

// WeaponData is the payload of a Sword, Bow or Shield.
type WeaponData struct {
	ModifierValue uint32
	Unused        uint32
	Modifier      WeaponModifier
}

// WeaponModifierInfo is the modifier record handed to AcquireItem.
type WeaponModifierInfo struct {
	Flags WeaponModifier
	Value int32
}

// Payload is the effect payload sharing the item's data bytes. Which variant
// is live is decided by the owning item's type.
type Payload interface {
	isPayload()
}

func (CookData) isPayload()   {}
func (WeaponData) isPayload() {}

// DefaultCookData is the payload written into freshly constructed items.
var DefaultCookData = CookData{EffectID: -1}

// PouchItem mirrors one inventory slot (0x298 bytes).
type PouchItem struct {
	Vptr        uint64
	ListNode    offsetlist.Node
	Type        ItemType
	Use         ItemUse
	Value       int32
	Equipped    layout.Bool
	InInventory layout.Bool
	Pad0        [2]byte
	Name        FixedSafeString
	Data        [20]byte
	Pad1        [4]byte
	Ingredients IngredientArray
}

// IngredientArray mirrors the item's fixed object array of ingredient names.
type IngredientArray struct {
	Header slab.Header
	Work   [NumIngredientsMax]slab.Node[FixedSafeString]
}

// LinkOffset is the offset of the list node inside PouchItem.
var LinkOffset = int32(layout.OffsetOf[PouchItem]("ListNode"))

// Cook decodes the data bytes as cooking fields.
func (it *PouchItem) Cook() CookData {
	v, _ := layout.Of[CookData]().Decode(it.Data[:])
	return v
}

// Weapon decodes the data bytes as weapon-modifier fields.
func (it *PouchItem) Weapon() WeaponData {
	v, _ := layout.Of[WeaponData]().Decode(it.Data[:])
	return v
}

// Payload returns the live payload variant, or nil for types that carry none.
func (it *PouchItem) Payload() Payload {
	switch {
	case it.Type == ItemTypeFood:
		return it.Cook()
	case it.Type.IsWeapon():
		return it.Weapon()
	}
	return nil
}

// SetPayload overwrites the leading data bytes with p. Bytes past the
// variant's size are kept, as with the native union.
func (it *PouchItem) SetPayload(p Payload) {
	var b []byte
	switch v := p.(type) {
	case CookData:
		b, _ = layout.Of[CookData]().Encode(&v)
	case WeaponData:
		b, _ = layout.Of[WeaponData]().Encode(&v)
	}
	copy(it.Data[:], b)
}

// ingredients returns the allocator over the ingredient array of the item at p.
func ingredients(m *mem.Memory, p mem.Pointer[PouchItem]) *slab.Allocator[FixedSafeString] {
	return slab.At[FixedSafeString](m, mem.FieldPtr[slab.Header](p, "Ingredients.Header"), NumIngredientsMax)
}

// ConstructItem writes a freshly constructed item into the slot at p: links
// NULL, type and use Invalid, value 0, in inventory, empty name and an empty
// ingredient array. Vtable pointers already present in the slot are kept.
func ConstructItem(m *mem.Memory, p mem.Pointer[PouchItem]) error {
	var it PouchItem
	if old, err := p.Read(m); err == nil {
		it.Vptr = old.Vptr
		it.Name.Vptr = old.Name.Vptr
		for i := range it.Ingredients.Work {
			it.Ingredients.Work[i].Elem.Vptr = old.Ingredients.Work[i].Elem.Vptr
		}
	}
	it.Type = ItemTypeInvalid
	it.Use = ItemUseInvalid
	it.InInventory = layout.BoolOf(true)
	it.Name.Init(mem.FieldPtr[FixedSafeString](p, "Name"))
	it.SetPayload(DefaultCookData)

	arr := ingredients(m, p)
	for i := range it.Ingredients.Work {
		it.Ingredients.Work[i].Elem.Init(arr.Elem(i))
	}
	if err := p.Write(m, it); err != nil {
		return err
	}
	return arr.Construct()
}
