package pouch

import "fmt"

const (
	// NumPouchItemsMax is the number of fixed item slots.
	NumPouchItemsMax = 420
	// NumIngredientsMax is the capacity of an item's ingredient array.
	NumIngredientsMax = 5
	// NumPouchCategories is the number of inventory categories.
	NumPouchCategories = 7
	// NumTabMax is the number of inventory tabs.
	NumTabMax = 50
	// NumGrabbableItems is the number of items the player can hold up at once.
	NumGrabbableItems = 5
	// NumEquippedWeapons is the number of weapon mirror slots.
	NumEquippedWeapons = 4
)

// ItemType is the item's native type tag.
type ItemType int32

const (
	ItemTypeSword      ItemType = 0
	ItemTypeBow        ItemType = 1
	ItemTypeArrow      ItemType = 2
	ItemTypeShield     ItemType = 3
	ItemTypeArmorHead  ItemType = 4
	ItemTypeArmorUpper ItemType = 5
	ItemTypeArmorLower ItemType = 6
	ItemTypeMaterial   ItemType = 7
	ItemTypeFood       ItemType = 8
	ItemTypeKeyItem    ItemType = 9
	ItemTypeInvalid    ItemType = -1
)

var itemTypeNames = map[ItemType]string{
	ItemTypeSword:      "Sword",
	ItemTypeBow:        "Bow",
	ItemTypeArrow:      "Arrow",
	ItemTypeShield:     "Shield",
	ItemTypeArmorHead:  "ArmorHead",
	ItemTypeArmorUpper: "ArmorUpper",
	ItemTypeArmorLower: "ArmorLower",
	ItemTypeMaterial:   "Material",
	ItemTypeFood:       "Food",
	ItemTypeKeyItem:    "KeyItem",
	ItemTypeInvalid:    "Invalid",
}

func (t ItemType) String() string {
	if s, ok := itemTypeNames[t]; ok {
		return s
	}
	return fmt.Sprintf("ItemType(%d)", int32(t))
}

// ParseItemType maps a type name back to its value.
func ParseItemType(s string) (ItemType, error) {
	for t, name := range itemTypeNames {
		if name == s {
			return t, nil
		}
	}
	return ItemTypeInvalid, fmt.Errorf("pouch: unknown item type %q", s)
}

// IsWeapon reports whether the item's payload holds weapon-modifier fields.
func (t ItemType) IsWeapon() bool {
	return t == ItemTypeSword || t == ItemTypeBow || t == ItemTypeShield
}

// Category returns the inventory tab category the type is listed under.
func (t ItemType) Category() Category {
	switch t {
	case ItemTypeSword:
		return CategorySword
	case ItemTypeBow, ItemTypeArrow:
		return CategoryBow
	case ItemTypeShield:
		return CategoryShield
	case ItemTypeArmorHead, ItemTypeArmorUpper, ItemTypeArmorLower:
		return CategoryArmor
	case ItemTypeMaterial:
		return CategoryMaterial
	case ItemTypeFood:
		return CategoryFood
	case ItemTypeKeyItem:
		return CategoryKeyItem
	default:
		return CategoryInvalid
	}
}

// DefaultUse returns the use category a freshly acquired item of this type gets.
func (t ItemType) DefaultUse() ItemUse {
	switch t {
	case ItemTypeSword:
		return ItemUseWeaponSmallSword
	case ItemTypeBow:
		return ItemUseWeaponBow
	case ItemTypeShield:
		return ItemUseWeaponShield
	case ItemTypeArmorHead:
		return ItemUseArmorHead
	case ItemTypeArmorUpper:
		return ItemUseArmorUpper
	case ItemTypeArmorLower:
		return ItemUseArmorLower
	case ItemTypeArrow, ItemTypeMaterial:
		return ItemUseItem
	case ItemTypeFood:
		return ItemUseCureItem
	case ItemTypeKeyItem:
		return ItemUseImportantItem
	default:
		return ItemUseInvalid
	}
}

// Category is an inventory tab category.
type Category int32

const (
	CategorySword    Category = 0
	CategoryBow      Category = 1
	CategoryShield   Category = 2
	CategoryArmor    Category = 3
	CategoryMaterial Category = 4
	CategoryFood     Category = 5
	CategoryKeyItem  Category = 6
	CategoryInvalid  Category = -1
)

func (c Category) String() string {
	switch c {
	case CategorySword:
		return "Sword"
	case CategoryBow:
		return "Bow"
	case CategoryShield:
		return "Shield"
	case CategoryArmor:
		return "Armor"
	case CategoryMaterial:
		return "Material"
	case CategoryFood:
		return "Food"
	case CategoryKeyItem:
		return "KeyItem"
	case CategoryInvalid:
		return "Invalid"
	}
	return fmt.Sprintf("Category(%d)", int32(c))
}

// ItemUse is the item's use category.
type ItemUse int32

const (
	ItemUseWeaponSmallSword ItemUse = 0
	ItemUseWeaponLargeSword ItemUse = 1
	ItemUseWeaponSpear      ItemUse = 2
	ItemUseWeaponBow        ItemUse = 3
	ItemUseWeaponShield     ItemUse = 4
	ItemUseArmorHead        ItemUse = 5
	ItemUseArmorLower       ItemUse = 6
	ItemUseArmorUpper       ItemUse = 7
	ItemUseItem             ItemUse = 8
	ItemUseImportantItem    ItemUse = 9
	ItemUseCureItem         ItemUse = 10
	ItemUseInvalid          ItemUse = -1
)

// WeaponModifier is a bit set of weapon bonus flags.
type WeaponModifier uint32

const (
	WeaponModifierNone          WeaponModifier = 0x0
	WeaponModifierAddAtk        WeaponModifier = 0x1
	WeaponModifierAddLife       WeaponModifier = 0x2
	WeaponModifierAddCrit       WeaponModifier = 0x4
	WeaponModifierAddThrow      WeaponModifier = 0x8
	WeaponModifierAddSpreadFire WeaponModifier = 0x10
	WeaponModifierAddZoomRapid  WeaponModifier = 0x20
	WeaponModifierAddRapidFire  WeaponModifier = 0x40
	WeaponModifierAddSurfMaster WeaponModifier = 0x80
	WeaponModifierAddGuard      WeaponModifier = 0x100
	WeaponModifierIsYellow      WeaponModifier = 0x80000000
)

// Has reports whether every bit of f is set.
func (w WeaponModifier) Has(f WeaponModifier) bool { return w&f == f }

// MarshalText encodes the type by name.
func (t ItemType) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

// UnmarshalText accepts the names produced by MarshalText.
func (t *ItemType) UnmarshalText(b []byte) error {
	v, err := ParseItemType(string(b))
	if err != nil {
		return err
	}
	*t = v
	return nil
}
