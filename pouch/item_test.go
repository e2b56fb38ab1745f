package pouch

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixedSafeString_Set(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"short", "Weapon_Sword_001", "Weapon_Sword_001"},
		{"exact fit", strings.Repeat("a", 63), strings.Repeat("a", 63)},
		{"truncated", strings.Repeat("b", 80), strings.Repeat("b", 63)},
		{"keeps runes whole", strings.Repeat("a", 62) + "é", strings.Repeat("a", 62)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s FixedSafeString
			s.Set("previous contents that are longer")
			s.Set(tt.in)
			assert.Equal(t, tt.want, s.String())
			assert.Equal(t, byte(0), s.Buffer[len(s.Buffer)-1])
		})
	}
}

func TestFixedSafeString_NonUTF8(t *testing.T) {
	var s FixedSafeString
	copy(s.Buffer[:], []byte{'C', 'a', 'f', 0xe9})
	assert.Equal(t, "Café", s.String())
}

func TestPayload_FollowsType(t *testing.T) {
	var it PouchItem
	it.SetPayload(CookData{HealthRecover: 12, EffectID: 3, EffectLevel: 1.5})

	it.Type = ItemTypeFood
	assert.Equal(t, CookData{HealthRecover: 12, EffectID: 3, EffectLevel: 1.5}, it.Payload())

	it.Type = ItemTypeMaterial
	assert.Nil(t, it.Payload())

	it.Type = ItemTypeBow
	it.SetPayload(WeaponData{ModifierValue: 5, Modifier: WeaponModifierAddRapidFire})
	assert.Equal(t, WeaponData{ModifierValue: 5, Modifier: WeaponModifierAddRapidFire}, it.Payload())
	// the union keeps the bytes the weapon variant does not cover
	assert.Equal(t, float32(1.5), it.Cook().EffectLevel)
}

func TestItemType(t *testing.T) {
	assert.Equal(t, CategoryBow, ItemTypeArrow.Category())
	assert.Equal(t, CategoryArmor, ItemTypeArmorLower.Category())
	assert.Equal(t, CategoryInvalid, ItemTypeInvalid.Category())
	assert.Equal(t, ItemUseArmorLower, ItemTypeArmorLower.DefaultUse())
	assert.Equal(t, "ItemType(42)", ItemType(42).String())
	assert.Equal(t, "Category(9)", Category(9).String())

	b, err := json.Marshal(GameDataItem{Name: "x", Type: ItemTypeShield})
	require.NoError(t, err)
	assert.Contains(t, string(b), `"type":"Shield"`)

	var rec GameDataItem
	require.NoError(t, json.Unmarshal(b, &rec))
	assert.Equal(t, ItemTypeShield, rec.Type)
	require.Error(t, json.Unmarshal([]byte(`{"type":"Spoon"}`), &rec))
}
