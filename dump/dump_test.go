package dump

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/pouchkit/internal/writer"
	"github.com/joshuapare/pouchkit/pouch"
)

func TestParse(t *testing.T) {
	blob := []byte{0xb0, 0xc8, 0x82, 0xa9, 0x02, 0, 0, 0, 1, 2, 3, 4}

	s, err := Parse(blob, 4)
	require.NoError(t, err)
	assert.Equal(t, uint64(0x2a982c8b0), s.Addr)
	assert.Equal(t, []byte{1, 2, 3, 4}, s.Data)
	assert.Equal(t, uint64(0x200000000), s.HeapBase())
	assert.Equal(t, blob, Encode(s))
}

func TestParse_SizeMismatch(t *testing.T) {
	tests := []struct {
		name   string
		blob   []byte
		actual int
	}{
		{"short body", make([]byte, 10), 2},
		{"long body", make([]byte, 20), 12},
		{"no header", make([]byte, 3), -5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.blob, 4)
			require.ErrorIs(t, err, ErrSizeMismatch)
			var se *SizeError
			require.ErrorAs(t, err, &se)
			assert.Equal(t, 4, se.Expected)
			assert.Equal(t, tt.actual, se.Actual)
		})
	}
}

func TestOpenAndWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pmdm.bin")
	want := Snapshot{Addr: 0x2a982c8b0, Data: bytes.Repeat([]byte{0xab}, 64)}
	require.NoError(t, WriteFile(path, want))

	got, err := Open(path, 64)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	_, err = Open(path, 65)
	require.ErrorIs(t, err, ErrSizeMismatch)

	_, err = Open(filepath.Join(t.TempDir(), "missing.bin"), 64)
	require.ErrorIs(t, err, os.ErrNotExist)

	r, err := Read(bytes.NewReader(Encode(want)), 64)
	require.NoError(t, err)
	assert.Equal(t, want, r)
}

func TestTranslations(t *testing.T) {
	tr, err := LoadTranslations(strings.NewReader(`{
		"Weapon_Sword_001": "Traveler's Sword",
		"Weapon_Sword_002": "Soldier's Broadsword",
		"Item_Fruit_A": "Apple"
	}`))
	require.NoError(t, err)

	name, err := tr.Translate("Item_Fruit_A")
	require.NoError(t, err)
	assert.Equal(t, "Apple", name)

	_, err = tr.Translate("Item_Fruit_Z")
	require.ErrorIs(t, err, ErrNoTranslation)
	assert.Equal(t, "Item_Fruit_Z", tr.Display("Item_Fruit_Z"))
	assert.Equal(t, "Traveler's Sword", tr.Display("Weapon_Sword_001"))

	assert.Equal(t, []string{"Weapon_Sword_001", "Weapon_Sword_002"}, tr.Suggest("Weapon_Sword_00", 2))
	assert.Equal(t, []string{"Item_Fruit_A"}, tr.Suggest("Item_Fruit_Z", 1))
	assert.Len(t, tr.Suggest("x", 10), 3)

	_, err = LoadTranslations(strings.NewReader(`[1, 2]`))
	require.Error(t, err)
}

func TestGameDataJSON(t *testing.T) {
	data := pouch.GameData{
		{Name: "Weapon_Sword_001", Type: pouch.ItemTypeSword, Value: 30, Equipped: true,
			Weapon: &pouch.WeaponData{ModifierValue: 5, Modifier: pouch.WeaponModifierAddAtk}},
		{Name: "Item_Cook_C_17", Type: pouch.ItemTypeFood, Value: 1,
			Cook: &pouch.CookData{HealthRecover: 8, EffectID: -1}, Ingredients: []string{"Item_Fruit_A"}},
	}
	var out bytes.Buffer
	require.NoError(t, WriteGameData(&out, data))
	assert.Contains(t, out.String(), `"type": "Sword"`)

	got, err := ReadGameData(&out)
	require.NoError(t, err)
	assert.Equal(t, data, got)
}

func TestWriteTo(t *testing.T) {
	var w writer.MemWriter
	s := Snapshot{Addr: 0x8000000, Data: []byte{1, 2}}
	require.NoError(t, WriteTo(&w, s))
	got, err := Parse(w.Buf, 2)
	require.NoError(t, err)
	assert.Equal(t, s, got)
}
