package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/pouchkit/dump"
	"github.com/joshuapare/pouchkit/internal/testutil"
	"github.com/joshuapare/pouchkit/pouch"
)

// testHelper drives a Model without a terminal.
type testHelper struct {
	t      *testing.T
	model  Model
	copied []string
}

func newTestHelper(t *testing.T, path string, names dump.Translations) *testHelper {
	t.Helper()
	h := &testHelper{t: t, model: NewModel(path, names)}
	h.model.copy = func(s string) error {
		h.copied = append(h.copied, s)
		return nil
	}
	h.send(tea.WindowSizeMsg{Width: 100, Height: 30})
	// run the load command synchronously
	h.send(h.model.Init()())
	return h
}

func (h *testHelper) send(msg tea.Msg) tea.Cmd {
	updated, cmd := h.model.Update(msg)
	h.model = updated.(Model)
	return cmd
}

func (h *testHelper) key(k string) tea.Cmd {
	switch k {
	case "enter":
		return h.send(tea.KeyMsg{Type: tea.KeyEnter})
	case "esc":
		return h.send(tea.KeyMsg{Type: tea.KeyEsc})
	case "tab":
		return h.send(tea.KeyMsg{Type: tea.KeyTab})
	case "shift+tab":
		return h.send(tea.KeyMsg{Type: tea.KeyShiftTab})
	case "down":
		return h.send(tea.KeyMsg{Type: tea.KeyDown})
	}
	return h.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)})
}

func (h *testHelper) current() string {
	h.t.Helper()
	r := h.model.Current()
	require.NotNil(h.t, r)
	return r.Name
}

func fixture(t *testing.T) string {
	t.Helper()
	mgr, _ := testutil.NewManager(t,
		testutil.Item{Name: "Item_Fruit_A", Type: pouch.ItemTypeMaterial, Value: 3},
		testutil.Item{Name: "Weapon_Sword_001", Type: pouch.ItemTypeSword, Value: 30},
		testutil.Item{Name: "Weapon_Sword_002", Type: pouch.ItemTypeSword, Value: 25},
		testutil.Item{Name: "Item_Cook_C_17", Type: pouch.ItemTypeFood, Value: 1},
	)
	return testutil.WriteCapture(t, mgr)
}

func TestLoadInventory(t *testing.T) {
	inv, err := LoadInventory(fixture(t), dump.Translations{"Item_Fruit_A": "Apple"})
	require.NoError(t, err)
	require.NoError(t, inv.Problem)

	require.Len(t, inv.Rows, 4)
	assert.Equal(t, 3, inv.NumTabs)
	assert.Equal(t, pouch.NumPouchItemsMax-4, inv.Graveyard)

	var tabs []int
	for _, r := range inv.Rows {
		tabs = append(tabs, r.Tab)
	}
	assert.Equal(t, []int{0, 0, 1, 2}, tabs)
	assert.Equal(t, "Apple", inv.Rows[2].Display)
	assert.IsType(t, pouch.WeaponData{}, inv.Rows[0].Payload)
	assert.IsType(t, pouch.CookData{}, inv.Rows[3].Payload)
	assert.Equal(t, "4 items, 3 tabs, 416 free slots", inv.Status())
}

func TestLoadInventory_Missing(t *testing.T) {
	_, err := LoadInventory(filepath.Join(t.TempDir(), "none.bin"), nil)
	require.Error(t, err)
}

func TestNavigation(t *testing.T) {
	h := newTestHelper(t, fixture(t), nil)
	assert.Equal(t, "Weapon_Sword_001", h.current())

	h.key("tab")
	assert.Equal(t, "Item_Fruit_A", h.current())
	h.key("tab")
	assert.Equal(t, "Item_Cook_C_17", h.current())
	h.key("tab")
	assert.Equal(t, "Item_Cook_C_17", h.current())

	h.key("shift+tab")
	assert.Equal(t, "Item_Fruit_A", h.current())
	h.key("G")
	h.key("k")
	h.key("shift+tab")
	assert.Equal(t, "Weapon_Sword_001", h.current())

	h.key("g")
	h.key("down")
	assert.Equal(t, "Weapon_Sword_002", h.current())
	h.key("shift+tab")
	assert.Equal(t, "Weapon_Sword_001", h.current())
}

func TestDetailAndCopy(t *testing.T) {
	h := newTestHelper(t, fixture(t), nil)

	h.key("enter")
	require.True(t, h.model.detail.Visible())
	assert.Contains(t, h.model.detail.Content(), "Type: Sword")
	assert.Contains(t, h.model.detail.Content(), "Value: 30")
	assert.Contains(t, h.model.View(), "Weapon_Sword_001")

	h.key("esc")
	assert.False(t, h.model.detail.Visible())

	h.key("c")
	assert.Equal(t, []string{"Weapon_Sword_001"}, h.copied)
	assert.Contains(t, h.model.View(), "copied Weapon_Sword_001")

	h.model.copy = func(string) error { return errors.New("no clipboard") }
	h.key("c")
	assert.Contains(t, h.model.statusMessage, "no clipboard")
}

func TestHelpAndQuit(t *testing.T) {
	h := newTestHelper(t, fixture(t), nil)

	h.key("?")
	assert.Contains(t, h.model.View(), "Keyboard Shortcuts")
	h.key("j")
	assert.Equal(t, 0, h.model.list.Cursor())
	h.key("esc")
	assert.False(t, h.model.showHelp)

	cmd := h.key("q")
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestReload(t *testing.T) {
	path := fixture(t)
	h := newTestHelper(t, path, nil)
	require.Len(t, h.model.inv.Rows, 4)

	mgr, _ := testutil.NewManager(t,
		testutil.Item{Name: "Obj_KorokNuts", Type: pouch.ItemTypeKeyItem, Value: 1})
	blob, err := os.ReadFile(testutil.WriteCapture(t, mgr))
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, blob, 0o644))

	cmd := h.key("r")
	require.NotNil(t, cmd)
	h.send(cmd())
	require.Len(t, h.model.inv.Rows, 1)
	assert.Equal(t, "Obj_KorokNuts", h.current())
}

func TestLoadError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "short.bin")
	require.NoError(t, os.WriteFile(path, []byte{1, 2, 3}, 0o644))

	h := newTestHelper(t, path, nil)
	require.Error(t, h.model.err)
	assert.Contains(t, h.model.View(), "Error:")
}

func TestParseArgs(t *testing.T) {
	o, err := parseArgs([]string{"-d", "pmdm.bin", "-t", "names.json"})
	require.NoError(t, err)
	assert.Equal(t, options{debug: true, translations: "names.json", path: "pmdm.bin"}, o)

	_, err = parseArgs([]string{"-t"})
	require.Error(t, err)
	_, err = parseArgs(nil)
	require.Error(t, err)
}
