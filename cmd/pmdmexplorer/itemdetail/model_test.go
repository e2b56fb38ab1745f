package itemdetail

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestShowHide(t *testing.T) {
	m := New()
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	assert.False(t, m.Visible())

	m.Show("Weapon_Sword_001", []Field{{"Type", "Sword"}, {"Value", "30"}})
	assert.True(t, m.Visible())
	assert.Equal(t, "Weapon_Sword_001\nType: Sword\nValue: 30", m.Content())
	assert.Contains(t, m.View(), "Weapon_Sword_001")
	assert.Equal(t, 74, m.viewport.Width)
	assert.Equal(t, 28, m.viewport.Height)

	m.Hide()
	assert.False(t, m.Visible())
}
