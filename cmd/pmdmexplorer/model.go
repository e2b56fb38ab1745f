package main

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/joshuapare/pouchkit/cmd/pmdmexplorer/itemdetail"
	"github.com/joshuapare/pouchkit/cmd/pmdmexplorer/virtuallist"
	"github.com/joshuapare/pouchkit/dump"
	"github.com/joshuapare/pouchkit/pouch"
)

// Layout constants
const (
	headerHeight = 3
	statusHeight = 1
	paneChrome   = 2 // pane border top and bottom
)

// Model is the main application model
type Model struct {
	path  string
	names dump.Translations
	keys  KeyMap

	inv    *Inventory
	list   *virtuallist.Renderer
	detail itemdetail.Model

	width  int
	height int

	showHelp      bool
	statusMessage string
	copy          func(string) error

	err error
}

// inventoryLoadedMsg carries the result of reading the capture.
type inventoryLoadedMsg struct {
	inv *Inventory
	err error
}

// NewModel creates a new TUI model
func NewModel(path string, names dump.Translations) Model {
	if names == nil {
		names = dump.Translations{}
	}
	return Model{
		path:   path,
		names:  names,
		keys:   DefaultKeyMap(),
		list:   virtuallist.New(rowList{}),
		detail: itemdetail.New(),
		copy:   clipboard.WriteAll,
	}
}

func (m Model) Init() tea.Cmd {
	return m.load()
}

func (m Model) load() tea.Cmd {
	path, names := m.path, m.names
	return func() tea.Msg {
		inv, err := LoadInventory(path, names)
		return inventoryLoadedMsg{inv: inv, err: err}
	}
}

// Current returns the row under the cursor, or nil for an empty list.
func (m Model) Current() *Row {
	if m.inv == nil || len(m.inv.Rows) == 0 {
		return nil
	}
	return &m.inv.Rows[m.list.Cursor()]
}

// jumpTab moves the cursor to the start of the next tab, or for dir < 0
// to the start of the current tab and then the previous one.
func (m Model) jumpTab(dir int) {
	cur := m.Current()
	if cur == nil {
		return
	}
	want := cur.Tab + 1
	if dir < 0 {
		want = cur.Tab
		if m.list.Cursor() == firstOfTab(m.inv.Rows, cur.Tab) {
			want--
		}
	}
	if i := firstOfTab(m.inv.Rows, want); i >= 0 {
		m.list.SetCursor(i)
	}
}

func firstOfTab(rows []Row, tab int) int {
	for i, r := range rows {
		if r.Tab == tab {
			return i
		}
	}
	return -1
}

func (m Model) resize() {
	m.list.SetSize(max(m.width-4, 0), max(m.height-headerHeight-statusHeight-paneChrome, 1))
}

// detailFields describes r for the popup.
func detailFields(r *Row) []itemdetail.Field {
	fields := []itemdetail.Field{
		{Label: "Name", Value: r.Name},
		{Label: "Address", Value: r.Addr.String()},
		{Label: "Type", Value: r.Type.String()},
		{Label: "Value", Value: fmt.Sprint(r.Value)},
		{Label: "Equipped", Value: fmt.Sprint(r.Equipped)},
		{Label: "In inventory", Value: fmt.Sprint(r.InInventory)},
		{Label: "Tab", Value: fmt.Sprint(r.Tab)},
	}
	switch p := r.Payload.(type) {
	case pouch.CookData:
		fields = append(fields,
			itemdetail.Field{Label: "Health", Value: fmt.Sprint(p.HealthRecover)},
			itemdetail.Field{Label: "Duration", Value: fmt.Sprint(p.EffectDuration)},
			itemdetail.Field{Label: "Sell price", Value: fmt.Sprint(p.SellPrice)},
			itemdetail.Field{Label: "Effect", Value: fmt.Sprintf("%g (level %g)", p.EffectID, p.EffectLevel)},
		)
	case pouch.WeaponData:
		fields = append(fields,
			itemdetail.Field{Label: "Modifier", Value: fmt.Sprintf("0x%x", uint32(p.Modifier))},
			itemdetail.Field{Label: "Mod value", Value: fmt.Sprint(p.ModifierValue)},
		)
	}
	if len(r.Ingredients) > 0 {
		fields = append(fields, itemdetail.Field{Label: "Ingredients", Value: strings.Join(r.Ingredients, ", ")})
	}
	return fields
}

// rowList adapts inventory rows to the virtual list.
type rowList struct {
	rows []Row
}

func (l rowList) Len() int { return len(l.rows) }

func (l rowList) RenderRow(i int, selected bool, width int) string {
	r := l.rows[i]
	tab := ""
	if i == 0 || l.rows[i-1].Tab != r.Tab {
		tab = fmt.Sprintf("%d", r.Tab)
	}
	flags := ""
	switch {
	case r.Equipped:
		flags = equippedStyle.Render(" [E]")
	case !r.InInventory:
		flags = " [dropped]"
	}
	name := truncate(r.Display, max(width-32, 8))
	if !r.InInventory {
		name = droppedStyle.Render(name)
	}
	line := fmt.Sprintf("%s%s %-s %6d%s", tabStyle.Render(tab), typeStyle(r.Type).Render(r.Type.String()), name, r.Value, flags)
	if selected {
		return rowSelectedStyle.Render(line)
	}
	return line
}
