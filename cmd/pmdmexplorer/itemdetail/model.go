// Package itemdetail is the scrollable popup that shows one item in full.
package itemdetail

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	fieldStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#00D7FF")).Width(14)
	boxStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#7D56F4")).
			Padding(1, 2)
)

// Field is one labelled line of the popup.
type Field struct {
	Label string
	Value string
}

// Model implements tea.Model so it can be drawn as an overlay.
type Model struct {
	viewport viewport.Model
	title    string
	fields   []Field
	width    int
	height   int
	visible  bool
}

func New() Model {
	return Model{viewport: viewport.New(0, 0)}
}

func (m *Model) Init() tea.Cmd { return nil }

// Show opens the popup with the given content.
func (m *Model) Show(title string, fields []Field) {
	m.title, m.fields, m.visible = title, fields, true
	m.render()
	m.viewport.GotoTop()
}

func (m *Model) Hide() {
	m.visible = false
	m.fields = nil
}

func (m *Model) Visible() bool { return m.visible }

// Content is the unstyled popup text, one field per line.
func (m *Model) Content() string {
	var b strings.Builder
	b.WriteString(m.title)
	for _, f := range m.fields {
		b.WriteString("\n" + f.Label + ": " + f.Value)
	}
	return b.String()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		m.width, m.height = ws.Width, ws.Height
		// 80% of the screen minus border and padding
		m.viewport.Width = m.width*8/10 - 6
		m.viewport.Height = m.height*8/10 - 4
		m.render()
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *Model) View() string {
	return boxStyle.Render(m.viewport.View())
}

func (m *Model) render() {
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.title))
	b.WriteString("\n")
	for _, f := range m.fields {
		b.WriteString("\n" + fieldStyle.Render(f.Label) + f.Value)
	}
	m.viewport.SetContent(b.String())
}
