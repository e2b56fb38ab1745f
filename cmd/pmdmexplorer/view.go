package main

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	overlay "github.com/rmhubbert/bubbletea-overlay"
)

// View renders the entire UI
func (m Model) View() string {
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v\n\nPress q to quit.", m.err))
	}
	if m.showHelp {
		return m.renderHelp()
	}
	if m.detail.Visible() {
		// rebuilt each frame so the background reflects the current model
		return overlay.New(&m.detail, background{m}, overlay.Center, overlay.Center, 0, 0).View()
	}
	return m.renderMain()
}

func (m Model) renderMain() string {
	return lipgloss.JoinVertical(lipgloss.Left, m.renderHeader(), m.renderList(), m.renderStatus())
}

func (m Model) renderHeader() string {
	title := lipgloss.JoinHorizontal(lipgloss.Top,
		headerStyle.Render("Inventory Explorer"),
		"  ",
		pathStyle.Render(m.path),
	)
	sub := ""
	if m.inv != nil {
		sub = pathStyle.Render(fmt.Sprintf("Manager at 0x%x", m.inv.Addr))
	}
	return lipgloss.JoinVertical(lipgloss.Left, title, sub, "")
}

func (m Model) renderList() string {
	body := "Loading..."
	if m.inv != nil {
		body = m.list.View()
	}
	return paneStyle.Width(max(m.width-2, 0)).Render(body)
}

func (m Model) renderStatus() string {
	parts := []string{}
	if m.inv != nil {
		parts = append(parts, m.inv.Status())
	}
	if m.statusMessage != "" {
		parts = append(parts, m.statusMessage)
	}
	parts = append(parts, "? help")
	return statusStyle.Render(strings.Join(parts, " | "))
}

func (m Model) renderHelp() string {
	var b strings.Builder
	b.WriteString(helpTitleStyle.Render("Keyboard Shortcuts"))
	b.WriteString("\n")
	for _, k := range m.keys.FullHelp() {
		h := k.Help()
		b.WriteString(helpKeyStyle.Render(h.Key) + helpDescStyle.Render(h.Desc) + "\n")
	}
	b.WriteString("\nPress ? or esc to close")
	return b.String()
}

// background presents the main view as a tea.Model for the overlay.
type background struct {
	m Model
}

func (b background) Init() tea.Cmd                       { return nil }
func (b background) Update(tea.Msg) (tea.Model, tea.Cmd) { return b, nil }
func (b background) View() string                        { return b.m.renderMain() }
