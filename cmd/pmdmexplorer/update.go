package main

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/joshuapare/pouchkit/internal/logger"
)

// Update handles all messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()
		m.detail.Update(msg)
		return m, m.list.Update(msg)

	case inventoryLoadedMsg:
		if msg.err != nil {
			logger.Error("failed to load capture", "path", m.path, "error", msg.err)
			m.err = msg.err
			return m, nil
		}
		m.inv = msg.inv
		m.list.SetSource(rowList{rows: m.inv.Rows})
		if m.inv.Problem != nil {
			logger.Warn("capture fails validation", "path", m.path, "error", m.inv.Problem)
			m.statusMessage = m.inv.Problem.Error()
		}
		logger.Debug("capture loaded", "path", m.path, "items", len(m.inv.Rows))
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}
	if m.showHelp {
		if key.Matches(msg, m.keys.Esc, m.keys.Help) {
			m.showHelp = false
		}
		return m, nil
	}
	if m.detail.Visible() {
		switch {
		case key.Matches(msg, m.keys.Esc, m.keys.Enter):
			m.detail.Hide()
		case key.Matches(msg, m.keys.Up, m.keys.Down, m.keys.PageUp, m.keys.PageDown):
			_, cmd := m.detail.Update(msg)
			return m, cmd
		}
		return m, nil
	}
	if m.err != nil {
		return m, nil
	}

	m.statusMessage = ""
	switch {
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
	case key.Matches(msg, m.keys.Up):
		m.list.Move(-1)
	case key.Matches(msg, m.keys.Down):
		m.list.Move(1)
	case key.Matches(msg, m.keys.PageUp):
		m.list.Move(-m.list.Page())
	case key.Matches(msg, m.keys.PageDown):
		m.list.Move(m.list.Page())
	case key.Matches(msg, m.keys.Home):
		m.list.SetCursor(0)
	case key.Matches(msg, m.keys.End):
		m.list.SetCursor(m.list.Cursor() + len(m.inv.Rows))
	case key.Matches(msg, m.keys.NextTab):
		m.jumpTab(1)
	case key.Matches(msg, m.keys.PrevTab):
		m.jumpTab(-1)
	case key.Matches(msg, m.keys.Enter):
		if r := m.Current(); r != nil {
			m.detail.Show(r.Display, detailFields(r))
		}
	case key.Matches(msg, m.keys.Copy):
		if r := m.Current(); r != nil {
			if err := m.copy(r.Name); err != nil {
				m.statusMessage = fmt.Sprintf("copy failed: %v", err)
			} else {
				m.statusMessage = "copied " + r.Name
			}
		}
	case key.Matches(msg, m.keys.Reload):
		m.statusMessage = "reloading..."
		return m, m.load()
	}
	return m, nil
}
