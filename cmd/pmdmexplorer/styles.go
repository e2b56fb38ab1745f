package main

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/joshuapare/pouchkit/pouch"
)

var (
	primaryColor   = lipgloss.Color("#7D56F4")
	secondaryColor = lipgloss.Color("#00D7FF")
	successColor   = lipgloss.Color("#04B575")
	warningColor   = lipgloss.Color("#FFA500")
	errorColor     = lipgloss.Color("#FF4B4B")
	mutedColor     = lipgloss.Color("#666666")

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			Background(lipgloss.Color("#1A1A1A")).
			Padding(0, 1)

	pathStyle = lipgloss.NewStyle().
			Foreground(secondaryColor).
			Italic(true)

	paneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primaryColor).
			Padding(0, 1)

	tabStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Width(4)

	rowSelectedStyle = lipgloss.NewStyle().
				Background(primaryColor).
				Foreground(lipgloss.Color("#FFFFFF")).
				Bold(true)

	equippedStyle = lipgloss.NewStyle().Foreground(successColor)
	droppedStyle  = lipgloss.NewStyle().Foreground(mutedColor).Strikethrough(true)

	statusStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Background(lipgloss.Color("#1A1A1A")).
			Padding(0, 1)

	helpTitleStyle = headerStyle.MarginBottom(1)
	helpKeyStyle   = lipgloss.NewStyle().Foreground(secondaryColor).Bold(true).Width(12)
	helpDescStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FAFAFA"))

	errorStyle = lipgloss.NewStyle().Foreground(errorColor).Bold(true)
)

// typeColors tints the type column per category.
var typeColors = map[pouch.Category]lipgloss.Color{
	pouch.CategorySword:    lipgloss.Color("#FF8787"),
	pouch.CategoryBow:      lipgloss.Color("#FFAF5F"),
	pouch.CategoryShield:   lipgloss.Color("#87AFFF"),
	pouch.CategoryArmor:    lipgloss.Color("#AF87FF"),
	pouch.CategoryMaterial: lipgloss.Color("#87D787"),
	pouch.CategoryFood:     warningColor,
	pouch.CategoryKeyItem:  secondaryColor,
}

func typeStyle(t pouch.ItemType) lipgloss.Style {
	s := lipgloss.NewStyle().Width(11)
	if c, ok := typeColors[t.Category()]; ok {
		s = s.Foreground(c)
	}
	return s
}

// truncate shortens s to maxLen bytes, marking the cut with an ellipsis.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:max(maxLen, 0)]
	}
	return s[:maxLen-3] + "..."
}
