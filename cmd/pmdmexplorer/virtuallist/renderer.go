// Package virtuallist renders only the visible window of a long list.
package virtuallist

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// Source is a list that can render its rows one at a time.
type Source interface {
	Len() int
	RenderRow(i int, selected bool, width int) string
}

// Renderer keeps a cursor and a scroll offset over a Source.
type Renderer struct {
	src      Source
	viewport viewport.Model
	cursor   int
	offset   int
	width    int
	height   int
}

func New(src Source) *Renderer {
	return &Renderer{src: src, viewport: viewport.New(0, 0)}
}

// SetSource swaps the underlying list and clamps the cursor to it.
func (r *Renderer) SetSource(src Source) {
	r.src = src
	r.SetCursor(r.cursor)
}

func (r *Renderer) SetSize(width, height int) {
	r.width, r.height = width, height
	r.viewport.Width, r.viewport.Height = width, height
	r.scrollToCursor()
}

func (r *Renderer) Cursor() int { return r.cursor }

// Offset is the index of the first visible row.
func (r *Renderer) Offset() int { return r.offset }

// SetCursor moves the cursor, clamped to the list, and scrolls it into view.
func (r *Renderer) SetCursor(i int) {
	n := r.src.Len()
	r.cursor = max(0, min(i, n-1))
	r.scrollToCursor()
}

// Move shifts the cursor by delta rows.
func (r *Renderer) Move(delta int) { r.SetCursor(r.cursor + delta) }

// Page is the number of rows shown at once.
func (r *Renderer) Page() int { return max(1, r.height) }

// Update only forwards resizes. Keys are handled by the owner through
// SetCursor, otherwise the viewport would scroll a second time.
func (r *Renderer) Update(msg tea.Msg) tea.Cmd {
	if _, ok := msg.(tea.WindowSizeMsg); !ok {
		return nil
	}
	var cmd tea.Cmd
	r.viewport, cmd = r.viewport.Update(msg)
	return cmd
}

func (r *Renderer) View() string {
	n := r.src.Len()
	if n == 0 {
		return "(empty)"
	}
	end := min(r.offset+r.Page(), n)
	rows := make([]string, 0, end-r.offset)
	for i := r.offset; i < end; i++ {
		rows = append(rows, r.src.RenderRow(i, i == r.cursor, r.width))
	}
	r.viewport.SetContent(strings.Join(rows, "\n"))
	return r.viewport.View()
}

func (r *Renderer) scrollToCursor() {
	h := r.Page()
	if r.cursor < r.offset {
		r.offset = r.cursor
	}
	if r.cursor >= r.offset+h {
		r.offset = r.cursor - h + 1
	}
	r.offset = max(0, min(r.offset, r.src.Len()-h))
}
