package virtuallist

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type rows int

func (r rows) Len() int { return int(r) }

func (r rows) RenderRow(i int, selected bool, _ int) string {
	if selected {
		return fmt.Sprintf("> %d", i)
	}
	return fmt.Sprintf("  %d", i)
}

func TestRenderer_Scroll(t *testing.T) {
	r := New(rows(100))
	r.SetSize(20, 10)

	r.SetCursor(15)
	assert.Equal(t, 15, r.Cursor())
	assert.Equal(t, 6, r.Offset())

	r.SetCursor(3)
	assert.Equal(t, 3, r.Offset())

	r.SetCursor(500)
	assert.Equal(t, 99, r.Cursor())
	assert.Equal(t, 90, r.Offset())

	r.Move(-200)
	assert.Equal(t, 0, r.Cursor())
	assert.Equal(t, 0, r.Offset())
}

func TestRenderer_View(t *testing.T) {
	r := New(rows(5))
	r.SetSize(20, 3)
	r.SetCursor(4)

	lines := strings.Split(r.View(), "\n")
	assert.Contains(t, lines[0], "2")
	assert.Contains(t, lines[2], "> 4")
}

func TestRenderer_Shrink(t *testing.T) {
	r := New(rows(50))
	r.SetSize(20, 10)
	r.SetCursor(49)

	r.SetSource(rows(3))
	assert.Equal(t, 2, r.Cursor())
	assert.Equal(t, 0, r.Offset())

	r.SetSource(rows(0))
	assert.Equal(t, "(empty)", r.View())
}
