package tui_test

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/tsload/internal/adapters/tui"
)

func lines(n int) string {
	var b strings.Builder
	for i := 1; i <= n; i++ {
		fmt.Fprintf(&b, "line%d\r\n", i)
	}
	return b.String()
}

func TestVterm_FollowsBottom(t *testing.T) {
	t.Parallel()
	vt := tui.NewVterm()
	vt.SetWidth(40)
	vt.SetHeight(3)

	_, _ = vt.Write([]byte(lines(6)))

	view := vt.View()
	assert.Contains(t, view, "line6")
	assert.NotContains(t, view, "line1")
	assert.Equal(t, vt.UsedHeight()-3, vt.Offset)
}

func TestVterm_ScrolledUpStays(t *testing.T) {
	t.Parallel()
	vt := tui.NewVterm()
	vt.SetWidth(40)
	vt.SetHeight(3)
	_, _ = vt.Write([]byte(lines(6)))

	vt.Update(tea.KeyMsg{Type: tea.KeyHome})
	assert.Equal(t, 0, vt.Offset)

	_, _ = vt.Write([]byte(lines(2)))
	assert.Equal(t, 0, vt.Offset)
	assert.Contains(t, vt.View(), "line1")
}

func TestVterm_Keys(t *testing.T) {
	t.Parallel()
	vt := tui.NewVterm()
	vt.SetWidth(40)
	vt.SetHeight(2)
	_, _ = vt.Write([]byte(lines(10)))
	bottom := vt.Offset

	vt.Update(tea.KeyMsg{Type: tea.KeyPgUp})
	assert.Equal(t, bottom-2, vt.Offset)

	vt.Update(tea.KeyMsg{Type: tea.KeyPgDown})
	assert.Equal(t, bottom, vt.Offset)

	vt.Update(tea.KeyMsg{Type: tea.KeyPgDown})
	assert.Equal(t, bottom, vt.Offset, "offset is clamped")

	vt.Update(tea.KeyMsg{Type: tea.KeyHome})
	vt.Update(tea.KeyMsg{Type: tea.KeyPgUp})
	assert.Equal(t, 0, vt.Offset)

	vt.Update(tea.KeyMsg{Type: tea.KeyEnd})
	assert.Equal(t, bottom, vt.Offset)

	vt.Update(tea.WindowSizeMsg{})
	assert.Equal(t, bottom, vt.Offset)
}

func TestVterm_Reset(t *testing.T) {
	t.Parallel()
	vt := tui.NewVterm()
	vt.SetWidth(40)
	vt.SetHeight(2)
	_, _ = vt.Write([]byte(lines(4)))

	vt.Reset()
	assert.NotContains(t, vt.View(), "line")
	assert.Equal(t, 0, vt.Offset)
	assert.Equal(t, 40, vt.Width)
}

func TestVterm_MinimumSize(t *testing.T) {
	t.Parallel()
	vt := tui.NewVterm()
	vt.SetWidth(0)
	vt.SetHeight(-1)
	assert.Equal(t, 1, vt.Width)
	assert.Equal(t, 1, vt.Height)
}
