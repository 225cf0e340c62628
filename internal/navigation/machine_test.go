package navigation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func selected(t *testing.T, m *Machine) int {
	t.Helper()
	i, ok := m.Selected()
	if !ok {
		t.Fatal("expected a selection")
	}
	return i
}

func TestNewSelectsFirstRow(t *testing.T) {
	t.Parallel()
	m := New(3)
	assert.Equal(t, 0, selected(t, m))
	assert.Equal(t, PaneList, m.Focus())
}

func TestEmptyHasNoSelection(t *testing.T) {
	t.Parallel()
	m := New(0)
	m.Next()
	m.Previous()
	m.First()
	m.Last()
	_, ok := m.Selected()
	assert.False(t, ok)
}

func TestListWraparound(t *testing.T) {
	t.Parallel()
	m := New(3)

	m.Next()
	m.Next()
	assert.Equal(t, 2, selected(t, m))
	m.Next()
	assert.Equal(t, 0, selected(t, m), "next from the last row wraps to the top")

	m.Previous()
	assert.Equal(t, 2, selected(t, m), "previous from the top wraps to the bottom")
	m.Previous()
	assert.Equal(t, 1, selected(t, m))
}

func TestStepFromNoSelectionSelectsFirstRow(t *testing.T) {
	t.Parallel()
	for name, step := range map[string]func(*Machine){
		"next":     (*Machine).Next,
		"previous": (*Machine).Previous,
	} {
		m := &Machine{count: 3}
		step(m)
		assert.Equal(t, 0, selected(t, m), name)
	}
}

func TestDetailScrollSaturatesAtZero(t *testing.T) {
	t.Parallel()
	m := New(3)
	m.SwitchPane()
	assert.Equal(t, PaneDetail, m.Focus())

	m.Previous()
	row, col := m.Offset()
	assert.Equal(t, 0, row)
	assert.Equal(t, 0, col)

	for range 5 {
		m.Next()
	}
	row, _ = m.Offset()
	assert.Equal(t, 5, row)
	assert.Equal(t, 0, selected(t, m), "detail scrolling does not move the selection")

	m.Previous()
	row, _ = m.Offset()
	assert.Equal(t, 4, row)
}

func TestSelectionChangeResetsOffset(t *testing.T) {
	t.Parallel()
	m := New(3)
	m.SwitchPane()
	m.Next()
	m.Next()
	m.SwitchPane()

	row, _ := m.Offset()
	assert.Equal(t, 2, row, "switching panes keeps the offset")

	m.Next()
	row, col := m.Offset()
	assert.Equal(t, 0, row)
	assert.Equal(t, 0, col)
	assert.Equal(t, 1, selected(t, m))
}

func TestResetReselectsFirstRowRegardlessOfFocus(t *testing.T) {
	t.Parallel()
	m := New(5)
	m.Last()
	m.SwitchPane()
	m.Next()

	m.Reset(2)
	assert.Equal(t, 0, selected(t, m))
	assert.Equal(t, PaneDetail, m.Focus())
	row, _ := m.Offset()
	assert.Equal(t, 0, row)

	m.Reset(0)
	_, ok := m.Selected()
	assert.False(t, ok)
}

func TestFirstLast(t *testing.T) {
	t.Parallel()
	m := New(4)
	m.Last()
	assert.Equal(t, 3, selected(t, m))
	m.First()
	assert.Equal(t, 0, selected(t, m))
}
