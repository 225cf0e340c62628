// Package navigation tracks which visible row is selected, which pane has
// focus and how far the detail pane is scrolled.
package navigation

// Pane identifies the focused half of the screen.
type Pane int

const (
	PaneList Pane = iota
	PaneDetail
)

func (p Pane) String() string {
	if p == PaneDetail {
		return "detail"
	}
	return "list"
}

// Machine is the selection state over a view of count rows. Every operation
// is total: out-of-range or empty cases leave the machine in a valid state.
type Machine struct {
	count     int
	selected  int
	hasSel    bool
	focus     Pane
	offsetRow int
	offsetCol int
}

// New returns a machine over count rows with the first row selected when
// count > 0.
func New(count int) *Machine {
	m := &Machine{}
	m.Reset(count)
	return m
}

// Next moves down one row in list focus, wrapping to the top, or scrolls the
// detail pane down one line in detail focus.
func (m *Machine) Next() {
	if m.focus == PaneDetail {
		m.offsetRow++
		return
	}
	m.listNext()
}

// Previous moves up one row in list focus, wrapping to the bottom (from no
// selection it selects the first row), or
// scrolls the detail pane up one line, stopping at the top.
func (m *Machine) Previous() {
	if m.focus == PaneDetail {
		if m.offsetRow > 0 {
			m.offsetRow--
		}
		return
	}
	if m.count == 0 {
		return
	}
	switch {
	case !m.hasSel:
		m.selectRow(0)
	case m.selected == 0:
		m.selectRow(m.count - 1)
	default:
		m.selectRow(m.selected - 1)
	}
}

func (m *Machine) listNext() {
	if m.count == 0 {
		return
	}
	if !m.hasSel || m.selected >= m.count-1 {
		m.selectRow(0)
		return
	}
	m.selectRow(m.selected + 1)
}

// SwitchPane flips focus between the list and the detail pane.
func (m *Machine) SwitchPane() {
	if m.focus == PaneList {
		m.focus = PaneDetail
	} else {
		m.focus = PaneList
	}
}

// Reset is applied after the view is recomputed: the selection is cleared
// and, when the view has rows, the first row is selected. Focus is kept.
func (m *Machine) Reset(count int) {
	if count < 0 {
		count = 0
	}
	m.count = count
	m.hasSel = false
	m.selected = 0
	m.resetOffset()
	m.listNext()
}

// First selects the top row.
func (m *Machine) First() {
	if m.count > 0 {
		m.selectRow(0)
	}
}

// Last selects the bottom row.
func (m *Machine) Last() {
	if m.count > 0 {
		m.selectRow(m.count - 1)
	}
}

// Selected returns the selected row, if any.
func (m *Machine) Selected() (int, bool) {
	return m.selected, m.hasSel
}

func (m *Machine) Focus() Pane { return m.focus }

// Offset returns the detail pane scroll position.
func (m *Machine) Offset() (row, col int) {
	return m.offsetRow, m.offsetCol
}

// Count is the number of rows the machine navigates.
func (m *Machine) Count() int { return m.count }

func (m *Machine) selectRow(i int) {
	m.selected = i
	m.hasSel = true
	m.resetOffset()
}

func (m *Machine) resetOffset() {
	m.offsetRow, m.offsetCol = 0, 0
}
