package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tinytelemetry/monlomon/internal/session"
)

// Update handles messages
func (m *ViewerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.MouseMsg:
		return m.handleMouseEvent(msg)
	}
	return m, nil
}

func (m *ViewerModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		return m, tea.Quit
	}

	// Modal on stack gets the key first.
	if modal := m.TopModal(); modal != nil {
		pop, cmd := modal.Update(msg)
		if pop {
			m.PopModal()
		}
		return m, cmd
	}

	m.status = ""

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.PushModal(NewHelpModal(m))
		return m, nil
	case key.Matches(msg, m.keys.Counts):
		m.PushModal(NewCountsModal(m))
		return m, nil
	case key.Matches(msg, m.keys.DetailFormat):
		m.detailFormat = m.detailFormat.Next()
		m.sync()
		return m, nil
	case key.Matches(msg, m.keys.Copy):
		m.copySelected()
		return m, nil
	case key.Matches(msg, m.keys.Expand):
		if !m.snap.HasSelection {
			m.status = "nothing selected"
			return m, nil
		}
		m.navTo = detailPageID
		return m, nil
	}

	intent := m.keys.intentFor(msg)
	if intent == session.IntentConfirm {
		m.confirm()
		return m, nil
	}
	if m.session.Dispatch(intent) {
		m.logger.Debug().Stringer("intent", intent).Msg("dispatched")
		m.sync()
	}
	return m, nil
}

// handleMouseEvent maps the wheel onto next/previous.
func (m *ViewerModel) handleMouseEvent(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if modal := m.TopModal(); modal != nil {
		pop, cmd := modal.Update(msg)
		if pop {
			m.PopModal()
		}
		return m, cmd
	}

	if msg.Action != tea.MouseActionPress {
		return m, nil
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		if m.reverseScrollWheel {
			m.session.Next()
		} else {
			m.session.Previous()
		}
		m.sync()
	case tea.MouseButtonWheelDown:
		if m.reverseScrollWheel {
			m.session.Previous()
		} else {
			m.session.Next()
		}
		m.sync()
	}
	return m, nil
}

func (m *ViewerModel) confirm() {
	i, e, ok := m.session.Confirm()
	if !ok {
		m.status = "nothing selected"
		return
	}
	m.status = fmt.Sprintf("selected #%d %s", i, e.Message)
	m.logger.Info().Int("index", i).Str("message", e.Message).Msg("entry confirmed")
}

func (m *ViewerModel) copySelected() {
	if !m.snap.HasSelection {
		m.status = "nothing selected"
		return
	}
	if err := m.copyToClipboard(m.snap.Detail); err != nil {
		m.logger.Warn().Err(err).Msg("copying payload to clipboard")
		m.status = "clipboard error: " + err.Error()
		return
	}
	m.status = "payload copied"
}

// resize recomputes widget sizes for a width x height terminal.
func (m *ViewerModel) resize(width, height int) {
	m.width = width
	m.height = height

	listW, detailW, paneH := m.paneSizes()
	m.table.SetColumns(columnsFor(listW - 2))
	m.table.SetWidth(listW - 2)
	m.table.SetHeight(max(paneH-3, 1))

	m.detail.Width = max(detailW-2, 1)
	m.detail.Height = max(paneH-3, 1)
	m.help.Width = width
	m.sync()
}

// paneSizes splits the screen 60/40 between list and detail. The title,
// legend and status line take one row each.
func (m *ViewerModel) paneSizes() (listW, detailW, paneH int) {
	listW = m.width * 60 / 100
	detailW = m.width - listW
	paneH = max(m.height-3, 3)
	return listW, detailW, paneH
}
