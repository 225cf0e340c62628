package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Modal is a self-contained overlay that owns its own Update/View lifecycle.
// Modals are managed via a stack on ViewerModel; the topmost modal receives
// all input and renders full-screen.
type Modal interface {
	// ID returns a unique identifier used to deduplicate pushes.
	ID() string
	// Update processes a message. Return pop=true to close the modal.
	Update(msg tea.Msg) (pop bool, cmd tea.Cmd)
	// View renders the modal content for the given terminal dimensions.
	View(width, height int) string
}

// ModalContext is the read-only state modals may consult.
type ModalContext struct {
	ReverseScrollWheel bool
}

// ModalStackState holds the open modals, bottom first.
type ModalStackState struct {
	modalStack []Modal
}

// PushModal pushes a modal onto the stack. Deduplicates by ID.
func (s *ModalStackState) PushModal(modal Modal) {
	for _, existing := range s.modalStack {
		if existing.ID() == modal.ID() {
			return
		}
	}
	s.modalStack = append(s.modalStack, modal)
}

// PopModal removes the topmost modal from the stack.
func (s *ModalStackState) PopModal() {
	if len(s.modalStack) > 0 {
		s.modalStack = s.modalStack[:len(s.modalStack)-1]
	}
}

// TopModal returns the topmost modal, or nil if the stack is empty.
func (s *ModalStackState) TopModal() Modal {
	if len(s.modalStack) == 0 {
		return nil
	}
	return s.modalStack[len(s.modalStack)-1]
}

// HasModal returns true if any modal is on the stack.
func (s *ModalStackState) HasModal() bool {
	return len(s.modalStack) > 0
}

// scrollModal is the shared scrolling behavior of viewport-backed modals.
// It returns pop=true for the close keys.
func scrollModal(vp *viewport.Model, ctx ModalContext, msg tea.Msg, closeKeys ...string) (bool, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		s := msg.String()
		for _, k := range closeKeys {
			if s == k {
				return true, nil
			}
		}
		switch s {
		case "esc", "q":
			return true, nil
		case "up", "k":
			vp.ScrollUp(1)
			return false, nil
		case "down", "j":
			vp.ScrollDown(1)
			return false, nil
		case "pgup":
			vp.HalfPageUp()
			return false, nil
		case "pgdown":
			vp.HalfPageDown()
			return false, nil
		}
		var cmd tea.Cmd
		*vp, cmd = vp.Update(msg)
		return false, cmd

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress {
			return false, nil
		}
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			if ctx.ReverseScrollWheel {
				vp.ScrollDown(1)
			} else {
				vp.ScrollUp(1)
			}
		case tea.MouseButtonWheelDown:
			if ctx.ReverseScrollWheel {
				vp.ScrollUp(1)
			} else {
				vp.ScrollDown(1)
			}
		}
	}
	return false, nil
}

// renderModalFrame lays out a titled, bordered, centered modal around vp.
func renderModalFrame(vp *viewport.Model, title, content string, width, height int, statusItems ...string) string {
	modalWidth := max(width-8, 20)
	modalHeight := max(height-4, 8)

	contentWidth := modalWidth - 4
	contentHeight := modalHeight - 4

	vp.Width = contentWidth
	vp.Height = contentHeight
	vp.SetContent(content)

	contentPane := lipgloss.NewStyle().
		Width(contentWidth).
		Height(contentHeight).
		Border(lipgloss.NormalBorder()).
		BorderForeground(ColorGray).
		Render(vp.View())

	header := lipgloss.NewStyle().
		Width(contentWidth).
		Foreground(ColorBlue).
		Bold(true).
		Render(title)

	if len(statusItems) == 0 {
		statusItems = []string{"up/down/Wheel: Scroll", "PgUp/PgDn: Page", "ESC: Close"}
	}
	statusBar := helpStyle.Render(strings.Join(statusItems, " | "))

	modal := lipgloss.JoinVertical(lipgloss.Left, header, contentPane, statusBar)

	finalModal := lipgloss.NewStyle().
		Width(modalWidth).
		Height(modalHeight).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBlue).
		Render(modal)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, finalModal)
}
