package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// HelpModal lists every key binding.
type HelpModal struct {
	ctx      ModalContext
	viewport viewport.Model
	keys     KeyMap
	help     help.Model
}

func NewHelpModal(m *ViewerModel) *HelpModal {
	h := help.New()
	h.ShowAll = true
	return &HelpModal{
		ctx:      m.modalContext(),
		viewport: viewport.New(80, 20),
		keys:     m.keys,
		help:     h,
	}
}

func (h *HelpModal) ID() string { return "help" }

func (h *HelpModal) Update(msg tea.Msg) (bool, tea.Cmd) {
	return scrollModal(&h.viewport, h.ctx, msg, "?")
}

func (h *HelpModal) View(width, height int) string {
	h.help.Width = max(width-16, 20)
	return renderModalFrame(&h.viewport, "Help", h.content(), width, height,
		"up/down/Wheel: Scroll", "?: Toggle Help", "ESC: Close")
}

func (h *HelpModal) content() string {
	var b strings.Builder
	b.WriteString(paneTitleStyle.Render("Keys"))
	b.WriteString("\n\n")
	b.WriteString(h.help.FullHelpView(h.keys.FullHelp()))
	b.WriteString("\n\n")
	b.WriteString(paneTitleStyle.Render("Panes"))
	b.WriteString("\n\n")
	b.WriteString(`With the list focused, up/down move the selection and wrap at either end.
With the details focused, up/down scroll the payload of the selected entry.

Severity toggles and exclusions rebuild the list and select its first row.
Entries whose level is not I, W, E or F are never listed.`)
	return b.String()
}
