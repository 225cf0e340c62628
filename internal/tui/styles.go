package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/tinytelemetry/monlomon/internal/model"
)

// Palette.
var (
	ColorBlue   = lipgloss.Color("39")
	ColorGray   = lipgloss.Color("245")
	ColorNavy   = lipgloss.Color("17")
	ColorRed    = lipgloss.Color("196")
	ColorOrange = lipgloss.Color("208")
	ColorWhite  = lipgloss.Color("255")
	ColorGreen  = lipgloss.Color("42")
	ColorYellow = lipgloss.Color("220")
	ColorPurple = lipgloss.Color("201")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorGreen).
			Background(ColorNavy).
			Padding(0, 1)

	sectionStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(ColorGray)

	activeSectionStyle = lipgloss.NewStyle().
				Border(lipgloss.NormalBorder()).
				BorderForeground(ColorBlue)

	paneTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorBlue)

	helpStyle = lipgloss.NewStyle().
			Foreground(ColorGray)

	noticeStyle = lipgloss.NewStyle().
			Foreground(ColorYellow).
			Bold(true)

	statusStyle = lipgloss.NewStyle().
			Background(ColorNavy).
			Foreground(ColorWhite)

	flagOnStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorGreen)

	flagOffStyle = lipgloss.NewStyle().
			Foreground(ColorGray).
			Strikethrough(true)
)

// severityColor returns the display color for a severity level.
func severityColor(sev model.Severity) lipgloss.Color {
	switch sev {
	case model.SeverityFatal:
		return ColorPurple
	case model.SeverityError:
		return ColorRed
	case model.SeverityWarning:
		return ColorOrange
	case model.SeverityInformational:
		return ColorBlue
	default:
		return ColorGray
	}
}
