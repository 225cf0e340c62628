package tui

import (
	"fmt"
	"strings"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/tinytelemetry/monlomon/internal/logparse"
	"github.com/tinytelemetry/monlomon/internal/model"
	"github.com/tinytelemetry/monlomon/internal/session"
)

// countsOrder is the row order of the counts modal; unknown levels last.
var countsOrder = append(append([]model.Severity(nil), model.Severities...), model.SeverityUnknown)

// CountsModal shows per-severity totals for the whole input and the
// current view.
type CountsModal struct {
	ctx      ModalContext
	viewport viewport.Model
	counts   session.Counts
	flags    map[model.Severity]bool
}

func NewCountsModal(m *ViewerModel) *CountsModal {
	return &CountsModal{
		ctx:      m.modalContext(),
		viewport: viewport.New(80, 20),
		counts:   m.session.Counts(),
		flags:    m.session.Filters().Flags(),
	}
}

func (c *CountsModal) ID() string { return "counts" }

func (c *CountsModal) Update(msg tea.Msg) (bool, tea.Cmd) {
	return scrollModal(&c.viewport, c.ctx, msg, "s")
}

func (c *CountsModal) View(width, height int) string {
	contentWidth := max(width-12, 20)
	return renderModalFrame(&c.viewport, "Severity Counts", c.content(contentWidth), width, height)
}

func (c *CountsModal) content(width int) string {
	var sections []string
	sections = append(sections, c.renderTable())
	sections = append(sections, "")
	sections = append(sections, c.renderChart(width))
	return strings.Join(sections, "\n")
}

func (c *CountsModal) renderTable() string {
	var b strings.Builder
	header := fmt.Sprintf("%-15s %12s %12s  %s", "Severity", "Total", "Visible", "Shown")
	b.WriteString(paneTitleStyle.Render(header))
	b.WriteString("\n")

	var total, visible int
	for _, sev := range countsOrder {
		storeCount := c.counts.Store[sev]
		viewCount := c.counts.View[sev]
		total += storeCount
		visible += viewCount

		shown := flagOnStyle.Render("yes")
		if !sev.Known() {
			shown = helpStyle.Render("never")
		} else if !c.flags[sev] {
			shown = flagOffStyle.Render("no")
		}

		label := lipgloss.NewStyle().Foreground(severityColor(sev)).Render(fmt.Sprintf("%-15s", sev.String()))
		fmt.Fprintf(&b, "%s %12s %12s  %s\n", label,
			humanize.Comma(int64(storeCount)),
			humanize.Comma(int64(viewCount)),
			shown)
	}
	fmt.Fprintf(&b, "%-15s %12s %12s", "All", humanize.Comma(int64(total)), humanize.Comma(int64(visible)))
	return b.String()
}

func (c *CountsModal) renderChart(width int) string {
	var maxCount int
	for _, sev := range countsOrder {
		maxCount = max(maxCount, c.counts.Store[sev])
	}
	if maxCount == 0 {
		return helpStyle.Render("No data available")
	}

	chartWidth := min(max(width, 20), len(countsOrder)*8)
	bc := barchart.New(chartWidth, 8,
		barchart.WithBarGap(2),
		barchart.WithBarWidth(5),
	)
	for _, sev := range countsOrder {
		color := severityColor(sev)
		label := logparse.Abbreviation(sev)
		if label == "" {
			label = "?"
		}
		bc.Push(barchart.BarData{
			Label: label,
			Values: []barchart.BarValue{
				{
					Name:  sev.String(),
					Value: float64(c.counts.Store[sev]),
					Style: lipgloss.NewStyle().Foreground(color).Background(color),
				},
			},
		})
	}
	bc.Draw()
	return bc.View()
}
