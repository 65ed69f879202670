package chart

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/dharanetra/dhara/internal/report"
	"github.com/dharanetra/dhara/internal/screen"
	"github.com/dharanetra/dhara/internal/soil"
	"github.com/dharanetra/dhara/internal/ui/layout"
	"github.com/dharanetra/dhara/internal/ui/theme"
)

// Plot bounds for the full-screen chart.
const (
	maxCols = 81
	maxRows = 31
	minCols = 21
	minRows = 8
)

// Screen draws the plasticity chart with its zone legend.
type Screen struct {
	chart soil.Chart
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New creates the chart screen. A non-nil sample is marked on the chart.
func New(sample *soil.Plasticity) *Screen {
	c := soil.PlasticityChart(0.5)
	if sample != nil {
		c = c.WithSample(*sample)
	}
	return &Screen{chart: c}
}

func (s *Screen) Init() tea.Cmd {
	return nil
}

func (s *Screen) Title() string {
	return "Plasticity chart"
}

func (s *Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{{Key: "Esc", Description: "Back"}}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return s, nil
}

func (s *Screen) View(width, height int) string {
	legend := renderLegend(s.chart)

	cols := min(width-lipgloss.Width(legend)-10, maxCols)
	rows := min(height-6, maxRows)
	if cols < minCols || rows < minRows {
		return "\n" + layout.Centered(legend, width)
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		report.StyledPlot(s.chart, cols, rows), "   ", legend)
	return "\n" + layout.Centered(body, width)
}

func renderLegend(c soil.Chart) string {
	var b strings.Builder
	b.WriteString(theme.Heading.Render("Lines"))
	b.WriteString("\n")
	b.WriteString(theme.Body.Render("A-line  PI = 0.73 (LL - 20)"))
	b.WriteString("\n")
	b.WriteString(theme.Body.Render("U-line  PI = 0.9 (LL - 8)"))
	b.WriteString("\n\n")

	b.WriteString(theme.Heading.Render("Zones"))
	b.WriteString("\n")
	for _, z := range c.Zones {
		style := theme.Label
		if z.Major {
			style = theme.Value
		}
		b.WriteString(style.Render(fmt.Sprintf("%-9s", z.Text)))
		b.WriteString(theme.Hint.Render(zoneHint(z.Text)))
		b.WriteString("\n")
	}

	if c.Sample != nil {
		p := soil.Plasticity{LiquidLimit: c.Sample.X, PlasticityIndex: c.Sample.Y}
		b.WriteString("\n")
		b.WriteString(theme.Heading.Render("Sample"))
		b.WriteString("\n")
		b.WriteString(theme.Body.Render(fmt.Sprintf("LL %.1f  PI %.1f", p.LiquidLimit, p.PlasticityIndex)))
		b.WriteString("\n")
		side := "below"
		if p.AboveALine() {
			side = "above"
		}
		b.WriteString(theme.Body.Render(fmt.Sprintf("A-line %.2f, plots %s", p.ALine(), side)))
	}
	return b.String()
}

func zoneHint(zone string) string {
	switch {
	case strings.HasSuffix(zone, "L"):
		return "low compressibility"
	case strings.HasSuffix(zone, "I"):
		return "intermediate compressibility"
	case strings.HasSuffix(zone, "H"):
		return "high compressibility"
	default:
		return ""
	}
}
