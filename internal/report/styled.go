package report

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/dharanetra/dhara/internal/soil"
	"github.com/dharanetra/dhara/internal/ui/theme"
)

// Styled renders a result as a bordered card. A width of zero lets the
// card size to its content.
func Styled(r *soil.Result, width int) string {
	var b strings.Builder

	b.WriteString(theme.Code.Render(r.Code))
	b.WriteString("  ")
	b.WriteString(theme.Heading.Render(r.Kind.DisplayName() + " soil"))
	b.WriteString("\n\n")

	fields := Fields(r)
	labelWidth := 0
	for _, f := range fields {
		labelWidth = max(labelWidth, lipgloss.Width(f.Label))
	}
	for _, f := range fields {
		label := theme.Label.Width(labelWidth + 2).Render(f.Label + ":")
		value := theme.Value.Render(f.Value)
		if f.Label == "Note" {
			value = theme.Caution.Render(f.Value)
		}
		b.WriteString(label + value + "\n")
	}

	desc := r.Description
	if lines := descriptiveLines(desc); len(lines) > 0 {
		b.WriteString("\n")
		for _, l := range lines {
			b.WriteString(theme.Body.Render(l) + "\n")
		}
	}
	if len(desc.Applications) > 0 {
		b.WriteString("\n")
		for _, a := range desc.Applications {
			b.WriteString(theme.Hint.Render("• "+a) + "\n")
		}
	}

	card := theme.Card
	if width > 0 {
		card = card.Width(width)
	}
	return card.Render(strings.TrimRight(b.String(), "\n"))
}

// StyledError renders a classification failure.
func StyledError(err error) string {
	return theme.Failure.Render("✗ ") + theme.Body.Render(err.Error())
}

func descriptiveLines(d soil.Description) []string {
	var out []string
	for _, s := range []string{d.SoilType, d.Gradation, d.Fines} {
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

// StyledPlot renders Plot with axes and colours, titled and followed by a
// glyph legend.
func StyledPlot(c soil.Chart, cols, rows int) string {
	lines := Plot(c, cols, rows)
	if lines == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(theme.Heading.Render("Plasticity chart") + "\n")
	for i, l := range lines {
		axis := "   │"
		if i == 0 {
			axis = fmt.Sprintf("%3.0f┤", c.YRange[1])
		}
		b.WriteString(theme.Label.Render(axis) + colorPlot(l) + "\n")
	}
	b.WriteString(theme.Label.Render("  0└"+strings.Repeat("─", cols)) + "\n")
	b.WriteString(theme.Label.Render(fmt.Sprintf("    0%*s", cols, fmt.Sprintf("LL %.0f", c.XRange[1]))) + "\n")
	b.WriteString(theme.Hint.Render(fmt.Sprintf("    %c A-line  %c U-line  %c LL 35/50  %c sample",
		GlyphALine, GlyphULine, GlyphReference, GlyphSample)))
	return b.String()
}

var (
	aLineStyle  = lipgloss.NewStyle().Foreground(theme.Primary)
	uLineStyle  = lipgloss.NewStyle().Foreground(theme.Secondary)
	sampleStyle = lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
)

func colorPlot(row string) string {
	var b strings.Builder
	for _, r := range row {
		ch := string(r)
		switch r {
		case GlyphALine:
			b.WriteString(aLineStyle.Render(ch))
		case GlyphULine:
			b.WriteString(uLineStyle.Render(ch))
		case GlyphSample:
			b.WriteString(sampleStyle.Render(ch))
		default:
			b.WriteString(theme.Label.Render(ch))
		}
	}
	return b.String()
}
