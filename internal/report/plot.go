package report

import (
	"math"
	"strings"

	"github.com/dharanetra/dhara/internal/soil"
)

// Glyphs used by Plot.
const (
	GlyphALine     = '*'
	GlyphULine     = '.'
	GlyphReference = ':'
	GlyphSample    = '@'
)

// Plot draws the plasticity chart as a cols x rows character grid with
// liquid limit across and plasticity index up. Points outside the chart
// ranges are not drawn. Labels are not included; callers add axes.
func Plot(c soil.Chart, cols, rows int) []string {
	if cols < 2 || rows < 2 {
		return nil
	}

	grid := make([][]rune, rows)
	for i := range grid {
		grid[i] = []rune(strings.Repeat(" ", cols))
	}

	toCell := func(p soil.Point) (col, row int, ok bool) {
		xr, yr := c.XRange, c.YRange
		if p.X < xr[0] || p.X > xr[1] || p.Y < yr[0] || p.Y > yr[1] {
			return 0, 0, false
		}
		col = int(math.Round((p.X - xr[0]) / (xr[1] - xr[0]) * float64(cols-1)))
		row = rows - 1 - int(math.Round((p.Y-yr[0])/(yr[1]-yr[0])*float64(rows-1)))
		return col, row, true
	}

	for _, ref := range c.References {
		if ref.Orientation != soil.Vertical {
			continue
		}
		for y := ref.From; y <= ref.To; y += (c.YRange[1] - c.YRange[0]) / float64(rows) {
			if col, row, ok := toCell(soil.Point{X: ref.Value, Y: y}); ok {
				grid[row][col] = GlyphReference
			}
		}
	}

	// U-line first so the A-line wins where they share a cell.
	for i := len(c.Lines) - 1; i >= 0; i-- {
		glyph := GlyphULine
		if c.Lines[i].Name == "A-line" {
			glyph = GlyphALine
		}
		for _, p := range c.Lines[i].Points {
			if col, row, ok := toCell(p); ok {
				grid[row][col] = glyph
			}
		}
	}

	if c.Sample != nil {
		if col, row, ok := toCell(*c.Sample); ok {
			grid[row][col] = GlyphSample
		}
	}

	out := make([]string, rows)
	for i, r := range grid {
		out[i] = strings.TrimRight(string(r), " ")
	}
	return out
}
