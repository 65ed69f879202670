package report

import (
	"strings"
	"testing"

	"github.com/dharanetra/dhara/internal/soil"
)

func TestPlot(t *testing.T) {
	c := soil.PlasticityChart(0.5).WithSample(soil.NewPlasticity(40, 20))
	lines := Plot(c, 51, 31)

	if len(lines) != 31 {
		t.Fatalf("got %d rows, want 31", len(lines))
	}
	for i, l := range lines {
		if len([]rune(l)) > 51 {
			t.Errorf("row %d is %d wide", i, len([]rune(l)))
		}
	}

	// LL 40 maps to column 20 and PI 20 to row 30-10 = 20.
	if got := []rune(lines[20]); len(got) <= 20 || got[20] != GlyphSample {
		t.Errorf("sample not at (20, 20): %q", lines[20])
	}

	// The A-line crosses PI 0 at LL 20, column 10 of the bottom row.
	if got := []rune(lines[30]); len(got) <= 10 || got[10] != GlyphALine {
		t.Errorf("A-line not at bottom row column 10: %q", lines[30])
	}

	joined := strings.Join(lines, "\n")
	if !strings.ContainsRune(joined, GlyphULine) {
		t.Error("U-line not drawn")
	}
	if !strings.ContainsRune(joined, GlyphReference) {
		t.Error("reference lines not drawn")
	}
}

func TestPlot_TooSmall(t *testing.T) {
	if got := Plot(soil.PlasticityChart(1), 1, 10); got != nil {
		t.Errorf("expected nil for a one column grid, got %v", got)
	}
}
