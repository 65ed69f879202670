package chart

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dharanetra/dhara/internal/soil"
)

func TestView_ShowsZonesAndSample(t *testing.T) {
	p := soil.NewPlasticity(45, 20)
	view := New(&p).View(140, 40)

	for _, want := range []string{"Plasticity chart", "CI", "MH or OH", "A-line 18.25, plots above"} {
		assert.Contains(t, view, want)
	}
}

func TestView_NarrowFallsBackToLegend(t *testing.T) {
	view := New(nil).View(40, 10)

	assert.Contains(t, view, "Zones")
	assert.False(t, strings.Contains(view, "Plasticity chart"), "plot should be dropped")
	assert.NotContains(t, view, "Sample")
}
