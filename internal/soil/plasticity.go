package soil

// A-line and U-line coefficients of the IS 1498 plasticity chart.
const (
	aLineSlope  = 0.73
	aLineOrigin = 20.0
	uLineSlope  = 0.9
	uLineOrigin = 8.0
)

// Fines plasticity thresholds for coarse soils with fines.
const (
	siltyPIThreshold    = 4.0
	lowLLHatchThreshold = 25.5
)

// ALine returns the A-line plasticity index at liquid limit ll. Soils
// plotting above it are inorganic clays.
func ALine(ll float64) float64 {
	return aLineSlope * (ll - aLineOrigin)
}

// ULine returns the U-line plasticity index at liquid limit ll, the
// empirical upper bound of natural soils.
func ULine(ll float64) float64 {
	return uLineSlope * (ll - uLineOrigin)
}

// FinesSymbol is the plasticity symbol of the fine fraction: silt-like (M)
// or clay-like (C).
type FinesSymbol string

const (
	FinesSilt FinesSymbol = "M"
	FinesClay FinesSymbol = "C"
)

// DisplayName returns the descriptive phrase for the fines symbol.
func (f FinesSymbol) DisplayName() string {
	switch f {
	case FinesSilt:
		return "non-plastic or low plasticity fines"
	case FinesClay:
		return "plastic fines"
	default:
		return ""
	}
}

// Plasticity is a point on the plasticity chart.
type Plasticity struct {
	LiquidLimit     float64 `json:"liquid_limit"`
	PlasticityIndex float64 `json:"plasticity_index"`
}

// NewPlasticity builds the chart point for the given Atterberg limits.
func NewPlasticity(ll, pl float64) Plasticity {
	return Plasticity{LiquidLimit: ll, PlasticityIndex: ll - pl}
}

// ALine returns the A-line value at the point's liquid limit.
func (p Plasticity) ALine() float64 {
	return ALine(p.LiquidLimit)
}

// AboveALine reports whether the point lies strictly above the A-line.
// The fine-grained classifier names such soils clays.
func (p Plasticity) AboveALine() bool {
	return p.PlasticityIndex > p.ALine()
}

// FinesSymbol applies the fines plasticity rule used for coarse soils:
// pi < 4, or a low liquid limit (< 25.5) plotting below the A-line, gives M;
// anything else gives C.
func (p Plasticity) FinesSymbol() FinesSymbol {
	if p.PlasticityIndex < siltyPIThreshold ||
		(p.LiquidLimit < lowLLHatchThreshold && p.PlasticityIndex < p.ALine()) {
		return FinesSilt
	}
	return FinesClay
}

// FinesSymbolOf is FinesSymbol for raw limits.
func FinesSymbolOf(ll, pl float64) FinesSymbol {
	return NewPlasticity(ll, pl).FinesSymbol()
}
