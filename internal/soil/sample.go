// Package soil classifies soils from laboratory index properties following
// IS 1498:1970. Every function in the package is pure: a Sample goes in, a
// Result or an error comes out, and nothing is retained between calls.
package soil

import (
	"math"
	"sort"
)

// Property names a measured soil property. The string value is the key
// used in JSON documents and CSV headers.
type Property string

const (
	LiquidLimit    Property = "liquid_limit"
	PlasticLimit   Property = "plastic_limit"
	WaterContent   Property = "water_content"
	ShrinkageLimit Property = "shrinkage_limit"
	ClayFraction   Property = "clay_fraction"
	GravelFraction Property = "gravel_fraction"
	SandFraction   Property = "sand_fraction"
	FinesFraction  Property = "fines_fraction"
	Cu             Property = "cu"
	Cc             Property = "cc"
)

// AllProperties returns every recognised property, fine-grained first.
func AllProperties() []Property {
	return []Property{
		LiquidLimit, PlasticLimit, WaterContent, ShrinkageLimit, ClayFraction,
		GravelFraction, SandFraction, FinesFraction, Cu, Cc,
	}
}

// FineProperties returns the properties read by the fine-grained path.
func FineProperties() []Property {
	return []Property{LiquidLimit, PlasticLimit, WaterContent, ShrinkageLimit, ClayFraction}
}

// CoarseProperties returns the properties read by the coarse-grained path.
func CoarseProperties() []Property {
	return []Property{GravelFraction, SandFraction, FinesFraction, Cu, Cc, LiquidLimit, PlasticLimit}
}

// IsKnown reports whether p is a recognised property.
func (p Property) IsKnown() bool {
	_, ok := domains[p]
	return ok
}

// DisplayName returns a human-readable label for the property.
func (p Property) DisplayName() string {
	switch p {
	case LiquidLimit:
		return "Liquid Limit"
	case PlasticLimit:
		return "Plastic Limit"
	case WaterContent:
		return "Water Content"
	case ShrinkageLimit:
		return "Shrinkage Limit"
	case ClayFraction:
		return "Clay Fraction"
	case GravelFraction:
		return "Gravel Fraction"
	case SandFraction:
		return "Sand Fraction"
	case FinesFraction:
		return "Fines Fraction"
	case Cu:
		return "Coefficient of Uniformity (Cu)"
	case Cc:
		return "Coefficient of Curvature (Cc)"
	default:
		return string(p)
	}
}

// IsPercent reports whether the property is measured in percent.
func (p Property) IsPercent() bool {
	d, ok := domains[p]
	return ok && d.max == 100
}

type domain struct {
	min, max float64
}

// domains holds the accepted value range of each property.
var domains = map[Property]domain{
	LiquidLimit:    {0, 100},
	PlasticLimit:   {0, 100},
	WaterContent:   {0, 100},
	ShrinkageLimit: {0, 100},
	ClayFraction:   {0, 100},
	GravelFraction: {0, 100},
	SandFraction:   {0, 100},
	FinesFraction:  {0, 100},
	Cu:             {0, math.Inf(1)},
	Cc:             {0, math.Inf(1)},
}

// Sample maps measured properties to their values. A missing key means the
// test was not run. Classifiers never modify a Sample.
type Sample map[Property]float64

// Get returns the value of p and whether it was measured.
func (s Sample) Get(p Property) (float64, bool) {
	v, ok := s[p]
	return v, ok
}

// Has reports whether every given property is present.
func (s Sample) Has(props ...Property) bool {
	for _, p := range props {
		if _, ok := s[p]; !ok {
			return false
		}
	}
	return true
}

// IsCoarse reports whether the sample carries grain-size data, which
// routes it to the coarse-grained classifier.
func (s Sample) IsCoarse() bool {
	_, g := s[GravelFraction]
	_, sa := s[SandFraction]
	_, f := s[FinesFraction]
	return g || sa || f
}

// Clone returns a copy of the sample.
func (s Sample) Clone() Sample {
	out := make(Sample, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// Keys returns the recognised properties present in the sample, in
// AllProperties order, followed by any unknown keys sorted by name.
func (s Sample) Keys() []Property {
	keys := make([]Property, 0, len(s))
	for _, p := range AllProperties() {
		if _, ok := s[p]; ok {
			keys = append(keys, p)
		}
	}
	var unknown []Property
	for p := range s {
		if !p.IsKnown() {
			unknown = append(unknown, p)
		}
	}
	sort.Slice(unknown, func(i, j int) bool { return unknown[i] < unknown[j] })
	return append(keys, unknown...)
}

// check validates the given properties that are present in the sample.
// Absent properties are skipped; presence is enforced by the classifiers.
func (s Sample) check(props ...Property) error {
	for _, p := range props {
		v, ok := s[p]
		if !ok {
			continue
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return invalid(p, "must be a finite number")
		}
		d := domains[p]
		if v < d.min {
			return invalidf(p, "must not be below %g, got %g", d.min, v)
		}
		if v > d.max {
			return invalidf(p, "must not exceed %g, got %g", d.max, v)
		}
	}
	return nil
}

// require returns an InputError for the first missing property.
func (s Sample) require(reason string, props ...Property) error {
	for _, p := range props {
		if _, ok := s[p]; !ok {
			return invalid(p, reason)
		}
	}
	return nil
}
