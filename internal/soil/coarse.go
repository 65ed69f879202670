package soil

import "fmt"

// Fines-content cut points. Both are inclusive on the borderline side.
const (
	cleanFinesLimit      = 5.0
	borderlineFinesLimit = 12.0
)

// Accepted window for gravel + sand + fines, in percent.
const (
	fractionSumMin = 98.0
	fractionSumMax = 102.0
)

// ClassifyCoarse classifies a gravel/sand dominated sample from its grain
// size distribution. Gravel, sand and fines fractions are required and must
// sum to 98..102 %. Cu and Cc are required when fines are at most 12 %;
// both Atterberg limits are required above 12 %.
//
// Between 5 and 12 % fines without Atterberg limits the fines are taken as
// non-plastic (M) and Grading.SuffixDefaulted is set.
func ClassifyCoarse(s Sample) (*Result, error) {
	if err := s.require("required for coarse-grained classification", GravelFraction, SandFraction, FinesFraction); err != nil {
		return nil, err
	}
	if err := s.check(AllProperties()...); err != nil {
		return nil, err
	}

	gravel := s[GravelFraction]
	sand := s[SandFraction]
	fines := s[FinesFraction]

	if total := gravel + sand + fines; total < fractionSumMin || total > fractionSumMax {
		return nil, &InputError{Reason: fmt.Sprintf(
			"grain size fractions sum to %g%%, expected %g to %g%%", total, fractionSumMin, fractionSumMax)}
	}

	var plasticity *Plasticity
	if s.Has(LiquidLimit, PlasticLimit) {
		ll, pl := s[LiquidLimit], s[PlasticLimit]
		if pl >= ll {
			return nil, invalidf(PlasticLimit, "must be less than liquid limit (%g >= %g)", pl, ll)
		}
		p := NewPlasticity(ll, pl)
		plasticity = &p
	}

	g := &Grading{FinesFraction: fines}
	if gravel > sand {
		g.Primary, g.PrimaryFraction, g.SecondaryFraction = SymbolGravel, gravel, sand
	} else {
		g.Primary, g.PrimaryFraction, g.SecondaryFraction = SymbolSand, sand, gravel
	}
	if cu, ok := s.Get(Cu); ok {
		g.Cu = &cu
	}
	if cc, ok := s.Get(Cc); ok {
		g.Cc = &cc
	}

	primary := string(g.Primary)
	var code string

	switch {
	case fines < cleanFinesLimit:
		g.Branch = BranchClean
		if err := s.require("required for coarse soil with less than 5% fines", Cu, Cc); err != nil {
			return nil, err
		}
		g.Gradation = GradationOf(*g.Cu, *g.Cc)
		code = primary + string(g.Gradation)

	case fines <= borderlineFinesLimit:
		g.Branch = BranchBorderline
		if err := s.require("required for coarse soil with 5 to 12% fines", Cu, Cc); err != nil {
			return nil, err
		}
		g.Gradation = GradationOf(*g.Cu, *g.Cc)
		if plasticity != nil {
			g.FinesSymbol = plasticity.FinesSymbol()
		} else {
			g.FinesSymbol = FinesSilt
			g.SuffixDefaulted = true
		}
		code = primary + string(g.Gradation) + "-" + primary + string(g.FinesSymbol)

	default:
		g.Branch = BranchFines
		if err := s.require("required for coarse soil with more than 12% fines", LiquidLimit, PlasticLimit); err != nil {
			return nil, err
		}
		g.FinesSymbol = plasticity.FinesSymbol()
		code = primary + string(g.FinesSymbol)
	}

	return &Result{
		Code:       code,
		Kind:       KindCoarse,
		Primary:    g.Primary,
		Plasticity: plasticity,
		Indices:    ComputeIndices(s),
		Qualifiers: Qualifiers{
			Gradation: g.Gradation,
			Fines:     g.FinesSymbol,
		},
		Grading:     g,
		Description: Describe(code),
	}, nil
}
