package soil

// ClassifyFine classifies a silt/clay dominated sample on the plasticity
// chart. Liquid and plastic limits are required and the plastic limit must
// be strictly below the liquid limit; any violation returns an
// *InputError and no result.
func ClassifyFine(s Sample) (*Result, error) {
	if err := s.require("required for fine-grained classification", LiquidLimit, PlasticLimit); err != nil {
		return nil, err
	}
	if err := s.check(AllProperties()...); err != nil {
		return nil, err
	}

	ll := s[LiquidLimit]
	pl := s[PlasticLimit]
	if pl >= ll {
		return nil, invalidf(PlasticLimit, "must be less than liquid limit (%g >= %g)", pl, ll)
	}

	p := NewPlasticity(ll, pl)
	aLine := p.ALine()
	comp := CompressibilityOf(ll)

	primary := SymbolSilt
	var alternatives []string
	if p.AboveALine() {
		primary = SymbolClay
	} else {
		// Silt and organic soil share the region below the A-line; telling
		// them apart needs an organic content test.
		alternatives = []string{string(SymbolOrganic) + comp.Symbol()}
	}

	idx := ComputeIndices(s)
	code := string(primary) + comp.Symbol()

	return &Result{
		Code:         code,
		Kind:         KindFine,
		Primary:      primary,
		Alternatives: alternatives,
		Plasticity:   &p,
		ALine:        &aLine,
		Indices:      idx,
		Qualifiers: Qualifiers{
			Compressibility: comp,
			Expansion:       ExpansionOf(ll, p.PlasticityIndex),
			Toughness:       ToughnessOf(p.PlasticityIndex),
			Consistency:     ConsistencyOf(idx.ConsistencyIndex),
			Activity:        ActivityOf(idx.Activity),
		},
		Description: Describe(code),
	}, nil
}
