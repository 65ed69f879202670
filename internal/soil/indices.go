package soil

// Indices holds the secondary geotechnical indices derived from a sample.
// A nil field means its inputs were not measured or the formula is
// undefined for them.
type Indices struct {
	PlasticityIndex  *float64 `json:"plasticity_index,omitempty"`
	ShrinkageIndex   *float64 `json:"shrinkage_index,omitempty"`
	LiquidityIndex   *float64 `json:"liquidity_index,omitempty"`
	ConsistencyIndex *float64 `json:"consistency_index,omitempty"`
	Activity         *float64 `json:"activity,omitempty"`
}

// ComputeIndices derives every index whose inputs are present. It never
// fails: a zero plasticity index drops the liquidity and consistency
// indices instead of dividing by zero.
func ComputeIndices(s Sample) Indices {
	var idx Indices

	ll, hasLL := s.Get(LiquidLimit)
	pl, hasPL := s.Get(PlasticLimit)

	if hasLL {
		if sl, ok := s.Get(ShrinkageLimit); ok {
			idx.ShrinkageIndex = ptr(ll - sl)
		}
	}

	if !hasLL || !hasPL {
		return idx
	}

	pi := ll - pl
	idx.PlasticityIndex = ptr(pi)

	if wc, ok := s.Get(WaterContent); ok && pi != 0 {
		idx.LiquidityIndex = ptr((wc - pl) / pi)
		idx.ConsistencyIndex = ptr((ll - wc) / pi)
	}

	if clay, ok := s.Get(ClayFraction); ok && clay != 0 {
		idx.Activity = ptr(pi / clay)
	}

	return idx
}

func ptr(v float64) *float64 { return &v }
