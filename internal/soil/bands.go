package soil

import "math"

// Bound is the upper edge of a band. An inclusive bound admits values equal
// to Limit; an exclusive one admits only values below it.
type Bound struct {
	Limit     float64
	Inclusive bool
}

// Below returns an exclusive bound at limit.
func Below(limit float64) Bound { return Bound{Limit: limit} }

// AtMost returns an inclusive bound at limit.
func AtMost(limit float64) Bound { return Bound{Limit: limit, Inclusive: true} }

// Unbounded admits every finite value.
var Unbounded = Bound{Limit: math.Inf(1), Inclusive: true}

// Admits reports whether v does not exceed the bound.
func (b Bound) Admits(v float64) bool {
	if b.Inclusive {
		return v <= b.Limit
	}
	return v < b.Limit
}

// Band pairs an upper bound with the label assigned to values under it.
type Band[L any] struct {
	Bound
	Label L
}

// BandTable is an ordered list of bands. Order is the tie-break: the first
// band that admits a value wins, so overlapping or touching bounds resolve
// to the earlier entry.
type BandTable[L any] []Band[L]

// Lookup returns the label of the first band whose bound is not exceeded
// by v. It returns false when no band admits v (NaN, or a table without an
// unbounded last band).
func (t BandTable[L]) Lookup(v float64) (L, bool) {
	for _, b := range t {
		if b.Admits(v) {
			return b.Label, true
		}
	}
	var zero L
	return zero, false
}

// Labels returns the labels of the table in order.
func (t BandTable[L]) Labels() []L {
	out := make([]L, len(t))
	for i, b := range t {
		out[i] = b.Label
	}
	return out
}

// PairBand is a band over two variables. Both bounds must admit their
// value for the band to match.
type PairBand[L any] struct {
	X, Y  Bound
	Label L
}

// PairTable is an ordered list of two-variable bands with the same
// first-match rule as BandTable.
type PairTable[L any] []PairBand[L]

// Lookup returns the label of the first band admitting both x and y.
func (t PairTable[L]) Lookup(x, y float64) (L, bool) {
	for _, b := range t {
		if b.X.Admits(x) && b.Y.Admits(y) {
			return b.Label, true
		}
	}
	var zero L
	return zero, false
}
