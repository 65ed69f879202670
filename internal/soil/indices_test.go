package soil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeIndices_AllPresent(t *testing.T) {
	idx := ComputeIndices(Sample{
		LiquidLimit:    40,
		PlasticLimit:   20,
		WaterContent:   30,
		ShrinkageLimit: 12,
		ClayFraction:   25,
	})

	require.NotNil(t, idx.PlasticityIndex)
	require.NotNil(t, idx.ShrinkageIndex)
	require.NotNil(t, idx.LiquidityIndex)
	require.NotNil(t, idx.ConsistencyIndex)
	require.NotNil(t, idx.Activity)

	assert.Equal(t, 20.0, *idx.PlasticityIndex)
	assert.Equal(t, 28.0, *idx.ShrinkageIndex)
	assert.InDelta(t, 0.5, *idx.LiquidityIndex, 1e-12)
	assert.InDelta(t, 0.5, *idx.ConsistencyIndex, 1e-12)
	assert.InDelta(t, 0.8, *idx.Activity, 1e-12)
}

func TestComputeIndices_LiquidityPlusConsistencyIsOne(t *testing.T) {
	idx := ComputeIndices(Sample{LiquidLimit: 55, PlasticLimit: 22, WaterContent: 61})
	require.NotNil(t, idx.LiquidityIndex)
	require.NotNil(t, idx.ConsistencyIndex)
	assert.InDelta(t, 1.0, *idx.LiquidityIndex+*idx.ConsistencyIndex, 1e-12)
}

func TestComputeIndices_ZeroPlasticityIndex(t *testing.T) {
	idx := ComputeIndices(Sample{LiquidLimit: 30, PlasticLimit: 30, WaterContent: 25, ClayFraction: 10})

	require.NotNil(t, idx.PlasticityIndex)
	assert.Equal(t, 0.0, *idx.PlasticityIndex)
	assert.Nil(t, idx.LiquidityIndex, "liquidity index must be omitted when PI is zero")
	assert.Nil(t, idx.ConsistencyIndex, "consistency index must be omitted when PI is zero")
	require.NotNil(t, idx.Activity)
	assert.Equal(t, 0.0, *idx.Activity)
}

func TestComputeIndices_Omissions(t *testing.T) {
	tests := []struct {
		name   string
		sample Sample
		check  func(t *testing.T, idx Indices)
	}{
		{
			name:   "empty sample",
			sample: Sample{},
			check: func(t *testing.T, idx Indices) {
				assert.Equal(t, Indices{}, idx)
			},
		},
		{
			name:   "shrinkage index needs only liquid and shrinkage limits",
			sample: Sample{LiquidLimit: 45, ShrinkageLimit: 15},
			check: func(t *testing.T, idx Indices) {
				require.NotNil(t, idx.ShrinkageIndex)
				assert.Equal(t, 30.0, *idx.ShrinkageIndex)
				assert.Nil(t, idx.PlasticityIndex)
			},
		},
		{
			name:   "no water content",
			sample: Sample{LiquidLimit: 45, PlasticLimit: 25},
			check: func(t *testing.T, idx Indices) {
				assert.NotNil(t, idx.PlasticityIndex)
				assert.Nil(t, idx.LiquidityIndex)
				assert.Nil(t, idx.ConsistencyIndex)
			},
		},
		{
			name:   "zero clay fraction",
			sample: Sample{LiquidLimit: 45, PlasticLimit: 25, ClayFraction: 0},
			check: func(t *testing.T, idx Indices) {
				assert.Nil(t, idx.Activity)
			},
		},
		{
			name:   "clay fraction without plastic limit",
			sample: Sample{LiquidLimit: 45, ClayFraction: 20},
			check: func(t *testing.T, idx Indices) {
				assert.Nil(t, idx.Activity)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, ComputeIndices(tt.sample))
		})
	}
}

func TestComputeIndices_DoesNotMutateSample(t *testing.T) {
	s := Sample{LiquidLimit: 40, PlasticLimit: 20, WaterContent: 30}
	before := s.Clone()
	ComputeIndices(s)
	assert.Equal(t, before, s)
}
