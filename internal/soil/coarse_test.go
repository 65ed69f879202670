package soil

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyCoarse_Codes(t *testing.T) {
	tests := []struct {
		name      string
		sample    Sample
		code      string
		branch    FinesBranch
		defaulted bool
	}{
		{
			name:   "clean well graded gravel",
			sample: Sample{GravelFraction: 60, SandFraction: 37, FinesFraction: 3, Cu: 5, Cc: 2},
			code:   "GW",
			branch: BranchClean,
		},
		{
			name:   "clean poorly graded sand",
			sample: Sample{GravelFraction: 20, SandFraction: 78, FinesFraction: 2, Cu: 2.5, Cc: 1.1},
			code:   "SP",
		},
		{
			name:      "5% fines is borderline and defaults to silt",
			sample:    Sample{GravelFraction: 60, SandFraction: 35, FinesFraction: 5, Cu: 5, Cc: 2},
			code:      "GW-GM",
			branch:    BranchBorderline,
			defaulted: true,
		},
		{
			name: "borderline poorly graded sand with silt",
			sample: Sample{
				GravelFraction: 30, SandFraction: 62, FinesFraction: 8,
				Cu: 2.5, Cc: 0.8, LiquidLimit: 28, PlasticLimit: 25,
			},
			code:   "SP-SM",
			branch: BranchBorderline,
		},
		{
			name: "borderline well graded gravel with clay",
			sample: Sample{
				GravelFraction: 55, SandFraction: 35, FinesFraction: 10,
				Cu: 6, Cc: 1.5, LiquidLimit: 40, PlasticLimit: 20,
			},
			code:   "GW-GC",
			branch: BranchBorderline,
		},
		{
			name: "12% fines is still borderline",
			sample: Sample{
				GravelFraction: 28, SandFraction: 60, FinesFraction: 12,
				Cu: 7, Cc: 2, LiquidLimit: 35, PlasticLimit: 18,
			},
			code:   "SW-SC",
			branch: BranchBorderline,
		},
		{
			name:   "clayey sand",
			sample: Sample{GravelFraction: 20, SandFraction: 55, FinesFraction: 25, LiquidLimit: 38, PlasticLimit: 18},
			code:   "SC",
			branch: BranchFines,
		},
		{
			name:   "silty gravel",
			sample: Sample{GravelFraction: 55, SandFraction: 25, FinesFraction: 20, LiquidLimit: 30, PlasticLimit: 28},
			code:   "GM",
			branch: BranchFines,
		},
		{
			name:   "gravel and sand tie goes to sand",
			sample: Sample{GravelFraction: 48, SandFraction: 48, FinesFraction: 4, Cu: 5, Cc: 2},
			code:   "SW",
			branch: BranchClean,
		},
		{
			name:   "sum at the lower edge of the window",
			sample: Sample{GravelFraction: 60, SandFraction: 35, FinesFraction: 3, Cu: 5, Cc: 2},
			code:   "GW",
			branch: BranchClean,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := ClassifyCoarse(tt.sample)
			require.NoError(t, err)
			require.NotNil(t, r.Grading)

			assert.Equal(t, tt.code, r.Code)
			assert.Equal(t, KindCoarse, r.Kind)
			if tt.branch != "" {
				assert.Equal(t, tt.branch, r.Grading.Branch)
			}
			assert.Equal(t, tt.defaulted, r.Grading.SuffixDefaulted)
		})
	}
}

func TestClassifyCoarse_BorderlineWithSilt(t *testing.T) {
	r, err := ClassifyCoarse(Sample{
		GravelFraction: 30,
		SandFraction:   62,
		FinesFraction:  8,
		Cu:             2.5,
		Cc:             0.8,
		LiquidLimit:    28,
		PlasticLimit:   25,
	})
	require.NoError(t, err)

	g := r.Grading
	assert.Equal(t, SymbolSand, g.Primary)
	assert.Equal(t, 62.0, g.PrimaryFraction)
	assert.Equal(t, 30.0, g.SecondaryFraction)
	assert.Equal(t, 8.0, g.FinesFraction)
	assert.Equal(t, GradationPoorly, g.Gradation)
	assert.Equal(t, FinesSilt, g.FinesSymbol)
	require.NotNil(t, g.Cu)
	assert.Equal(t, 2.5, *g.Cu)

	assert.Equal(t, GradationPoorly, r.Qualifiers.Gradation)
	assert.Equal(t, FinesSilt, r.Qualifiers.Fines)
	assert.Empty(t, r.Qualifiers.Compressibility)

	require.NotNil(t, r.Plasticity)
	assert.Equal(t, 3.0, r.Plasticity.PlasticityIndex)

	assert.Equal(t, "Sand", r.Description.SoilType)
	assert.Equal(t, "Poorly graded soil with uniform particle size distribution", r.Description.Gradation)
	assert.Equal(t, "With non-plastic or low plasticity fines", r.Description.Fines)
	assert.Empty(t, r.Description.Applications)
}

func TestClassifyCoarse_CleanGravel(t *testing.T) {
	r, err := ClassifyCoarse(Sample{GravelFraction: 60, SandFraction: 37, FinesFraction: 3, Cu: 5, Cc: 2})
	require.NoError(t, err)

	assert.Equal(t, SymbolGravel, r.Primary)
	assert.Nil(t, r.Plasticity)
	assert.Nil(t, r.ALine)
	assert.Empty(t, r.Grading.FinesSymbol)
	assert.Equal(t, "Gravel", r.Description.SoilType)
	assert.Equal(t, cleanCoarseApplications, r.Description.Applications)
}

func TestClassifyCoarse_InvalidInput(t *testing.T) {
	tests := []struct {
		name     string
		sample   Sample
		property Property
		reason   string
	}{
		{
			name:   "fractions sum below window",
			sample: Sample{GravelFraction: 40, SandFraction: 40, FinesFraction: 10, Cu: 5, Cc: 2},
			reason: "sum to 90%",
		},
		{
			name:   "fractions sum above window",
			sample: Sample{GravelFraction: 60, SandFraction: 40, FinesFraction: 3, Cu: 5, Cc: 2},
			reason: "sum to 103%",
		},
		{
			name:     "missing gravel fraction",
			sample:   Sample{SandFraction: 90, FinesFraction: 10},
			property: GravelFraction,
		},
		{
			name:     "missing fines fraction",
			sample:   Sample{GravelFraction: 50, SandFraction: 50},
			property: FinesFraction,
		},
		{
			name:     "clean soil without cu",
			sample:   Sample{GravelFraction: 60, SandFraction: 37, FinesFraction: 3, Cc: 2},
			property: Cu,
		},
		{
			name:     "clean soil without cc",
			sample:   Sample{GravelFraction: 60, SandFraction: 37, FinesFraction: 3, Cu: 5},
			property: Cc,
		},
		{
			name:     "borderline soil without cu",
			sample:   Sample{GravelFraction: 60, SandFraction: 32, FinesFraction: 8, Cc: 2},
			property: Cu,
		},
		{
			name:     "fines over 12% without plastic limit",
			sample:   Sample{GravelFraction: 40, SandFraction: 40, FinesFraction: 20, LiquidLimit: 30},
			property: PlasticLimit,
		},
		{
			name:     "fines over 12% without limits",
			sample:   Sample{GravelFraction: 40, SandFraction: 40, FinesFraction: 20, Cu: 5, Cc: 2},
			property: LiquidLimit,
		},
		{
			name: "inverted atterberg limits",
			sample: Sample{
				GravelFraction: 40, SandFraction: 40, FinesFraction: 20,
				LiquidLimit: 20, PlasticLimit: 25,
			},
			property: PlasticLimit,
		},
		{
			name: "inverted atterberg limits on clean soil",
			sample: Sample{
				GravelFraction: 60, SandFraction: 37, FinesFraction: 3, Cu: 5, Cc: 2,
				LiquidLimit: 20, PlasticLimit: 25,
			},
			property: PlasticLimit,
			reason:   "less than liquid limit",
		},
		{
			name: "inverted atterberg limits on borderline soil",
			sample: Sample{
				GravelFraction: 60, SandFraction: 32, FinesFraction: 8, Cu: 5, Cc: 2,
				LiquidLimit: 20, PlasticLimit: 20,
			},
			property: PlasticLimit,
			reason:   "less than liquid limit",
		},
		{
			name:     "negative cu",
			sample:   Sample{GravelFraction: 60, SandFraction: 37, FinesFraction: 3, Cu: -1, Cc: 2},
			property: Cu,
		},
		{
			name:     "fraction over 100",
			sample:   Sample{GravelFraction: 101, SandFraction: 0, FinesFraction: 0, Cu: 5, Cc: 2},
			property: GravelFraction,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := ClassifyCoarse(tt.sample)
			require.Error(t, err)
			assert.Nil(t, r)

			var inputErr *InputError
			require.True(t, errors.As(err, &inputErr))
			assert.Equal(t, tt.property, inputErr.Property)
			if tt.reason != "" {
				assert.Contains(t, inputErr.Reason, tt.reason)
			}
		})
	}
}

func TestClassifyCoarse_CodeShape(t *testing.T) {
	fines := []float64{0, 2, 4.9, 5, 8, 12, 12.1, 20, 40}
	for _, f := range fines {
		for gravel := 0.0; gravel <= 100-f; gravel += 10 {
			s := Sample{
				GravelFraction: gravel,
				SandFraction:   100 - f - gravel,
				FinesFraction:  f,
				Cu:             5,
				Cc:             2,
				LiquidLimit:    35,
				PlasticLimit:   20,
			}
			r, err := ClassifyCoarse(s)
			if err != nil {
				t.Fatalf("%v: unexpected error %v", s, err)
			}

			wantPrimary := "S"
			if gravel > 100-f-gravel {
				wantPrimary = "G"
			}
			if !strings.HasPrefix(r.Code, wantPrimary) {
				t.Errorf("%v: code %q, want primary %s", s, r.Code, wantPrimary)
			}

			switch {
			case f < 5:
				if len(r.Code) != 2 {
					t.Errorf("fines %g: code %q, want two letters", f, r.Code)
				}
			case f <= 12:
				if len(r.Code) != 5 || r.Code[2] != '-' || r.Code[3] != r.Code[0] {
					t.Errorf("fines %g: code %q, want dual symbol", f, r.Code)
				}
			default:
				if len(r.Code) != 2 || r.Code[1] != 'C' {
					t.Errorf("fines %g: code %q, want primary plus C", f, r.Code)
				}
			}
		}
	}
}

func TestClassifyCoarse_Deterministic(t *testing.T) {
	s := Sample{GravelFraction: 60, SandFraction: 35, FinesFraction: 5, Cu: 5, Cc: 2}
	before := s.Clone()

	first, err := ClassifyCoarse(s)
	require.NoError(t, err)
	second, err := ClassifyCoarse(s)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, before, s)
	assert.Equal(t, "GW-GM", first.Code)
	assert.True(t, first.Grading.SuffixDefaulted)
}

func TestClassifyCoarse_IgnoresFineOnlyProperties(t *testing.T) {
	s := Sample{
		GravelFraction: 60, SandFraction: 37, FinesFraction: 3, Cu: 5, Cc: 2,
		WaterContent: 12, ShrinkageLimit: 10,
	}
	r, err := ClassifyCoarse(s)
	require.NoError(t, err)
	assert.Equal(t, "GW", r.Code)
	assert.Empty(t, r.Qualifiers.Consistency)
}
