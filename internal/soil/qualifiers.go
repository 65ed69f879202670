package soil

// NotAvailable labels a qualifier whose input index could not be computed.
const NotAvailable = "Not available"

// Compressibility is the IS 1498 plasticity/compressibility band of a fine
// soil, read from its liquid limit.
type Compressibility string

const (
	CompressibilityLow          Compressibility = "Low"
	CompressibilityIntermediate Compressibility = "Intermediate"
	CompressibilityHigh         Compressibility = "High"
)

// Symbol returns the one-letter code suffix (L, I or H).
func (c Compressibility) Symbol() string {
	switch c {
	case CompressibilityLow:
		return "L"
	case CompressibilityIntermediate:
		return "I"
	case CompressibilityHigh:
		return "H"
	default:
		return ""
	}
}

// DisplayName returns the label with its symbol, e.g. "Low -[L]".
func (c Compressibility) DisplayName() string {
	if c == "" {
		return ""
	}
	return string(c) + " -[" + c.Symbol() + "]"
}

// compressibilityFromSymbol is the inverse of Symbol.
func compressibilityFromSymbol(s byte) Compressibility {
	switch s {
	case 'L':
		return CompressibilityLow
	case 'I':
		return CompressibilityIntermediate
	case 'H':
		return CompressibilityHigh
	default:
		return ""
	}
}

// Expansion is the degree of expansion (swell potential) of a fine soil.
type Expansion string

const (
	ExpansionLow      Expansion = "Low"
	ExpansionMedium   Expansion = "Medium"
	ExpansionHigh     Expansion = "High"
	ExpansionVeryHigh Expansion = "Very High"
)

// Severity returns the engineering severity attached to the band.
func (e Expansion) Severity() string {
	switch e {
	case ExpansionLow:
		return "Non-critical"
	case ExpansionMedium:
		return "Marginal"
	case ExpansionHigh:
		return "Critical"
	case ExpansionVeryHigh:
		return "Severe"
	default:
		return ""
	}
}

// DisplayName returns the label with its severity, e.g. "High (Critical)".
func (e Expansion) DisplayName() string {
	if e == "" {
		return ""
	}
	return string(e) + " (" + e.Severity() + ")"
}

// Toughness is the toughness near the plastic limit, read from the
// plasticity index.
type Toughness string

const (
	ToughnessLow    Toughness = "Low"
	ToughnessMedium Toughness = "Medium"
	ToughnessHigh   Toughness = "High"
)

// DisplayName returns e.g. "Medium toughness".
func (t Toughness) DisplayName() string {
	if t == "" {
		return ""
	}
	return string(t) + " toughness"
}

// Consistency is the field consistency read from the consistency index.
type Consistency string

const (
	ConsistencyVerySoft     Consistency = "Very Soft"
	ConsistencySoft         Consistency = "Soft"
	ConsistencyMediumSoft   Consistency = "Medium Soft"
	ConsistencyStiff        Consistency = "Stiff"
	ConsistencyVeryStiff    Consistency = "Very Stiff"
	ConsistencyHard         Consistency = "Hard"
	ConsistencyNotAvailable Consistency = NotAvailable
)

// Activity is the Skempton activity class of the clay fraction.
type Activity string

const (
	ActivityInactive     Activity = "Inactive"
	ActivityNormal       Activity = "Normal"
	ActivityActive       Activity = "Active"
	ActivityNotAvailable Activity = NotAvailable
)

// Gradation describes the grain-size distribution of a coarse soil.
type Gradation string

const (
	GradationWell   Gradation = "W"
	GradationPoorly Gradation = "P"
)

// DisplayName returns "Well graded" or "Poorly graded".
func (g Gradation) DisplayName() string {
	switch g {
	case GradationWell:
		return "Well graded"
	case GradationPoorly:
		return "Poorly graded"
	default:
		return ""
	}
}

// Band tables for every single-variable qualifier. They are read-only.
var (
	CompressibilityBands = BandTable[Compressibility]{
		{Below(35), CompressibilityLow},
		{AtMost(50), CompressibilityIntermediate},
		{Unbounded, CompressibilityHigh},
	}

	ToughnessBands = BandTable[Toughness]{
		{Below(7), ToughnessLow},
		{AtMost(17), ToughnessMedium},
		{Unbounded, ToughnessHigh},
	}

	ConsistencyBands = BandTable[Consistency]{
		{AtMost(0), ConsistencyVerySoft},
		{AtMost(0.25), ConsistencySoft},
		{AtMost(0.50), ConsistencyMediumSoft},
		{AtMost(0.75), ConsistencyStiff},
		{AtMost(1.00), ConsistencyVeryStiff},
		{Unbounded, ConsistencyHard},
	}

	ActivityBands = BandTable[Activity]{
		{Below(0.75), ActivityInactive},
		{AtMost(1.25), ActivityNormal},
		{Unbounded, ActivityActive},
	}
)

// ExpansionBands is keyed on (liquid limit, plasticity index). The bands
// overlap; evaluation order decides, so Low is tested before Medium and so
// on. Do not reorder.
var ExpansionBands = PairTable[Expansion]{
	{X: Below(35), Y: Below(12), Label: ExpansionLow},
	{X: AtMost(50), Y: AtMost(23), Label: ExpansionMedium},
	{X: AtMost(70), Y: AtMost(32), Label: ExpansionHigh},
	{X: Unbounded, Y: Unbounded, Label: ExpansionVeryHigh},
}

// CompressibilityOf classifies a liquid limit.
func CompressibilityOf(ll float64) Compressibility {
	c, _ := CompressibilityBands.Lookup(ll)
	return c
}

// ExpansionOf classifies a (liquid limit, plasticity index) pair.
func ExpansionOf(ll, pi float64) Expansion {
	e, _ := ExpansionBands.Lookup(ll, pi)
	return e
}

// ToughnessOf classifies a plasticity index.
func ToughnessOf(pi float64) Toughness {
	t, _ := ToughnessBands.Lookup(pi)
	return t
}

// ConsistencyOf classifies a consistency index; nil yields NotAvailable.
func ConsistencyOf(ci *float64) Consistency {
	if ci == nil {
		return ConsistencyNotAvailable
	}
	if c, ok := ConsistencyBands.Lookup(*ci); ok {
		return c
	}
	return ConsistencyNotAvailable
}

// ActivityOf classifies an activity value; nil yields NotAvailable.
func ActivityOf(a *float64) Activity {
	if a == nil {
		return ActivityNotAvailable
	}
	if c, ok := ActivityBands.Lookup(*a); ok {
		return c
	}
	return ActivityNotAvailable
}

// GradationOf applies the well-graded criterion: cu >= 4 and 1 <= cc <= 3.
func GradationOf(cu, cc float64) Gradation {
	if cu >= 4 && cc >= 1 && cc <= 3 {
		return GradationWell
	}
	return GradationPoorly
}
