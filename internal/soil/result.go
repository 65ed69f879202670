package soil

// Kind identifies which classifier produced a result.
type Kind string

const (
	KindFine   Kind = "fine"
	KindCoarse Kind = "coarse"
)

// DisplayName returns "Fine-grained" or "Coarse-grained".
func (k Kind) DisplayName() string {
	switch k {
	case KindFine:
		return "Fine-grained"
	case KindCoarse:
		return "Coarse-grained"
	default:
		return string(k)
	}
}

// Symbol is a primary IS 1498 group letter.
type Symbol string

const (
	SymbolGravel  Symbol = "G"
	SymbolSand    Symbol = "S"
	SymbolSilt    Symbol = "M"
	SymbolClay    Symbol = "C"
	SymbolOrganic Symbol = "O"
)

// DisplayName returns the soil name of the symbol.
func (s Symbol) DisplayName() string {
	switch s {
	case SymbolGravel:
		return "Gravel"
	case SymbolSand:
		return "Sand"
	case SymbolSilt:
		return "Silt"
	case SymbolClay:
		return "Clay"
	case SymbolOrganic:
		return "Organic soil"
	default:
		return string(s)
	}
}

// FinesBranch is the fines-content band that decides whether gradation,
// plasticity, or both govern a coarse classification.
type FinesBranch string

const (
	BranchClean      FinesBranch = "clean"      // fines < 5 %
	BranchBorderline FinesBranch = "borderline" // 5 % <= fines <= 12 %
	BranchFines      FinesBranch = "with-fines" // fines > 12 %
)

// Qualifiers are the descriptive engineering labels of a result. Labels
// that do not apply to the result's kind are empty.
type Qualifiers struct {
	Compressibility Compressibility `json:"compressibility,omitempty"`
	Expansion       Expansion       `json:"expansion,omitempty"`
	Toughness       Toughness       `json:"toughness,omitempty"`
	Consistency     Consistency     `json:"consistency,omitempty"`
	Activity        Activity        `json:"activity,omitempty"`
	Gradation       Gradation       `json:"gradation,omitempty"`
	Fines           FinesSymbol     `json:"fines,omitempty"`
}

// Grading carries the grain-size details of a coarse result.
type Grading struct {
	Primary           Symbol      `json:"primary"`
	PrimaryFraction   float64     `json:"primary_fraction"`
	SecondaryFraction float64     `json:"secondary_fraction"`
	FinesFraction     float64     `json:"fines_fraction"`
	Cu                *float64    `json:"cu,omitempty"`
	Cc                *float64    `json:"cc,omitempty"`
	Branch            FinesBranch `json:"branch"`
	Gradation         Gradation   `json:"gradation,omitempty"`
	FinesSymbol       FinesSymbol `json:"fines_symbol,omitempty"`
	// SuffixDefaulted is set when the fines symbol is the non-plastic
	// default used for borderline soils without Atterberg limits.
	SuffixDefaulted bool `json:"suffix_defaulted,omitempty"`
}

// Result is the outcome of one classification call.
type Result struct {
	Code         string      `json:"code"`
	Kind         Kind        `json:"kind"`
	Primary      Symbol      `json:"primary"`
	Alternatives []string    `json:"alternatives,omitempty"`
	Plasticity   *Plasticity `json:"plasticity,omitempty"`
	ALine        *float64    `json:"a_line,omitempty"`
	Indices      Indices     `json:"indices"`
	Qualifiers   Qualifiers  `json:"qualifiers"`
	Grading      *Grading    `json:"grading,omitempty"`
	Description  Description `json:"description"`
}

// Classify routes the sample to the coarse-grained classifier when it
// carries any grain fraction and to the fine-grained classifier otherwise.
func Classify(s Sample) (*Result, error) {
	if s.IsCoarse() {
		return ClassifyCoarse(s)
	}
	return ClassifyFine(s)
}
