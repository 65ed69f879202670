package soil

import "strings"

// Description is the human-readable interpretation of a classification
// code.
type Description struct {
	SoilType     string   `json:"soil_type,omitempty"`
	Gradation    string   `json:"gradation,omitempty"`
	Fines        string   `json:"fines,omitempty"`
	Applications []string `json:"applications,omitempty"`
}

// Lines returns the non-empty description fields, one per line, followed
// by the applications.
func (d Description) Lines() []string {
	var out []string
	for _, s := range []string{d.SoilType, d.Gradation, d.Fines} {
		if s != "" {
			out = append(out, s)
		}
	}
	return append(out, d.Applications...)
}

var (
	cleanCoarseApplications = []string{
		"Excellent drainage characteristics",
		"High strength and stability",
		"Suitable for road base and sub-base",
		"Suitable for dam construction (filters)",
		"Suitable for foundation support",
	}
	fineApplications = []string{
		"Low permeability",
		"Compressible nature",
		"Suitable for clay liners",
		"Suitable for earth dam cores",
		"Suitable for impervious barriers",
	}
)

const (
	expansiveNote = "Special consideration: expansive soil"
	organicNote   = "Special consideration: possible organic soil"
)

// Describe interprets a classification code by inspecting its letters.
// It accepts any code produced by ClassifyFine or ClassifyCoarse and
// returns an empty Description for anything it does not recognise.
func Describe(code string) Description {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return Description{}
	}

	switch Symbol(code[:1]) {
	case SymbolClay, SymbolSilt, SymbolOrganic:
		return describeFine(code)
	case SymbolGravel, SymbolSand:
		return describeCoarse(code)
	default:
		return Description{}
	}
}

func describeFine(code string) Description {
	var d Description
	switch Symbol(code[:1]) {
	case SymbolClay:
		d.SoilType = "Inorganic clay"
	case SymbolSilt:
		d.SoilType = "Silt or organic soil"
	case SymbolOrganic:
		d.SoilType = "Organic soil"
	}
	var comp Compressibility
	if len(code) > 1 {
		comp = compressibilityFromSymbol(code[1])
	}
	if comp != "" {
		d.SoilType += " of " + strings.ToLower(string(comp)) + " compressibility"
	}

	d.Applications = append([]string(nil), fineApplications...)
	if code[0] == 'C' && comp == CompressibilityHigh {
		d.Applications = append(d.Applications, expansiveNote)
	}
	if code[0] != 'C' {
		d.Applications = append(d.Applications, organicNote)
	}
	return d
}

func describeCoarse(code string) Description {
	d := Description{SoilType: Symbol(code[:1]).DisplayName()}
	rest := code[1:]

	switch {
	case strings.Contains(rest, "W"):
		d.Gradation = "Well graded soil with good particle size distribution"
	case strings.Contains(rest, "P"):
		d.Gradation = "Poorly graded soil with uniform particle size distribution"
	}

	switch {
	case strings.Contains(rest, string(FinesSilt)):
		d.Fines = "With " + FinesSilt.DisplayName()
	case strings.Contains(rest, string(FinesClay)):
		d.Fines = "With " + FinesClay.DisplayName()
	}

	if d.Fines == "" && d.Gradation != "" {
		d.Applications = append([]string(nil), cleanCoarseApplications...)
	}
	return d
}
