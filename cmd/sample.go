package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/dharanetra/dhara/internal/soil"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// propertyFlags maps each command-line flag to the property it sets.
var propertyFlags = []struct {
	name     string
	property soil.Property
}{
	{"ll", soil.LiquidLimit},
	{"pl", soil.PlasticLimit},
	{"wc", soil.WaterContent},
	{"sl", soil.ShrinkageLimit},
	{"clay", soil.ClayFraction},
	{"gravel", soil.GravelFraction},
	{"sand", soil.SandFraction},
	{"fines", soil.FinesFraction},
	{"cu", soil.Cu},
	{"cc", soil.Cc},
}

func addPropertyFlags(fs *pflag.FlagSet) {
	for _, pf := range propertyFlags {
		usage := pf.property.DisplayName()
		if pf.property.IsPercent() {
			usage += " (%)"
		}
		fs.Float64(pf.name, 0, usage)
	}
}

// sampleFromFlags returns the properties whose flags were given. Flags left
// unset are not measured, which is different from an explicit zero.
func sampleFromFlags(fs *pflag.FlagSet) soil.Sample {
	s := soil.Sample{}
	for _, pf := range propertyFlags {
		if !fs.Changed(pf.name) {
			continue
		}
		v, _ := fs.GetFloat64(pf.name)
		s[pf.property] = v
	}
	return s
}

// readDocument loads a sample document from path, or stdin for "-".
func readDocument(path string) (soil.Document, error) {
	var (
		raw []byte
		err error
	)
	if path == "-" {
		raw, err = io.ReadAll(os.Stdin)
	} else {
		raw, err = os.ReadFile(path)
	}
	if err != nil {
		return soil.Document{}, fmt.Errorf("read %s: %w", path, err)
	}
	return soil.ParseDocument(raw)
}

// parseKind validates a kind argument.
func parseKind(arg string) (soil.Kind, error) {
	switch k := soil.Kind(arg); k {
	case soil.KindFine, soil.KindCoarse:
		return k, nil
	default:
		return "", fmt.Errorf("unknown kind %q: use fine or coarse", arg)
	}
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
