package cmd

import (
	"fmt"
	"math"

	"github.com/dharanetra/dhara/internal/report"
	"github.com/dharanetra/dhara/internal/soil"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Print the plasticity chart",
	Long: "Print the plasticity chart geometry as JSON (A-line, U-line, reference lines\n" +
		"and zone labels), or draw it with --plot. Give --ll and --pl to mark a sample.",
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := chartFromFlags(cmd.Flags())
		if err != nil {
			return err
		}

		if plot, _ := cmd.Flags().GetBool("plot"); plot {
			fmt.Fprintln(cmd.OutOrStdout(), report.StyledPlot(c, 81, 31))
			return nil
		}
		return printJSON(cmd, c)
	},
}

// chartFromFlags builds the chart for --step and marks the --ll/--pl sample.
// The sample goes through the fine-grained input checks.
func chartFromFlags(fs *pflag.FlagSet) (soil.Chart, error) {
	step, _ := fs.GetFloat64("step")
	if math.IsNaN(step) || math.IsInf(step, 0) || step < soil.MinChartStep {
		return soil.Chart{}, fmt.Errorf("invalid --step %g: must be at least %g", step, soil.MinChartStep)
	}
	c := soil.PlasticityChart(step)

	llSet, plSet := fs.Changed("ll"), fs.Changed("pl")
	switch {
	case llSet && plSet:
		ll, _ := fs.GetFloat64("ll")
		pl, _ := fs.GetFloat64("pl")
		r, err := soil.ClassifyFine(soil.Sample{soil.LiquidLimit: ll, soil.PlasticLimit: pl})
		if err != nil {
			return soil.Chart{}, err
		}
		c = c.WithSample(*r.Plasticity)
	case llSet || plSet:
		return soil.Chart{}, fmt.Errorf("give both --ll and --pl to mark a sample")
	}
	return c, nil
}

func addChartFlags(fs *pflag.FlagSet) {
	fs.Float64("step", 1, "Liquid limit sampling step for the A-line and U-line")
	fs.Float64("ll", 0, "Liquid limit of a sample to mark (%)")
	fs.Float64("pl", 0, "Plastic limit of a sample to mark (%)")
	fs.Bool("plot", false, "Draw the chart instead of printing JSON")
}

func init() {
	addChartFlags(chartCmd.Flags())
}
