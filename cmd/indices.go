package cmd

import (
	"fmt"

	"github.com/dharanetra/dhara/internal/soil"
	"github.com/spf13/cobra"
)

var indicesCmd = &cobra.Command{
	Use:   "indices",
	Short: "Compute derived indices for a sample",
	Long:  "Compute plasticity, shrinkage, liquidity and consistency indices and activity\nfrom whichever properties are given. Indices whose inputs are missing are omitted.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		asJSON, _ := cmd.Flags().GetBool("json")

		idx := soil.ComputeIndices(sampleFromFlags(cmd.Flags()))
		if asJSON {
			return printJSON(cmd, idx)
		}

		rows := []struct {
			name string
			v    *float64
		}{
			{"Plasticity Index", idx.PlasticityIndex},
			{"Shrinkage Index", idx.ShrinkageIndex},
			{"Liquidity Index", idx.LiquidityIndex},
			{"Consistency Index", idx.ConsistencyIndex},
			{"Activity", idx.Activity},
		}
		printed := 0
		for _, r := range rows {
			if r.v == nil {
				continue
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%-18s %.2f\n", r.name+":", *r.v)
			printed++
		}
		if printed == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No indices: give at least --ll and --pl.")
		}
		return nil
	},
}

func init() {
	addPropertyFlags(indicesCmd.Flags())
	indicesCmd.Flags().Bool("json", false, "Print the indices as JSON")
}
