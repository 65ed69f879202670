package cmd

import (
	"fmt"
	"strings"

	"github.com/dharanetra/dhara/internal/batch"
	"github.com/dharanetra/dhara/internal/soil"
	"github.com/dharanetra/dhara/internal/store"
	"github.com/spf13/cobra"
)

var batchCmd = &cobra.Command{
	Use:   "batch FILE...",
	Short: "Classify samples from CSV or JSON-lines files",
	Long: "Classify every sample in the given files. CSV files have a header row of property\n" +
		"keys (liquid_limit, plastic_limit, ...) plus optional id and kind columns; empty\n" +
		"cells are not measured. .jsonl/.ndjson/.json files hold one sample document per line.\n" +
		"A row that cannot be classified is reported and the batch continues.",
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		save, _ := cmd.Flags().GetBool("save")
		project, _ := cmd.Flags().GetString("project")
		asJSON, _ := cmd.Flags().GetBool("json")

		cfg := batch.ConfigFromEnv()
		if cmd.Flags().Changed("workers") {
			cfg.Workers, _ = cmd.Flags().GetInt("workers")
		}
		if cmd.Flags().Changed("stop-on-error") {
			cfg.StopOnError, _ = cmd.Flags().GetBool("stop-on-error")
		}

		var items []batch.Item
		for _, path := range args {
			read, err := batch.ReadFile(path)
			if err != nil {
				return err
			}
			items = append(items, read...)
		}

		runner, err := batch.NewRunner(cfg, logger)
		if err != nil {
			return err
		}
		outcomes, runErr := runner.Run(cmd.Context(), items)

		if save {
			n, err := saveOutcomes(cmd, outcomes, project)
			if err != nil {
				return err
			}
			logger.Info("saved batch results", "count", n)
		}

		if asJSON {
			if err := printJSON(cmd, batchJSON(outcomes)); err != nil {
				return err
			}
		} else {
			printOutcomes(cmd, outcomes)
		}
		return runErr
	},
}

func init() {
	batchCmd.Flags().IntP("workers", "w", 0, "Concurrent classifications (default DHARA_BATCH_WORKERS or CPU count)")
	batchCmd.Flags().Bool("stop-on-error", false, "Stop at the first sample that cannot be classified")
	batchCmd.Flags().Bool("save", false, "Append classified samples to history")
	batchCmd.Flags().String("project", "", "Project to file saved results under")
	batchCmd.Flags().Bool("json", false, "Print outcomes as JSON")
}

// saveOutcomes appends every classified outcome, labelled by item.
func saveOutcomes(cmd *cobra.Command, outcomes []batch.Outcome, project string) (int, error) {
	st, err := openStore(cmd)
	if err != nil {
		return 0, err
	}
	defer st.Close()

	repo := st.HistoryRepo()
	saved := 0
	for _, o := range outcomes {
		if o.Result == nil {
			continue
		}
		rec := &store.Record{
			Project: project,
			Label:   o.Item.Label(),
			Sample:  o.Item.Document.Sample,
			Result:  o.Result,
		}
		if err := repo.Append(cmd.Context(), rec); err != nil {
			return saved, fmt.Errorf("save %s: %w", o.Item.Label(), err)
		}
		saved++
	}
	return saved, nil
}

type outcomeJSON struct {
	Item   string       `json:"item"`
	Code   string       `json:"code,omitempty"`
	Result *soil.Result `json:"result,omitempty"`
	Error  string       `json:"error,omitempty"`
}

func batchJSON(outcomes []batch.Outcome) []outcomeJSON {
	out := make([]outcomeJSON, 0, len(outcomes))
	for _, o := range outcomes {
		j := outcomeJSON{Item: o.Item.Label()}
		switch {
		case o.Result != nil:
			j.Code, j.Result = o.Result.Code, o.Result
		case o.Err != nil:
			j.Error = o.Err.Error()
		default:
			j.Error = "not run"
		}
		out = append(out, j)
	}
	return out
}

func printOutcomes(cmd *cobra.Command, outcomes []batch.Outcome) {
	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "%-24s  %-7s  %s\n", "Sample", "Code", "Notes")
	fmt.Fprintln(w, strings.Repeat("─", 72))

	for _, o := range outcomes {
		label := o.Item.Label()
		if len(label) > 24 {
			label = label[:21] + "..."
		}
		switch {
		case o.Result != nil:
			fmt.Fprintf(w, "%-24s  %-7s  %s\n", label, o.Result.Code, o.Result.Description.SoilType)
		case o.Err != nil:
			fmt.Fprintf(w, "%-24s  %-7s  %s\n", label, "-", o.Err)
		}
	}

	sum := batch.Summarize(outcomes)
	fmt.Fprintf(w, "\n%d samples, %d classified, %d failed\n", sum.Total, sum.Classified, sum.Failed)
	for _, c := range sum.Codes {
		fmt.Fprintf(w, "  %-7s %d\n", c.Code, c.Count)
	}
}
