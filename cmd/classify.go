package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/dharanetra/dhara/internal/report"
	"github.com/dharanetra/dhara/internal/soil"
	"github.com/dharanetra/dhara/internal/store"
	"github.com/spf13/cobra"
)

var classifyCmd = &cobra.Command{
	Use:   "classify [fine|coarse]",
	Short: "Classify one sample",
	Long: "Classify one sample given as property flags or a JSON document (--input).\n" +
		"Without a kind the sample is classified as coarse-grained when it carries any\n" +
		"grain size fraction and as fine-grained otherwise.",
	Example: "  dhara classify fine --ll 45 --pl 20\n" +
		"  dhara classify coarse --gravel 55 --sand 35 --fines 10 --cu 6 --cc 1.5\n" +
		"  dhara classify --input sample.json --json",
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{string(soil.KindFine), string(soil.KindCoarse)},
	RunE: func(cmd *cobra.Command, args []string) error {
		input, _ := cmd.Flags().GetString("input")
		asJSON, _ := cmd.Flags().GetBool("json")
		save, _ := cmd.Flags().GetBool("save")
		project, _ := cmd.Flags().GetString("project")
		label, _ := cmd.Flags().GetString("label")
		reportPath, _ := cmd.Flags().GetString("report")

		doc, err := classifyInput(cmd, args, input)
		if err != nil {
			return err
		}

		r, err := soil.ClassifyDocument(doc)
		if err != nil {
			return err
		}
		logger.Debug("classified", "kind", r.Kind, "code", r.Code)

		now := time.Now()
		if reportPath != "" {
			if err := writeReport(reportPath, doc.Sample, r, now); err != nil {
				return err
			}
		}

		if save {
			if label == "" {
				label = doc.ID
			}
			rec := &store.Record{Project: project, Label: label, Sample: doc.Sample, Result: r, CreatedAt: now}
			if err := saveRecord(cmd, rec); err != nil {
				return err
			}
			if !asJSON {
				fmt.Fprintf(cmd.ErrOrStderr(), "saved %s\n", rec.ID)
			}
		}

		if asJSON {
			return printJSON(cmd, r)
		}
		fmt.Fprintln(cmd.OutOrStdout(), report.Styled(r, 0))
		return nil
	},
}

func init() {
	addPropertyFlags(classifyCmd.Flags())
	classifyCmd.Flags().StringP("input", "i", "", "Read the sample from a JSON document (- for stdin)")
	classifyCmd.Flags().Bool("json", false, "Print the result as JSON")
	classifyCmd.Flags().Bool("save", false, "Append the result to history")
	classifyCmd.Flags().String("project", "", "Project to file the saved result under")
	classifyCmd.Flags().String("label", "", "Label for the saved result (defaults to the document id)")
	classifyCmd.Flags().String("report", "", "Write the plain-text report to this file")
}

// classifyInput builds the document from --input or the property flags.
// A kind argument overrides the document's own kind.
func classifyInput(cmd *cobra.Command, args []string, input string) (soil.Document, error) {
	var doc soil.Document
	if input != "" {
		d, err := readDocument(input)
		if err != nil {
			return soil.Document{}, err
		}
		doc = d
		for k, v := range sampleFromFlags(cmd.Flags()) {
			doc.Sample[k] = v
		}
	} else {
		doc.Sample = sampleFromFlags(cmd.Flags())
		if len(doc.Sample) == 0 {
			return soil.Document{}, fmt.Errorf("no properties given: use flags such as --ll and --pl, or --input")
		}
	}

	if len(args) == 1 {
		kind, err := parseKind(args[0])
		if err != nil {
			return soil.Document{}, err
		}
		doc.Kind = kind
	}
	return doc, nil
}

func writeReport(path string, s soil.Sample, r *soil.Result, at time.Time) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report: %w", err)
	}
	if err := report.Plain(f, s, r, at); err != nil {
		f.Close()
		return fmt.Errorf("write report: %w", err)
	}
	return f.Close()
}

func saveRecord(cmd *cobra.Command, rec *store.Record) error {
	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	if err := st.HistoryRepo().Append(cmd.Context(), rec); err != nil {
		return fmt.Errorf("save result: %w", err)
	}
	return nil
}
