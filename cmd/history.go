package cmd

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dharanetra/dhara/internal/report"
	"github.com/dharanetra/dhara/internal/soil"
	"github.com/dharanetra/dhara/internal/store"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Browse saved classifications",
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved classifications, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		kind, _ := cmd.Flags().GetString("kind")
		project, _ := cmd.Flags().GetString("project")
		since, _ := cmd.Flags().GetString("since")
		asJSON, _ := cmd.Flags().GetBool("json")

		opts := store.QueryOpts{Limit: limit, Project: project}
		if kind != "" {
			k, err := parseKind(kind)
			if err != nil {
				return err
			}
			opts.Kind = k
		}
		if since != "" {
			t, err := time.ParseInLocation(time.DateOnly, since, time.Local)
			if err != nil {
				return fmt.Errorf("invalid --since %q: want YYYY-MM-DD", since)
			}
			opts.From = t
		}

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		recs, err := s.HistoryRepo().List(cmd.Context(), opts)
		if err != nil {
			return fmt.Errorf("query history: %w", err)
		}

		if asJSON {
			return printJSON(cmd, recordsJSON(recs))
		}
		if len(recs) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No saved classifications found.")
			return nil
		}

		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "%-36s  %-19s  %-6s  %-7s  %-16s  %s\n",
			"ID", "Saved", "Kind", "Code", "Project", "Label")
		fmt.Fprintln(w, strings.Repeat("─", 110))
		for _, r := range recs {
			fmt.Fprintf(w, "%-36s  %-19s  %-6s  %-7s  %-16s  %s\n",
				r.ID,
				r.CreatedAt.Local().Format("2006-01-02 15:04:05"),
				r.Kind,
				r.Code,
				r.Project,
				r.Label,
			)
		}
		fmt.Fprintf(w, "\n%d records\n", len(recs))
		return nil
	},
}

var historyShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a saved classification",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		asJSON, _ := cmd.Flags().GetBool("json")

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		rec, err := s.HistoryRepo().Get(cmd.Context(), args[0])
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("record %s not found", args[0])
		}
		if err != nil {
			return fmt.Errorf("get record: %w", err)
		}

		if asJSON {
			return printJSON(cmd, recordsJSON([]store.Record{*rec})[0])
		}
		return report.Plain(cmd.OutOrStdout(), rec.Sample, rec.Result, rec.CreatedAt.Local())
	},
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete every saved classification",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		if !yes {
			return fmt.Errorf("refusing to clear history without --yes")
		}

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		n, err := s.HistoryRepo().Clear(cmd.Context())
		if err != nil {
			return fmt.Errorf("clear history: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d records.\n", n)
		return nil
	},
}

var historyProjectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "List projects",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		projects, err := s.ProjectRepo().List(cmd.Context())
		if err != nil {
			return fmt.Errorf("list projects: %w", err)
		}
		if len(projects) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No projects yet.")
			return nil
		}

		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "%-24s  %-19s  %s\n", "Name", "Created", "Location")
		fmt.Fprintln(w, strings.Repeat("─", 72))
		for _, p := range projects {
			fmt.Fprintf(w, "%-24s  %-19s  %s\n",
				p.Name, p.CreatedAt.Local().Format("2006-01-02 15:04:05"), p.Location)
		}
		return nil
	},
}

type recordJSON struct {
	ID        string       `json:"id"`
	Project   string       `json:"project,omitempty"`
	Label     string       `json:"label,omitempty"`
	Sample    soil.Sample  `json:"sample"`
	Result    *soil.Result `json:"result"`
	CreatedAt time.Time    `json:"created_at"`
}

func recordsJSON(recs []store.Record) []recordJSON {
	out := make([]recordJSON, 0, len(recs))
	for _, r := range recs {
		out = append(out, recordJSON{
			ID:        r.ID,
			Project:   r.Project,
			Label:     r.Label,
			Sample:    r.Sample,
			Result:    r.Result,
			CreatedAt: r.CreatedAt,
		})
	}
	return out
}

func init() {
	historyListCmd.Flags().IntP("limit", "n", 20, "Number of records to show (0 for all)")
	historyListCmd.Flags().String("kind", "", "Filter by kind: fine or coarse")
	historyListCmd.Flags().StringP("project", "p", "", "Filter by project")
	historyListCmd.Flags().String("since", "", "Only records saved on or after this date (YYYY-MM-DD)")
	historyListCmd.Flags().Bool("json", false, "Print records as JSON")

	historyShowCmd.Flags().Bool("json", false, "Print the record as JSON")

	historyClearCmd.Flags().Bool("yes", false, "Confirm deleting all records")

	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyShowCmd)
	historyCmd.AddCommand(historyClearCmd)
	historyCmd.AddCommand(historyProjectsCmd)
}
