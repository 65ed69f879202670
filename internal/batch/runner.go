package batch

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"

	"github.com/dharanetra/dhara/internal/soil"
	"golang.org/x/sync/errgroup"
)

// Outcome pairs an item with its classification. Exactly one of Result
// and Err is set.
type Outcome struct {
	Item   Item
	Result *soil.Result
	Err    error
}

// Runner classifies items concurrently.
type Runner struct {
	cfg    Config
	logger *slog.Logger
}

// NewRunner creates a Runner. A nil logger discards output.
func NewRunner(cfg Config, logger *slog.Logger) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("batch config: %w", err)
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Runner{cfg: cfg, logger: logger}, nil
}

// Run classifies every item with bounded concurrency and returns outcomes
// in input order. Failed items are recorded in their outcome; Run itself
// only fails when the context is cancelled or, with StopOnError, on the
// first failed item.
func (r *Runner) Run(ctx context.Context, items []Item) ([]Outcome, error) {
	outcomes := make([]Outcome, len(items))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workerCount(r.cfg.Workers, len(items)))

	for i := range items {
		g.Go(func() error {
			if gctx.Err() != nil {
				return gctx.Err()
			}

			it := items[i]
			out := Outcome{Item: it, Err: it.Err}
			if out.Err == nil {
				out.Result, out.Err = soil.ClassifyDocument(it.Document)
			}
			outcomes[i] = out

			if out.Err != nil {
				r.logger.DebugContext(gctx, "sample failed", "item", it.Label(), "error", out.Err)
				if r.cfg.StopOnError {
					return fmt.Errorf("%s: %w", it.Label(), out.Err)
				}
				return nil
			}
			r.logger.DebugContext(gctx, "sample classified", "item", it.Label(), "code", out.Result.Code)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return outcomes, err
	}

	r.logger.InfoContext(ctx, "batch complete", "items", len(items), "workers", workerCount(r.cfg.Workers, len(items)))
	return outcomes, nil
}

// Summary tallies a batch run.
type Summary struct {
	Total      int
	Classified int
	Failed     int
	Codes      []CodeCount
}

// CodeCount is the number of samples that received a code.
type CodeCount struct {
	Code  string
	Count int
}

// Summarize counts outcomes per code, most frequent first.
func Summarize(outcomes []Outcome) Summary {
	s := Summary{Total: len(outcomes)}
	counts := make(map[string]int)
	for _, o := range outcomes {
		if o.Result == nil {
			s.Failed++
			continue
		}
		s.Classified++
		counts[o.Result.Code]++
	}

	for code, n := range counts {
		s.Codes = append(s.Codes, CodeCount{Code: code, Count: n})
	}
	sort.Slice(s.Codes, func(i, j int) bool {
		if s.Codes[i].Count != s.Codes[j].Count {
			return s.Codes[i].Count > s.Codes[j].Count
		}
		return s.Codes[i].Code < s.Codes[j].Code
	})
	return s
}
