// Package report renders classification results as plain text files and
// as styled terminal cards.
package report

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/dharanetra/dhara/internal/soil"
)

// DateLayout is the timestamp format of plain reports.
const DateLayout = "2006-01-02 15:04:05"

// Field is one labelled value of a result.
type Field struct {
	Label string
	Value string
}

// Fields returns the labelled values of a result in display order. Indices
// that were not computed are left out.
func Fields(r *soil.Result) []Field {
	if r.Kind == soil.KindCoarse {
		return coarseFields(r)
	}
	return fineFields(r)
}

func fineFields(r *soil.Result) []Field {
	var out []Field
	if r.Indices.PlasticityIndex != nil {
		out = append(out, Field{"Plasticity Index", fixed(*r.Indices.PlasticityIndex)})
	}
	if r.ALine != nil {
		out = append(out, Field{"A-line Value", fixed(*r.ALine)})
	}

	code := r.Code
	if len(r.Alternatives) > 0 {
		code += " or " + strings.Join(r.Alternatives, " or ")
	}
	q := r.Qualifiers
	out = append(out,
		Field{"Soil Classification", code},
		Field{"Compressibility", q.Compressibility.DisplayName()},
		Field{"Degree of Expansion", q.Expansion.DisplayName()},
		Field{"Toughness", q.Toughness.DisplayName()},
	)

	idx := r.Indices
	if idx.ShrinkageIndex != nil {
		out = append(out, Field{"Shrinkage Index", fixed(*idx.ShrinkageIndex)})
	}
	if idx.LiquidityIndex != nil {
		out = append(out, Field{"Liquidity Index", fixed(*idx.LiquidityIndex)})
	}
	if idx.ConsistencyIndex != nil {
		out = append(out,
			Field{"Consistency Index", fixed(*idx.ConsistencyIndex)},
			Field{"Soil Consistency", string(q.Consistency)},
		)
	}
	if idx.Activity != nil {
		out = append(out,
			Field{"Activity", fixed(*idx.Activity)},
			Field{"Activity Classification", string(q.Activity)},
		)
	}
	return out
}

func coarseFields(r *soil.Result) []Field {
	g := r.Grading
	if g == nil {
		return []Field{{"Classification", r.Code}}
	}

	out := []Field{
		{"Primary Soil Type", g.Primary.DisplayName()},
		{"Secondary Fraction", strconv.FormatFloat(g.SecondaryFraction, 'f', 1, 64) + "%"},
		{"Fines Content", strconv.FormatFloat(g.FinesFraction, 'f', 1, 64) + "%"},
	}
	if g.Cu != nil {
		out = append(out, Field{soil.Cu.DisplayName(), fixed(*g.Cu)})
	}
	if g.Cc != nil {
		out = append(out, Field{soil.Cc.DisplayName(), fixed(*g.Cc)})
	}
	if r.Plasticity != nil {
		out = append(out, Field{"Plasticity Index of Fines", fixed(r.Plasticity.PlasticityIndex)})
	}
	out = append(out, Field{"Classification", r.Code})
	if g.SuffixDefaulted {
		out = append(out, Field{"Note", "fines assumed non-plastic, no Atterberg limits given"})
	}
	return out
}

// Lines returns the result as text lines: the fields, a blank line, and
// the description.
func Lines(r *soil.Result) []string {
	var out []string
	for _, f := range Fields(r) {
		out = append(out, f.Label+": "+f.Value)
	}
	if desc := r.Description.Lines(); len(desc) > 0 {
		out = append(out, "")
		out = append(out, desc...)
	}
	return out
}

// Plain writes a text report of the sample and its result.
func Plain(w io.Writer, s soil.Sample, r *soil.Result, at time.Time) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "SOIL CLASSIFICATION REPORT")
	fmt.Fprintln(bw, strings.Repeat("=", 50))
	fmt.Fprintln(bw)
	fmt.Fprintf(bw, "Date: %s\n\n", at.Format(DateLayout))

	fmt.Fprintln(bw, "Input Parameters:")
	fmt.Fprintln(bw, strings.Repeat("-", 20))
	for _, p := range s.Keys() {
		fmt.Fprintf(bw, "%s: %s\n", p.DisplayName(), formatInput(p, s[p]))
	}

	fmt.Fprintln(bw)
	fmt.Fprintln(bw, "Classification Results:")
	fmt.Fprintln(bw, strings.Repeat("-", 20))
	for _, line := range Lines(r) {
		fmt.Fprintln(bw, line)
	}

	return bw.Flush()
}

func formatInput(p soil.Property, v float64) string {
	s := strconv.FormatFloat(v, 'g', -1, 64)
	if p.IsPercent() {
		return s + "%"
	}
	return s
}

func fixed(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
