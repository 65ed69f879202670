package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dharanetra/dhara/internal/soil"
	"github.com/dharanetra/dhara/internal/store"
)

func flagCmd(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	c := &cobra.Command{Use: "test"}
	addPropertyFlags(c.Flags())
	c.Flags().String("input", "", "")
	require.NoError(t, c.Flags().Parse(args))
	return c
}

func TestSampleFromFlags(t *testing.T) {
	c := flagCmd(t, "--ll", "45", "--pl", "20", "--clay", "0")
	s := sampleFromFlags(c.Flags())

	assert.Equal(t, soil.Sample{
		soil.LiquidLimit:  45,
		soil.PlasticLimit: 20,
		soil.ClayFraction: 0,
	}, s)
}

func TestParseKind(t *testing.T) {
	k, err := parseKind("coarse")
	require.NoError(t, err)
	assert.Equal(t, soil.KindCoarse, k)

	_, err = parseKind("peat")
	assert.ErrorContains(t, err, "unknown kind")
}

func TestClassifyInput(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sample.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"id":"BH-1","liquid_limit":45,"plastic_limit":20}`), 0o644))

	t.Run("flags only", func(t *testing.T) {
		doc, err := classifyInput(flagCmd(t, "--ll", "45", "--pl", "20"), []string{"fine"}, "")
		require.NoError(t, err)
		assert.Equal(t, soil.KindFine, doc.Kind)
		assert.Len(t, doc.Sample, 2)
	})

	t.Run("no properties", func(t *testing.T) {
		_, err := classifyInput(flagCmd(t), nil, "")
		assert.ErrorContains(t, err, "no properties")
	})

	t.Run("document with flag override", func(t *testing.T) {
		doc, err := classifyInput(flagCmd(t, "--wc", "30"), nil, path)
		require.NoError(t, err)
		assert.Equal(t, "BH-1", doc.ID)
		assert.Equal(t, soil.Kind(""), doc.Kind)
		assert.Equal(t, 30.0, doc.Sample[soil.WaterContent])
		assert.Equal(t, 45.0, doc.Sample[soil.LiquidLimit])
	})

	t.Run("bad kind", func(t *testing.T) {
		_, err := classifyInput(flagCmd(t, "--ll", "45"), []string{"rock"}, "")
		assert.Error(t, err)
	})
}

func execute(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(args)
	require.NoError(t, rootCmd.Execute())
	return out.String()
}

func TestClassifySaveAndList(t *testing.T) {
	db := filepath.Join(t.TempDir(), "dhara.db")
	reportPath := filepath.Join(t.TempDir(), "report.txt")

	out := execute(t, "classify", "fine", "--ll", "45", "--pl", "20",
		"--json", "--save", "--project", "bridge", "--label", "BH-1",
		"--report", reportPath, "--db", db)

	var r soil.Result
	require.NoError(t, json.Unmarshal([]byte(out), &r))
	assert.Equal(t, "CI", r.Code)

	text, err := os.ReadFile(reportPath)
	require.NoError(t, err)
	assert.Contains(t, string(text), "SOIL CLASSIFICATION REPORT")

	out = execute(t, "history", "list", "--json", "--project", "bridge", "--db", db)
	var recs []recordJSON
	require.NoError(t, json.Unmarshal([]byte(out), &recs))
	require.Len(t, recs, 1)
	assert.Equal(t, "BH-1", recs[0].Label)
	assert.Equal(t, "CI", recs[0].Result.Code)
}

func TestChartJSON(t *testing.T) {
	out := execute(t, "chart", "--step", "10", "--ll", "45", "--pl", "20")

	var c soil.Chart
	require.NoError(t, json.Unmarshal([]byte(out), &c))
	require.NotNil(t, c.Sample)
	assert.Equal(t, soil.Point{X: 45, Y: 25}, *c.Sample)
	require.Len(t, c.Lines, 2)
	assert.Len(t, c.Lines[0].Points, 11)
}

func chartFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("chart", pflag.ContinueOnError)
	addChartFlags(fs)
	require.NoError(t, fs.Parse(args))
	return fs
}

func TestChartFromFlags_Step(t *testing.T) {
	for _, step := range []string{"0", "-1", "0.001", "1e-300", "NaN", "+Inf"} {
		t.Run(step, func(t *testing.T) {
			_, err := chartFromFlags(chartFlags(t, "--step", step))
			require.Error(t, err)
			assert.Contains(t, err.Error(), "invalid --step")
		})
	}

	c, err := chartFromFlags(chartFlags(t, "--step", "0.01"))
	require.NoError(t, err)
	assert.Len(t, c.Lines[0].Points, 10001)
}

func TestChartFromFlags_Sample(t *testing.T) {
	t.Run("plastic limit above liquid limit", func(t *testing.T) {
		_, err := chartFromFlags(chartFlags(t, "--ll", "30", "--pl", "35"))
		var ierr *soil.InputError
		require.ErrorAs(t, err, &ierr)
		assert.Equal(t, soil.PlasticLimit, ierr.Property)
		assert.Contains(t, ierr.Reason, "less than liquid limit")
	})

	t.Run("liquid limit out of range", func(t *testing.T) {
		_, err := chartFromFlags(chartFlags(t, "--ll", "-5", "--pl", "-10"))
		var ierr *soil.InputError
		require.ErrorAs(t, err, &ierr)
	})

	t.Run("only one limit", func(t *testing.T) {
		_, err := chartFromFlags(chartFlags(t, "--ll", "45"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "give both")
	})

	t.Run("no sample", func(t *testing.T) {
		c, err := chartFromFlags(chartFlags(t))
		require.NoError(t, err)
		assert.Nil(t, c.Sample)
	})
}

func TestSaveRecord_UsesCommandContext(t *testing.T) {
	db := filepath.Join(t.TempDir(), "dhara.db")
	c := &cobra.Command{Use: "test"}
	c.Flags().String("db", db, "")

	r, err := soil.ClassifyFine(soil.Sample{soil.LiquidLimit: 45, soil.PlasticLimit: 20})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	c.SetContext(ctx)

	err = saveRecord(c, &store.Record{Result: r})
	require.ErrorIs(t, err, context.Canceled)

	c.SetContext(context.Background())
	require.NoError(t, saveRecord(c, &store.Record{Label: "after", Result: r}))

	st, err := store.Open(db)
	require.NoError(t, err)
	defer st.Close()
	recs, err := st.HistoryRepo().List(context.Background(), store.QueryOpts{})
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "after", recs[0].Label)
}
