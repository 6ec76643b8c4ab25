package cmd

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alexiusacademia/gopier/internal/tower"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// resetFlags restores every flag to its default, since commands keep their
// flag values in package variables between runs
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			sv.Replace(nil)
		} else {
			f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestRenderFormats(t *testing.T) {
	rows := tower.Build(2).Stress[:2]
	r := stressReport("PIER STRESS", rows)

	var buf bytes.Buffer
	require.NoError(t, render(&buf, formatTable, r))
	assert.Contains(t, buf.String(), "PIER STRESS")
	assert.Contains(t, buf.String(), "2 rows")

	buf.Reset()
	require.NoError(t, render(&buf, formatCSV, r))
	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, []string{"P1_1", "1", "P1", "Gravity", "0.720", "5000.00", "6944.44"}, records[1])

	buf.Reset()
	require.NoError(t, render(&buf, formatJSON, r))
	var fromJSON []tower.StressResult
	require.NoError(t, json.Unmarshal(buf.Bytes(), &fromJSON))
	assert.Equal(t, rows, fromJSON)

	buf.Reset()
	require.NoError(t, render(&buf, formatYAML, r))
	var fromYAML []tower.StressResult
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &fromYAML))
	assert.Equal(t, rows, fromYAML)

	assert.Error(t, render(&buf, "xml", r))
}

func TestStressCommand(t *testing.T) {
	out, err := execute(t, "stress", "--pier", "p1", "--to", "2", "--format", "csv")
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1+2*len(tower.Combos))
	assert.Equal(t, "P1_1", records[1][0])
	assert.Equal(t, "6944.44", records[1][6])
}

func TestSectionsCommandUnknownPier(t *testing.T) {
	_, err := execute(t, "sections", "--pier", "P9")
	assert.ErrorContains(t, err, "unknown pier")
}

func TestRecomputeCommand(t *testing.T) {
	out, err := execute(t, "recompute", "--gravity", "2", "--to", "1", "--pier", "P1", "--format", "json")
	require.NoError(t, err)

	var results []tower.StressResult
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, len(tower.Combos))
	assert.Equal(t, 10000.0, results[0].Force)
	assert.Equal(t, 13888.89, results[0].Stress)
	assert.Equal(t, 2200.0, results[1].Force)
}

func TestRecomputeCommandPreset(t *testing.T) {
	out, err := execute(t, "recompute", "--combo", "6", "--to", "1", "--pier", "P1", "--format", "json")
	require.NoError(t, err)

	var results []tower.StressResult
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, len(tower.Combos))
	assert.Equal(t, 4500.0, results[0].Force)
	assert.Equal(t, 2200.0, results[1].Force)
	assert.Equal(t, 0.0, results[2].Force)
}

func TestRecomputeCommandParamsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "load.yaml")
	require.NoError(t, os.WriteFile(path, []byte("loadFactors:\n  wind: 0.5\nlevelRange: [2, 3]\n"), 0o644))

	// flags win over the file
	out, err := execute(t, "recompute", "--params", path, "--from", "3", "--pier", "P2", "--format", "json")
	require.NoError(t, err)

	var results []tower.StressResult
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, len(tower.Combos))
	assert.Equal(t, uint16(3), results[0].Level)
	assert.Equal(t, tower.Wind, results[1].Combo)

	base := tower.NewDefault().Forces
	for _, f := range base {
		if f.Level == 3 && f.Pier == "P2" && f.Combo == tower.Wind {
			assert.InDelta(t, f.Force*0.5, results[1].Force, 0.01)
		}
	}
}

func TestRecomputeCommandExtends(t *testing.T) {
	out, err := execute(t, "recompute", "--levels", "10", "--from", "12", "--to", "12", "--format", "json")
	require.NoError(t, err)

	var results []tower.StressResult
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, len(tower.Piers)*len(tower.Combos))
	assert.Equal(t, uint16(12), results[0].Level)
}

func TestRecomputeCommandInvertedRange(t *testing.T) {
	out, err := execute(t, "recompute", "--from", "80", "--to", "10", "--format", "json")
	require.NoError(t, err)
	assert.JSONEq(t, "[]", out)
}

func TestRecomputeCommandRejectsBadFactors(t *testing.T) {
	_, err := execute(t, "recompute", "--wind", "-1", "--to", "5000")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "wind load factor")
	assert.Contains(t, err.Error(), "exceeds the limit")
}

func TestSummaryCommand(t *testing.T) {
	out, err := execute(t, "summary", "--format", "json")
	require.NoError(t, err)

	var summaries []tower.PierSummary
	require.NoError(t, json.Unmarshal([]byte(out), &summaries))
	assert.Equal(t, tower.Summarize(tower.NewDefault().Stress), summaries)

	out, err = execute(t, "summary")
	require.NoError(t, err)
	assert.Contains(t, out, "PEAK STRESS")
}

func TestSummaryCommandPier(t *testing.T) {
	out, err := execute(t, "summary", "--pier", "p2", "--format", "json")
	require.NoError(t, err)

	var summaries []tower.PierSummary
	require.NoError(t, json.Unmarshal([]byte(out), &summaries))
	require.Len(t, summaries, 1)
	assert.Equal(t, tower.PierID("P2"), summaries[0].Pier)
	assert.Equal(t, tower.Summarize(tower.NewDefault().Stress)[1], summaries[0])

	_, err = execute(t, "summary", "--pier", "P9", "--format", "json")
	assert.ErrorContains(t, err, "unknown pier")
}

func TestSummaryCommandFormatCase(t *testing.T) {
	out, err := execute(t, "summary", "--format", "TABLE")
	require.NoError(t, err)
	assert.Contains(t, out, "PEAK STRESS")

	out, err = execute(t, "summary", "--format", "")
	require.NoError(t, err)
	assert.Contains(t, out, "PEAK STRESS")
}

func TestCommandsRejectRangeAboveLimit(t *testing.T) {
	for _, args := range [][]string{
		{"summary", "--to", "65000"},
		{"profile", "--pier", "P1", "--to", "65000"},
		{"govern", "--to", "65000"},
		{"stress", "--to", "65000"},
		{"recompute", "--to", "300", "--max-levels", "200"},
	} {
		_, err := execute(t, args...)
		require.Error(t, err, args[0])
		assert.Contains(t, err.Error(), "exceeds the limit", args[0])
	}

	_, err := execute(t, "summary", "--to", "150", "--max-levels", "150", "--format", "json")
	assert.NoError(t, err)
}

func TestProfileCommand(t *testing.T) {
	out, err := execute(t, "profile", "--pier", "P4", "--to", "3", "--format", "csv")
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 4)
	assert.Equal(t, []string{"Level", "Gravity (kPa)", "Wind (kPa)", "Seismic (kPa)"}, records[0])
	assert.Equal(t, "3", records[3][0])
}

func TestGovernCommand(t *testing.T) {
	out, err := execute(t, "govern", "--combo", "1,2", "--pier", "P1", "--format", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"loadCase": "Gravity"`)

	_, err = execute(t, "govern", "--combo", "9")
	assert.ErrorContains(t, err, "unknown NSCP load combination")
}

func TestCombosCommand(t *testing.T) {
	out, err := execute(t, "combos")
	require.NoError(t, err)
	assert.Contains(t, out, "0.9D + 1.0W")
	assert.Contains(t, out, "1.2D + 1.0E + 1.0L")
}
