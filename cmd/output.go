package cmd

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/alexiusacademia/gopier/internal/nscp"
	"github.com/alexiusacademia/gopier/internal/tower"
	"github.com/ansel1/merry"
	"gopkg.in/yaml.v3"
)

// Output formats accepted by --format
const (
	formatTable = "table"
	formatCSV   = "csv"
	formatJSON  = "json"
	formatYAML  = "yaml"
)

// report is a titled table that can also be written as CSV, JSON or YAML
type report struct {
	title  string
	header []string
	rows   [][]string
	value  any // Encoded as is for json and yaml
}

func render(w io.Writer, format string, r report) error {
	switch strings.ToLower(format) {
	case formatTable, "":
		return renderTable(w, r)
	case formatCSV:
		cw := csv.NewWriter(w)
		if err := cw.Write(r.header); err != nil {
			return merry.Wrap(err)
		}
		if err := cw.WriteAll(r.rows); err != nil {
			return merry.Wrap(err)
		}
		return nil
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return merry.Wrap(enc.Encode(r.value))
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r.value); err != nil {
			return merry.Wrap(err)
		}
		return merry.Wrap(enc.Close())
	}
	return merry.Errorf("unknown output format %q: use table, csv, json or yaml", format)
}

func renderTable(w io.Writer, r report) error {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintf(w, "     %s\n", r.title)
	fmt.Fprintln(w, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(w)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "  %s\t\n", strings.Join(r.header, "\t"))
	rule := make([]string, len(r.header))
	for i, h := range r.header {
		rule[i] = strings.Repeat("─", len([]rune(h)))
	}
	fmt.Fprintf(tw, "  %s\t\n", strings.Join(rule, "\t"))
	for _, row := range r.rows {
		fmt.Fprintf(tw, "  %s\t\n", strings.Join(row, "\t"))
	}
	if err := tw.Flush(); err != nil {
		return merry.Wrap(err)
	}
	fmt.Fprintf(w, "\n  %d rows\n\n", len(r.rows))
	return nil
}

func f2(x float64) string { return fmt.Sprintf("%.2f", x) }
func f3(x float64) string { return fmt.Sprintf("%.3f", x) }
func lvl(x uint16) string { return fmt.Sprintf("%d", x) }

func sectionReport(sections []tower.Section) report {
	r := report{
		title:  "PIER SECTIONS",
		header: []string{"Level", "Pier", "Width (m)", "Depth (m)"},
		value:  sections,
	}
	for _, s := range sections {
		r.rows = append(r.rows, []string{lvl(s.Level), string(s.Pier), f3(s.W), f3(s.D)})
	}
	return r
}

func forceReport(forces []tower.Force) report {
	r := report{
		title:  "PIER FORCES",
		header: []string{"Level", "Pier", "Combo", "Force (kN)"},
		value:  forces,
	}
	for _, f := range forces {
		r.rows = append(r.rows, []string{lvl(f.Level), string(f.Pier), string(f.Combo), f2(f.Force)})
	}
	return r
}

func stressReport(title string, results []tower.StressResult) report {
	r := report{
		title:  title,
		header: []string{"ID", "Level", "Pier", "Combo", "Area (m²)", "Force (kN)", "Stress (kPa)"},
		value:  results,
	}
	for _, s := range results {
		r.rows = append(r.rows, []string{
			s.ID, lvl(s.Level), string(s.Pier), string(s.Combo), f3(s.Area), f2(s.Force), f2(s.Stress),
		})
	}
	return r
}

func summaryReport(summaries []tower.PierSummary) report {
	r := report{
		title:  "PIER STRESS SUMMARY",
		header: []string{"Pier", "Base Area (m²)", "Max Gravity (kPa)", "Max Wind (kPa)", "Max Seismic (kPa)", "Overall Max (kPa)"},
		value:  summaries,
	}
	for _, s := range summaries {
		r.rows = append(r.rows, []string{
			string(s.Pier), f2(s.BaseArea), f2(s.MaxGravity), f2(s.MaxWind), f2(s.MaxSeismic), f2(s.MaxStress),
		})
	}
	return r
}

func governingReport(governing []nscp.GoverningStress) report {
	r := report{
		title:  "GOVERNING STRESS - NSCP 2015",
		header: []string{"Pier", "Combination", "Load Case", "Level", "Force (kN)", "Stress (kPa)"},
		value:  governing,
	}
	for _, g := range governing {
		combo := "-"
		if g.Combination != "" {
			combo = fmt.Sprintf("%s: %s", g.Combination, g.Description)
		}
		r.rows = append(r.rows, []string{
			string(g.Pier), combo, string(g.LoadCase), lvl(g.Level), f2(g.Force), f2(g.Stress),
		})
	}
	return r
}
