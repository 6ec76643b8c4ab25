package cmd

import (
	"strings"

	"github.com/alexiusacademia/gopier/internal/server"
	"github.com/alexiusacademia/gopier/internal/tower"
	"github.com/ansel1/merry"
	"github.com/spf13/cobra"
)

// filterFlags selects rows of a base table by level range and pier
type filterFlags struct {
	from   uint16
	to     uint16
	pier   string
	format string
	limit  uint16
}

func (f *filterFlags) register(cmd *cobra.Command) {
	cmd.Flags().Uint16Var(&f.from, "from", 1, "Lowest level to show")
	cmd.Flags().Uint16Var(&f.to, "to", 0, "Highest level to show (default: top level)")
	cmd.Flags().StringVarP(&f.pier, "pier", "p", "", "Show only this pier (P1..P5)")
	cmd.Flags().StringVarP(&f.format, "format", "F", formatTable, "Output format: table, csv, json, yaml")
	cmd.Flags().Uint16Var(&f.limit, "max-levels", server.DefaultLevelLimit, "Highest level a range may extend to")
}

// outputFormat returns the lower-cased format, table when unset
func (f *filterFlags) outputFormat() string {
	format := strings.ToLower(strings.TrimSpace(f.format))
	if format == "" {
		return formatTable
	}
	return format
}

// levels returns the selected range; an unset upper bound means the top level
func (f *filterFlags) levels(maxLevel uint16) tower.LevelRange {
	to := f.to
	if to == 0 {
		to = maxLevel
	}
	return tower.LevelRange{f.from, to}
}

// params returns unit-factor parameters over the selected range, checked
// against --max-levels
func (f *filterFlags) params(maxLevel uint16) (tower.StressParams, error) {
	params := tower.DefaultStressParams(maxLevel)
	params.LevelRange = f.levels(maxLevel)
	if err := params.Validate(f.limit); err != nil {
		return params, merry.Prepend(err, "invalid parameters")
	}
	return params, nil
}

// pierID validates the pier flag against the pier set
func (f *filterFlags) pierID() (tower.PierID, error) {
	if f.pier == "" {
		return "", nil
	}
	id := tower.PierID(strings.ToUpper(strings.TrimSpace(f.pier)))
	if _, ok := tower.LookupPier(id); !ok {
		return "", merry.Errorf("unknown pier %q: expected one of %v", f.pier, tower.PierIDs())
	}
	return id, nil
}

func (f *filterFlags) match(levels tower.LevelRange, pier tower.PierID, level uint16, rowPier tower.PierID) bool {
	if !levels.Contains(level) {
		return false
	}
	return pier == "" || pier == rowPier
}
