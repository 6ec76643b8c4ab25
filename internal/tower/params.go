package tower

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/ansel1/merry"
	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v3"
)

// LoadFactors scales the forces of each combination. 1.0 leaves a combination unchanged.
type LoadFactors struct {
	Gravity float64 `json:"gravity" yaml:"gravity"`
	Wind    float64 `json:"wind" yaml:"wind"`
	Seismic float64 `json:"seismic" yaml:"seismic"`
}

// DefaultLoadFactors returns factors that leave every force unchanged
func DefaultLoadFactors() LoadFactors {
	return LoadFactors{Gravity: 1, Wind: 1, Seismic: 1}
}

// Factor returns the factor applied to a combination.
// The second result is false for a combination outside the closed set.
func (lf LoadFactors) Factor(c Combo) (float64, bool) {
	switch c {
	case Gravity:
		return lf.Gravity, true
	case Wind:
		return lf.Wind, true
	case Seismic:
		return lf.Seismic, true
	}
	return 0, false
}

// LevelRange is an inclusive (min, max) level range, encoded as a two-element array
type LevelRange [2]uint16

// Min returns the lowest level of the range
func (r LevelRange) Min() uint16 { return r[0] }

// Max returns the highest level of the range
func (r LevelRange) Max() uint16 { return r[1] }

// Contains reports whether level lies within the range.
// An inverted range contains nothing.
func (r LevelRange) Contains(level uint16) bool {
	return level >= r[0] && level <= r[1]
}

// StressParams is a recompute request
type StressParams struct {
	LoadFactors LoadFactors `json:"loadFactors" yaml:"loadFactors"`
	LevelRange  LevelRange  `json:"levelRange" yaml:"levelRange"`
}

// DefaultStressParams covers levels 1..maxLevel with unit factors
func DefaultStressParams(maxLevel uint16) StressParams {
	return StressParams{
		LoadFactors: DefaultLoadFactors(),
		LevelRange:  LevelRange{1, clampLevels(maxLevel)},
	}
}

// Validate checks a request before it reaches Recompute. Every problem found
// is reported. limit caps the highest level a request may extend the dataset
// to; 0 means no cap. An inverted range is accepted and simply selects no rows.
func (p StressParams) Validate(limit uint16) error {
	var result *multierror.Error

	factors := []struct {
		name  string
		value float64
	}{
		{"gravity", p.LoadFactors.Gravity},
		{"wind", p.LoadFactors.Wind},
		{"seismic", p.LoadFactors.Seismic},
	}
	for _, f := range factors {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			result = multierror.Append(result, merry.Errorf("%s load factor must be finite", f.name))
		} else if f.value < 0 {
			result = multierror.Append(result, merry.Errorf("%s load factor must not be negative: %v", f.name, f.value))
		}
	}

	if limit > 0 && p.LevelRange.Max() > limit {
		result = multierror.Append(result,
			merry.Errorf("level range max %d exceeds the limit of %d levels", p.LevelRange.Max(), limit))
	}

	return result.ErrorOrNil()
}

// paramsFile mirrors StressParams with every field optional
type paramsFile struct {
	LoadFactors struct {
		Gravity *float64 `json:"gravity" yaml:"gravity"`
		Wind    *float64 `json:"wind" yaml:"wind"`
		Seismic *float64 `json:"seismic" yaml:"seismic"`
	} `json:"loadFactors" yaml:"loadFactors"`
	LevelRange *LevelRange `json:"levelRange" yaml:"levelRange"`
}

// LoadParams reads stress parameters from a JSON or YAML file. Values the
// file leaves out are taken from defaults.
func LoadParams(path string, defaults StressParams) (StressParams, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return defaults, merry.Prepend(err, "reading params file")
	}

	var file paramsFile
	if strings.EqualFold(filepath.Ext(path), ".json") {
		err = json.Unmarshal(data, &file)
	} else {
		err = yaml.Unmarshal(data, &file)
	}
	if err != nil {
		return defaults, merry.Prependf(err, "parsing params file %s", path)
	}

	params := defaults
	if v := file.LoadFactors.Gravity; v != nil {
		params.LoadFactors.Gravity = *v
	}
	if v := file.LoadFactors.Wind; v != nil {
		params.LoadFactors.Wind = *v
	}
	if v := file.LoadFactors.Seismic; v != nil {
		params.LoadFactors.Seismic = *v
	}
	if file.LevelRange != nil {
		params.LevelRange = *file.LevelRange
	}
	return params, nil
}
