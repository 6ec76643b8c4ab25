package nscp

import (
	"strings"

	"github.com/alexiusacademia/gopier/internal/tower"
	"github.com/ansel1/merry"
)

// LoadCombination represents an NSCP load combination expressed as factors on
// the generated load cases. Gravity rows carry the dead load factor.
// Based on NSCP 2015 Section 203.3 - Load Combinations Using Strength Design
type LoadCombination struct {
	ID          string
	Description string
	Gravity     float64 // D - Dead load
	Wind        float64 // W - Wind load
	Seismic     float64 // E - Earthquake load
}

// NSCP 2015 Section 203.3.1 - Basic Load Combinations
var LoadCombinations = []LoadCombination{
	{
		ID:          "1",
		Description: "1.4D",
		Gravity:     1.4,
	},
	{
		ID:          "2",
		Description: "1.2D + 1.6L + 0.5(Lr or R)",
		Gravity:     1.2,
	},
	{
		ID:          "3",
		Description: "1.2D + 1.6(Lr or R) + (1.0L or 0.5W)",
		Gravity:     1.2,
		Wind:        0.5,
	},
	{
		ID:          "4",
		Description: "1.2D + 1.0W + 1.0L + 0.5(Lr or R)",
		Gravity:     1.2,
		Wind:        1.0,
	},
	{
		ID:          "5",
		Description: "1.2D + 1.0E + 1.0L",
		Gravity:     1.2,
		Seismic:     1.0,
	},
	{
		ID:          "6",
		Description: "0.9D + 1.0W",
		Gravity:     0.9,
		Wind:        1.0,
	},
	{
		ID:          "7",
		Description: "0.9D + 1.0E",
		Gravity:     0.9,
		Seismic:     1.0,
	},
}

// Factors converts the combination to recompute load factors
func (lc LoadCombination) Factors() tower.LoadFactors {
	return tower.LoadFactors{
		Gravity: lc.Gravity,
		Wind:    lc.Wind,
		Seismic: lc.Seismic,
	}
}

// Find returns the combination with the given ID
func Find(id string) (LoadCombination, error) {
	id = strings.TrimSpace(id)
	for _, lc := range LoadCombinations {
		if lc.ID == id {
			return lc, nil
		}
	}
	return LoadCombination{}, merry.Errorf("unknown NSCP load combination %q", id)
}

// FindAll resolves a list of IDs. An empty list selects every combination.
func FindAll(ids []string) ([]LoadCombination, error) {
	if len(ids) == 0 {
		return LoadCombinations, nil
	}
	combos := make([]LoadCombination, 0, len(ids))
	for _, id := range ids {
		lc, err := Find(id)
		if err != nil {
			return nil, err
		}
		combos = append(combos, lc)
	}
	return combos, nil
}
