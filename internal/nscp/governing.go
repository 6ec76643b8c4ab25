package nscp

import "github.com/alexiusacademia/gopier/internal/tower"

// GoverningStress is the largest stress found for a pier over a set of
// load combinations
type GoverningStress struct {
	Pier        tower.PierID `json:"pier" yaml:"pier"`
	Combination string       `json:"combination" yaml:"combination"` // NSCP combination ID
	Description string       `json:"description" yaml:"description"`
	LoadCase    tower.Combo  `json:"loadCase" yaml:"loadCase"` // Generated load case of the row
	Level       uint16       `json:"level" yaml:"level"`
	Force       float64      `json:"force" yaml:"force"`   // Factored force (kN)
	Stress      float64      `json:"stress" yaml:"stress"` // kPa
}

// CalculateGoverningStress recomputes the dataset once per combination over
// levels and returns, for every pier in pier order, the row with the maximum
// stress. Ties keep the first combination and level found. Piers with no
// positive stress in range are reported with zero values.
func CalculateGoverningStress(ds *tower.Dataset, levels tower.LevelRange, combinations []LoadCombination) []GoverningStress {
	governing := make([]GoverningStress, len(tower.Piers))
	byPier := make(map[tower.PierID]*GoverningStress, len(tower.Piers))
	for i, p := range tower.Piers {
		governing[i].Pier = p.ID
		byPier[p.ID] = &governing[i]
	}

	for _, combo := range combinations {
		results := tower.Recompute(ds, tower.StressParams{
			LoadFactors: combo.Factors(),
			LevelRange:  levels,
		})
		for _, r := range results {
			g, ok := byPier[r.Pier]
			if !ok || r.Stress <= g.Stress {
				continue
			}
			*g = GoverningStress{
				Pier:        r.Pier,
				Combination: combo.ID,
				Description: combo.Description,
				LoadCase:    r.Combo,
				Level:       r.Level,
				Force:       r.Force,
				Stress:      r.Stress,
			}
		}
	}

	return governing
}
