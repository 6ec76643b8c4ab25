package tower

import "math"

// PierSpec holds the fixed attributes of a pier
type PierSpec struct {
	ID          PierID
	Width       float64 // Base width at level 1 (m)
	Depth       float64 // Base depth at level 1 (m)
	ForceFactor float64 // Share of the combination magnitude carried by the pier
}

// ComboSpec holds the fixed attributes of a load combination
type ComboSpec struct {
	ID        Combo
	Magnitude float64 // Base force at level 1 for a pier with ForceFactor 1.0 (kN)

	// Distribution scales the base force by normalized height (0 at base, 1 at roof)
	Distribution func(norm float64) float64
}

// Piers is the reference pier configuration, in generation order
var Piers = []PierSpec{
	{ID: "P1", Width: 1.2, Depth: 0.6, ForceFactor: 1.0},
	{ID: "P2", Width: 1.0, Depth: 0.5, ForceFactor: 0.85},
	{ID: "P3", Width: 0.9, Depth: 0.45, ForceFactor: 0.75},
	{ID: "P4", Width: 1.1, Depth: 0.55, ForceFactor: 0.92},
	{ID: "P5", Width: 0.8, Depth: 0.4, ForceFactor: 0.68},
}

// Combos is the set of generated load combinations, in generation order
var Combos = []ComboSpec{
	{
		ID:        Gravity,
		Magnitude: 5000,
		// Accumulates downward, 15% left at the roof
		Distribution: func(norm float64) float64 { return 1 - 0.85*norm },
	},
	{
		ID:        Wind,
		Magnitude: 2200,
		// Decreases with height, 30% left at the roof
		Distribution: func(norm float64) float64 { return 0.3 + 0.7*(1-norm) },
	},
	{
		ID:        Seismic,
		Magnitude: 3100,
		// Triangular, peaks at mid-height
		Distribution: func(norm float64) float64 { return 1 - 0.6*math.Abs(norm-0.5) },
	},
}

var (
	pierIndex  = make(map[PierID]PierSpec, len(Piers))
	comboIndex = make(map[Combo]ComboSpec, len(Combos))
)

func init() {
	for _, p := range Piers {
		pierIndex[p.ID] = p
	}
	for _, c := range Combos {
		comboIndex[c.ID] = c
	}
}

// LookupPier returns the spec of a pier and whether it belongs to the pier set
func LookupPier(id PierID) (PierSpec, bool) {
	p, ok := pierIndex[id]
	return p, ok
}

// LookupCombo returns the spec of a combination and whether it is known
func LookupCombo(id Combo) (ComboSpec, bool) {
	c, ok := comboIndex[id]
	return c, ok
}

// PierIDs lists the pier identifiers in generation order
func PierIDs() []PierID {
	ids := make([]PierID, len(Piers))
	for i, p := range Piers {
		ids[i] = p.ID
	}
	return ids
}

// round rounds x to the given number of decimals, half away from zero
func round(x float64, decimals int) float64 {
	scale := math.Pow(10, float64(decimals))
	return math.Round(x*scale) / scale
}
