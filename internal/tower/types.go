package tower

// PierID identifies a pier. The set of piers is closed, see Piers.
type PierID string

// Combo identifies a load combination. The set is closed, see Combos.
type Combo string

// Load combinations generated for every pier at every level
const (
	Gravity Combo = "Gravity"
	Wind    Combo = "Wind"
	Seismic Combo = "Seismic"
)

// Section is the cross-section of one pier at one level
type Section struct {
	Level uint16  `json:"level" yaml:"level"`
	Pier  PierID  `json:"pier" yaml:"pier"`
	W     float64 `json:"w" yaml:"w"` // Width (m)
	D     float64 `json:"d" yaml:"d"` // Depth (m)
}

// Force is the load on one pier at one level under one combination
type Force struct {
	Level uint16  `json:"level" yaml:"level"`
	Pier  PierID  `json:"pier" yaml:"pier"`
	Combo Combo   `json:"combo" yaml:"combo"`
	Force float64 `json:"force" yaml:"force"` // kN
}

// StressResult is one row of the section/force join.
//
// ID combines pier and level only, so the rows of the three combinations at
// the same pier and level share one ID.
type StressResult struct {
	Level  uint16  `json:"level" yaml:"level"`
	Pier   PierID  `json:"pier" yaml:"pier"`
	Combo  Combo   `json:"combo" yaml:"combo"`
	Area   float64 `json:"area" yaml:"area"`     // m²
	Force  float64 `json:"force" yaml:"force"`   // kN
	Stress float64 `json:"stress" yaml:"stress"` // kPa
	ID     string  `json:"id" yaml:"id"`
}

type sectionKey struct {
	level uint16
	pier  PierID
}
