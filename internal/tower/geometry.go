package tower

// Taper calculates the dimension factor of a level.
// It is 1.0 at level 1 and shrinks linearly to 0.4 at maxLevel.
func Taper(level, maxLevel uint16) float64 {
	return 1 - 0.6*normalizedHeight(level, maxLevel)
}

// normalizedHeight maps level 1 to 0 and maxLevel to 1.
// A building of a single level has height 0 everywhere.
func normalizedHeight(level, maxLevel uint16) float64 {
	if maxLevel <= 1 {
		return 0
	}
	return (float64(level) - 1) / (float64(maxLevel) - 1)
}

// clampLevels treats a request for zero levels as a single-level building
func clampLevels(maxLevel uint16) uint16 {
	if maxLevel < 1 {
		return 1
	}
	return maxLevel
}

// GenerateSections builds the cross-section of every pier at every level
// from 1 to maxLevel, level-major and pier-minor.
func GenerateSections(maxLevel uint16) []Section {
	maxLevel = clampLevels(maxLevel)

	sections := make([]Section, 0, int(maxLevel)*len(Piers))
	for l := 1; l <= int(maxLevel); l++ {
		level := uint16(l)
		t := Taper(level, maxLevel)
		for _, p := range Piers {
			sections = append(sections, Section{
				Level: level,
				Pier:  p.ID,
				W:     round(p.Width*t, 3),
				D:     round(p.Depth*t, 3),
			})
		}
	}
	return sections
}
