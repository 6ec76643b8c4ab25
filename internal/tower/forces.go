package tower

// BaseForce returns the level-1 force of a pier under a combination (kN)
func BaseForce(p PierSpec, c ComboSpec) float64 {
	return p.ForceFactor * c.Magnitude
}

// ForceAtLevel distributes a base force over the building height
// using the combination's distribution curve.
func ForceAtLevel(base float64, level, maxLevel uint16, c ComboSpec) float64 {
	if maxLevel <= 1 {
		return base
	}
	return base * c.Distribution(normalizedHeight(level, maxLevel))
}

// GenerateForces builds the force of every pier under every combination at
// every level from 1 to maxLevel. Rows are ordered by level, then pier, then
// combination.
func GenerateForces(maxLevel uint16) []Force {
	maxLevel = clampLevels(maxLevel)

	forces := make([]Force, 0, int(maxLevel)*len(Piers)*len(Combos))
	for l := 1; l <= int(maxLevel); l++ {
		level := uint16(l)
		for _, p := range Piers {
			for _, c := range Combos {
				f := ForceAtLevel(BaseForce(p, c), level, maxLevel, c)
				forces = append(forces, Force{
					Level: level,
					Pier:  p.ID,
					Combo: c.ID,
					Force: round(f, 2),
				})
			}
		}
	}
	return forces
}
