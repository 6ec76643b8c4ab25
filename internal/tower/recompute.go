package tower

// Recompute derives stress over params.LevelRange with every force scaled by
// the load factor of its combination. base is not modified.
//
// When the range reaches above base.MaxLevel a dataset for the requested
// height is generated for this call only and used in place of base. Nothing
// is cached between calls.
//
// Forces with no section in range, or with a combination outside the closed
// set, are skipped. An inverted range returns an empty result.
func Recompute(base *Dataset, params StressParams) []StressResult {
	minLevel, maxLevel := params.LevelRange.Min(), params.LevelRange.Max()

	data := base
	if maxLevel > base.MaxLevel {
		data = Build(maxLevel)
	}

	inRange := make([]Section, 0, len(data.Sections))
	for _, s := range data.Sections {
		if params.LevelRange.Contains(s.Level) {
			inRange = append(inRange, s)
		}
	}
	idx := indexSections(inRange)

	results := []StressResult{}
	for _, f := range data.Forces {
		if f.Level < minLevel || f.Level > maxLevel {
			continue
		}
		factor, ok := params.LoadFactors.Factor(f.Combo)
		if !ok {
			continue
		}
		sec, ok := idx[sectionKey{f.Level, f.Pier}]
		if !ok {
			continue
		}
		results = append(results, stressRow(sec, f.Level, f.Pier, f.Combo, f.Force*factor))
	}
	return results
}
