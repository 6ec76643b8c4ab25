package tower

import "fmt"

// indexSections builds the (level, pier) lookup used by the join.
// When a key repeats the last section wins.
func indexSections(sections []Section) map[sectionKey]Section {
	idx := make(map[sectionKey]Section, len(sections))
	for _, s := range sections {
		idx[sectionKey{s.Level, s.Pier}] = s
	}
	return idx
}

// stressRow joins one force value with its section
func stressRow(sec Section, level uint16, pier PierID, combo Combo, force float64) StressResult {
	area := sec.W * sec.D
	var stress float64
	if area > 0 {
		stress = force / area
	}
	return StressResult{
		Level:  level,
		Pier:   pier,
		Combo:  combo,
		Area:   round(area, 3),
		Force:  round(force, 2),
		Stress: round(stress, 2),
		ID:     ResultID(pier, level),
	}
}

// ResultID formats the identifier shared by all combinations of one pier at one level
func ResultID(pier PierID, level uint16) string {
	return fmt.Sprintf("%s_%d", pier, level)
}

// ComputeStress joins forces with sections on (level, pier) and derives the
// area and stress of every matched row, in force order.
//
// Forces with no section at their (level, pier) are left out, so the result
// can be shorter than forces. A section with non-positive area yields a
// stress of exactly zero.
func ComputeStress(sections []Section, forces []Force) []StressResult {
	idx := indexSections(sections)

	results := make([]StressResult, 0, len(forces))
	for _, f := range forces {
		sec, ok := idx[sectionKey{f.Level, f.Pier}]
		if !ok {
			continue
		}
		results = append(results, stressRow(sec, f.Level, f.Pier, f.Combo, f.Force))
	}
	return results
}
