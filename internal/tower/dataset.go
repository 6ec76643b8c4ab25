package tower

// DefaultMaxLevel is the height the dataset is built for at startup
const DefaultMaxLevel uint16 = 100

// Dataset owns one generated set of tables and the height it was built for.
// It is read-only once built and may be shared between goroutines.
type Dataset struct {
	Sections []Section
	Forces   []Force
	Stress   []StressResult
	MaxLevel uint16
}

// Build generates the sections, forces and stress of a building with
// maxLevel levels. Zero is treated as one level.
func Build(maxLevel uint16) *Dataset {
	maxLevel = clampLevels(maxLevel)

	sections := GenerateSections(maxLevel)
	forces := GenerateForces(maxLevel)

	return &Dataset{
		Sections: sections,
		Forces:   forces,
		Stress:   ComputeStress(sections, forces),
		MaxLevel: maxLevel,
	}
}

// NewDefault builds the dataset for DefaultMaxLevel levels
func NewDefault() *Dataset {
	return Build(DefaultMaxLevel)
}
