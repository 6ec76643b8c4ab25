package tower

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// snapshot copies the tables of a dataset so later calls can be checked
// for mutation
func snapshot(ds *Dataset) Dataset {
	return Dataset{
		Sections: append([]Section(nil), ds.Sections...),
		Forces:   append([]Force(nil), ds.Forces...),
		Stress:   append([]StressResult(nil), ds.Stress...),
		MaxLevel: ds.MaxLevel,
	}
}

func TestRecomputeDefaultsMatchBase(t *testing.T) {
	ds := Build(20)
	results := Recompute(ds, DefaultStressParams(ds.MaxLevel))
	assert.Equal(t, ds.Stress, results)
}

func TestRecomputeFiltersAndScales(t *testing.T) {
	ds := Build(100)
	params := StressParams{
		LoadFactors: LoadFactors{Gravity: 2, Wind: 0.5, Seismic: 0},
		LevelRange:  LevelRange{1, 50},
	}

	results := Recompute(ds, params)
	require.Len(t, results, 50*len(Piers)*len(Combos))

	for _, r := range results {
		assert.GreaterOrEqual(t, r.Level, uint16(1))
		assert.LessOrEqual(t, r.Level, uint16(50))
	}

	assert.Equal(t, StressResult{
		Level: 1, Pier: "P1", Combo: Gravity,
		Area: 0.72, Force: 10000, Stress: 13888.89, ID: "P1_1",
	}, results[0])
	assert.Equal(t, 1100.0, results[1].Force)
	assert.Equal(t, 1527.78, results[1].Stress)
	assert.Equal(t, 0.0, results[2].Force)
	assert.Equal(t, 0.0, results[2].Stress)
}

func TestRecomputeLeavesBaseUntouched(t *testing.T) {
	ds := Build(100)
	before := snapshot(ds)

	first := Recompute(ds, StressParams{
		LoadFactors: LoadFactors{Gravity: 3, Wind: 3, Seismic: 3},
		LevelRange:  LevelRange{10, 20},
	})
	Recompute(ds, StressParams{
		LoadFactors: LoadFactors{Gravity: 0, Wind: 0, Seismic: 0},
		LevelRange:  LevelRange{1, 150},
	})
	again := Recompute(ds, StressParams{
		LoadFactors: LoadFactors{Gravity: 3, Wind: 3, Seismic: 3},
		LevelRange:  LevelRange{10, 20},
	})

	assert.Equal(t, before, snapshot(ds))
	assert.Equal(t, first, again)
}

func TestRecomputeExtendsBeyondBase(t *testing.T) {
	ds := Build(100)
	before := snapshot(ds)

	results := Recompute(ds, StressParams{
		LoadFactors: DefaultLoadFactors(),
		LevelRange:  LevelRange{1, 150},
	})
	require.Len(t, results, 150*len(Piers)*len(Combos))

	last := results[len(results)-1]
	assert.Equal(t, uint16(150), last.Level)
	assert.Equal(t, PierID("P5"), last.Pier)
	assert.Equal(t, Seismic, last.Combo)

	// the extended run matches a dataset built for that height
	assert.Equal(t, Build(150).Stress, results)

	assert.Equal(t, before, snapshot(ds))
	assert.Equal(t, uint16(100), ds.MaxLevel)
}

func TestRecomputeInvertedRange(t *testing.T) {
	ds := Build(100)
	results := Recompute(ds, StressParams{
		LoadFactors: DefaultLoadFactors(),
		LevelRange:  LevelRange{80, 10},
	})
	assert.NotNil(t, results)
	assert.Empty(t, results)
}

func TestRecomputeSkipsUnknownCombo(t *testing.T) {
	ds := &Dataset{
		Sections: []Section{{Level: 1, Pier: "P1", W: 1, D: 1}},
		Forces: []Force{
			{Level: 1, Pier: "P1", Combo: Gravity, Force: 10},
			{Level: 1, Pier: "P1", Combo: "Snow", Force: 10},
		},
		MaxLevel: 1,
	}
	results := Recompute(ds, DefaultStressParams(1))
	require.Len(t, results, 1)
	assert.Equal(t, Gravity, results[0].Combo)
}
