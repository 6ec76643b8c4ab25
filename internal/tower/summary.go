package tower

import (
	"math"
	"sort"
)

// PierSummary holds the peak stresses of one pier
type PierSummary struct {
	Pier       PierID  `json:"pier" yaml:"pier"`
	BaseArea   float64 `json:"area" yaml:"area"`             // Area at level 1 (m²)
	MaxGravity float64 `json:"maxGravity" yaml:"maxGravity"` // kPa
	MaxWind    float64 `json:"maxWind" yaml:"maxWind"`       // kPa
	MaxSeismic float64 `json:"maxSeismic" yaml:"maxSeismic"` // kPa
	MaxStress  float64 `json:"maxStress" yaml:"maxStress"`   // Over all combinations (kPa)
}

// Summarize reduces stress results to one row per pier, in pier order.
// Piers without results get zero values. Peaks are never below zero.
func Summarize(results []StressResult) []PierSummary {
	byPier := make(map[PierID]*PierSummary, len(Piers))
	summaries := make([]PierSummary, len(Piers))
	for i, p := range Piers {
		summaries[i].Pier = p.ID
		byPier[p.ID] = &summaries[i]
	}

	for _, r := range results {
		s, ok := byPier[r.Pier]
		if !ok {
			continue
		}
		if r.Level == 1 {
			s.BaseArea = r.Area
		}
		switch r.Combo {
		case Gravity:
			s.MaxGravity = math.Max(s.MaxGravity, r.Stress)
		case Wind:
			s.MaxWind = math.Max(s.MaxWind, r.Stress)
		case Seismic:
			s.MaxSeismic = math.Max(s.MaxSeismic, r.Stress)
		}
	}

	for i := range summaries {
		s := &summaries[i]
		s.MaxStress = math.Max(s.MaxGravity, math.Max(s.MaxWind, s.MaxSeismic))
	}
	return summaries
}

// ProfilePoint is the stress of one pier at one level
type ProfilePoint struct {
	Level  uint16  `json:"level" yaml:"level"`
	Stress float64 `json:"stress" yaml:"stress"`
}

// Series is the stress profile of one combination over the height of a pier
type Series struct {
	Combo  Combo          `json:"combo" yaml:"combo"`
	Points []ProfilePoint `json:"points" yaml:"points"`
}

// Profile extracts the stress of a pier per combination, one series per
// combination in combination order, each sorted by level.
func Profile(results []StressResult, pier PierID) []Series {
	series := make([]Series, len(Combos))
	pos := make(map[Combo]int, len(Combos))
	for i, c := range Combos {
		series[i].Combo = c.ID
		series[i].Points = []ProfilePoint{}
		pos[c.ID] = i
	}

	for _, r := range results {
		if r.Pier != pier {
			continue
		}
		i, ok := pos[r.Combo]
		if !ok {
			continue
		}
		series[i].Points = append(series[i].Points, ProfilePoint{Level: r.Level, Stress: r.Stress})
	}

	for i := range series {
		pts := series[i].Points
		sort.SliceStable(pts, func(a, b int) bool { return pts[a].Level < pts[b].Level })
	}
	return series
}
